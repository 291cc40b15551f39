package tasklist

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/go-tasklist/tasklist/core"
)

const configFile = "tasklist.config.yml"

type RuntimeConfig struct {
	Env  string
	Port int
}

// Start builds the app and serves it. Any startup failure — broken
// templates, duplicate routes, an occupied port — comes back as an error
// so the CLI can exit non-zero; per-request failures never get here.
func Start(cfg RuntimeConfig) error {
	fmt.Println("Starting tasklist in", cfg.Env, "mode...")

	config := core.LoadConfig(configFile)
	if cfg.Port != 0 {
		config.Port = cfg.Port
	}
	if config.DebugLogs {
		log.SetLevel(log.DebugLevel)
	}

	app, err := NewApp(config, cfg.Env)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/static/", staticHandler(config, cfg.Env))
	mux.HandleFunc("/favicon.ico", serveFromPublic(config, cfg.Env, "favicon.ico"))
	mux.HandleFunc("/robots.txt", serveFromPublic(config, cfg.Env, "robots.txt"))

	if cfg.Env == "dev" {
		reloader := core.NewLiveReloader()
		mux.HandleFunc("/__reload", reloader.Handler)

		watcher, err := core.NewWatcher([]string{config.TemplatesDir, config.PublicDir}, reloader.BroadcastReload)
		if err != nil {
			return err
		}
		watcher.Start()
		defer watcher.Close()
	}

	mux.Handle("/", app.Router)

	fmt.Printf("✅ tasklist running at http://localhost:%d\n", config.Port)
	return http.ListenAndServe(fmt.Sprintf(":%d", config.Port), mux)
}

// staticHandler serves /static/ assets. Dev mode reads straight from the
// public dir with caching disabled; prod prefers the minified and gzipped
// copies the asset pipeline wrote into the output dir, with long-lived
// cache headers.
func staticHandler(config core.Config, env string) http.Handler {
	if env == "dev" {
		return http.StripPrefix("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store")
			http.FileServer(http.Dir(config.PublicDir)).ServeHTTP(w, r)
		}))
	}

	cacheStaticDir := filepath.Join(config.OutputDir, "static")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rel := strings.TrimPrefix(r.URL.Path, "/static/")

		cachedFile := filepath.Join(cacheStaticDir, rel)
		if acceptsGzip(r) {
			if _, err := os.Stat(cachedFile + ".gz"); err == nil {
				w.Header().Set("Content-Type", detectMimeType(cachedFile))
				w.Header().Set("Content-Encoding", "gzip")
				w.Header().Set("Vary", "Accept-Encoding")
				w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
				http.ServeFile(w, r, cachedFile+".gz")
				return
			}
		}

		for _, file := range []string{cachedFile, filepath.Join(config.PublicDir, rel)} {
			if _, err := os.Stat(file); err == nil {
				w.Header().Set("Content-Type", detectMimeType(file))
				w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
				http.ServeFile(w, r, file)
				return
			}
		}

		http.NotFound(w, r)
	})
}

func serveFromPublic(config core.Config, env, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if env == "dev" {
			w.Header().Set("Cache-Control", "no-store")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		}
		http.ServeFile(w, r, filepath.Join(config.PublicDir, name))
	}
}

func detectMimeType(path string) string {
	switch filepath.Ext(path) {
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".woff":
		return "font/woff"
	case ".woff2":
		return "font/woff2"
	default:
		return "application/octet-stream"
	}
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}
