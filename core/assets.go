package core

import (
	"bytes"
	"compress/gzip"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"github.com/tdewolff/minify/v2"
	mincss "github.com/tdewolff/minify/v2/css"
	minjs "github.com/tdewolff/minify/v2/js"
)

func contentHash(data []byte) string {
	h := md5.New()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))[:6]
}

// MinifyAsset minifies a /static/ css or js file into the output dir and
// returns a hash-versioned URL for the minified copy. Outside prod, or on
// any failure, the original path is returned untouched.
func MinifyAsset(env, path string, config Config) string {
	if env != "prod" {
		return path
	}

	ext := filepath.Ext(path)
	if ext != ".css" && ext != ".js" {
		return path
	}

	name := strings.TrimSuffix(filepath.Base(path), ext)
	if strings.Contains(name, ".min") {
		return path
	}

	rel := strings.TrimPrefix(path, "/static/")
	src := filepath.Join(config.PublicDir, rel)
	outDir := filepath.Join(config.OutputDir, "static")
	out := filepath.Join(outDir, fmt.Sprintf("%s.min%s", name, ext))

	original, err := os.ReadFile(src)
	if err != nil {
		return path
	}

	m := minify.New()
	m.AddFunc("text/css", mincss.Minify)
	m.AddFunc("application/javascript", minjs.Minify)

	mediaType := "text/css"
	if ext == ".js" {
		mediaType = "application/javascript"
	}

	var buf bytes.Buffer
	if err := m.Minify(mediaType, &buf, bytes.NewReader(original)); err != nil {
		return path
	}
	minified := buf.Bytes()

	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return path
	}
	if err := os.WriteFile(out, minified, 0644); err != nil {
		return path
	}

	if f, err := os.Create(out + ".gz"); err == nil {
		gz := gzip.NewWriter(f)
		if _, err := gz.Write(minified); err == nil {
			gz.Close()
		}
		f.Close()
	}

	return fmt.Sprintf("/static/%s.min%s?v=%s", name, ext, contentHash(minified))
}

const livereloadScript = `<script>
(function () {
  var ws = new WebSocket("ws://" + location.host + "/__reload");
  ws.onmessage = function (e) { if (e.data === "reload") location.reload(); };
})();
</script>`

// TemplateFuncs is the FuncMap every template set is parsed with: the sprig
// library plus the project's asset and reload helpers.
func TemplateFuncs(env string, config Config) template.FuncMap {
	funcs := sprig.HtmlFuncMap()

	funcs["minify"] = func(path string) string {
		return MinifyAsset(env, path, config)
	}

	funcs["asset"] = func(path string) string {
		if !strings.HasPrefix(path, "/static/") {
			return path
		}

		rel := strings.TrimPrefix(path, "/static/")
		locations := []string{
			filepath.Join(config.PublicDir, rel),
			filepath.Join(config.OutputDir, "static", rel),
		}

		for _, file := range locations {
			if content, err := os.ReadFile(file); err == nil {
				return fmt.Sprintf("/static/%s?v=%s", rel, contentHash(content))
			}
		}

		return path
	}

	funcs["safeHTML"] = func(s interface{}) template.HTML {
		switch val := s.(type) {
		case template.HTML:
			return val
		case string:
			return template.HTML(val)
		default:
			return ""
		}
	}

	funcs["livereload"] = func() template.HTML {
		if env != "dev" {
			return ""
		}
		return template.HTML(livereloadScript)
	}

	return funcs
}
