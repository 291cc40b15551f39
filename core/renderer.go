package core

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
)

const layoutFile = "layout.html"

// Renderer turns a handler Result into HTML. Each page template is parsed
// together with the layout and every component into its own set, so pages
// can share component definitions without colliding on "content".
//
// The full set is parsed once at startup so broken templates fail the
// process before it serves anything. In dev the page set is re-parsed per
// request so edits show up without a restart; in prod the startup cache is
// used read-only.
type Renderer struct {
	config    Config
	env       string
	funcs     template.FuncMap
	templates map[string]*template.Template
}

func NewRenderer(config Config, env string) (*Renderer, error) {
	rd := &Renderer{
		config:    config,
		env:       env,
		funcs:     TemplateFuncs(env, config),
		templates: map[string]*template.Template{},
	}

	pages, err := filepath.Glob(filepath.Join(config.TemplatesDir, "*.html"))
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		if filepath.Base(page) == layoutFile {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(page), ".html")
		tmpl, err := rd.parse(name)
		if err != nil {
			return nil, err
		}
		rd.templates[name] = tmpl
	}

	if len(rd.templates) == 0 {
		return nil, fmt.Errorf("no page templates found in %s", config.TemplatesDir)
	}

	return rd, nil
}

func (rd *Renderer) parse(name string) (*template.Template, error) {
	files := []string{
		filepath.Join(rd.config.TemplatesDir, layoutFile),
		filepath.Join(rd.config.TemplatesDir, name+".html"),
	}

	components, err := filepath.Glob(filepath.Join(rd.config.TemplatesDir, "components", "*.html"))
	if err == nil {
		files = append(files, components...)
	}

	tmpl, err := template.New(layoutFile).Funcs(rd.funcs).ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", name, err)
	}
	return tmpl, nil
}

func (rd *Renderer) lookup(name string) (*template.Template, error) {
	if _, ok := rd.templates[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	if rd.env == "dev" {
		return rd.parse(name)
	}
	return rd.templates[name], nil
}

// Render writes the result as HTML. A request carrying the htmx marker
// gets only the page's "content" fragment; anything else gets the full
// document via "layout". Nothing but the marker affects the choice.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, res *Result) error {
	tmpl, err := rd.lookup(res.Template)
	if err != nil {
		return err
	}

	root := "layout"
	if IsHTMX(r) {
		root = "content"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, root, res.Data); err != nil {
		return fmt.Errorf("template %q: %w", res.Template, err)
	}

	res.applyHeaders(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	status := res.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	_, err = w.Write(buf.Bytes())
	return err
}

// Names lists the page templates known at startup.
func (rd *Renderer) Names() []string {
	names := make([]string, 0, len(rd.templates))
	for name := range rd.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
