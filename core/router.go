package core

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// HandlerFunc is one unit of server-side logic bound to a (method, pattern)
// pair. A nil Result with a nil error writes an empty 200 response, which
// htmx treats as "swap in nothing" (used to remove elements).
type HandlerFunc func(r *http.Request, params map[string]string) (*Result, error)

type Route struct {
	Method     string
	Pattern    string
	URLPattern *regexp.Regexp
	ParamKeys  []string
	Handler    HandlerFunc
}

type Router struct {
	config   Config
	renderer *Renderer
	routes   []Route
}

func NewRouter(config Config, renderer *Renderer) *Router {
	return &Router{config: config, renderer: renderer}
}

// Handle registers a handler for a method and path pattern. Pattern
// segments starting with ":" capture path parameters, e.g.
// "/tasks/:category/:id". Registering the same (method, pattern) twice is
// a configuration error and fails here, before the process starts serving.
func (r *Router) Handle(method, pattern string, handler HandlerFunc) error {
	for _, route := range r.routes {
		if route.Method == method && route.Pattern == pattern {
			return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, method, pattern)
		}
	}

	regex, paramKeys := compilePattern(pattern)
	r.routes = append(r.routes, Route{
		Method:     method,
		Pattern:    pattern,
		URLPattern: regex,
		ParamKeys:  paramKeys,
		Handler:    handler,
	})
	return nil
}

func compilePattern(pattern string) (*regexp.Regexp, []string) {
	parts := strings.Split(strings.Trim(pattern, "/"), "/")
	paramKeys := []string{}
	expr := ""

	for _, part := range parts {
		if strings.HasPrefix(part, ":") {
			paramKeys = append(paramKeys, part[1:])
			expr += "/([^/]+)"
		} else {
			expr += "/" + regexp.QuoteMeta(part)
		}
	}

	return regexp.MustCompile("^" + strings.TrimPrefix(expr, "/") + "$"), paramKeys
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	path := strings.Trim(req.URL.Path, "/")

	for _, route := range r.routes {
		if route.Method != req.Method {
			continue
		}
		matches := route.URLPattern.FindStringSubmatch(path)
		if matches == nil {
			continue
		}

		params := map[string]string{}
		for i, key := range route.ParamKeys {
			params[key] = matches[i+1]
		}

		if r.config.DebugLogs {
			log.WithFields(log.Fields{
				"method": req.Method,
				"path":   req.URL.Path,
				"route":  route.Pattern,
			}).Debug("route matched")
		}
		if r.config.DebugHeaders {
			w.Header().Set("X-Tasklist-Route", route.Method+" "+route.Pattern)
		}

		r.invoke(w, req, route, params)
		return
	}

	r.renderError(w, req, http.StatusNotFound, "Not Found")
}

func (r *Router) invoke(w http.ResponseWriter, req *http.Request, route Route, params map[string]string) {
	result, err := route.Handler(req, params)
	if err != nil {
		if IsNotFoundError(err) {
			r.renderError(w, req, http.StatusNotFound, "Not Found")
			return
		}
		log.WithError(err).WithField("route", route.Pattern).Error("handler failed")
		r.renderError(w, req, http.StatusInternalServerError, "Server Error")
		return
	}

	if result == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := r.renderer.Render(w, req, result); err != nil {
		log.WithError(err).WithField("route", route.Pattern).Error("render failed")
		r.renderError(w, req, http.StatusInternalServerError, "Template Error")
	}
}

// renderError goes through the "error" page template so error responses get
// the same full-page/fragment treatment as everything else, falling back to
// a plain text response when that template is missing or broken itself.
func (r *Router) renderError(w http.ResponseWriter, req *http.Request, status int, message string) {
	res := &Result{
		Template: "error",
		Data:     map[string]interface{}{"Status": status, "Message": message},
		Status:   status,
	}

	if err := r.renderer.Render(w, req, res); err != nil {
		http.Error(w, message, status)
	}
}
