package core

import "net/http"

// Result is what a handler hands to the renderer: a page template name,
// the variables it renders with, and optional htmx response headers.
type Result struct {
	Template string
	Data     map[string]interface{}
	Status   int
	headers  map[string]string
}

func OK(template string, data map[string]interface{}) *Result {
	return &Result{Template: template, Data: data, Status: http.StatusOK}
}

func (res *Result) WithStatus(code int) *Result {
	res.Status = code
	return res
}

// Retarget overrides the client-side target element via HX-Retarget.
func (res *Result) Retarget(selector string) *Result {
	return res.setHeader(HeaderRetarget, selector)
}

// Reswap overrides the client-side swap strategy via HX-Reswap.
func (res *Result) Reswap(mode SwapMode) *Result {
	return res.setHeader(HeaderReswap, string(mode))
}

// Trigger asks the client to fire a DOM event after the swap.
func (res *Result) Trigger(event string) *Result {
	return res.setHeader(HeaderTrigger, event)
}

func (res *Result) setHeader(key, value string) *Result {
	if res.headers == nil {
		res.headers = map[string]string{}
	}
	res.headers[key] = value
	return res
}

func (res *Result) applyHeaders(w http.ResponseWriter) {
	for key, value := range res.headers {
		w.Header().Set(key, value)
	}
}
