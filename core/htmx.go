package core

import "net/http"

// Request and response header names from the htmx convention.
// https://htmx.org/reference/#headers
const (
	HeaderRequest  = "HX-Request"
	HeaderRetarget = "HX-Retarget"
	HeaderReswap   = "HX-Reswap"
	HeaderTrigger  = "HX-Trigger"
)

// SwapMode is an hx-swap strategy controlling how a returned fragment
// replaces the target element.
type SwapMode string

const (
	SwapOuter     SwapMode = "outerHTML"
	SwapInner     SwapMode = "innerHTML"
	SwapBeforeEnd SwapMode = "beforeend"
	SwapDelete    SwapMode = "delete"
	SwapNone      SwapMode = "none"
)

// IsHTMX reports whether the request carries the partial-update marker,
// i.e. it was issued by the htmx client library rather than a normal
// browser navigation.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderRequest) == "true"
}
