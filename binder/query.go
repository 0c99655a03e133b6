package binder

import "net/http"

// Query binds URL query parameters to `query:` tagged fields. It applies to
// every request method.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindValues(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
