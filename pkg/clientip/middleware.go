package clientip

import "net/http"

// Middleware resolves the client IP once per request and stores it in the
// request context for handlers and loggers downstream.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithIP(r.Context(), FromRequest(r))))
	})
}
