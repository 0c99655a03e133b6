package session

import "net/http"

// Middleware ensures every request has a session, refreshes its expiry
// when it already exists, and places it in the request context. Handlers
// downstream read it with FromContext.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := m.Ensure(r.Context(), w, r)
		if err != nil {
			// A broken store must not take the whole site down; the
			// request proceeds without a session.
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}
