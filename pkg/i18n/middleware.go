package i18n

import (
	"net/http"
	"slices"
	"strings"
)

// MiddlewareConfig controls locale-prefix routing.
type MiddlewareConfig struct {
	// Supported lists the locales routable by prefix, e.g. ["en", "es"].
	Supported []string
	// Default is used when negotiation finds nothing better.
	Default string
	// CookieName holds an explicit language choice; it wins over
	// Accept-Language. Empty disables the cookie check.
	CookieName string
	// Bypass lists path prefixes excluded from localization, such as
	// "/static" or "/healthz".
	Bypass []string
}

// Middleware enforces a locale prefix on every HTML route. Requests arriving
// with a valid prefix get the locale stored in context and the prefix
// stripped from the path before routing. Requests without one are redirected
// to the negotiated locale (cookie, then Accept-Language, then default) with
// path and query preserved.
func Middleware(cfg MiddlewareConfig) func(http.Handler) http.Handler {
	if cfg.Default == "" {
		cfg.Default = DefaultLanguage
	}
	if len(cfg.Supported) == 0 {
		cfg.Supported = []string{cfg.Default}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range cfg.Bypass {
				if strings.HasPrefix(r.URL.Path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			locale, rest, ok := SplitLocale(r.URL.Path, cfg.Supported)
			if !ok {
				target := "/" + negotiate(r, cfg) + r.URL.Path
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				// 307 keeps the method and body, so a locale-less form
				// post is replayed instead of degraded to a GET.
				status := http.StatusFound
				if r.Method != http.MethodGet && r.Method != http.MethodHead {
					status = http.StatusTemporaryRedirect
				}
				http.Redirect(w, r, target, status)
				return
			}

			r2 := r.Clone(SetLocale(r.Context(), locale))
			r2.URL.Path = rest
			next.ServeHTTP(w, r2)
		})
	}
}

func negotiate(r *http.Request, cfg MiddlewareConfig) string {
	if cfg.CookieName != "" {
		if c, err := r.Cookie(cfg.CookieName); err == nil {
			lang := strings.ToLower(strings.TrimSpace(c.Value))
			if slices.Contains(cfg.Supported, lang) {
				return lang
			}
		}
	}
	return Negotiate(r.Header.Get("Accept-Language"), cfg.Supported, cfg.Default)
}

// LocalizePath prepends the locale prefix to a locale-less path.
func LocalizePath(locale, path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path == "/" {
		return "/" + locale
	}
	return "/" + locale + path
}
