package auth

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/casaluz/website/pkg/i18n"
	"github.com/casaluz/website/pkg/session"
)

// GuardConfig configures the route guard.
type GuardConfig struct {
	// SignInPath is the locale-less sign-in path users are sent to.
	SignInPath string

	// Protected lists locale-less path prefixes that require a signed-in
	// user. Empty means everything under the guarded router.
	Protected []string
}

// Guard redirects unauthenticated requests on protected paths to the
// localized sign-in page, carrying the original path in a redirect query
// parameter. Missing, expired, and broken sessions all count as signed
// out; the guard never fails a request.
func Guard(cfg GuardConfig) func(http.Handler) http.Handler {
	signInPath := cfg.SignInPath
	if signInPath == "" {
		signInPath = "/signin"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !pathProtected(r.URL.Path, cfg.Protected) {
				next.ServeHTTP(w, r)
				return
			}

			if s, ok := session.FromContext(r.Context()); ok && s.IsAuthenticated() {
				next.ServeHTTP(w, r)
				return
			}

			locale := i18n.GetLocale(r.Context())
			target := i18n.LocalizePath(locale, signInPath) +
				"?redirect=" + url.QueryEscape(i18n.LocalizePath(locale, r.URL.Path))
			http.Redirect(w, r, target, http.StatusSeeOther)
		})
	}
}

func pathProtected(path string, protected []string) bool {
	if len(protected) == 0 {
		return true
	}
	for _, prefix := range protected {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// SafeRedirect keeps redirect targets on this site: only absolute paths
// without a scheme or host survive, anything else falls back.
func SafeRedirect(target, fallback string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return fallback
	}
	if u, err := url.Parse(target); err != nil || u.Host != "" || u.Scheme != "" {
		return fallback
	}
	return target
}
