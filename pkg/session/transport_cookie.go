package session

import (
	"net/http"
	"time"

	"github.com/casaluz/website/pkg/cookie"
)

// CookieTransport carries the token in an encrypted cookie so the raw
// store key never reaches the client.
type CookieTransport struct {
	mgr    *cookie.Manager
	name   string
	secure bool
	opts   []cookie.Option
}

func NewCookieTransport(mgr *cookie.Manager, name string, secure bool, opts ...cookie.Option) *CookieTransport {
	return &CookieTransport{mgr: mgr, name: name, secure: secure, opts: opts}
}

func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	token, err := t.mgr.GetEncrypted(r, t.name)
	if err != nil {
		return "", ErrNotFound
	}
	return token, nil
}

func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	opts := []cookie.Option{
		cookie.WithMaxAge(int(ttl.Seconds())),
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
	}
	if t.secure {
		opts = append(opts, cookie.WithSecure(true))
	}
	opts = append(opts, t.opts...)

	return t.mgr.SetEncrypted(w, t.name, token, opts...)
}

func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	t.mgr.Delete(w, t.name)
	return nil
}
