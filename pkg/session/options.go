package session

import (
	"github.com/casaluz/website/pkg/cookie"
)

// Option configures the Manager.
type Option func(*Manager)

// WithStore sets the session store. Defaults to the in-memory store.
func WithStore(store Store) Option {
	return func(m *Manager) { m.store = store }
}

// WithTransport sets a custom token transport.
func WithTransport(t Transport) Option {
	return func(m *Manager) { m.transport = t }
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.config = cfg }
}

// WithCookieManager wires the cookie manager used by the default cookie
// transport.
func WithCookieManager(mgr *cookie.Manager, opts ...cookie.Option) Option {
	return func(m *Manager) {
		m.cookieManager = mgr
		m.cookieOptions = opts
	}
}
