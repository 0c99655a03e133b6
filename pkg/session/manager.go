package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/casaluz/website/pkg/cookie"
)

// Manager owns the session lifecycle: anonymous sessions for first-time
// visitors, token rotation on sign-in, and sliding expiry bounded by a
// maximum lifetime.
type Manager struct {
	store         Store
	transport     Transport
	config        Config
	cookieManager *cookie.Manager
	cookieOptions []cookie.Option
}

// New creates a session manager. A cookie manager is required unless a
// custom transport is supplied.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}

	if m.transport == nil {
		if m.cookieManager == nil {
			panic("session: cookie manager is required for the default cookie transport")
		}
		m.transport = NewCookieTransport(m.cookieManager, m.config.CookieName, m.config.SecureCookies, m.cookieOptions...)
	}

	return m
}

// Ensure returns the request's session, creating an anonymous one when the
// request carries no valid token. Existing sessions get their expiry slid
// forward, throttled by ActivityUpdateThreshold so not every request
// rewrites the store.
func (m *Manager) Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	s, err := m.Get(ctx, r)
	if err == nil {
		if m.shouldSlide(s) {
			// A failed slide is not fatal; the session stays valid
			// until its current deadline.
			_ = m.slide(ctx, w, s)
		}
		return s, nil
	}
	_ = m.transport.ClearToken(w)

	s, err = m.create(ctx, nil)
	if err != nil {
		return nil, err
	}

	idle, _ := m.config.timeouts(false)
	if err := m.transport.SetToken(w, s.Token, idle); err != nil {
		_ = m.store.Delete(ctx, s.Token)
		return nil, err
	}

	return s, nil
}

// Get retrieves and validates the request's session.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.transport.GetToken(r)
	if err != nil {
		return nil, err
	}

	s, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if s.IsExpired() {
		return nil, ErrExpired
	}

	return s, nil
}

// Authenticate attaches the user to the session and rotates the token so a
// token captured before sign-in is worthless afterwards.
func (m *Manager) Authenticate(ctx context.Context, w http.ResponseWriter, r *http.Request, userID uuid.UUID) error {
	s, err := m.Get(ctx, r)
	if err != nil {
		s, err = m.create(ctx, &userID)
		if err != nil {
			return err
		}
	} else {
		token, err := generateToken()
		if err != nil {
			return err
		}
		_ = m.store.Delete(ctx, s.Token)

		s.UserID = &userID
		s.Token = token
		idle, max := m.config.timeouts(true)
		s.ExpiresAt = expiry(s.CreatedAt, time.Now(), idle, max)
		s.Touch()

		if err := m.store.Create(ctx, s); err != nil {
			return err
		}
	}

	idle, _ := m.config.timeouts(true)
	return m.transport.SetToken(w, s.Token, idle)
}

// Destroy deletes the session and clears the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if token, err := m.transport.GetToken(r); err == nil && token != "" {
		_ = m.store.Delete(ctx, token)
	}
	return m.transport.ClearToken(w)
}

// Refresh slides the expiry forward immediately, bypassing the activity
// threshold, and re-issues the cookie.
func (m *Manager) Refresh(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	s, err := m.Get(ctx, r)
	if err != nil {
		return err
	}
	return m.slide(ctx, w, s)
}

// RevokeUser deletes every session belonging to the user.
func (m *Manager) RevokeUser(ctx context.Context, userID uuid.UUID) error {
	return m.store.DeleteByUserID(ctx, userID.String())
}

// SetValue stores a value on the request's session, creating one if needed.
func (m *Manager) SetValue(ctx context.Context, w http.ResponseWriter, r *http.Request, key string, value any) error {
	s, err := m.Ensure(ctx, w, r)
	if err != nil {
		return err
	}
	s.Set(key, value)
	return m.store.Update(ctx, s)
}

// Value reads a value from the request's session.
func (m *Manager) Value(ctx context.Context, r *http.Request, key string) (any, bool) {
	s, err := m.Get(ctx, r)
	if err != nil {
		return nil, false
	}
	return s.Get(key)
}

func (m *Manager) create(ctx context.Context, userID *uuid.UUID) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	idle, max := m.config.timeouts(userID != nil)
	now := time.Now()
	s := newSession(token, userID, expiry(now, now, idle, max).Sub(now))

	if err := m.store.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *Manager) shouldSlide(s *Session) bool {
	return time.Since(s.LastActivityAt) >= m.config.ActivityUpdateThreshold
}

// slide moves the expiry forward, records activity, and re-issues the
// cookie so the client deadline tracks the server one.
func (m *Manager) slide(ctx context.Context, w http.ResponseWriter, s *Session) error {
	idle, max := m.config.timeouts(s.IsAuthenticated())
	s.ExpiresAt = expiry(s.CreatedAt, time.Now(), idle, max)
	s.Touch()

	if err := m.store.Update(ctx, s); err != nil {
		return err
	}
	return m.transport.SetToken(w, s.Token, idle)
}

// expiry is the sooner of the sliding idle deadline and the absolute
// lifetime cap.
func expiry(createdAt, now time.Time, idle, max time.Duration) time.Time {
	idleExpiry := now.Add(idle)
	maxExpiry := createdAt.Add(max)
	if maxExpiry.Before(idleExpiry) {
		return maxExpiry
	}
	return idleExpiry
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
