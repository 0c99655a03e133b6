package session_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaluz/website/pkg/session"
)

// headerTransport moves tokens through a header, keeping tests free of
// cookie encryption.
type headerTransport struct{}

func (headerTransport) GetToken(r *http.Request) (string, error) {
	token := r.Header.Get("X-Session-Token")
	if token == "" {
		return "", session.ErrNotFound
	}
	return token, nil
}

func (headerTransport) SetToken(w http.ResponseWriter, token string, _ time.Duration) error {
	w.Header().Set("X-Session-Token", token)
	return nil
}

func (headerTransport) ClearToken(w http.ResponseWriter) error {
	w.Header().Del("X-Session-Token")
	return nil
}

func newManager(t *testing.T, opts ...session.Option) *session.Manager {
	t.Helper()
	return session.New(append([]session.Option{
		session.WithTransport(headerTransport{}),
	}, opts...)...)
}

func TestManagerEnsure(t *testing.T) {
	t.Parallel()

	t.Run("creates anonymous session", func(t *testing.T) {
		t.Parallel()

		m := newManager(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		s, err := m.Ensure(context.Background(), rec, req)
		require.NoError(t, err)
		assert.False(t, s.IsAuthenticated())
		assert.NotEmpty(t, s.Token)
		assert.Equal(t, s.Token, rec.Header().Get("X-Session-Token"))
	})

	t.Run("returns existing session", func(t *testing.T) {
		t.Parallel()

		m := newManager(t)
		rec := httptest.NewRecorder()
		first, err := m.Ensure(context.Background(), rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Session-Token", first.Token)

		second, err := m.Ensure(context.Background(), httptest.NewRecorder(), req)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.Token, second.Token)
	})
}

func TestManagerAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("rotates token on sign in", func(t *testing.T) {
		t.Parallel()

		m := newManager(t)
		rec := httptest.NewRecorder()
		anon, err := m.Ensure(context.Background(), rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)

		userID := uuid.New()
		req := httptest.NewRequest(http.MethodPost, "/signin", nil)
		req.Header.Set("X-Session-Token", anon.Token)
		authRec := httptest.NewRecorder()

		require.NoError(t, m.Authenticate(context.Background(), authRec, req, userID))

		newToken := authRec.Header().Get("X-Session-Token")
		require.NotEmpty(t, newToken)
		assert.NotEqual(t, anon.Token, newToken, "token must rotate on authentication")

		// Old token no longer resolves.
		oldReq := httptest.NewRequest(http.MethodGet, "/", nil)
		oldReq.Header.Set("X-Session-Token", anon.Token)
		_, err = m.Get(context.Background(), oldReq)
		require.Error(t, err)

		// New token carries the user.
		newReq := httptest.NewRequest(http.MethodGet, "/", nil)
		newReq.Header.Set("X-Session-Token", newToken)
		s, err := m.Get(context.Background(), newReq)
		require.NoError(t, err)
		require.True(t, s.IsAuthenticated())
		assert.Equal(t, userID, *s.UserID)
	})

	t.Run("creates session when none exists", func(t *testing.T) {
		t.Parallel()

		m := newManager(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/signin", nil)

		require.NoError(t, m.Authenticate(context.Background(), rec, req, uuid.New()))
		assert.NotEmpty(t, rec.Header().Get("X-Session-Token"))
	})
}

func TestManagerDestroy(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	rec := httptest.NewRecorder()
	s, err := m.Ensure(context.Background(), rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/signout", nil)
	req.Header.Set("X-Session-Token", s.Token)
	require.NoError(t, m.Destroy(context.Background(), httptest.NewRecorder(), req))

	_, err = m.Get(context.Background(), req)
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestManagerRefresh(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	rec := httptest.NewRecorder()
	s, err := m.Ensure(context.Background(), rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Session-Token", s.Token)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, m.Refresh(context.Background(), httptest.NewRecorder(), req))

	refreshed, err := m.Get(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, refreshed.ExpiresAt.After(s.ExpiresAt))
}

func TestEnsureSlidesExpiry(t *testing.T) {
	t.Parallel()

	cfg := session.DefaultConfig()
	cfg.AnonIdleTimeout = 400 * time.Millisecond
	cfg.AnonMaxLifetime = time.Hour
	cfg.ActivityUpdateThreshold = 0

	m := newManager(t, session.WithConfig(cfg))

	rec := httptest.NewRecorder()
	s, err := m.Ensure(context.Background(), rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Session-Token", s.Token)

	// A request past the halfway point must push the deadline out; without
	// the slide the session would die at its original deadline.
	time.Sleep(300 * time.Millisecond)
	resumed, err := m.Ensure(context.Background(), httptest.NewRecorder(), req)
	require.NoError(t, err)
	assert.True(t, resumed.ExpiresAt.After(s.ExpiresAt), "deadline must move on activity")

	time.Sleep(200 * time.Millisecond)
	kept, err := m.Get(context.Background(), req)
	require.NoError(t, err, "session must survive past the original deadline")
	assert.Equal(t, s.Token, kept.Token)
}

func TestEnsureSlideRespectsMaxLifetime(t *testing.T) {
	t.Parallel()

	cfg := session.DefaultConfig()
	cfg.AnonIdleTimeout = time.Hour
	cfg.AnonMaxLifetime = 100 * time.Millisecond
	cfg.ActivityUpdateThreshold = 0

	m := newManager(t, session.WithConfig(cfg))

	rec := httptest.NewRecorder()
	s, err := m.Ensure(context.Background(), rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Session-Token", s.Token)

	resumed, err := m.Ensure(context.Background(), httptest.NewRecorder(), req)
	require.NoError(t, err)
	assert.False(t, resumed.ExpiresAt.After(s.CreatedAt.Add(cfg.AnonMaxLifetime)),
		"slide must not extend past the absolute lifetime cap")
}

func TestManagerRevokeUser(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	userID := uuid.New()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signin", nil)
	require.NoError(t, m.Authenticate(context.Background(), rec, req, userID))
	token := rec.Header().Get("X-Session-Token")

	require.NoError(t, m.RevokeUser(context.Background(), userID))

	check := httptest.NewRequest(http.MethodGet, "/", nil)
	check.Header.Set("X-Session-Token", token)
	_, err := m.Get(context.Background(), check)
	require.ErrorIs(t, err, session.ErrNotFound)
}

func TestManagerValues(t *testing.T) {
	t.Parallel()

	m := newManager(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	require.NoError(t, m.SetValue(context.Background(), rec, req, "redirect", "/en/reservations"))

	token := rec.Header().Get("X-Session-Token")
	read := httptest.NewRequest(http.MethodGet, "/", nil)
	read.Header.Set("X-Session-Token", token)

	v, ok := m.Value(context.Background(), read, "redirect")
	require.True(t, ok)
	assert.Equal(t, "/en/reservations", v)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	var got *session.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := session.FromContext(r.Context())
		require.True(t, ok)
		got = s
	})

	rec := httptest.NewRecorder()
	m.Middleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, got)
	assert.False(t, got.IsAuthenticated())
	assert.NotEmpty(t, rec.Header().Get("X-Session-Token"))
}

func TestExpiredSessionRejected(t *testing.T) {
	t.Parallel()

	cfg := session.DefaultConfig()
	cfg.AnonIdleTimeout = 10 * time.Millisecond
	cfg.AnonMaxLifetime = 10 * time.Millisecond

	m := newManager(t, session.WithConfig(cfg))

	rec := httptest.NewRecorder()
	s, err := m.Ensure(context.Background(), rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Session-Token", s.Token)
	_, err = m.Get(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.Is(err, session.ErrExpired) || errors.Is(err, session.ErrNotFound))
}
