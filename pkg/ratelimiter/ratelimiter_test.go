package ratelimiter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaluz/website/pkg/ratelimiter"
)

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore) {
	t.Helper()
	store := ratelimiter.NewMemoryStore()
	t.Cleanup(store.Close)
	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, store
}

func TestBucketAllow(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Hour})
	ctx := context.Background()

	first, err := b.Allow(ctx, "key")
	require.NoError(t, err)
	assert.True(t, first.Allowed())
	assert.Equal(t, 1, first.Remaining)

	second, err := b.Allow(ctx, "key")
	require.NoError(t, err)
	assert.True(t, second.Allowed())

	third, err := b.Allow(ctx, "key")
	require.NoError(t, err)
	assert.False(t, third.Allowed())
	assert.Positive(t, third.RetryAfter())
}

func TestBucketKeysAreIndependent(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
	ctx := context.Background()

	_, err := b.Allow(ctx, "alice")
	require.NoError(t, err)

	res, err := b.Allow(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
}

func TestBucketReset(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
	ctx := context.Background()

	_, err := b.Allow(ctx, "key")
	require.NoError(t, err)

	require.NoError(t, b.Reset(ctx, "key"))

	res, err := b.Allow(ctx, "key")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
}

func TestNewBucketRejectsBadConfig(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore()
	t.Cleanup(store.Close)

	_, err := ratelimiter.NewBucket(store, ratelimiter.Config{})
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
	h := ratelimiter.Middleware(b, ratelimiter.ByClientIP())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	)

	req := httptest.NewRequest(http.MethodPost, "/signin", nil)
	req.RemoteAddr = "203.0.113.7:1234"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// A different client is unaffected.
	other := httptest.NewRequest(http.MethodPost, "/signin", nil)
	other.RemoteAddr = "198.51.100.4:1234"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
