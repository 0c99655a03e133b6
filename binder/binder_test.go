package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaluz/website/binder"
)

type reservationForm struct {
	Date      string   `form:"date"`
	TimeSlot  string   `form:"time_slot"`
	PartySize int      `form:"party_size"`
	Confirmed bool     `form:"confirmed"`
	Courses   []string `form:"courses"`
	Note      *string  `form:"note"`
	Internal  string   `form:"-"`
}

func formRequest(t *testing.T, values url.Values) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("binds typed fields", func(t *testing.T) {
		t.Parallel()

		r := formRequest(t, url.Values{
			"date":       {"2026-09-12"},
			"time_slot":  {"19:00"},
			"party_size": {"4"},
			"confirmed":  {"on"},
			"courses":    {"starter", "main"},
			"note":       {"window table please"},
			"internal":   {"must not bind"},
		})

		var req reservationForm
		require.NoError(t, binder.Form()(r, &req))

		assert.Equal(t, "2026-09-12", req.Date)
		assert.Equal(t, "19:00", req.TimeSlot)
		assert.Equal(t, 4, req.PartySize)
		assert.True(t, req.Confirmed)
		assert.Equal(t, []string{"starter", "main"}, req.Courses)
		require.NotNil(t, req.Note)
		assert.Equal(t, "window table please", *req.Note)
		assert.Empty(t, req.Internal)
	})

	t.Run("GET is not applicable", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/reservations", nil)
		var req reservationForm
		assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrNotApplicable)
	})

	t.Run("missing content type is not applicable", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader("date=x"))
		var req reservationForm
		assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrNotApplicable)
	})

	t.Run("wrong media type rejected", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader("{}"))
		r.Header.Set("Content-Type", "application/json")
		var req reservationForm
		assert.ErrorIs(t, binder.Form()(r, &req), binder.ErrUnsupportedMediaType)
	})

	t.Run("invalid int reports field", func(t *testing.T) {
		t.Parallel()

		r := formRequest(t, url.Values{"party_size": {"many"}})
		var req reservationForm
		err := binder.Form()(r, &req)
		require.ErrorIs(t, err, binder.ErrInvalidForm)
		assert.Contains(t, err.Error(), "PartySize")
	})

	t.Run("non-pointer target rejected", func(t *testing.T) {
		t.Parallel()

		r := formRequest(t, url.Values{"date": {"2026-09-12"}})
		var req reservationForm
		assert.ErrorIs(t, binder.Form()(r, req), binder.ErrInvalidForm)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	type listQuery struct {
		Page     int    `query:"page"`
		Status   string `query:"status"`
		Redirect string `query:"redirect"`
	}

	r := httptest.NewRequest(http.MethodGet, "/reservations?page=2&status=upcoming&redirect=%2Fes%2Freservations", nil)

	var req listQuery
	require.NoError(t, binder.Query()(r, &req))
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, "upcoming", req.Status)
	assert.Equal(t, "/es/reservations", req.Redirect)
}
