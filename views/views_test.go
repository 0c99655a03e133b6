package views_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaluz/website/handler"
	"github.com/casaluz/website/modules/auth"
	"github.com/casaluz/website/modules/pages"
	"github.com/casaluz/website/modules/reservations"
	"github.com/casaluz/website/pkg/i18n"
	"github.com/casaluz/website/views"
)

func newViews(t *testing.T) *views.Views {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"nav": map[string]any{"menu": "Menu"},
			"home": map[string]any{
				"hero":     map[string]any{"title": "Casa Luz"},
				"specials": map[string]any{"title": "This week"},
			},
		},
		"es": {
			"nav": map[string]any{"menu": "Carta"},
		},
	}})
	require.NoError(t, err)
	return views.New(tr)
}

func TestHomePage(t *testing.T) {
	t.Parallel()

	v := newViews(t)
	c := v.Pages.HomePage(pages.HomePageParams{
		Locale: "en",
		Specials: []pages.Special{{
			ID:         uuid.New(),
			Name:       []byte(`{"en":"Paella","es":"Paella de la casa"}`),
			PriceCents: 2850,
		}},
		Testimonials: []pages.Testimonial{{
			ID:     uuid.New(),
			Author: "Maria",
			Quote:  []byte(`{"en":"Wonderful evening"}`),
			Rating: 5,
		}},
	})

	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	html := sb.String()

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, `lang="en"`)
	assert.Contains(t, html, "Paella")
	assert.Contains(t, html, "€28.50")
	assert.Contains(t, html, "Wonderful evening")
	assert.Contains(t, html, "★★★★★")
	assert.Contains(t, html, `id="toast-container"`)
}

func TestHomePageLocalizedFallback(t *testing.T) {
	t.Parallel()

	v := newViews(t)
	c := v.Pages.HomePage(pages.HomePageParams{
		Locale: "es",
		Specials: []pages.Special{{
			Name: []byte(`{"en":"Grilled octopus"}`),
		}},
	})

	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))

	// No Spanish value stored, so the default language wins.
	assert.Contains(t, sb.String(), "Grilled octopus")
	assert.Contains(t, sb.String(), `lang="es"`)
}

func TestSignUpFormRepopulatesValues(t *testing.T) {
	t.Parallel()

	v := newViews(t)
	c := v.Auth.SignUpForm(auth.SignUpFormParams{
		Locale: "en",
		Form: handler.FormResult{
			Message: "Please fix the errors below.",
			Fields:  map[string][]handler.FieldMessage{"email": {{Text: "must be a valid email"}}},
			Values:  map[string]string{"name": "Ana", "email": "not-an-email", "password": "secret"},
		},
		Redirect: "/en/reservations",
	})

	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	html := sb.String()

	assert.Contains(t, html, `action="/en/signup"`)
	assert.Contains(t, html, "Please fix the errors below.")
	assert.Contains(t, html, "must be a valid email")
	assert.Contains(t, html, `value="Ana"`)
	assert.Contains(t, html, `value="not-an-email"`)
	assert.NotContains(t, html, "secret", "passwords are never echoed back")
	assert.Contains(t, html, `name="redirect" value="/en/reservations"`)
}

func TestBookingFormKeepsSelection(t *testing.T) {
	t.Parallel()

	v := newViews(t)
	c := v.Reservations.NewForm(reservations.FormPageParams{
		Locale:       "en",
		Slots:        []string{"12:00", "19:00"},
		MaxPartySize: 4,
		Form: handler.FormResult{
			Values: map[string]string{"date": "2026-09-10", "time_slot": "19:00", "party_size": "3", "note": "window please"},
		},
	})

	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	html := sb.String()

	assert.Contains(t, html, `value="2026-09-10"`)
	assert.Contains(t, html, `<option value="19:00" selected>`)
	assert.Contains(t, html, `<option value="3" selected>`)
	assert.NotContains(t, html, `<option value="12:00" selected>`)
	assert.Contains(t, html, "window please")
}

func TestReservationListBody(t *testing.T) {
	t.Parallel()

	v := newViews(t)
	id := uuid.New()
	c := v.Reservations.ListBody(reservations.ListPageParams{
		Locale: "en",
		Reservations: []*reservations.Reservation{
			{
				ID:        id,
				Date:      time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
				TimeSlot:  "20:00",
				PartySize: 2,
				Status:    reservations.StatusConfirmed,
			},
			{
				ID:       uuid.New(),
				Date:     time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
				TimeSlot: "13:00",
				Status:   reservations.StatusCancelled,
			},
		},
	})

	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	html := sb.String()

	assert.Contains(t, html, `id="reservations"`)
	assert.Contains(t, html, "2026-09-12")
	assert.Contains(t, html, "/en/reservations/"+id.String()+"/edit")
	assert.Contains(t, html, "/en/reservations/"+id.String()+"/cancel")
	// Cancelled rows lose their actions.
	assert.Equal(t, 1, strings.Count(html, "/cancel"))
}

func TestReservationListBodyEmpty(t *testing.T) {
	t.Parallel()

	v := newViews(t)
	c := v.Reservations.ListBody(reservations.ListPageParams{Locale: "en"})

	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	assert.Contains(t, sb.String(), `class="empty"`)
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	v := newViews(t)
	c := v.ErrorPage(handler.ErrorPageParams{
		Message:    "Not Found",
		StatusCode: 404,
		RequestID:  "req-123",
		Locale:     "en",
	})

	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	html := sb.String()

	assert.Contains(t, html, "<h1>404</h1>")
	assert.Contains(t, html, "Not Found")
	assert.Contains(t, html, "req-123")
}

func TestErrorToastEscapes(t *testing.T) {
	t.Parallel()

	v := newViews(t)
	c := v.ErrorToast(handler.ErrorToastParams{Message: "<script>alert(1)</script>", Type: "error"})

	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))

	assert.NotContains(t, sb.String(), "<script>")
	assert.Contains(t, sb.String(), "toast-error")
}
