package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaluz/website/pkg/i18n"
)

func newTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"welcome": "Welcome to Casa Luz, %{name}!",
			"nav": map[string]any{
				"menu":         "Menu",
				"reservations": "Reservations",
			},
			"guests": map[string]any{
				"zero":  "No guests",
				"one":   "%{count} guest",
				"other": "%{count} guests",
			},
		},
		"es": {
			"welcome": "¡Bienvenido a Casa Luz, %{name}!",
			"nav": map[string]any{
				"menu": "Carta",
			},
		},
	}}

	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestTranslatorT(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)

	t.Run("simple key with params", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Welcome to Casa Luz, Ana!", tr.T("en", "welcome", "name", "Ana"))
		assert.Equal(t, "¡Bienvenido a Casa Luz, Ana!", tr.T("es", "welcome", "name", "Ana"))
	})

	t.Run("nested key", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Reservations", tr.T("en", "nav.reservations"))
		assert.Equal(t, "Carta", tr.T("es", "nav.menu"))
	})

	t.Run("missing key falls back to key", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "nav.reservations", tr.T("es", "nav.reservations"))
	})

	t.Run("unsupported language falls back to key", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "welcome", tr.T("fr", "welcome"))
	})

	t.Run("non-string value falls back to key", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "nav", tr.T("en", "nav"))
	})

	t.Run("unknown placeholder kept", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Welcome to Casa Luz, %{name}!", tr.T("en", "welcome"))
	})
}

func TestTranslatorTNoFallback(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t, i18n.WithFallbackToKey(false))
	assert.Empty(t, tr.T("en", "does.not.exist"))
}

func TestTranslatorN(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)

	assert.Equal(t, "No guests", tr.N("en", "guests", 0))
	assert.Equal(t, "1 guest", tr.N("en", "guests", 1))
	assert.Equal(t, "4 guests", tr.N("en", "guests", 4))

	t.Run("explicit count wins", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "four guests", tr.N("en", "guests", 4, "count", "four"))
	})

	t.Run("missing plural forms fall back to key", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "tables", tr.N("en", "tables", 3))
	})
}

func TestSupportedLanguages(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)
	assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
}

func TestHasTranslation(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)
	assert.True(t, tr.HasTranslation("en", "nav.menu"))
	assert.False(t, tr.HasTranslation("es", "nav.reservations"))
	assert.False(t, tr.HasTranslation("fr", "nav.menu"))
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.Error(t, err)
	})

	t.Run("empty language code rejected", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{
			Data: map[string]map[string]any{"": {"k": "v"}},
		})
		assert.Error(t, err)
	})

	t.Run("default language option", func(t *testing.T) {
		t.Parallel()
		tr := newTranslator(t, i18n.WithDefaultLanguage("es"))
		assert.Equal(t, "es", tr.DefaultLang())
	})
}
