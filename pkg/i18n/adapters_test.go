package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaluz/website/pkg/i18n"
)

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	t.Run("loads and merges yaml and json", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"locales/common.yaml": {Data: []byte(
				"en:\n  nav:\n    menu: Menu\nes:\n  nav:\n    menu: Carta\n",
			)},
			"locales/extra.json": {Data: []byte(
				`{"en": {"footer": "All rights reserved"}}`,
			)},
			"locales/ignored.txt": {Data: []byte("not a catalog")},
		}

		catalog, err := i18n.NewFSAdapter(fsys, "locales").Load(context.Background())
		require.NoError(t, err)

		require.Contains(t, catalog, "en")
		require.Contains(t, catalog, "es")
		assert.Equal(t, "All rights reserved", catalog["en"]["footer"])

		nav, ok := catalog["en"]["nav"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Menu", nav["menu"])
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"locales/bad.yaml": {Data: []byte("en: [not, a, map]")},
		}

		_, err := i18n.NewFSAdapter(fsys, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrParseCatalogFile)
	})

	t.Run("missing directory fails", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.NewFSAdapter(fstest.MapFS{}, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrReadCatalogDir)
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"locales/common.yaml": {Data: []byte("en:\n  k: v\n")},
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := i18n.NewFSAdapter(fsys, "locales").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadCancelled)
	})
}
