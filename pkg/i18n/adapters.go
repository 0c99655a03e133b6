package i18n

import (
	"context"
	"errors"
	"io/fs"
	"maps"
	"path"
)

// Adapter loads a translation catalog keyed by language code.
type Adapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves an in-memory catalog, mostly for tests.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every supported catalog file (.yaml, .yml, .json) from a
// filesystem, typically an embed.FS. Each file holds top-level language keys;
// catalogs for the same language are merged in directory order, later files
// overriding earlier keys.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter creates an adapter reading catalog files from dir inside fsys.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	return &FSAdapter{fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.fsys == nil {
		return nil, errors.New("i18n: nil filesystem")
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrReadCatalogDir, err)
	}

	result := make(map[string]map[string]any)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadCancelled, err)
		}
		if entry.IsDir() {
			continue
		}

		parser := parserForFile(entry.Name())
		if parser == nil {
			continue
		}

		content, err := fs.ReadFile(a.fsys, path.Join(a.dir, entry.Name()))
		if err != nil {
			return nil, errors.Join(ErrReadCatalogFile, err)
		}

		parsed, err := parser.Parse(ctx, string(content))
		if err != nil {
			return nil, errors.Join(ErrParseCatalogFile, err)
		}

		for lang, trans := range parsed {
			if existing, ok := result[lang]; ok {
				maps.Copy(existing, trans)
			} else {
				result[lang] = trans
			}
		}
	}

	return result, nil
}
