package i18n

import "errors"

var (
	ErrLoadCancelled    = errors.New("i18n.load_cancelled")
	ErrReadCatalogDir   = errors.New("i18n.read_catalog_dir_failed")
	ErrReadCatalogFile  = errors.New("i18n.read_catalog_file_failed")
	ErrParseCatalogFile = errors.New("i18n.parse_catalog_file_failed")
)
