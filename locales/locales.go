// Package locales embeds the translation catalogs served by the site.
package locales

import "embed"

//go:embed *.yaml
var FS embed.FS
