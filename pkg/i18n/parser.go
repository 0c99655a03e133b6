package i18n

import (
	"context"
	"strings"
)

// parser decodes one catalog file format into the language-keyed structure.
type parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)
}

func parserForFile(filename string) parser {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return nil
	}
	switch strings.ToLower(filename[idx+1:]) {
	case "yaml", "yml":
		return yamlParser{}
	case "json":
		return jsonParser{}
	default:
		return nil
	}
}
