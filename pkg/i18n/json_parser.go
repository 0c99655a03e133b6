package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

type jsonParser struct{}

func (jsonParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var data map[string]map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrParseCatalogFile, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no languages found", ErrParseCatalogFile)
	}
	return data, nil
}
