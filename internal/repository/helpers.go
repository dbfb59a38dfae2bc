package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ajrivet/tassel/internal/storage"
)

// readJSON unmarshals the document stored under key into out. A missing
// key leaves out untouched and returns false; callers start from empty
// defaults.
func readJSON(ctx context.Context, store storage.Store, key string, out any) (bool, error) {
	data, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decoding key %q: %w", key, err)
	}
	return true, nil
}

func writeJSON(ctx context.Context, store storage.Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding key %q: %w", key, err)
	}
	return store.Set(ctx, key, data)
}
