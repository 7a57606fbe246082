package settings

import (
	"context"
	"encoding/json"
	"fmt"
)

// LoadJSON decodes the document stored under key into v.
func LoadJSON(ctx context.Context, store Store, key string, v any) error {
	entries, err := store.Load(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(entries[0].Value, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrLoadFailed, key, err)
	}
	return nil
}

// SaveJSON stores v under key as indented JSON.
func SaveJSON(ctx context.Context, store Store, key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}
	return store.Save(ctx, Entry{Key: key, Value: append(data, '\n')})
}
