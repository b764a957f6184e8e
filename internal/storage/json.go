package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCorrupted is returned by LoadJSON when the stored value cannot be decoded.
var ErrCorrupted = errors.New("stored value corrupted")

// LoadJSON loads key and decodes it into v. found is false when the key is absent,
// in which case v is left untouched.
func LoadJSON(ctx context.Context, p Provider, key string, v any) (found bool, err error) {
	raw, found, err := p.Load(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load [%s]: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("%w: [%s]: %s", ErrCorrupted, key, err)
	}
	return true, nil
}

// SaveJSON encodes v and saves it under key.
func SaveJSON(ctx context.Context, p Provider, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal [%s]: %w", key, err)
	}
	if err := p.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("save [%s]: %w", key, err)
	}
	return nil
}
