package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"speseview/internal/log"
)

// LoadJSON decodes the value under key into a T. A missing key, a read
// error or a malformed document all yield fallback; only the last two are
// logged.
func LoadJSON[T any](ctx context.Context, kv KeyValue, key string, fallback T) T {
	data, err := kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger(ctx).WarnContext(ctx, "Failed to read stored collection, using default",
				log.FieldOperation, log.OpRead,
				log.FieldKey, key,
				log.FieldError, err)
		}
		return fallback
	}

	var v *T
	if err := json.Unmarshal(data, &v); err != nil {
		logger(ctx).WarnContext(ctx, "Stored collection is malformed, using default",
			log.FieldOperation, log.OpRead,
			log.FieldKey, key,
			log.FieldError, err)
		return fallback
	}
	// JSON null decodes to a nil pointer.
	if v == nil {
		return fallback
	}
	return *v
}

// SaveJSON encodes value and overwrites key.
func SaveJSON(ctx context.Context, kv KeyValue, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Put(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// logger returns the request logger tagged for this package.
func logger(ctx context.Context) *log.Logger {
	return log.FromContext(ctx).WithComponent(log.ComponentStorage)
}
