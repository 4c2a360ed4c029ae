package backend

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"speseview/internal/config"
	"speseview/internal/log"
	"speseview/internal/storage"
)

func TestCreateBackend(t *testing.T) {
	ctx := context.Background()
	f := NewFactory(log.Discard())

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "memory", cfg: Config{Type: MemoryBackend}},
		{name: "sqlite", cfg: Config{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(t.TempDir(), "spese.db")}},
		{name: "sqlite without path", cfg: Config{Type: SQLiteBackend}, wantErr: true},
		{name: "unknown type", cfg: Config{Type: "sheets"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.CreateBackend(ctx, tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateBackend() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			defer res.Close()

			if _, err := res.Storage.Get(ctx, storage.KeyExpenses); !errors.Is(err, storage.ErrNotFound) {
				t.Fatalf("fresh backend Get err = %v, want ErrNotFound", err)
			}
			if err := res.Storage.Put(ctx, storage.KeyExpenses, []byte("[]")); err != nil {
				t.Fatalf("Put: %v", err)
			}
			got, err := res.Storage.Get(ctx, storage.KeyExpenses)
			if err != nil || string(got) != "[]" {
				t.Fatalf("Get = %q, %v", got, err)
			}
		})
	}
}

func TestFromAppConfig(t *testing.T) {
	if _, err := FromAppConfig(nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := FromAppConfig(&config.Config{DataBackend: "sheets"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}

	got, err := FromAppConfig(&config.Config{DataBackend: "sqlite", SQLiteDBPath: "x.db"})
	if err != nil {
		t.Fatalf("FromAppConfig: %v", err)
	}
	if got.Type != SQLiteBackend || got.SQLiteDBPath != "x.db" {
		t.Fatalf("unexpected config %+v", got)
	}
}

func TestBackendResultCloseNil(t *testing.T) {
	var r *BackendResult
	if err := r.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
	if err := (&BackendResult{}).Close(); err != nil {
		t.Fatalf("empty Close: %v", err)
	}
}
