package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"speseview/internal/view"
)

func validConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		DataBackend:  "sqlite",
		SQLiteDBPath: filepath.Join(t.TempDir(), "data", "spese.db"),
		ItemsPerPage: 5,
		SortField:    "date",
		SortDir:      "desc",
		ToastTimeout: 3 * time.Second,
		LogLevel:     "info",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid sqlite backend config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "valid memory backend config",
			mutate:  func(c *Config) { c.DataBackend = "memory"; c.SQLiteDBPath = "" },
			wantErr: false,
		},
		{
			name:        "invalid data backend",
			mutate:      func(c *Config) { c.DataBackend = "sheets" },
			wantErr:     true,
			errorString: "invalid data backend 'sheets': must be one of [memory sqlite]",
		},
		{
			name:        "sqlite backend missing database path",
			mutate:      func(c *Config) { c.SQLiteDBPath = "" },
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name:        "items per page too low",
			mutate:      func(c *Config) { c.ItemsPerPage = 0 },
			wantErr:     true,
			errorString: "invalid items per page 0: must be at least 1",
		},
		{
			name:        "items per page too high",
			mutate:      func(c *Config) { c.ItemsPerPage = 500 },
			wantErr:     true,
			errorString: "invalid items per page 500: must be at most 100",
		},
		{
			name:        "unknown sort field",
			mutate:      func(c *Config) { c.SortField = "price" },
			wantErr:     true,
			errorString: "invalid sort field 'price'",
		},
		{
			name:        "unknown sort direction",
			mutate:      func(c *Config) { c.SortDir = "up" },
			wantErr:     true,
			errorString: "invalid sort direction 'up': must be asc or desc",
		},
		{
			name:        "toast timeout too short",
			mutate:      func(c *Config) { c.ToastTimeout = time.Millisecond },
			wantErr:     true,
			errorString: "invalid toast timeout 1ms: must be at least 100ms",
		},
		{
			name:        "bad log level",
			mutate:      func(c *Config) { c.LogLevel = "loud" },
			wantErr:     true,
			errorString: `unknown log level "loud"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Config.Validate() error = %v, want it to contain %q", err, tt.errorString)
			}
		})
	}
}

func TestConfig_ValidateCollectsEveryProblem(t *testing.T) {
	cfg := Config{DataBackend: "nope", ItemsPerPage: 0, SortField: "x", SortDir: "y", LogLevel: "z"}
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	if n := strings.Count(err.Error(), "\n- "); n != 6 {
		t.Errorf("expected 6 problems, got %d: %v", n, err)
	}
}

func TestLoad(t *testing.T) {
	for _, key := range []string{"DATA_BACKEND", "SQLITE_DB_PATH", "ITEMS_PER_PAGE", "SORT_FIELD", "SORT_DIRECTION", "TOAST_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.DataBackend != "sqlite" {
			t.Errorf("Load() DataBackend = %v, want sqlite", cfg.DataBackend)
		}
		if cfg.SQLiteDBPath != "./data/spese.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want ./data/spese.db", cfg.SQLiteDBPath)
		}
		if cfg.ItemsPerPage != 5 {
			t.Errorf("Load() ItemsPerPage = %v, want 5", cfg.ItemsPerPage)
		}
		if cfg.ToastTimeout != 3*time.Second {
			t.Errorf("Load() ToastTimeout = %v, want 3s", cfg.ToastTimeout)
		}
		if s := cfg.InitialSort(); s != view.DefaultSort() {
			t.Errorf("InitialSort() = %v, want date:desc", s)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("DATA_BACKEND", "memory")
		t.Setenv("SQLITE_DB_PATH", "/tmp/test.db")
		t.Setenv("ITEMS_PER_PAGE", "20")
		t.Setenv("SORT_FIELD", "amount")
		t.Setenv("SORT_DIRECTION", "ASC")
		t.Setenv("TOAST_TIMEOUT", "5s")
		t.Setenv("LOG_LEVEL", "debug")

		cfg := Load()

		if cfg.DataBackend != "memory" {
			t.Errorf("Load() DataBackend = %v, want memory", cfg.DataBackend)
		}
		if cfg.SQLiteDBPath != "/tmp/test.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want /tmp/test.db", cfg.SQLiteDBPath)
		}
		if cfg.ItemsPerPage != 20 {
			t.Errorf("Load() ItemsPerPage = %v, want 20", cfg.ItemsPerPage)
		}
		if cfg.ToastTimeout != 5*time.Second {
			t.Errorf("Load() ToastTimeout = %v, want 5s", cfg.ToastTimeout)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("Load() LogLevel = %v, want debug", cfg.LogLevel)
		}
		if s := cfg.InitialSort(); s.Field != view.SortByAmount || s.Direction != view.SortAsc {
			t.Errorf("InitialSort() = %v, want amount:asc", s)
		}
	})

	t.Run("invalid environment variables use defaults", func(t *testing.T) {
		t.Setenv("ITEMS_PER_PAGE", "invalid")
		t.Setenv("TOAST_TIMEOUT", "invalid")

		cfg := Load()

		if cfg.ItemsPerPage != 5 {
			t.Errorf("Load() ItemsPerPage = %v, want 5 (default for invalid input)", cfg.ItemsPerPage)
		}
		if cfg.ToastTimeout != 3*time.Second {
			t.Errorf("Load() ToastTimeout = %v, want 3s (default for invalid input)", cfg.ToastTimeout)
		}
	})
}
