package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"speseview/internal/log"
	"speseview/internal/view"
)

type Config struct {
	// Storage
	DataBackend  string
	SQLiteDBPath string

	// Expense list
	ItemsPerPage int
	SortField    string
	SortDir      string

	// Notifications
	ToastTimeout time.Duration

	// Logging
	LogLevel string
}

var validBackends = []string{"memory", "sqlite"}

func Load() *Config {
	return &Config{
		DataBackend:  getEnv("DATA_BACKEND", "sqlite"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/spese.db"),

		ItemsPerPage: getEnvInt("ITEMS_PER_PAGE", view.DefaultItemsPerPage),
		SortField:    getEnv("SORT_FIELD", string(view.SortByDate)),
		SortDir:      getEnv("SORT_DIRECTION", string(view.SortDesc)),

		ToastTimeout: getEnvDuration("TOAST_TIMEOUT", 3*time.Second),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate data backend
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	// Validate SQLite configuration if backend is sqlite
	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			// Check if directory exists or can be created
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	// Validate list settings
	if c.ItemsPerPage < 1 {
		errors = append(errors, fmt.Sprintf("invalid items per page %d: must be at least 1", c.ItemsPerPage))
	} else if c.ItemsPerPage > 100 {
		errors = append(errors, fmt.Sprintf("invalid items per page %d: must be at most 100", c.ItemsPerPage))
	}

	if _, err := view.ParseSortField(c.SortField); err != nil {
		errors = append(errors, fmt.Sprintf("invalid sort field '%s'", c.SortField))
	}
	if _, err := parseDirection(c.SortDir); err != nil {
		errors = append(errors, err.Error())
	}

	if c.ToastTimeout < 100*time.Millisecond {
		errors = append(errors, fmt.Sprintf("invalid toast timeout %v: must be at least 100ms", c.ToastTimeout))
	} else if c.ToastTimeout > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid toast timeout %v: must be at most 1 minute", c.ToastTimeout))
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, err.Error())
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// InitialSort returns the configured starting sort. Call after Validate;
// invalid values fall back to the default sort.
func (c *Config) InitialSort() view.SortState {
	field, err := view.ParseSortField(c.SortField)
	if err != nil {
		return view.DefaultSort()
	}
	dir, err := parseDirection(c.SortDir)
	if err != nil {
		return view.DefaultSort()
	}
	return view.SortState{Field: field, Direction: dir}
}

func parseDirection(s string) (view.SortDirection, error) {
	switch view.SortDirection(strings.ToLower(strings.TrimSpace(s))) {
	case view.SortAsc:
		return view.SortAsc, nil
	case view.SortDesc:
		return view.SortDesc, nil
	default:
		return "", fmt.Errorf("invalid sort direction '%s': must be asc or desc", s)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
