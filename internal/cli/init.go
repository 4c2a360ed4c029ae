// Package cli provides common CLI initialization utilities shared by the
// cmd/spese subcommands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/joho/godotenv"

	"speseview/internal/backend"
	"speseview/internal/config"
	"speseview/internal/log"
	"speseview/internal/notify"
	"speseview/internal/store"
)

// SetupLogger initializes structured logging at the given level and sets it
// as the default logger. Logs go to w so command output stays clean.
func SetupLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := log.DefaultConfig()
	cfg.Level = lvl
	cfg.Component = log.ComponentCLI
	cfg.Output = w
	logger := log.New(cfg)
	log.SetDefault(logger)
	return logger, nil
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// App bundles what a single command invocation needs.
type App struct {
	Config *config.Config
	Logger *log.Logger
	Toasts *notify.Center
	View   *store.ExpenseView

	backend *backend.BackendResult
}

// Init wires config, storage, notifications and the expense view. The
// logger is attached to ctx so storage reads log through it.
func Init(ctx context.Context, cfg *config.Config, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.Default(log.ComponentCLI)
	}
	ctx = log.NewContext(ctx, logger)

	logger.WithComponent(log.ComponentConfig).DebugContext(ctx, "Configuration loaded",
		log.FieldBackend, cfg.DataBackend,
		log.FieldDBPath, cfg.SQLiteDBPath,
		"items_per_page", cfg.ItemsPerPage,
		log.FieldSort, cfg.InitialSort().String(),
		"toast_timeout", cfg.ToastTimeout)

	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}

	res, err := backend.NewFactory(logger).CreateBackend(ctx, bcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	toasts := notify.NewCenter(
		notify.WithTimeout(cfg.ToastTimeout),
		notify.WithLogger(logger),
	)
	view := store.New(ctx, res.Storage, toasts,
		store.WithLogger(logger.WithComponent(log.ComponentStore)),
		store.WithItemsPerPage(cfg.ItemsPerPage),
		store.WithSort(cfg.InitialSort()),
	)

	logger.DebugContext(ctx, "Application initialized",
		log.FieldOperation, log.OpStartup,
		log.FieldBackend, cfg.DataBackend,
		log.FieldCount, view.ExpenseCount())

	return &App{
		Config:  cfg,
		Logger:  logger,
		Toasts:  toasts,
		View:    view,
		backend: res,
	}, nil
}

// Close stops pending toast timers and releases storage.
func (a *App) Close() error {
	a.Toasts.Close()
	if err := a.backend.Close(); err != nil {
		a.Logger.Error("Failed to close storage",
			log.FieldOperation, log.OpShutdown,
			log.FieldError, err)
		return err
	}
	a.Logger.Debug("Application closed", log.FieldOperation, log.OpShutdown)
	return nil
}
