package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"speseview/internal/cli"
	"speseview/internal/log"
)

var version = "dev"

// appKey carries the initialized *cli.App on the command context.
type appKey struct{}

func newRootCmd(onInit func(*cli.App)) *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "spese",
		Short: "Track daily expenses, budgets and spending summaries",
		Long: `spese keeps a local list of expenses and budgets.

Records are stored in SQLite by default (DATA_BACKEND=memory for a
throwaway session). Use list to browse with filters, sorting and pages,
and summary for totals, daily average, top category and payment mix.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cli.LoadEnvFile()

			cfg, err := cli.LoadAndValidateConfig()
			if err != nil {
				return err
			}
			level := cfg.LogLevel
			if cmd.Flags().Changed("log-level") {
				level = logLevel
			}
			logger, err := cli.SetupLogger(cmd.ErrOrStderr(), level)
			if err != nil {
				return err
			}

			app, err := cli.Init(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			if onInit != nil {
				onInit(app)
			}
			cmd.SetContext(context.WithValue(log.NewContext(cmd.Context(), logger), appKey{}, app))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(editCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(budgetCmd())

	return rootCmd
}

func loggerFrom(cmd *cobra.Command) *log.Logger {
	return log.FromContext(cmd.Context()).WithComponent(log.ComponentCLI)
}

func appFrom(cmd *cobra.Command) *cli.App {
	app, _ := cmd.Context().Value(appKey{}).(*cli.App)
	return app
}

// execute runs one command line and releases storage whether or not the
// command succeeded.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var app *cli.App
	root := newRootCmd(func(a *cli.App) { app = a })
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if app != nil {
		if cerr := app.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
