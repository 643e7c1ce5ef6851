package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"stayhub/cmd/bootstrap"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var (
	outputJSON bool
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:          "stayctl",
	Short:        "Operator tools for the stayhub booking engine",
	SilenceUsage: true,
}

func Execute() {
	rootCmd.AddCommand(syncCmd())
	rootCmd.AddCommand(feedCmd())
	rootCmd.AddCommand(bookingCmd())
	rootCmd.AddCommand(outboxCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Overall command timeout")
}

// withApp starts the core dependency graph, populates targets and stops it when fn returns.
func withApp(cmd *cobra.Command, fn func(ctx context.Context) error, targets ...any) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	app := fx.New(
		bootstrap.CoreModule,
		fx.Populate(targets...),
		fx.NopLogger,
	)
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	}()

	return fn(ctx)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
