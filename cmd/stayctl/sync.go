package main

import (
	"context"
	"fmt"

	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func syncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run calendar imports",
	}
	cmd.AddCommand(syncAllCmd())
	cmd.AddCommand(syncOneCmd())
	return cmd
}

func syncAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run one pass over every due import",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cmds commands.CalendarSyncCommands
			return withApp(cmd, func(ctx context.Context) error {
				summary := cmds.SyncAllActiveImports(ctx)
				if outputJSON {
					return printJSON(summary)
				}
				fmt.Printf("synced=%d errors=%d skipped=%d\n", summary.Synced, summary.Errors, summary.Skipped)
				if summary.Errors > 0 {
					return fmt.Errorf("%d imports failed", summary.Errors)
				}
				return nil
			}, &cmds)
		},
	}
}

func syncOneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "one <sync-id>",
		Short: "Import one config now, ignoring its interval",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid sync id: %w", err)
			}
			var cmds commands.CalendarSyncCommands
			return withApp(cmd, func(ctx context.Context) error {
				n, err := cmds.Import(ctx, nil, id)
				if err != nil {
					return err
				}
				if outputJSON {
					return printJSON(map[string]any{"sync_id": id, "imported": n})
				}
				fmt.Printf("imported %d events\n", n)
				return nil
			}, &cmds)
		},
	}
}
