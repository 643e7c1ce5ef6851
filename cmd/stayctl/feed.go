package main

import (
	"context"
	"os"
	"strings"

	"stayhub/internal/usecase/commands"

	"github.com/spf13/cobra"
)

func feedCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "feed <token>",
		Short: "Render an export feed as iCalendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := strings.TrimSuffix(args[0], ".ics")
			var cmds commands.CalendarSyncCommands
			return withApp(cmd, func(ctx context.Context) error {
				body, err := cmds.GenerateICalFeed(ctx, token)
				if err != nil {
					return err
				}
				if out == "" || out == "-" {
					_, err = os.Stdout.Write(body)
					return err
				}
				return os.WriteFile(out, body, 0o644)
			}, &cmds)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "-", "Output file")
	return cmd
}
