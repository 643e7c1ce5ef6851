package main

import (
	"context"
	"fmt"
	"strings"

	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func bookingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking",
		Short: "Manage bookings as the system actor",
	}
	cmd.AddCommand(bookingStatusCmd())
	return cmd
}

func bookingStatusCmd() *cobra.Command {
	var comment, reason string

	cmd := &cobra.Command{
		Use:   "status <booking-id> <status>",
		Short: "Move a booking to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid booking id: %w", err)
			}
			in := commands.UpdateBookingStatusInput{
				BookingID: id,
				Status:    strings.ToLower(args[1]),
			}
			if comment != "" {
				in.Comment = &comment
			}
			if reason != "" {
				in.CancelReason = &reason
			}

			var cmds commands.BookingCommands
			return withApp(cmd, func(ctx context.Context) error {
				view, err := cmds.UpdateBookingStatus(ctx, nil, in)
				if err != nil {
					return err
				}
				if outputJSON {
					return printJSON(view)
				}
				fmt.Printf("%s %s -> %s (refund %d)\n", view.BookingNumber, view.ID, view.Status, view.RefundAmount)
				return nil
			}, &cmds)
		},
	}
	cmd.Flags().StringVar(&comment, "comment", "", "History comment")
	cmd.Flags().StringVar(&reason, "reason", "", "Cancellation reason")
	return cmd
}
