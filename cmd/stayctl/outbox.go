package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/spf13/cobra"
)

func outboxCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "outbox",
		Short: "List queued notification jobs that are due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var q queries.OutboxQueries
			return withApp(cmd, func(ctx context.Context) error {
				jobs, err := q.QueuedJobs(ctx, limit)
				if err != nil {
					return err
				}
				if outputJSON {
					return printJSON(jobs)
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tTOPIC\tRUN AT\tATTEMPTS")
				for _, j := range jobs {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", j.ID, j.Topic, j.RunAt.Format(time.RFC3339), j.Attempts)
				}
				return w.Flush()
			}, &q)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum jobs to list")
	return cmd
}
