package readstore

import (
	"context"
	"time"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
	"stayhub/internal/usecase/shared"
)

type NotificationReadQueries interface {
	ListQueuedNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListQueuedNotificationJobsParams) ([]sqlc.NotificationJobs, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *NotificationReadStore) Queued(ctx context.Context, dueBy time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := s.queries.ListQueuedNotificationJobs(ctx, s.db, sqlc.ListQueuedNotificationJobsParams{
		RunAt: pgconv.TimeToPgtype(dueBy),
		Limit: int32(limit), // #nosec G115 -- capped by the caller
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list queued notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Payload:   row.Payload,
			Status:    row.Status,
			Attempts:  int(row.Attempts),
			LastError: pgconv.StringPtrFromPgtype(row.LastError),
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return jobs, nil
}
