package queries

import (
	"context"
	"encoding/json"

	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase/shared"
)

const maxOutboxPeek = 500

// OutboxQueries lets operators inspect notifications the dispatcher has not picked up yet.
type OutboxQueries interface {
	QueuedJobs(ctx context.Context, limit int) ([]NotificationJobView, error)
}

type outboxQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOutboxQueries(uow shared.UnitOfWork, clk clock.Clock) OutboxQueries {
	return &outboxQueriesImpl{uow: uow, clock: clk}
}

func (q *outboxQueriesImpl) QueuedJobs(ctx context.Context, limit int) ([]NotificationJobView, error) {
	if limit <= 0 || limit > maxOutboxPeek {
		limit = maxOutboxPeek
	}
	jobs, err := q.uow.CommandReads().QueuedNotifications(ctx, q.clock.Now(), limit)
	if err != nil {
		return nil, err
	}
	views := make([]NotificationJobView, len(jobs))
	for i, j := range jobs {
		views[i] = NotificationJobView{
			ID:        j.ID,
			Kind:      j.Kind,
			Topic:     j.Topic,
			Payload:   json.RawMessage(j.Payload),
			Attempts:  j.Attempts,
			LastError: j.LastError,
			RunAt:     j.RunAt,
			CreatedAt: j.CreatedAt,
		}
	}
	return views, nil
}
