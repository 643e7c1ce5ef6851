package readstore

import (
	"context"
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BlockedDateReadQueries interface {
	ListBlockedDatesInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockedDatesInRangeParams) ([]sqlc.BlockedDates, error)
	ListFutureBlockedDates(ctx context.Context, db sqlc.DBTX, arg sqlc.ListFutureBlockedDatesParams) ([]sqlc.BlockedDates, error)
}

type BlockedDateReadStore struct {
	queries BlockedDateReadQueries
	db      sqlc.DBTX
}

func NewBlockedDateReadStore(queries BlockedDateReadQueries, db sqlc.DBTX) *BlockedDateReadStore {
	return &BlockedDateReadStore{
		queries: queries,
		db:      db,
	}
}

// InRange returns blocked days of every source within [from, to).
func (r *BlockedDateReadStore) InRange(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]calendar.BlockedDay, error) {
	rows, err := r.queries.ListBlockedDatesInRange(ctx, r.db, sqlc.ListBlockedDatesInRangeParams{
		UnitID:    unitID,
		RangeFrom: pgconv.DateToPgtype(from),
		RangeTo:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked dates", err)
	}
	return converter.BlockedDaysFromRows(rows), nil
}

func (r *BlockedDateReadStore) Future(ctx context.Context, unitIDs []uuid.UUID, from time.Time) ([]calendar.BlockedDay, error) {
	if len(unitIDs) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ListFutureBlockedDates(ctx, r.db, sqlc.ListFutureBlockedDatesParams{
		UnitIds:  unitIDs,
		FromDate: pgconv.DateToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list future blocked dates", err)
	}
	return converter.BlockedDaysFromRows(rows), nil
}
