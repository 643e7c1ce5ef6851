package repository

import (
	"context"

	"stayhub/internal/domain/calsync"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CalendarSyncWriteQueries interface {
	CreateCalendarSyncConfig(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCalendarSyncConfigParams) error
	UpdateCalendarSyncState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCalendarSyncStateParams) error
}

type CalendarSyncRepository struct {
	queries CalendarSyncWriteQueries
	db      sqlc.DBTX
}

func NewCalendarSyncRepository(queries CalendarSyncWriteQueries, db sqlc.DBTX) *CalendarSyncRepository {
	return &CalendarSyncRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CalendarSyncRepository) Create(ctx context.Context, tx sqlc.DBTX, cfg *calsync.Config) error {
	if err := r.queries.CreateCalendarSyncConfig(ctx, tx, converter.SyncConfigToCreateParams(cfg)); err != nil {
		return infra.WrapRepoErr("failed to create calendar sync config", err)
	}
	return nil
}

func (r *CalendarSyncRepository) SaveState(ctx context.Context, tx sqlc.DBTX, cfg *calsync.Config) error {
	if err := r.queries.UpdateCalendarSyncState(ctx, tx, converter.SyncConfigToStateParams(cfg)); err != nil {
		return infra.WrapRepoErr("failed to save calendar sync state", err)
	}
	return nil
}

type ExternalEventWriteQueries interface {
	DeleteExternalEventsBySync(ctx context.Context, db sqlc.DBTX, syncConfigID uuid.UUID) (int64, error)
	CreateExternalEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateExternalEventParams) error
}

type ExternalEventRepository struct {
	queries ExternalEventWriteQueries
	db      sqlc.DBTX
}

func NewExternalEventRepository(queries ExternalEventWriteQueries, db sqlc.DBTX) *ExternalEventRepository {
	return &ExternalEventRepository{
		queries: queries,
		db:      db,
	}
}

// ReplaceAll swaps the stored snapshot of a feed for the freshly parsed one.
func (r *ExternalEventRepository) ReplaceAll(ctx context.Context, tx sqlc.DBTX, syncID uuid.UUID, events []calsync.ExternalEvent) error {
	if _, err := r.queries.DeleteExternalEventsBySync(ctx, tx, syncID); err != nil {
		return infra.WrapRepoErr("failed to clear external events", err)
	}
	for _, e := range events {
		if err := r.queries.CreateExternalEvent(ctx, tx, converter.ExternalEventToParams(e)); err != nil {
			return infra.WrapRepoErr("failed to store external event", err)
		}
	}
	return nil
}
