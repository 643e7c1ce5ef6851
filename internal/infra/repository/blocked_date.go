package repository

import (
	"context"
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BlockedDateWriteQueries interface {
	UpsertManualBlockedDate(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertManualBlockedDateParams) (int64, error)
	DeleteManualBlockedDate(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteManualBlockedDateParams) (int64, error)
	InsertImportedBlockedDate(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertImportedBlockedDateParams) (int64, error)
	DeleteBlockedDatesBySyncConfig(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteBlockedDatesBySyncConfigParams) (int64, error)
}

type BlockedDateRepository struct {
	queries BlockedDateWriteQueries
	db      sqlc.DBTX
}

func NewBlockedDateRepository(queries BlockedDateWriteQueries, db sqlc.DBTX) *BlockedDateRepository {
	return &BlockedDateRepository{
		queries: queries,
		db:      db,
	}
}

// UpsertManual reports false when the day is covered by an active booking or
// already held by a non-manual source.
func (r *BlockedDateRepository) UpsertManual(ctx context.Context, tx sqlc.DBTX, unitID uuid.UUID, day time.Time, reason *string) (bool, error) {
	n, err := r.queries.UpsertManualBlockedDate(ctx, tx, sqlc.UpsertManualBlockedDateParams{
		ID:          uuid.New(),
		UnitID:      unitID,
		BlockedDate: pgconv.DateToPgtype(day),
		Reason:      pgconv.StringPtrToPgtype(reason),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to block date", err)
	}
	return n > 0, nil
}

func (r *BlockedDateRepository) DeleteManual(ctx context.Context, tx sqlc.DBTX, unitID uuid.UUID, day time.Time) (bool, error) {
	n, err := r.queries.DeleteManualBlockedDate(ctx, tx, sqlc.DeleteManualBlockedDateParams{
		UnitID:      unitID,
		BlockedDate: pgconv.DateToPgtype(day),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to unblock date", err)
	}
	return n > 0, nil
}

func (r *BlockedDateRepository) InsertImported(ctx context.Context, tx sqlc.DBTX, day calendar.BlockedDay) (bool, error) {
	id := day.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	n, err := r.queries.InsertImportedBlockedDate(ctx, tx, sqlc.InsertImportedBlockedDateParams{
		ID:           id,
		UnitID:       day.UnitID,
		BlockedDate:  pgconv.DateToPgtype(day.Date),
		Source:       day.Source.String(),
		Reason:       pgconv.StringPtrToPgtype(day.Reason),
		ExternalRef:  pgconv.StringPtrToPgtype(day.ExternalRef),
		SyncConfigID: pgconv.UUIDPtrToPgtype(day.SyncConfigID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert imported blocked date", err)
	}
	return n > 0, nil
}

// DeleteBySyncConfig drops the days one feed imported. Days held by other feeds
// on the same unit stay, even when they share a provider tag.
func (r *BlockedDateRepository) DeleteBySyncConfig(ctx context.Context, tx sqlc.DBTX, unitID, syncConfigID uuid.UUID) (int64, error) {
	n, err := r.queries.DeleteBlockedDatesBySyncConfig(ctx, tx, sqlc.DeleteBlockedDatesBySyncConfigParams{
		UnitID:       unitID,
		SyncConfigID: pgconv.UUIDToPgtype(syncConfigID),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete imported blocked dates", err)
	}
	return n, nil
}
