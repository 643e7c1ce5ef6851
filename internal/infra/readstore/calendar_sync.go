package readstore

import (
	"context"

	"stayhub/internal/domain/calsync"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CalendarSyncReadQueries interface {
	GetCalendarSyncConfigByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.CalendarSyncConfigs, error)
	GetCalendarSyncConfigByToken(ctx context.Context, db sqlc.DBTX, exportToken pgtype.Text) (sqlc.CalendarSyncConfigs, error)
	ListSyncableImportConfigs(ctx context.Context, db sqlc.DBTX) ([]sqlc.CalendarSyncConfigs, error)
}

type CalendarSyncReadStore struct {
	queries CalendarSyncReadQueries
	db      sqlc.DBTX
}

func NewCalendarSyncReadStore(queries CalendarSyncReadQueries, db sqlc.DBTX) *CalendarSyncReadStore {
	return &CalendarSyncReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CalendarSyncReadStore) FindByID(ctx context.Context, id uuid.UUID) (*calsync.Config, error) {
	row, err := r.queries.GetCalendarSyncConfigByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("calendar sync config not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get calendar sync config", err)
	}
	return converter.SyncConfigFromRow(row), nil
}

func (r *CalendarSyncReadStore) FindByToken(ctx context.Context, token string) (*calsync.Config, error) {
	row, err := r.queries.GetCalendarSyncConfigByToken(ctx, r.db, pgconv.StringToPgtype(token))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("calendar feed not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get calendar feed", err)
	}
	return converter.SyncConfigFromRow(row), nil
}

func (r *CalendarSyncReadStore) SyncableImports(ctx context.Context) ([]*calsync.Config, error) {
	rows, err := r.queries.ListSyncableImportConfigs(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list import configs", err)
	}
	out := make([]*calsync.Config, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.SyncConfigFromRow(row))
	}
	return out, nil
}
