package repository

import (
	"context"

	"stayhub/internal/domain/unit"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UnitWriteQueries interface {
	LockUnitForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Units, error)
}

type UnitRepository struct {
	queries UnitWriteQueries
	db      sqlc.DBTX
}

func NewUnitRepository(queries UnitWriteQueries, db sqlc.DBTX) *UnitRepository {
	return &UnitRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UnitRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, unitID uuid.UUID) (*unit.Unit, error) {
	row, err := r.queries.LockUnitForUpdate(ctx, tx, unitID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock unit", err)
	}
	return converter.UnitFromRow(row), nil
}
