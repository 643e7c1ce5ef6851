package readstore

import (
	"context"
	"time"

	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/unit"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UnitReadQueries interface {
	GetUnitByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Units, error)
	ListUnitIDsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]uuid.UUID, error)
	GetPricingRuleByUnit(ctx context.Context, db sqlc.DBTX, unitID uuid.UUID) (sqlc.PricingRules, error)
	ListSeasonalAdjustmentsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSeasonalAdjustmentsInRangeParams) ([]sqlc.SeasonalAdjustments, error)
	ListWeekdayAdjustments(ctx context.Context, db sqlc.DBTX, unitID uuid.UUID) ([]sqlc.WeekdayAdjustments, error)
}

// UnitReadStore serves units together with their pricing configuration.
type UnitReadStore struct {
	queries UnitReadQueries
	db      sqlc.DBTX
}

func NewUnitReadStore(queries UnitReadQueries, db sqlc.DBTX) *UnitReadStore {
	return &UnitReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UnitReadStore) FindByID(ctx context.Context, id uuid.UUID) (*unit.Unit, error) {
	row, err := r.queries.GetUnitByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get unit", err)
	}
	return converter.UnitFromRow(row), nil
}

func (r *UnitReadStore) IDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListUnitIDsByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner units", err)
	}
	return ids, nil
}

// PricingPlan loads the unit's rule with the seasons touching [from, to] and all weekday multipliers.
func (r *UnitReadStore) PricingPlan(ctx context.Context, unitID uuid.UUID, from, to time.Time) (*pricing.Plan, error) {
	rule, err := r.queries.GetPricingRuleByUnit(ctx, r.db, unitID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pricing rule", err)
	}

	seasons, err := r.queries.ListSeasonalAdjustmentsInRange(ctx, r.db, sqlc.ListSeasonalAdjustmentsInRangeParams{
		UnitID:    unitID,
		RangeFrom: pgconv.DateToPgtype(from),
		RangeTo:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seasonal adjustments", err)
	}

	weekdays, err := r.queries.ListWeekdayAdjustments(ctx, r.db, unitID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list weekday adjustments", err)
	}

	plan, err := converter.PlanFromRows(rule, seasons, weekdays)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid pricing configuration", err)
	}
	return plan, nil
}
