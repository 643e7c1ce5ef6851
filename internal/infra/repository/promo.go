package repository

import (
	"context"

	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PromoWriteQueries interface {
	IncrementPromoUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	DecrementPromoUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type PromoRepository struct {
	queries PromoWriteQueries
	db      sqlc.DBTX
}

func NewPromoRepository(queries PromoWriteQueries, db sqlc.DBTX) *PromoRepository {
	return &PromoRepository{
		queries: queries,
		db:      db,
	}
}

// IncrementUsage bumps used_count in a single guarded UPDATE; it reports false
// when the code is inactive or its usage limit is already exhausted.
func (r *PromoRepository) IncrementUsage(ctx context.Context, tx sqlc.DBTX, promoID uuid.UUID) (bool, error) {
	n, err := r.queries.IncrementPromoUsage(ctx, tx, promoID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment promo usage", err)
	}
	return n == 1, nil
}

func (r *PromoRepository) DecrementUsage(ctx context.Context, tx sqlc.DBTX, promoID uuid.UUID) error {
	if _, err := r.queries.DecrementPromoUsage(ctx, tx, promoID); err != nil {
		return infra.WrapRepoErr("failed to decrement promo usage", err)
	}
	return nil
}
