package readstore

import (
	"context"
	"strings"

	"stayhub/internal/domain/promo"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
)

type PromoReadQueries interface {
	GetPromoCodeByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.PromoCodes, error)
}

type PromoReadStore struct {
	queries PromoReadQueries
	db      sqlc.DBTX
}

func NewPromoReadStore(queries PromoReadQueries, db sqlc.DBTX) *PromoReadStore {
	return &PromoReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PromoReadStore) FindByCode(ctx context.Context, code string) (*promo.PromoCode, error) {
	row, err := r.queries.GetPromoCodeByCode(ctx, r.db, strings.TrimSpace(code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get promo code", err)
	}
	p, err := converter.PromoFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid promo code row", err)
	}
	return p, nil
}
