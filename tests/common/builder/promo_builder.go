//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/promo"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PromoBuilder struct {
	ID           uuid.UUID
	Code         string
	Kind         promo.DiscountType
	Value        decimal.Decimal
	MaxDiscount  *int64
	MinNights    *int
	MinAmount    *int64
	ValidFrom    *time.Time
	ValidUntil   *time.Time
	UsageLimit   *int
	UsedCount    int
	PerUserLimit *int
	UnitIDs      []uuid.UUID
	IsActive     bool
}

func NewPromoBuilder() *PromoBuilder {
	return &PromoBuilder{
		ID:       uuid.New(),
		Code:     "SAVE10",
		Kind:     promo.DiscountPercentage,
		Value:    decimal.NewFromInt(10),
		IsActive: true,
	}
}

func (b *PromoBuilder) With(mutate func(*PromoBuilder)) *PromoBuilder {
	mutate(b)
	return b
}

func (b *PromoBuilder) WithFixed(amount int64) *PromoBuilder {
	b.Kind = promo.DiscountFixed
	b.Value = decimal.NewFromInt(amount)
	return b
}

func (b *PromoBuilder) WithUsage(used, limit int) *PromoBuilder {
	b.UsedCount = used
	b.UsageLimit = &limit
	return b
}

func (b *PromoBuilder) BuildDomain() *promo.PromoCode {
	discount, err := promo.NewDiscount(b.Kind, b.Value, b.MaxDiscount)
	if err != nil {
		panic(err)
	}
	code, err := promo.NewCode(b.Code)
	if err != nil {
		panic(err)
	}
	now := time.Now()
	return promo.ReconstructPromoCode(promo.ReconstructParams{
		ID:           b.ID,
		Code:         code,
		Discount:     discount,
		MinNights:    b.MinNights,
		MinAmount:    b.MinAmount,
		ValidFrom:    b.ValidFrom,
		ValidUntil:   b.ValidUntil,
		UsageLimit:   b.UsageLimit,
		UsedCount:    b.UsedCount,
		PerUserLimit: b.PerUserLimit,
		UnitIDs:      b.UnitIDs,
		IsActive:     b.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
