package promo

import (
	"fmt"
	"slices"
	"time"

	"stayhub/internal/domain/pricing"

	"github.com/google/uuid"
)

const MessageNotFound = "promo code not found"

type PromoCode struct {
	id           uuid.UUID
	code         Code
	discount     Discount
	minNights    *int
	minAmount    *int64
	validFrom    *time.Time
	validUntil   *time.Time
	usageLimit   *int
	usedCount    int
	perUserLimit *int
	unitIDs      []uuid.UUID
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

type ReconstructParams struct {
	ID           uuid.UUID
	Code         Code
	Discount     Discount
	MinNights    *int
	MinAmount    *int64
	ValidFrom    *time.Time
	ValidUntil   *time.Time
	UsageLimit   *int
	UsedCount    int
	PerUserLimit *int
	UnitIDs      []uuid.UUID
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructPromoCode(p ReconstructParams) *PromoCode {
	return &PromoCode{
		id:           p.ID,
		code:         p.Code,
		discount:     p.Discount,
		minNights:    p.MinNights,
		minAmount:    p.MinAmount,
		validFrom:    p.ValidFrom,
		validUntil:   p.ValidUntil,
		usageLimit:   p.UsageLimit,
		usedCount:    p.UsedCount,
		perUserLimit: p.PerUserLimit,
		unitIDs:      p.UnitIDs,
		isActive:     p.IsActive,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}
}

type ValidationInput struct {
	Now    time.Time
	UnitID uuid.UUID
	Amount int64
	Nights int
	// UserUsage is the caller's count of live bookings with this code; nil when the caller is anonymous.
	UserUsage *int
}

type Validation struct {
	Valid    bool
	Message  string
	Discount int64
}

func invalid(msg string) Validation {
	return Validation{Valid: false, Message: msg}
}

// Validate runs the checks in a fixed order and reports the first failure.
func (p *PromoCode) Validate(in ValidationInput) Validation {
	if !p.isActive {
		return invalid("promo code is inactive")
	}
	if p.validFrom != nil && in.Now.Before(*p.validFrom) {
		return invalid("promo code is not yet valid")
	}
	if p.validUntil != nil && in.Now.After(*p.validUntil) {
		return invalid("promo code has expired")
	}
	if p.usageLimit != nil && p.usedCount >= *p.usageLimit {
		return invalid("promo code usage limit reached")
	}
	if p.minNights != nil && in.Nights < *p.minNights {
		return invalid(fmt.Sprintf("minimum stay of %d nights required", *p.minNights))
	}
	if p.minAmount != nil && in.Amount < *p.minAmount {
		return invalid(fmt.Sprintf("minimum booking amount of %d required", *p.minAmount))
	}
	if len(p.unitIDs) > 0 && !slices.Contains(p.unitIDs, in.UnitID) {
		return invalid("promo code is not valid for this unit")
	}
	if p.perUserLimit != nil && in.UserUsage != nil && *in.UserUsage >= *p.perUserLimit {
		return invalid("promo code already used the maximum number of times")
	}
	return Validation{Valid: true, Message: "promo code applied", Discount: p.discount.AmountFor(in.Amount)}
}

// ApplyTo validates the code against the quote's accommodation total and, when valid, records the
// capped promo discount on the quote.
func (p *PromoCode) ApplyTo(c *pricing.Calculation, in ValidationInput) Validation {
	in.Amount = c.AccommodationTotal
	in.Nights = c.Nights
	v := p.Validate(in)
	if !v.Valid {
		return v
	}
	c.ApplyPromo(p.id, p.code.String(), v.Discount)
	v.Discount = c.PromoDiscount
	return v
}

func (p *PromoCode) ID() uuid.UUID          { return p.id }
func (p *PromoCode) Code() Code             { return p.code }
func (p *PromoCode) Discount() Discount     { return p.discount }
func (p *PromoCode) MinNights() *int        { return p.minNights }
func (p *PromoCode) MinAmount() *int64      { return p.minAmount }
func (p *PromoCode) ValidFrom() *time.Time  { return p.validFrom }
func (p *PromoCode) ValidUntil() *time.Time { return p.validUntil }
func (p *PromoCode) UsageLimit() *int       { return p.usageLimit }
func (p *PromoCode) UsedCount() int         { return p.usedCount }
func (p *PromoCode) PerUserLimit() *int     { return p.perUserLimit }
func (p *PromoCode) UnitIDs() []uuid.UUID   { return p.unitIDs }
func (p *PromoCode) IsActive() bool         { return p.isActive }
func (p *PromoCode) CreatedAt() time.Time   { return p.createdAt }
func (p *PromoCode) UpdatedAt() time.Time   { return p.updatedAt }
