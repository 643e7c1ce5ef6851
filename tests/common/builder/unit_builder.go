//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/unit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitBuilder struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Status    unit.Status
	MinNights int
	MaxNights int
	MaxGuests int
}

func NewUnitBuilder() *UnitBuilder {
	return &UnitBuilder{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Title:     "Seaside Loft",
		Status:    unit.StatusPublished,
		MinNights: 1,
		MaxNights: 30,
		MaxGuests: 4,
	}
}

func (b *UnitBuilder) With(mutate func(*UnitBuilder)) *UnitBuilder {
	mutate(b)
	return b
}

func (b *UnitBuilder) WithOwner(ownerID uuid.UUID) *UnitBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *UnitBuilder) BuildDomain() *unit.Unit {
	now := time.Now()
	return unit.ReconstructUnit(b.ID, b.OwnerID, b.Title, b.Status, b.MinNights, b.MaxNights, b.MaxGuests, now, now)
}

// PlanBuilder describes a pricing rule with optional seasonal and weekday adjustments.
type PlanBuilder struct {
	UnitID        uuid.UUID
	Currency      string
	BasePrice     int64
	CleaningFee   int64
	ExtraGuestFee int64
	BaseGuests    int
	Weekly        *decimal.Decimal
	Monthly       *decimal.Decimal
	ServiceFee    decimal.Decimal
	Seasons       []pricing.SeasonalAdjustment
	Weekdays      []pricing.WeekdayAdjustment
}

// NewPlanBuilder prices nights at 100 with no fees so totals are easy to read.
func NewPlanBuilder(unitID uuid.UUID) *PlanBuilder {
	return &PlanBuilder{
		UnitID:     unitID,
		Currency:   "USD",
		BasePrice:  100,
		BaseGuests: 2,
		ServiceFee: decimal.Zero,
	}
}

func (b *PlanBuilder) With(mutate func(*PlanBuilder)) *PlanBuilder {
	mutate(b)
	return b
}

func (b *PlanBuilder) BuildDomain() *pricing.Plan {
	rule, err := pricing.NewRule(pricing.RuleParams{
		UnitID:          b.UnitID,
		Currency:        b.Currency,
		BasePrice:       b.BasePrice,
		CleaningFee:     b.CleaningFee,
		ExtraGuestFee:   b.ExtraGuestFee,
		BaseGuests:      b.BaseGuests,
		WeeklyDiscount:  b.Weekly,
		MonthlyDiscount: b.Monthly,
		ServiceFee:      b.ServiceFee,
	})
	if err != nil {
		panic(err)
	}
	return pricing.NewPlan(rule, b.Seasons, b.Weekdays)
}
