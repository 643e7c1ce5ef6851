package queries

import (
	"context"
	"strings"
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/promo"
	"stayhub/internal/domain/unit"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type CalculatePriceInput struct {
	UnitID    uuid.UUID
	CheckIn   time.Time
	CheckOut  time.Time
	Guests    int
	PromoCode *string
	// GuestID enables the per-user promo limit; nil for anonymous quotes.
	GuestID *uuid.UUID
}

type ValidatePromoInput struct {
	Code   string
	UnitID uuid.UUID
	Amount int64
	Nights int
	UserID *uuid.UUID
}

type PricingQueries interface {
	CalculatePrice(ctx context.Context, in CalculatePriceInput) (*PriceCalculationView, error)
	ValidatePromoCode(ctx context.Context, in ValidatePromoInput) (*PromoValidationView, error)
}

type pricingQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPricingQueries(uow shared.UnitOfWork, clk clock.Clock) PricingQueries {
	return &pricingQueriesImpl{uow: uow, clock: clk}
}

// QuoteRequest is the input of QuoteStay.
type QuoteRequest struct {
	Unit      *unit.Unit
	Stay      calendar.DateRange
	Guests    int
	PromoCode *string
	GuestID   *uuid.UUID
	Now       time.Time
}

// QuoteStay prices a stay and applies the promo code when one is given. An unknown or rejected
// code fails with a PromoInvalidError. The returned promo is nil when no code was applied.
func QuoteStay(ctx context.Context, reads shared.CommandReads, req QuoteRequest) (*pricing.Calculation, *promo.PromoCode, error) {
	stay := req.Stay
	plan, err := reads.PricingPlan(ctx, req.Unit.ID(), stay.CheckIn(), calendar.AddDays(stay.CheckOut(), -1))
	if err != nil {
		return nil, nil, notFound(err, errs.ErrPricingRuleNotFound)
	}
	calc := plan.Quote(stay, req.Guests)

	if req.PromoCode == nil || strings.TrimSpace(*req.PromoCode) == "" {
		return calc, nil, nil
	}

	p, v, err := validatePromo(ctx, reads, *req.PromoCode, req.GuestID, func(p *promo.PromoCode, in promo.ValidationInput) promo.Validation {
		in.Now = req.Now
		in.UnitID = req.Unit.ID()
		return p.ApplyTo(calc, in)
	})
	if err != nil {
		return nil, nil, err
	}
	if !v.Valid {
		return nil, nil, &errs.PromoInvalidError{Message: v.Message}
	}
	return calc, p, nil
}

// validatePromo resolves the code and the caller's usage before handing both to check.
// A missing code yields an invalid result rather than an error.
func validatePromo(
	ctx context.Context,
	reads shared.CommandReads,
	code string,
	userID *uuid.UUID,
	check func(*promo.PromoCode, promo.ValidationInput) promo.Validation,
) (*promo.PromoCode, promo.Validation, error) {
	p, err := reads.PromoByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, promo.Validation{Message: promo.MessageNotFound}, nil
		}
		return nil, promo.Validation{}, err
	}

	var in promo.ValidationInput
	if userID != nil && p.PerUserLimit() != nil {
		used, err := reads.PromoUsageByGuest(ctx, p.ID(), *userID)
		if err != nil {
			return nil, promo.Validation{}, err
		}
		in.UserUsage = &used
	}
	return p, check(p, in), nil
}

func (q *pricingQueriesImpl) CalculatePrice(ctx context.Context, in CalculatePriceInput) (*PriceCalculationView, error) {
	stay, err := NewStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	if in.Guests < 1 {
		return nil, errs.Wrap(errs.ErrDomainValidation, "at least one guest is required")
	}

	var calc *pricing.Calculation
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		u, err := LoadUnit(ctx, reads, in.UnitID)
		if err != nil {
			return err
		}
		calc, _, err = QuoteStay(ctx, reads, QuoteRequest{
			Unit:      u,
			Stay:      stay,
			Guests:    in.Guests,
			PromoCode: in.PromoCode,
			GuestID:   in.GuestID,
			Now:       q.clock.Now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	view := ToPriceView(calc, stay, in.Guests)
	view.UnitID = in.UnitID
	return view, nil
}

func (q *pricingQueriesImpl) ValidatePromoCode(ctx context.Context, in ValidatePromoInput) (*PromoValidationView, error) {
	var v promo.Validation
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		var err error
		_, v, err = validatePromo(ctx, reads, in.Code, in.UserID, func(p *promo.PromoCode, vin promo.ValidationInput) promo.Validation {
			vin.Now = q.clock.Now()
			vin.UnitID = in.UnitID
			vin.Amount = in.Amount
			vin.Nights = in.Nights
			return p.Validate(vin)
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	view := &PromoValidationView{Valid: v.Valid, Message: v.Message}
	if v.Valid {
		discount := v.Discount
		view.Discount = &discount
	}
	return view, nil
}
