package pricing

import (
	"errors"
	"time"

	"stayhub/internal/domain/calendar"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount     = errors.New("pricing: amounts cannot be negative")
	ErrInvalidMultiplier  = errors.New("pricing: multiplier must be positive")
	ErrInvalidPercent     = errors.New("pricing: percent must be between 0 and 100")
	ErrInvalidSeasonRange = errors.New("pricing: season end precedes start")
)

var hundred = decimal.NewFromInt(100)

// Rule is the owner-defined pricing of one unit. Money is whole currency units.
type Rule struct {
	unitID          uuid.UUID
	currency        string
	basePrice       int64
	cleaningFee     int64
	extraGuestFee   int64
	baseGuests      int
	weeklyDiscount  *decimal.Decimal
	monthlyDiscount *decimal.Decimal
	serviceFee      decimal.Decimal
}

type RuleParams struct {
	UnitID          uuid.UUID
	Currency        string
	BasePrice       int64
	CleaningFee     int64
	ExtraGuestFee   int64
	BaseGuests      int
	WeeklyDiscount  *decimal.Decimal
	MonthlyDiscount *decimal.Decimal
	ServiceFee      decimal.Decimal
}

func NewRule(p RuleParams) (*Rule, error) {
	if p.BasePrice < 0 || p.CleaningFee < 0 || p.ExtraGuestFee < 0 || p.BaseGuests < 0 {
		return nil, ErrNegativeAmount
	}
	for _, pct := range []*decimal.Decimal{p.WeeklyDiscount, p.MonthlyDiscount, &p.ServiceFee} {
		if pct != nil && (pct.IsNegative() || pct.GreaterThan(hundred)) {
			return nil, ErrInvalidPercent
		}
	}
	return &Rule{
		unitID:          p.UnitID,
		currency:        p.Currency,
		basePrice:       p.BasePrice,
		cleaningFee:     p.CleaningFee,
		extraGuestFee:   p.ExtraGuestFee,
		baseGuests:      p.BaseGuests,
		weeklyDiscount:  p.WeeklyDiscount,
		monthlyDiscount: p.MonthlyDiscount,
		serviceFee:      p.ServiceFee,
	}, nil
}

func (r *Rule) UnitID() uuid.UUID                 { return r.unitID }
func (r *Rule) Currency() string                  { return r.currency }
func (r *Rule) BasePrice() int64                  { return r.basePrice }
func (r *Rule) CleaningFee() int64                { return r.cleaningFee }
func (r *Rule) ExtraGuestFee() int64              { return r.extraGuestFee }
func (r *Rule) BaseGuests() int                   { return r.baseGuests }
func (r *Rule) WeeklyDiscount() *decimal.Decimal  { return r.weeklyDiscount }
func (r *Rule) MonthlyDiscount() *decimal.Decimal { return r.monthlyDiscount }
func (r *Rule) ServiceFee() decimal.Decimal       { return r.serviceFee }

// SeasonalAdjustment scales the nightly price for every date in [Start, End]; End is inclusive.
type SeasonalAdjustment struct {
	ID         uuid.UUID
	Name       string
	Start      time.Time
	End        time.Time
	Multiplier decimal.Decimal
	Active     bool
}

func NewSeasonalAdjustment(id uuid.UUID, name string, start, end time.Time, multiplier decimal.Decimal, active bool) (SeasonalAdjustment, error) {
	if !multiplier.IsPositive() {
		return SeasonalAdjustment{}, ErrInvalidMultiplier
	}
	start, end = calendar.Day(start), calendar.Day(end)
	if end.Before(start) {
		return SeasonalAdjustment{}, ErrInvalidSeasonRange
	}
	return SeasonalAdjustment{ID: id, Name: name, Start: start, End: end, Multiplier: multiplier, Active: active}, nil
}

func (s SeasonalAdjustment) Covers(d time.Time) bool {
	d = calendar.Day(d)
	return s.Active && !d.Before(s.Start) && !d.After(s.End)
}

type WeekdayAdjustment struct {
	Weekday    time.Weekday
	Multiplier decimal.Decimal
}

func percentOf(amount int64, pct decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(pct).Div(hundred).Round(0).IntPart()
}
