package pricing

import (
	"time"

	"stayhub/internal/domain/calendar"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	WeeklyStayNights  = 7
	MonthlyStayNights = 30
)

type DiscountKind string

const (
	DiscountNone    DiscountKind = "none"
	DiscountWeekly  DiscountKind = "weekly"
	DiscountMonthly DiscountKind = "monthly"
)

// Plan bundles everything needed to price a stay at one unit.
type Plan struct {
	rule     *Rule
	seasons  []SeasonalAdjustment
	weekdays map[time.Weekday]decimal.Decimal
}

func NewPlan(rule *Rule, seasons []SeasonalAdjustment, weekdays []WeekdayAdjustment) *Plan {
	byDay := make(map[time.Weekday]decimal.Decimal, len(weekdays))
	for _, w := range weekdays {
		byDay[w.Weekday] = w.Multiplier
	}
	return &Plan{rule: rule, seasons: seasons, weekdays: byDay}
}

func (p *Plan) Rule() *Rule { return p.rule }

type NightPrice struct {
	Date               time.Time
	BasePrice          int64
	SeasonalMultiplier decimal.Decimal
	WeekdayMultiplier  decimal.Decimal
	FinalPrice         int64
}

// SeasonalMultiplier takes the largest multiplier among active seasons covering d, so
// overlapping seasons never compound.
func (p *Plan) SeasonalMultiplier(d time.Time) decimal.Decimal {
	m := decimal.NewFromInt(1)
	found := false
	for _, s := range p.seasons {
		if !s.Covers(d) {
			continue
		}
		if !found || s.Multiplier.GreaterThan(m) {
			m = s.Multiplier
			found = true
		}
	}
	return m
}

func (p *Plan) WeekdayMultiplier(d time.Time) decimal.Decimal {
	if m, ok := p.weekdays[calendar.Day(d).Weekday()]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

func (p *Plan) NightlyPrice(d time.Time) NightPrice {
	seasonal := p.SeasonalMultiplier(d)
	weekday := p.WeekdayMultiplier(d)
	base := decimal.NewFromInt(p.rule.basePrice)
	return NightPrice{
		Date:               calendar.Day(d),
		BasePrice:          p.rule.basePrice,
		SeasonalMultiplier: seasonal,
		WeekdayMultiplier:  weekday,
		FinalPrice:         base.Mul(seasonal).Mul(weekday).Round(0).IntPart(),
	}
}

// Calculation is the authoritative price of a stay.
// Total = AccommodationTotal + CleaningFee + ExtraGuestFee + ServiceFee - Discount - PromoDiscount.
type Calculation struct {
	Currency           string
	Nights             int
	BasePrice          int64
	Breakdown          []NightPrice
	AccommodationTotal int64
	SeasonalAdjustment int64
	WeekdayAdjustment  int64
	CleaningFee        int64
	ExtraGuestFee      int64
	ServiceFee         int64
	DiscountKind       DiscountKind
	DiscountPercent    decimal.Decimal
	Discount           int64
	PromoCodeID        *uuid.UUID
	PromoCode          string
	PromoDiscount      int64
	Total              int64
}

// Quote prices a stay without any promo code.
func (p *Plan) Quote(stay calendar.DateRange, guests int) *Calculation {
	r := p.rule
	c := &Calculation{
		Currency:     r.currency,
		Nights:       stay.Nights(),
		BasePrice:    r.basePrice,
		DiscountKind: DiscountNone,
		CleaningFee:  r.cleaningFee,
	}

	for _, d := range stay.Days() {
		night := p.NightlyPrice(d)
		seasonalOnly := decimal.NewFromInt(r.basePrice).Mul(night.SeasonalMultiplier).Round(0).IntPart()
		c.SeasonalAdjustment += seasonalOnly - r.basePrice
		c.WeekdayAdjustment += night.FinalPrice - seasonalOnly
		c.AccommodationTotal += night.FinalPrice
		c.Breakdown = append(c.Breakdown, night)
	}

	if extra := guests - r.baseGuests; extra > 0 {
		c.ExtraGuestFee = int64(extra) * r.extraGuestFee * int64(c.Nights)
	}

	switch {
	case c.Nights >= MonthlyStayNights && r.monthlyDiscount != nil:
		c.DiscountKind = DiscountMonthly
		c.DiscountPercent = *r.monthlyDiscount
	case c.Nights >= WeeklyStayNights && r.weeklyDiscount != nil:
		c.DiscountKind = DiscountWeekly
		c.DiscountPercent = *r.weeklyDiscount
	}
	if c.DiscountKind != DiscountNone {
		c.Discount = percentOf(c.AccommodationTotal, c.DiscountPercent)
	}

	c.ServiceFee = percentOf(c.AccommodationTotal-c.Discount, r.serviceFee)
	c.recalculateTotal()
	return c
}

// ApplyPromo caps the promo so the two discounts together never exceed the accommodation total.
func (c *Calculation) ApplyPromo(promoID uuid.UUID, code string, discount int64) {
	if discount < 0 {
		discount = 0
	}
	if room := c.AccommodationTotal - c.Discount; discount > room {
		discount = room
	}
	id := promoID
	c.PromoCodeID = &id
	c.PromoCode = code
	c.PromoDiscount = discount
	c.recalculateTotal()
}

func (c *Calculation) recalculateTotal() {
	c.Total = c.AccommodationTotal + c.CleaningFee + c.ExtraGuestFee + c.ServiceFee - c.Discount - c.PromoDiscount
}
