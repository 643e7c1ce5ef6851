//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := calendar.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func pct(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func stay(t *testing.T, in, out string) calendar.DateRange {
	t.Helper()
	r, err := calendar.NewDateRange(day(in), day(out))
	require.NoError(t, err)
	return r
}

func newRule(t *testing.T, mutate func(*pricing.RuleParams)) *pricing.Rule {
	t.Helper()
	p := pricing.RuleParams{
		UnitID:      uuid.New(),
		Currency:    "USD",
		BasePrice:   3000,
		CleaningFee: 500,
		BaseGuests:  2,
		ServiceFee:  decimal.NewFromInt(10),
	}
	if mutate != nil {
		mutate(&p)
	}
	r, err := pricing.NewRule(p)
	require.NoError(t, err)
	return r
}

func TestPlan_Quote(t *testing.T) {
	t.Run("flat three night stay", func(t *testing.T) {
		plan := pricing.NewPlan(newRule(t, nil), nil, nil)

		calc := plan.Quote(stay(t, "2025-06-01", "2025-06-04"), 2)

		assert.Equal(t, 3, calc.Nights)
		assert.Len(t, calc.Breakdown, 3)
		assert.Equal(t, int64(9000), calc.AccommodationTotal)
		assert.Equal(t, int64(500), calc.CleaningFee)
		assert.Equal(t, int64(900), calc.ServiceFee)
		assert.Equal(t, int64(0), calc.Discount)
		assert.Equal(t, pricing.DiscountNone, calc.DiscountKind)
		assert.Equal(t, int64(10400), calc.Total)
	})

	t.Run("overlapping seasons take the maximum and combine with weekday", func(t *testing.T) {
		rule := newRule(t, func(p *pricing.RuleParams) { p.BasePrice = 1000 })
		summer, err := pricing.NewSeasonalAdjustment(uuid.New(), "summer", day("2025-06-01"), day("2025-08-31"), decimal.RequireFromString("1.2"), true)
		require.NoError(t, err)
		peak, err := pricing.NewSeasonalAdjustment(uuid.New(), "peak", day("2025-06-05"), day("2025-06-07"), decimal.RequireFromString("1.5"), true)
		require.NoError(t, err)
		inactive, err := pricing.NewSeasonalAdjustment(uuid.New(), "promo", day("2025-06-01"), day("2025-06-30"), decimal.RequireFromString("3"), false)
		require.NoError(t, err)
		weekdays := []pricing.WeekdayAdjustment{{Weekday: time.Friday, Multiplier: decimal.RequireFromString("1.1")}}
		plan := pricing.NewPlan(rule, []pricing.SeasonalAdjustment{summer, peak, inactive}, weekdays)

		// 2025-06-06 is a Friday
		night := plan.NightlyPrice(day("2025-06-06"))
		assert.True(t, night.SeasonalMultiplier.Equal(decimal.RequireFromString("1.5")))
		assert.True(t, night.WeekdayMultiplier.Equal(decimal.RequireFromString("1.1")))
		assert.Equal(t, int64(1650), night.FinalPrice)

		// Thursday inside summer only
		assert.Equal(t, int64(1200), plan.NightlyPrice(day("2025-06-12")).FinalPrice)
		// outside any season, not Friday
		assert.Equal(t, int64(1000), plan.NightlyPrice(day("2025-09-02")).FinalPrice)

		calc := plan.Quote(stay(t, "2025-06-05", "2025-06-08"), 1)
		// Thu 1500, Fri 1650, Sat 1500
		assert.Equal(t, int64(4650), calc.AccommodationTotal)
		assert.Equal(t, int64(1500), calc.SeasonalAdjustment)
		assert.Equal(t, int64(150), calc.WeekdayAdjustment)
		assert.Equal(t, calc.AccommodationTotal, int64(calc.Nights)*calc.BasePrice+calc.SeasonalAdjustment+calc.WeekdayAdjustment)
	})

	t.Run("nightly price rounds half away from zero", func(t *testing.T) {
		rule := newRule(t, func(p *pricing.RuleParams) { p.BasePrice = 999 })
		season, err := pricing.NewSeasonalAdjustment(uuid.New(), "s", day("2025-01-01"), day("2025-12-31"), decimal.RequireFromString("1.15"), true)
		require.NoError(t, err)
		plan := pricing.NewPlan(rule, []pricing.SeasonalAdjustment{season}, nil)

		assert.Equal(t, int64(1149), plan.NightlyPrice(day("2025-03-03")).FinalPrice)
	})

	t.Run("long stay discounts", func(t *testing.T) {
		testCases := []struct {
			name         string
			weekly       *decimal.Decimal
			monthly      *decimal.Decimal
			checkOut     string
			wantKind     pricing.DiscountKind
			wantDiscount int64
		}{
			{name: "six nights get nothing", weekly: pct(10), monthly: pct(20), checkOut: "2025-01-07", wantKind: pricing.DiscountNone},
			{name: "seven nights get weekly", weekly: pct(10), monthly: pct(20), checkOut: "2025-01-08", wantKind: pricing.DiscountWeekly, wantDiscount: 700},
			{name: "thirty nights get monthly only", weekly: pct(10), monthly: pct(20), checkOut: "2025-01-31", wantKind: pricing.DiscountMonthly, wantDiscount: 6000},
			{name: "thirty nights fall back to weekly", weekly: pct(10), checkOut: "2025-01-31", wantKind: pricing.DiscountWeekly, wantDiscount: 3000},
			{name: "no rates configured", checkOut: "2025-01-31", wantKind: pricing.DiscountNone},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				rule := newRule(t, func(p *pricing.RuleParams) {
					p.BasePrice = 1000
					p.WeeklyDiscount = tc.weekly
					p.MonthlyDiscount = tc.monthly
				})
				calc := pricing.NewPlan(rule, nil, nil).Quote(stay(t, "2025-01-01", tc.checkOut), 2)

				assert.Equal(t, tc.wantKind, calc.DiscountKind)
				assert.Equal(t, tc.wantDiscount, calc.Discount)
				assert.Equal(t, (calc.AccommodationTotal-calc.Discount)/10, calc.ServiceFee, "service fee is charged on the discounted amount")
			})
		}
	})

	t.Run("extra guest fee per guest per night", func(t *testing.T) {
		rule := newRule(t, func(p *pricing.RuleParams) {
			p.ExtraGuestFee = 250
			p.BaseGuests = 2
		})
		plan := pricing.NewPlan(rule, nil, nil)

		assert.Equal(t, int64(0), plan.Quote(stay(t, "2025-02-01", "2025-02-03"), 2).ExtraGuestFee)
		assert.Equal(t, int64(1000), plan.Quote(stay(t, "2025-02-01", "2025-02-03"), 4).ExtraGuestFee)
	})
}

func TestPlan_QuoteNeverDropsWithMoreGuests(t *testing.T) {
	rule := newRule(t, func(p *pricing.RuleParams) {
		p.ExtraGuestFee = 750
		p.WeeklyDiscount = pct(10)
		p.MonthlyDiscount = pct(20)
	})
	season, err := pricing.NewSeasonalAdjustment(uuid.New(), "summer", day("2025-06-01"), day("2025-08-31"), decimal.RequireFromString("1.3"), true)
	require.NoError(t, err)
	plan := pricing.NewPlan(rule, []pricing.SeasonalAdjustment{season}, nil)

	for _, checkOut := range []string{"2025-06-02", "2025-06-08", "2025-07-01"} {
		s := stay(t, "2025-06-01", checkOut)
		prev := plan.Quote(s, 1)
		for guests := 2; guests <= 12; guests++ {
			calc := plan.Quote(s, guests)
			assert.GreaterOrEqual(t, calc.Total, prev.Total, "%d nights, %d guests", calc.Nights, guests)
			if guests > rule.BaseGuests() {
				assert.Greater(t, calc.Total, prev.Total, "%d nights, %d guests pay for the extra guest", calc.Nights, guests)
			} else {
				assert.Equal(t, prev.Total, calc.Total, "%d nights, %d guests within base", calc.Nights, guests)
			}
			prev = calc
		}
	}
}

func TestCalculation_ApplyPromo(t *testing.T) {
	t.Run("promo reduces total but not service fee", func(t *testing.T) {
		calc := pricing.NewPlan(newRule(t, nil), nil, nil).Quote(stay(t, "2025-06-01", "2025-06-04"), 2)
		promoID := uuid.New()

		calc.ApplyPromo(promoID, "SAVE10", 900)

		assert.Equal(t, int64(900), calc.PromoDiscount)
		assert.Equal(t, int64(900), calc.ServiceFee)
		assert.Equal(t, int64(9500), calc.Total)
		require.NotNil(t, calc.PromoCodeID)
		assert.Equal(t, promoID, *calc.PromoCodeID)
	})

	t.Run("combined discounts never exceed accommodation total", func(t *testing.T) {
		rule := newRule(t, func(p *pricing.RuleParams) {
			p.BasePrice = 1000
			p.WeeklyDiscount = pct(40)
		})
		calc := pricing.NewPlan(rule, nil, nil).Quote(stay(t, "2025-01-01", "2025-01-08"), 2)
		require.Equal(t, int64(2800), calc.Discount)

		calc.ApplyPromo(uuid.New(), "HUGE", 10000)

		assert.Equal(t, int64(4200), calc.PromoDiscount)
		assert.Equal(t, calc.AccommodationTotal, calc.Discount+calc.PromoDiscount)
		assert.Equal(t, calc.CleaningFee+calc.ServiceFee, calc.Total)
	})
}

func TestNewRule_Validation(t *testing.T) {
	_, err := pricing.NewRule(pricing.RuleParams{BasePrice: -1})
	assert.ErrorIs(t, err, pricing.ErrNegativeAmount)

	_, err = pricing.NewRule(pricing.RuleParams{BasePrice: 10, WeeklyDiscount: pct(120)})
	assert.ErrorIs(t, err, pricing.ErrInvalidPercent)

	_, err = pricing.NewSeasonalAdjustment(uuid.New(), "bad", day("2025-02-01"), day("2025-01-01"), decimal.NewFromInt(1), true)
	assert.ErrorIs(t, err, pricing.ErrInvalidSeasonRange)

	_, err = pricing.NewSeasonalAdjustment(uuid.New(), "zero", day("2025-01-01"), day("2025-02-01"), decimal.Zero, true)
	assert.ErrorIs(t, err, pricing.ErrInvalidMultiplier)
}
