package converter

import (
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/promo"
	"stayhub/internal/domain/unit"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

func UnitFromRow(row sqlc.Units) *unit.Unit {
	return unit.ReconstructUnit(
		row.ID,
		row.OwnerID,
		row.Title,
		unit.Status(row.Status),
		int(row.MinNights),
		int(row.MaxNights),
		int(row.MaxGuests),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func PlanFromRows(rule sqlc.PricingRules, seasons []sqlc.SeasonalAdjustments, weekdays []sqlc.WeekdayAdjustments) (*pricing.Plan, error) {
	weekly, err := pgconv.DecimalPtrFromNumeric(rule.WeeklyDiscount)
	if err != nil {
		return nil, errs.Wrap(err, "weekly discount")
	}
	monthly, err := pgconv.DecimalPtrFromNumeric(rule.MonthlyDiscount)
	if err != nil {
		return nil, errs.Wrap(err, "monthly discount")
	}
	serviceFee, err := pgconv.DecimalFromNumeric(rule.ServiceFeePercent)
	if err != nil {
		return nil, errs.Wrap(err, "service fee percent")
	}

	r, err := pricing.NewRule(pricing.RuleParams{
		UnitID:          rule.UnitID,
		Currency:        rule.Currency,
		BasePrice:       rule.BasePrice,
		CleaningFee:     rule.CleaningFee,
		ExtraGuestFee:   rule.ExtraGuestFee,
		BaseGuests:      int(rule.BaseGuests),
		WeeklyDiscount:  weekly,
		MonthlyDiscount: monthly,
		ServiceFee:      serviceFee,
	})
	if err != nil {
		return nil, err
	}

	adjustments := make([]pricing.SeasonalAdjustment, 0, len(seasons))
	for _, s := range seasons {
		m, err := pgconv.DecimalFromNumeric(s.Multiplier)
		if err != nil {
			return nil, errs.Wrapf(err, "season %s multiplier", s.ID)
		}
		adj, err := pricing.NewSeasonalAdjustment(s.ID, s.Name, pgconv.DateFromPgtype(s.StartDate), pgconv.DateFromPgtype(s.EndDate), m, s.IsActive)
		if err != nil {
			return nil, err
		}
		adjustments = append(adjustments, adj)
	}

	days := make([]pricing.WeekdayAdjustment, 0, len(weekdays))
	for _, w := range weekdays {
		m, err := pgconv.DecimalFromNumeric(w.Multiplier)
		if err != nil {
			return nil, errs.Wrapf(err, "weekday %d multiplier", w.Weekday)
		}
		days = append(days, pricing.WeekdayAdjustment{Weekday: time.Weekday(w.Weekday), Multiplier: m})
	}

	return pricing.NewPlan(r, adjustments, days), nil
}

func PromoFromRow(row sqlc.PromoCodes) (*promo.PromoCode, error) {
	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		value = decimal.Zero
	}
	discount, err := promo.NewDiscount(promo.DiscountType(row.DiscountType), value, pgconv.Int64PtrFromPgtype(row.MaxDiscount))
	if err != nil {
		return nil, errs.Wrapf(err, "promo %s", row.Code)
	}
	return promo.ReconstructPromoCode(promo.ReconstructParams{
		ID:           row.ID,
		Code:         promo.Code(row.Code),
		Discount:     discount,
		MinNights:    pgconv.IntPtrFromPgtype(row.MinNights),
		MinAmount:    pgconv.Int64PtrFromPgtype(row.MinAmount),
		ValidFrom:    pgconv.TimePtrFromPgtype(row.ValidFrom),
		ValidUntil:   pgconv.TimePtrFromPgtype(row.ValidUntil),
		UsageLimit:   pgconv.IntPtrFromPgtype(row.UsageLimit),
		UsedCount:    int(row.UsedCount),
		PerUserLimit: pgconv.IntPtrFromPgtype(row.PerUserLimit),
		UnitIDs:      row.UnitIds,
		IsActive:     row.IsActive,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func BlockedDayFromRow(row sqlc.BlockedDates) calendar.BlockedDay {
	return calendar.BlockedDay{
		ID:           row.ID,
		UnitID:       row.UnitID,
		Date:         pgconv.DateFromPgtype(row.BlockedDate),
		Source:       calendar.Source(row.Source),
		Reason:       pgconv.StringPtrFromPgtype(row.Reason),
		ExternalRef:  pgconv.StringPtrFromPgtype(row.ExternalRef),
		SyncConfigID: pgconv.UUIDPtrFromPgtype(row.SyncConfigID),
	}
}

func BlockedDaysFromRows(rows []sqlc.BlockedDates) []calendar.BlockedDay {
	out := make([]calendar.BlockedDay, 0, len(rows))
	for _, row := range rows {
		out = append(out, BlockedDayFromRow(row))
	}
	return out
}
