package queries

import (
	"strings"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/calsync"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
)

func dayKeys(days []time.Time) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = calendar.Key(d)
	}
	return out
}

// notFound translates a repository miss into the given domain error.
func notFound(err, domainErr error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, domainErr)
	}
	return err
}

func ToBookingView(b *booking.Booking) *BookingView {
	p := b.Price()
	return &BookingView{
		ID:                 b.ID(),
		BookingNumber:      b.Number().String(),
		UnitID:             b.UnitID(),
		GuestID:            b.GuestID(),
		CheckIn:            calendar.Key(b.Stay().CheckIn()),
		CheckOut:           calendar.Key(b.Stay().CheckOut()),
		Nights:             b.Stay().Nights(),
		Guests:             b.Guests(),
		Status:             b.Status().String(),
		PaymentStatus:      b.PaymentStatus().String(),
		Currency:           p.Currency,
		AccommodationTotal: p.AccommodationTotal,
		CleaningFee:        p.CleaningFee,
		ServiceFee:         p.ServiceFee,
		ExtraGuestFee:      p.ExtraGuestFee,
		SeasonalAdjustment: p.SeasonalAdjustment,
		WeekdayAdjustment:  p.WeekdayAdjustment,
		Discount:           p.Discount,
		PromoDiscount:      p.PromoDiscount,
		TotalPrice:         p.Total,
		PromoCodeID:        b.PromoCodeID(),
		Notes:              b.Notes(),
		CanceledAt:         b.CanceledAt(),
		CancelReason:       b.CancelReason(),
		RefundAmount:       b.RefundAmount(),
		CreatedAt:          b.CreatedAt(),
		UpdatedAt:          b.UpdatedAt(),
	}
}

func ToPriceView(c *pricing.Calculation, stay calendar.DateRange, guests int) *PriceCalculationView {
	nights := make([]NightPriceView, len(c.Breakdown))
	for i, n := range c.Breakdown {
		nights[i] = NightPriceView{
			Date:               calendar.Key(n.Date),
			BasePrice:          n.BasePrice,
			SeasonalMultiplier: n.SeasonalMultiplier.String(),
			WeekdayMultiplier:  n.WeekdayMultiplier.String(),
			FinalPrice:         n.FinalPrice,
		}
	}
	return &PriceCalculationView{
		CheckIn:            calendar.Key(stay.CheckIn()),
		CheckOut:           calendar.Key(stay.CheckOut()),
		Guests:             guests,
		Currency:           c.Currency,
		Nights:             c.Nights,
		BasePrice:          c.BasePrice,
		Breakdown:          nights,
		AccommodationTotal: c.AccommodationTotal,
		SeasonalAdjustment: c.SeasonalAdjustment,
		WeekdayAdjustment:  c.WeekdayAdjustment,
		ExtraGuestFee:      c.ExtraGuestFee,
		CleaningFee:        c.CleaningFee,
		ServiceFee:         c.ServiceFee,
		DiscountKind:       string(c.DiscountKind),
		DiscountPercent:    c.DiscountPercent.String(),
		Discount:           c.Discount,
		PromoCode:          c.PromoCode,
		PromoDiscount:      c.PromoDiscount,
		Total:              c.Total,
	}
}

func ToStatusChangeView(c booking.StatusChange) StatusChangeView {
	v := StatusChangeView{
		ID:        c.ID,
		ToStatus:  c.To.String(),
		Comment:   c.Comment,
		ActorID:   c.ActorID,
		CreatedAt: c.CreatedAt,
	}
	if c.From != nil {
		from := c.From.String()
		v.FromStatus = &from
	}
	return v
}

// FeedURL is the public address of an export feed.
func FeedURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/ical/" + token + ".ics"
}

func ToCalendarSyncView(cfg *calsync.Config, baseURL string) *CalendarSyncView {
	v := &CalendarSyncView{
		ID:            cfg.ID(),
		OwnerID:       cfg.OwnerID(),
		UnitID:        cfg.UnitID(),
		Direction:     string(cfg.Direction()),
		Status:        string(cfg.Status()),
		SourceURL:     cfg.SourceURL(),
		Source:        cfg.Source().String(),
		IntervalMin:   int(cfg.Interval() / time.Minute),
		LastSyncAt:    cfg.LastSyncAt(),
		LastSyncError: cfg.LastSyncError(),
		ImportedCount: cfg.ImportedCount(),
		ExportedCount: cfg.ExportedCount(),
		CreatedAt:     cfg.CreatedAt(),
		UpdatedAt:     cfg.UpdatedAt(),
	}
	if token := cfg.ExportToken(); token != nil {
		url := FeedURL(baseURL, *token)
		v.FeedURL = &url
	}
	return v
}
