package converter

import (
	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	p := b.Price()
	return sqlc.CreateBookingParams{
		ID:                 b.ID(),
		BookingNumber:      b.Number().String(),
		UnitID:             b.UnitID(),
		GuestID:            b.GuestID(),
		CheckIn:            pgconv.DateToPgtype(b.Stay().CheckIn()),
		CheckOut:           pgconv.DateToPgtype(b.Stay().CheckOut()),
		Guests:             int32(b.Guests()), // #nosec G115 -- bounded by unit capacity
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
		PromoCodeID:        pgconv.UUIDPtrToPgtype(b.PromoCodeID()),
		Notes:              pgconv.StringPtrToPgtype(b.Notes()),
		CreatedAt:          pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingToStatusParams(b *booking.Booking) sqlc.UpdateBookingStatusParams {
	return sqlc.UpdateBookingStatusParams{
		ID:            b.ID(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		CanceledAt:    pgconv.TimePtrToPgtype(b.CanceledAt()),
		CancelReason:  pgconv.StringPtrToPgtype(b.CancelReason()),
		RefundAmount:  b.RefundAmount(),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:            row.ID,
		Number:        booking.Number(row.BookingNumber),
		UnitID:        row.UnitID,
		GuestID:       row.GuestID,
		Stay:          calendar.ReconstructDateRange(pgconv.DateFromPgtype(row.CheckIn), pgconv.DateFromPgtype(row.CheckOut)),
		Guests:        int(row.Guests),
		Status:        booking.Status(row.Status),
		PaymentStatus: booking.PaymentStatus(row.PaymentStatus),
		Price: booking.Price{
			Currency:           row.Currency,
			AccommodationTotal: row.AccommodationTotal,
			CleaningFee:        row.CleaningFee,
			ServiceFee:         row.ServiceFee,
			ExtraGuestFee:      row.ExtraGuestFee,
			SeasonalAdjustment: row.SeasonalAdjustment,
			WeekdayAdjustment:  row.WeekdayAdjustment,
			Discount:           row.Discount,
			PromoDiscount:      row.PromoDiscount,
			Total:              row.TotalPrice,
		},
		PromoCodeID:  pgconv.UUIDPtrFromPgtype(row.PromoCodeID),
		Notes:        pgconv.StringPtrFromPgtype(row.Notes),
		CanceledAt:   pgconv.TimePtrFromPgtype(row.CanceledAt),
		CancelReason: pgconv.StringPtrFromPgtype(row.CancelReason),
		RefundAmount: row.RefundAmount,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func BookingsFromRows(rows []sqlc.Bookings) []*booking.Booking {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, BookingFromRow(row))
	}
	return out
}

func StatusChangeToParams(e booking.StatusChange) sqlc.CreateBookingStatusHistoryParams {
	from := pgtype.Text{Valid: false}
	if e.From != nil {
		from = pgconv.StringToPgtype(e.From.String())
	}
	return sqlc.CreateBookingStatusHistoryParams{
		ID:         e.ID,
		BookingID:  e.BookingID,
		FromStatus: from,
		ToStatus:   e.To.String(),
		Comment:    pgconv.StringPtrToPgtype(e.Comment),
		ActorID:    pgconv.UUIDPtrToPgtype(e.ActorID),
		CreatedAt:  pgconv.TimeToPgtype(e.CreatedAt),
	}
}

func StatusChangeFromRow(row sqlc.BookingStatusHistory) booking.StatusChange {
	var from *booking.Status
	if row.FromStatus.Valid {
		s := booking.Status(row.FromStatus.String)
		from = &s
	}
	return booking.StatusChange{
		ID:        row.ID,
		BookingID: row.BookingID,
		From:      from,
		To:        booking.Status(row.ToStatus),
		Comment:   pgconv.StringPtrFromPgtype(row.Comment),
		ActorID:   pgconv.UUIDPtrFromPgtype(row.ActorID),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func StatusStrings(statuses []booking.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
