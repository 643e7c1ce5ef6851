//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	Number        booking.Number
	UnitID        uuid.UUID
	GuestID       uuid.UUID
	CheckIn       time.Time
	CheckOut      time.Time
	Guests        int
	Status        booking.Status
	PaymentStatus booking.PaymentStatus
	Total         int64
	PromoCodeID   *uuid.UUID
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := calendar.AddDays(time.Now(), 30)
	return &BookingBuilder{
		ID:            uuid.New(),
		Number:        "BK-20250101-ABC234",
		UnitID:        uuid.New(),
		GuestID:       uuid.New(),
		CheckIn:       checkIn,
		CheckOut:      calendar.AddDays(checkIn, 3),
		Guests:        2,
		Status:        booking.StatusPending,
		PaymentStatus: booking.PaymentPending,
		Total:         10400,
		CreatedAt:     time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	if status == booking.StatusPaid || status == booking.StatusCompleted {
		b.PaymentStatus = booking.PaymentCompleted
	}
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:            b.ID,
		Number:        b.Number,
		UnitID:        b.UnitID,
		GuestID:       b.GuestID,
		Stay:          calendar.ReconstructDateRange(calendar.Day(b.CheckIn), calendar.Day(b.CheckOut)),
		Guests:        b.Guests,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		Price: booking.Price{
			Currency:           "USD",
			AccommodationTotal: b.Total,
			Total:              b.Total,
		},
		PromoCodeID: b.PromoCodeID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	})
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.ToBookingView(b.BuildDomain())
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		UnitID:   b.UnitID,
		CheckIn:  calendar.Key(b.CheckIn),
		CheckOut: calendar.Key(b.CheckOut),
		Guests:   b.Guests,
	}
}
