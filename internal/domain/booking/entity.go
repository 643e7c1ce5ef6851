package booking

import (
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// Price is the frozen price breakdown stored with a booking.
type Price struct {
	Currency           string
	AccommodationTotal int64
	CleaningFee        int64
	ServiceFee         int64
	ExtraGuestFee      int64
	SeasonalAdjustment int64
	WeekdayAdjustment  int64
	Discount           int64
	PromoDiscount      int64
	Total              int64
}

func PriceFromCalculation(c *pricing.Calculation) Price {
	return Price{
		Currency:           c.Currency,
		AccommodationTotal: c.AccommodationTotal,
		CleaningFee:        c.CleaningFee,
		ServiceFee:         c.ServiceFee,
		ExtraGuestFee:      c.ExtraGuestFee,
		SeasonalAdjustment: c.SeasonalAdjustment,
		WeekdayAdjustment:  c.WeekdayAdjustment,
		Discount:           c.Discount,
		PromoDiscount:      c.PromoDiscount,
		Total:              c.Total,
	}
}

type Booking struct {
	id            uuid.UUID
	number        Number
	unitID        uuid.UUID
	guestID       uuid.UUID
	stay          calendar.DateRange
	guests        int
	status        Status
	paymentStatus PaymentStatus
	price         Price
	promoCodeID   *uuid.UUID
	notes         *string
	canceledAt    *time.Time
	cancelReason  *string
	refundAmount  int64
	createdAt     time.Time
	updatedAt     time.Time
}

type NewParams struct {
	Number  Number
	UnitID  uuid.UUID
	GuestID uuid.UUID
	Stay    calendar.DateRange
	Guests  int
	Quote   *pricing.Calculation
	Notes   *string
	Now     time.Time
}

// NewBooking starts a booking in pending/pending with the price frozen from quote.
func NewBooking(p NewParams) (*Booking, error) {
	if p.Quote == nil {
		return nil, errs.Wrap(errs.ErrDomainValidation, "booking requires a price quote")
	}
	if !p.Number.IsValid() {
		return nil, errs.Wrapf(errs.ErrDomainValidation, "malformed booking number %q", p.Number)
	}
	if p.Guests < 1 {
		return nil, errs.Wrap(errs.ErrDomainValidation, "at least one guest is required")
	}
	if p.Stay.CheckIn().Before(calendar.Day(p.Now)) {
		return nil, errs.Wrap(errs.ErrInvalidDates, "check-in is in the past")
	}
	return &Booking{
		id:            uuid.New(),
		number:        p.Number,
		unitID:        p.UnitID,
		guestID:       p.GuestID,
		stay:          p.Stay,
		guests:        p.Guests,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		price:         PriceFromCalculation(p.Quote),
		promoCodeID:   p.Quote.PromoCodeID,
		notes:         p.Notes,
		createdAt:     p.Now,
		updatedAt:     p.Now,
	}, nil
}

type ReconstructParams struct {
	ID            uuid.UUID
	Number        Number
	UnitID        uuid.UUID
	GuestID       uuid.UUID
	Stay          calendar.DateRange
	Guests        int
	Status        Status
	PaymentStatus PaymentStatus
	Price         Price
	PromoCodeID   *uuid.UUID
	Notes         *string
	CanceledAt    *time.Time
	CancelReason  *string
	RefundAmount  int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructBooking(p ReconstructParams) *Booking {
	return &Booking{
		id:            p.ID,
		number:        p.Number,
		unitID:        p.UnitID,
		guestID:       p.GuestID,
		stay:          p.Stay,
		guests:        p.Guests,
		status:        p.Status,
		paymentStatus: p.PaymentStatus,
		price:         p.Price,
		promoCodeID:   p.PromoCodeID,
		notes:         p.Notes,
		canceledAt:    p.CanceledAt,
		cancelReason:  p.CancelReason,
		refundAmount:  p.RefundAmount,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}
}

type TransitionInput struct {
	To           Status
	Now          time.Time
	CancelReason *string
	Policy       RefundPolicy
}

// Outcome describes what a status change did beyond flipping the status.
type Outcome struct {
	From         Status
	To           Status
	Refund       int64
	ReleasePromo bool
}

// TransitionTo applies a lifecycle move and its side effects on payment and refund fields.
func (b *Booking) TransitionTo(in TransitionInput) (Outcome, error) {
	from := b.status
	if err := Transition(from, in.To); err != nil {
		return Outcome{}, err
	}
	out := Outcome{From: from, To: in.To}

	switch in.To {
	case StatusPaid:
		b.paymentStatus = PaymentCompleted
	case StatusCanceled:
		now := in.Now
		b.canceledAt = &now
		b.cancelReason = in.CancelReason
		if b.paymentStatus == PaymentCompleted {
			b.refundAmount = in.Policy.RefundFor(b.price.Total, b.stay.CheckIn(), in.Now)
		}
		if b.refundAmount > 0 {
			b.paymentStatus = PaymentPartiallyRefunded
		}
		out.Refund = b.refundAmount
		out.ReleasePromo = b.promoCodeID != nil
	case StatusRefunded:
		b.paymentStatus = PaymentRefunded
		b.refundAmount = b.price.Total
		out.Refund = b.refundAmount
	}

	b.status = in.To
	b.updatedAt = in.Now
	return out, nil
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) Number() Number               { return b.number }
func (b *Booking) UnitID() uuid.UUID            { return b.unitID }
func (b *Booking) GuestID() uuid.UUID           { return b.guestID }
func (b *Booking) Stay() calendar.DateRange     { return b.stay }
func (b *Booking) Guests() int                  { return b.guests }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) Price() Price                 { return b.price }
func (b *Booking) PromoCodeID() *uuid.UUID      { return b.promoCodeID }
func (b *Booking) Notes() *string               { return b.notes }
func (b *Booking) CanceledAt() *time.Time       { return b.canceledAt }
func (b *Booking) CancelReason() *string        { return b.cancelReason }
func (b *Booking) RefundAmount() int64          { return b.refundAmount }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
