//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/ptr"
	"stayhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionTable(t *testing.T) {
	allowed := map[[2]booking.Status]bool{
		{booking.StatusPending, booking.StatusConfirmed}:  true,
		{booking.StatusPending, booking.StatusCanceled}:   true,
		{booking.StatusConfirmed, booking.StatusPaid}:     true,
		{booking.StatusConfirmed, booking.StatusCanceled}: true,
		{booking.StatusPaid, booking.StatusCompleted}:     true,
		{booking.StatusPaid, booking.StatusCanceled}:      true,
		{booking.StatusPaid, booking.StatusRefunded}:      true,
		{booking.StatusCompleted, booking.StatusRefunded}: true,
	}

	for _, from := range booking.AllStatuses() {
		for _, to := range booking.AllStatuses() {
			err := booking.Transition(from, to)
			if allowed[[2]booking.Status{from, to}] {
				assert.NoError(t, err, "%s -> %s", from, to)
			} else {
				assert.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s", from, to)
			}
		}
	}

	assert.True(t, booking.StatusCanceled.IsTerminal())
	assert.True(t, booking.StatusRefunded.IsTerminal())
	assert.False(t, booking.StatusCompleted.IsTerminal())
	assert.ErrorIs(t, booking.Transition("bogus", booking.StatusConfirmed), errs.ErrInvalidTransition)
}

func TestRefundPolicy(t *testing.T) {
	policy := booking.NewTieredRefundPolicy(7, 3, 50)
	now := time.Date(2025, 3, 1, 18, 30, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		daysBefore int
		want       int64
	}{
		{name: "exactly seven days", daysBefore: 7, want: 10000},
		{name: "well ahead", daysBefore: 40, want: 10000},
		{name: "six days", daysBefore: 6, want: 5000},
		{name: "exactly three days", daysBefore: 3, want: 5000},
		{name: "two days", daysBefore: 2, want: 0},
		{name: "day of arrival", daysBefore: 0, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checkIn := calendar.AddDays(now, tc.daysBefore)
			assert.Equal(t, tc.want, policy.RefundFor(10000, checkIn, now))
		})
	}
}

func TestBooking_TransitionTo(t *testing.T) {
	policy := booking.NewTieredRefundPolicy(7, 3, 50)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("paid sets payment completed", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()

		out, err := b.TransitionTo(booking.TransitionInput{To: booking.StatusPaid, Now: now, Policy: policy})

		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, out.From)
		assert.Equal(t, booking.StatusPaid, b.Status())
		assert.Equal(t, booking.PaymentCompleted, b.PaymentStatus())
	})

	t.Run("cancel of a paid booking refunds by tier and releases promo", func(t *testing.T) {
		promoID := uuid.New()
		b := builder.NewBookingBuilder().
			WithStay(calendar.AddDays(now, 3), calendar.AddDays(now, 6)).
			WithStatus(booking.StatusPaid).
			With(func(bb *builder.BookingBuilder) { bb.PromoCodeID = &promoID }).
			BuildDomain()

		out, err := b.TransitionTo(booking.TransitionInput{
			To:           booking.StatusCanceled,
			Now:          now,
			CancelReason: ptr.To("plans changed"),
			Policy:       policy,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(5200), out.Refund)
		assert.True(t, out.ReleasePromo)
		assert.Equal(t, booking.PaymentPartiallyRefunded, b.PaymentStatus())
		require.NotNil(t, b.CanceledAt())
		assert.Equal(t, now, *b.CanceledAt())
		assert.Equal(t, "plans changed", *b.CancelReason())
	})

	t.Run("cancel of an unpaid booking refunds nothing", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStay(calendar.AddDays(now, 30), calendar.AddDays(now, 33)).BuildDomain()

		out, err := b.TransitionTo(booking.TransitionInput{To: booking.StatusCanceled, Now: now, Policy: policy})

		require.NoError(t, err)
		assert.Zero(t, out.Refund)
		assert.False(t, out.ReleasePromo)
		assert.Equal(t, booking.PaymentPending, b.PaymentStatus())
	})

	t.Run("refund returns the whole total", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildDomain()

		out, err := b.TransitionTo(booking.TransitionInput{To: booking.StatusRefunded, Now: now, Policy: policy})

		require.NoError(t, err)
		assert.Equal(t, int64(10400), out.Refund)
		assert.Equal(t, booking.PaymentRefunded, b.PaymentStatus())
	})

	t.Run("illegal move leaves the booking untouched", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCanceled).BuildDomain()

		_, err := b.TransitionTo(booking.TransitionInput{To: booking.StatusConfirmed, Now: now, Policy: policy})

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, booking.StatusCanceled, b.Status())
	})
}

func TestNewBooking(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	stay := calendar.ReconstructDateRange(calendar.Day(now), calendar.AddDays(now, 2))
	number, err := booking.NewNumber(now)
	require.NoError(t, err)
	assert.Regexp(t, `^BK-20250301-[A-Z0-9]{6}$`, number.String())

	quote := &pricing.Calculation{Currency: "USD", AccommodationTotal: 2000, Total: 2300, PromoCodeID: ptr.To(uuid.New())}

	b, err := booking.NewBooking(booking.NewParams{Number: number, UnitID: uuid.New(), GuestID: uuid.New(), Stay: stay, Guests: 2, Quote: quote, Now: now})
	require.NoError(t, err)
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Equal(t, booking.PaymentPending, b.PaymentStatus())
	assert.Equal(t, int64(2300), b.Price().Total)
	assert.Equal(t, quote.PromoCodeID, b.PromoCodeID())

	entry := booking.NewCreationEntry(b, nil)
	assert.Nil(t, entry.From)
	assert.Equal(t, booking.StatusPending, entry.To)

	past := calendar.ReconstructDateRange(calendar.AddDays(now, -1), calendar.AddDays(now, 1))
	_, err = booking.NewBooking(booking.NewParams{Number: number, Stay: past, Guests: 1, Quote: quote, Now: now})
	assert.ErrorIs(t, err, errs.ErrInvalidDates)
}
