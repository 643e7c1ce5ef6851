//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"stayhub/internal/domain/availability"
	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/unit"
	"stayhub/internal/domain/user"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func day(s string) time.Time {
	d, err := calendar.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func discardAudit() shared.AuditLogger {
	return shared.NewSlogAuditLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var _ commands.Recorder = (*spyRecorder)(nil)

type spyRecorder struct {
	mu          sync.Mutex
	created     int
	conflicts   []string
	transitions []string
	syncs       []string
	imported    int
}

func (r *spyRecorder) BookingCreated(string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created++
}

func (r *spyRecorder) BookingConflict(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflicts = append(r.conflicts, reason)
}

func (r *spyRecorder) BookingTransition(from, to booking.Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, from.String()+"->"+to.String())
}

func (r *spyRecorder) SyncFinished(direction, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.syncs = append(r.syncs, direction+":"+outcome)
}

func (r *spyRecorder) SyncImported(events int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.imported += events
}

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memstore.Store
	clock    *clock.MockClock
	recorder *spyRecorder
	cmds     commands.BookingCommands
	unit     *unit.Unit
	owner    user.Actor
	guest    user.Actor
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	s.recorder = &spyRecorder{}
	s.cmds = commands.NewBookingCommands(s.store, s.clock, config.BookingConfig{
		RefundFullDays:       7,
		RefundPartialDays:    3,
		RefundPartialPercent: 50,
		IdempotencyTTL:       "24h",
	}, discardAudit(), s.recorder)

	s.owner = user.Actor{ID: uuid.New(), Role: user.RoleOwner}
	s.guest = user.Actor{ID: uuid.New(), Role: user.RoleGuest}
	s.unit = builder.NewUnitBuilder().WithOwner(s.owner.ID).BuildDomain()
	s.store.AddUnit(s.unit)
	s.store.SetPlan(s.unit.ID(), builder.NewPlanBuilder(s.unit.ID()).BuildDomain())
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) input(in, out string) commands.CreateBookingInput {
	return commands.CreateBookingInput{UnitID: s.unit.ID(), CheckIn: day(in), CheckOut: day(out), Guests: 2}
}

func (s *BookingCommandsTestSuite) existing(in, out string, status booking.Status, mutate func(*builder.BookingBuilder)) *booking.Booking {
	bb := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) {
			b.UnitID = s.unit.ID()
			b.GuestID = s.guest.ID
		}).
		WithStay(day(in), day(out)).
		WithStatus(status)
	if mutate != nil {
		bb.With(mutate)
	}
	b := bb.BuildDomain()
	s.store.AddBooking(b)
	return b
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateBooking_Success() {
	notes := "late arrival"
	in := s.input("2026-03-10", "2026-03-13")
	in.Notes = &notes

	res, err := s.cmds.CreateBooking(s.ctx, s.guest, in)
	s.Require().NoError(err)
	s.False(res.IsReplayed)

	view := res.Booking
	s.True(strings.HasPrefix(view.BookingNumber, "BK-20260301-"), view.BookingNumber)
	s.Equal("pending", view.Status)
	s.Equal("pending", view.PaymentStatus)
	s.Equal(s.guest.ID, view.GuestID)
	s.Equal(3, view.Nights)
	s.Equal(int64(300), view.TotalPrice)
	s.Equal(&notes, view.Notes)

	stored, ok := s.store.Booking(view.ID)
	s.Require().True(ok)
	s.Equal(booking.StatusPending, stored.Status())

	history := s.store.History(view.ID)
	s.Require().Len(history, 1)
	s.Nil(history[0].From)
	s.Equal(booking.StatusPending, history[0].To)
	s.Equal(&s.guest.ID, history[0].ActorID)

	jobs := s.store.Jobs()
	s.Require().Len(jobs, 1)
	s.Equal("booking_created", jobs[0].Topic)
	s.Equal(view.ID.String(), jobs[0].Payload["booking_id"])
	s.Equal(1, s.recorder.created)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_Rejections() {
	s.existing("2026-03-10", "2026-03-13", booking.StatusConfirmed, nil)
	s.store.AddBlocked(calendar.BlockedDay{UnitID: s.unit.ID(), Date: day("2026-03-20"), Source: calendar.SourceManual})

	s.Run("overlapping booking", func() {
		_, err := s.cmds.CreateBooking(s.ctx, s.guest, s.input("2026-03-12", "2026-03-15"))
		var occupied *errs.DatesOccupiedError
		s.Require().ErrorAs(err, &occupied)
		s.Equal(availability.ReasonOccupied, occupied.Reason)
		s.Equal([]time.Time{day("2026-03-12")}, occupied.Dates)
	})

	s.Run("blocked day", func() {
		_, err := s.cmds.CreateBooking(s.ctx, s.guest, s.input("2026-03-19", "2026-03-22"))
		var occupied *errs.DatesOccupiedError
		s.Require().ErrorAs(err, &occupied)
		s.Equal(availability.ReasonBlocked, occupied.Reason)
	})

	s.Run("too many guests", func() {
		in := s.input("2026-03-03", "2026-03-05")
		in.Guests = 5
		_, err := s.cmds.CreateBooking(s.ctx, s.guest, in)
		s.True(errs.Is(err, errs.ErrGuestCountExceeded))
	})

	s.Run("reversed dates", func() {
		_, err := s.cmds.CreateBooking(s.ctx, s.guest, s.input("2026-03-05", "2026-03-03"))
		s.True(errs.Is(err, errs.ErrInvalidDates))
	})

	s.Run("unknown unit", func() {
		in := s.input("2026-03-03", "2026-03-05")
		in.UnitID = uuid.New()
		_, err := s.cmds.CreateBooking(s.ctx, s.guest, in)
		s.True(errs.Is(err, errs.ErrUnitNotFound))
	})

	s.Run("unit without pricing", func() {
		bare := builder.NewUnitBuilder().BuildDomain()
		s.store.AddUnit(bare)
		in := s.input("2026-03-03", "2026-03-05")
		in.UnitID = bare.ID()
		_, err := s.cmds.CreateBooking(s.ctx, s.guest, in)
		s.True(errs.Is(err, errs.ErrPricingRuleNotFound))
	})

	s.Equal(1, s.store.BookingCount())
	s.Empty(s.store.Jobs())
	s.Equal([]string{availability.ReasonOccupied, availability.ReasonBlocked}, s.recorder.conflicts)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_CanceledNightsAreFree() {
	s.existing("2026-03-10", "2026-03-13", booking.StatusCanceled, nil)
	_, err := s.cmds.CreateBooking(s.ctx, s.guest, s.input("2026-03-10", "2026-03-13"))
	s.NoError(err)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_Promo() {
	p := builder.NewPromoBuilder().WithUsage(2, 10).BuildDomain()
	s.store.AddPromo(p)

	code := "save10"
	in := s.input("2026-03-10", "2026-03-13")
	in.PromoCode = &code

	res, err := s.cmds.CreateBooking(s.ctx, s.guest, in)
	s.Require().NoError(err)
	s.Equal(int64(30), res.Booking.PromoDiscount)
	s.Equal(int64(270), res.Booking.TotalPrice)
	s.Require().NotNil(res.Booking.PromoCodeID)
	s.Equal(p.ID(), *res.Booking.PromoCodeID)
	s.Equal(3, s.store.PromoUsed(p.ID()))

	s.Run("rejected code stops the booking", func() {
		bad := "NOPE"
		in := s.input("2026-03-20", "2026-03-22")
		in.PromoCode = &bad
		_, err := s.cmds.CreateBooking(s.ctx, s.guest, in)
		var promoErr *errs.PromoInvalidError
		s.Require().ErrorAs(err, &promoErr)
		s.Equal(1, s.store.BookingCount())
	})
}

func (s *BookingCommandsTestSuite) TestCreateBooking_FailedCommitKeepsNothing() {
	p := builder.NewPromoBuilder().BuildDomain()
	s.store.AddPromo(p)
	code := p.Code().String()
	in := s.input("2026-03-10", "2026-03-13")
	in.PromoCode = &code

	boom := errors.New("commit failed")
	s.store.FailCommit = boom

	_, err := s.cmds.CreateBooking(s.ctx, s.guest, in)
	s.ErrorIs(err, boom)
	s.Zero(s.store.BookingCount())
	s.Zero(s.store.PromoUsed(p.ID()))
	s.Empty(s.store.Jobs())
	s.Zero(s.recorder.created)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_Idempotency() {
	key := uuid.New()
	in := s.input("2026-03-10", "2026-03-13")
	in.Key = &key

	first, err := s.cmds.CreateBooking(s.ctx, s.guest, in)
	s.Require().NoError(err)
	s.False(first.IsReplayed)

	s.Run("same request replays", func() {
		again, err := s.cmds.CreateBooking(s.ctx, s.guest, in)
		s.Require().NoError(err)
		s.True(again.IsReplayed)
		s.Equal(first.Booking.ID, again.Booking.ID)
		s.Equal(1, s.store.BookingCount())
		s.Len(s.store.Jobs(), 1)
	})

	s.Run("different body with the same key", func() {
		other := s.input("2026-03-20", "2026-03-22")
		other.Key = &key
		_, err := s.cmds.CreateBooking(s.ctx, s.guest, other)
		s.ErrorIs(err, errs.ErrIdempotencyKeyReused)
	})

	s.Run("keys are scoped per user", func() {
		other := s.input("2026-03-20", "2026-03-22")
		other.Key = &key
		res, err := s.cmds.CreateBooking(s.ctx, user.Actor{ID: uuid.New(), Role: user.RoleGuest}, other)
		s.Require().NoError(err)
		s.False(res.IsReplayed)
	})

	s.Run("expired key runs again", func() {
		stale := uuid.New()
		s.store.AddIdempotency(shared.IdempotencyRecord{
			Key:         stale,
			UserID:      s.guest.ID,
			Status:      shared.IdempotencyCompleted,
			RequestHash: "from-another-request",
			ExpiresAt:   s.clock.Now().Add(-time.Minute),
		})
		fresh := s.input("2026-03-25", "2026-03-27")
		fresh.Key = &stale
		res, err := s.cmds.CreateBooking(s.ctx, s.guest, fresh)
		s.Require().NoError(err)
		s.False(res.IsReplayed)
	})
}

func (s *BookingCommandsTestSuite) TestCreateBooking_SameKeyFinishedFirst() {
	key := uuid.New()
	in := s.input("2026-03-10", "2026-03-13")
	in.Key = &key

	winner := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) {
			b.UnitID = s.unit.ID()
			b.GuestID = s.guest.ID
		}).
		WithStay(day("2026-03-10"), day("2026-03-13")).
		BuildDomain()
	fired := false
	s.store.ReserveHook = func() *booking.Booking {
		if fired {
			return nil
		}
		fired = true
		return winner
	}

	res, err := s.cmds.CreateBooking(s.ctx, s.guest, in)
	s.Require().NoError(err)
	s.True(res.IsReplayed)
	s.Equal(winner.ID(), res.Booking.ID)
	s.Equal(1, s.store.BookingCount())
	s.Empty(s.recorder.conflicts)
	s.Zero(s.recorder.created)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_ConstraintRace() {
	winner := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) { b.UnitID = s.unit.ID() }).
		WithStay(day("2026-03-11"), day("2026-03-14")).
		BuildDomain()
	fired := false
	s.store.CreateHook = func() *booking.Booking {
		if fired {
			return nil
		}
		fired = true
		return winner
	}

	_, err := s.cmds.CreateBooking(s.ctx, s.guest, s.input("2026-03-10", "2026-03-13"))

	var occupied *errs.DatesOccupiedError
	s.Require().ErrorAs(err, &occupied)
	s.Equal(availability.ReasonOccupied, occupied.Reason)
	s.Equal([]time.Time{day("2026-03-11"), day("2026-03-12")}, occupied.Dates)
	s.Equal(1, s.store.BookingCount())
	s.Equal([]string{availability.ReasonOccupied}, s.recorder.conflicts)
}

func (s *BookingCommandsTestSuite) TestCreateBooking_ConcurrentSameDates() {
	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		occupied  int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			guest := user.Actor{ID: uuid.New(), Role: user.RoleGuest}
			_, err := s.cmds.CreateBooking(s.ctx, guest, s.input("2026-04-01", "2026-04-05"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errs.Is(err, errs.ErrDatesOccupied):
				occupied++
			}
		}()
	}
	wg.Wait()

	s.Equal(1, succeeded)
	s.Equal(attempts-1, occupied)
	s.Equal(1, s.store.BookingCount())
}

// ================================================================================
// UpdateBookingStatus
// ================================================================================

func (s *BookingCommandsTestSuite) update(actor *user.Actor, id uuid.UUID, status string) (*queries.BookingView, error) {
	return s.cmds.UpdateBookingStatus(s.ctx, actor, commands.UpdateBookingStatusInput{BookingID: id, Status: status})
}

func (s *BookingCommandsTestSuite) TestUpdateBookingStatus_Lifecycle() {
	b := s.existing("2026-03-20", "2026-03-23", booking.StatusPending, nil)
	comment := "deposit received"

	view, err := s.cmds.UpdateBookingStatus(s.ctx, &s.owner, commands.UpdateBookingStatusInput{
		BookingID: b.ID(), Status: "confirmed", Comment: &comment,
	})
	s.Require().NoError(err)
	s.Equal("confirmed", view.Status)

	res, err := s.update(&s.owner, b.ID(), "paid")
	s.Require().NoError(err)
	s.Equal("completed", res.PaymentStatus)

	res, err = s.update(nil, b.ID(), "completed")
	s.Require().NoError(err)
	s.Equal("completed", res.Status)

	history := s.store.History(b.ID())
	s.Require().Len(history, 3)
	s.Equal(booking.StatusPending, *history[0].From)
	s.Equal(&comment, history[0].Comment)
	s.Nil(history[2].ActorID)

	jobs := s.store.Jobs()
	s.Require().Len(jobs, 3)
	s.Equal("booking_status_changed", jobs[2].Topic)
	s.Equal("completed", jobs[2].Payload["status"])
	s.Equal([]string{"pending->confirmed", "confirmed->paid", "paid->completed"}, s.recorder.transitions)
}

func (s *BookingCommandsTestSuite) TestUpdateBookingStatus_Rejections() {
	b := s.existing("2026-03-20", "2026-03-23", booking.StatusPending, nil)

	s.Run("illegal jump", func() {
		_, err := s.update(&s.owner, b.ID(), "paid")
		s.True(errs.Is(err, errs.ErrInvalidTransition))
	})

	s.Run("unknown status", func() {
		_, err := s.update(&s.owner, b.ID(), "archived")
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("guest cannot confirm", func() {
		_, err := s.update(&s.guest, b.ID(), "confirmed")
		s.ErrorIs(err, errs.ErrForbidden)
	})

	s.Run("stranger cannot cancel", func() {
		stranger := user.Actor{ID: uuid.New(), Role: user.RoleGuest}
		_, err := s.update(&stranger, b.ID(), "canceled")
		s.ErrorIs(err, errs.ErrForbidden)
	})

	s.Run("missing booking", func() {
		_, err := s.update(&s.owner, uuid.New(), "confirmed")
		s.True(errs.Is(err, errs.ErrBookingNotFound))
	})

	stored, _ := s.store.Booking(b.ID())
	s.Equal(booking.StatusPending, stored.Status())
	s.Empty(s.store.History(b.ID()))

	s.Run("guest cancels their own booking", func() {
		res, err := s.update(&s.guest, b.ID(), "canceled")
		s.Require().NoError(err)
		s.Equal("canceled", res.Status)
		s.Zero(res.RefundAmount)
	})

	s.Run("canceled is terminal", func() {
		_, err := s.update(&s.owner, b.ID(), "confirmed")
		s.True(errs.Is(err, errs.ErrInvalidTransition))
	})
}

func (s *BookingCommandsTestSuite) TestUpdateBookingStatus_CancellationRefunds() {
	testCases := []struct {
		name    string
		checkIn string
		refund  int64
	}{
		{name: "ten days out refunds everything", checkIn: "2026-03-11", refund: 10400},
		{name: "five days out refunds half", checkIn: "2026-03-06", refund: 5200},
		{name: "next day refunds nothing", checkIn: "2026-03-02", refund: 0},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			in := day(tc.checkIn)
			b := s.existing(tc.checkIn, calendar.Key(calendar.AddDays(in, 2)), booking.StatusPaid, nil)
			reason := "change of plans"

			view, err := s.cmds.UpdateBookingStatus(s.ctx, &s.guest, commands.UpdateBookingStatusInput{
				BookingID: b.ID(), Status: "canceled", CancelReason: &reason,
			})
			s.Require().NoError(err)
			s.Equal(tc.refund, view.RefundAmount)
			s.Equal(&reason, view.CancelReason)
			s.Require().NotNil(view.CanceledAt)
			s.True(view.CanceledAt.Equal(s.clock.Now()))
		})
	}
}

func (s *BookingCommandsTestSuite) TestUpdateBookingStatus_RefundAfterStay() {
	b := s.existing("2026-02-20", "2026-02-23", booking.StatusCompleted, nil)
	res, err := s.update(&s.owner, b.ID(), "refunded")
	s.Require().NoError(err)
	s.Equal("refunded", res.Status)
	s.Equal("refunded", res.PaymentStatus)
	s.Equal(int64(10400), res.RefundAmount)
}

func (s *BookingCommandsTestSuite) TestUpdateBookingStatus_CancelReleasesPromo() {
	p := builder.NewPromoBuilder().WithUsage(3, 10).BuildDomain()
	s.store.AddPromo(p)
	promoID := p.ID()
	b := s.existing("2026-03-20", "2026-03-23", booking.StatusConfirmed, func(bb *builder.BookingBuilder) { bb.PromoCodeID = &promoID })

	_, err := s.update(&s.owner, b.ID(), "canceled")
	s.Require().NoError(err)
	s.Equal(2, s.store.PromoUsed(p.ID()))

	// nights are free again
	_, err = s.cmds.CreateBooking(s.ctx, s.guest, s.input("2026-03-20", "2026-03-23"))
	s.NoError(err)
}
