//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/availability"
	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/unit"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func day(s string) time.Time {
	d, err := calendar.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memstore.Store
	clock *clock.MockClock
	q     queries.AvailabilityQueries
	unit  *unit.Unit
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.clock = clock.NewMockClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	s.q = queries.NewAvailabilityQueries(s.store, s.clock, config.BookingConfig{SearchHorizonDays: 30})
	s.unit = builder.NewUnitBuilder().BuildDomain()
	s.store.AddUnit(s.unit)
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) addBooking(in, out string, status booking.Status) *booking.Booking {
	b := builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) { b.UnitID = s.unit.ID() }).
		WithStay(day(in), day(out)).
		WithStatus(status).
		BuildDomain()
	s.store.AddBooking(b)
	return b
}

func (s *AvailabilityQueriesTestSuite) block(source calendar.Source, reason *string, days ...string) {
	for _, d := range days {
		s.store.AddBlocked(calendar.BlockedDay{UnitID: s.unit.ID(), Date: day(d), Source: source, Reason: reason})
	}
}

func (s *AvailabilityQueriesTestSuite) check(in, out string, exclude *uuid.UUID) (*queries.AvailabilityView, error) {
	return s.q.CheckAvailability(s.ctx, queries.CheckAvailabilityInput{
		UnitID:           s.unit.ID(),
		CheckIn:          day(in),
		CheckOut:         day(out),
		ExcludeBookingID: exclude,
	})
}

func (s *AvailabilityQueriesTestSuite) TestCheckAvailability() {
	existing := s.addBooking("2026-03-10", "2026-03-13", booking.StatusConfirmed)
	s.addBooking("2026-03-20", "2026-03-25", booking.StatusCanceled)
	s.block(calendar.SourceManual, nil, "2026-03-16")

	testCases := []struct {
		name      string
		in, out   string
		exclude   *uuid.UUID
		available bool
		reason    string
		dates     []string
	}{
		{name: "free calendar", in: "2026-03-01", out: "2026-03-05", available: true},
		{name: "overlap lists booked nights", in: "2026-03-11", out: "2026-03-14", reason: availability.ReasonOccupied, dates: []string{"2026-03-11", "2026-03-12"}},
		{name: "arrival on check-out day", in: "2026-03-13", out: "2026-03-15", available: true},
		{name: "departure on check-in day", in: "2026-03-07", out: "2026-03-10", available: true},
		{name: "canceled booking frees its nights", in: "2026-03-20", out: "2026-03-23", available: true},
		{name: "own booking excluded", in: "2026-03-11", out: "2026-03-13", exclude: ptrID(existing.ID()), available: true},
		{name: "blocked night", in: "2026-03-15", out: "2026-03-18", reason: availability.ReasonBlocked, dates: []string{"2026-03-16"}},
		{name: "blocked check-out day is fine", in: "2026-03-14", out: "2026-03-16", available: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			view, err := s.check(tc.in, tc.out, tc.exclude)
			s.Require().NoError(err)
			s.Equal(tc.available, view.Available)
			s.Equal(tc.reason, view.Reason)
			s.Equal(tc.dates, view.ConflictingDates)
		})
	}
}

func (s *AvailabilityQueriesTestSuite) TestCheckAvailability_Errors() {
	s.Run("reversed dates", func() {
		_, err := s.check("2026-03-05", "2026-03-01", nil)
		s.True(errs.Is(err, errs.ErrInvalidDates))
	})

	s.Run("zero nights", func() {
		_, err := s.check("2026-03-05", "2026-03-05", nil)
		s.True(errs.Is(err, errs.ErrInvalidDates))
	})

	s.Run("stay longer than allowed", func() {
		_, err := s.check("2026-03-01", "2026-04-05", nil)
		s.True(errs.Is(err, errs.ErrInvalidStayLength))
	})

	s.Run("unknown unit", func() {
		_, err := s.q.CheckAvailability(s.ctx, queries.CheckAvailabilityInput{
			UnitID: uuid.New(), CheckIn: day("2026-03-01"), CheckOut: day("2026-03-02"),
		})
		s.True(errs.Is(err, errs.ErrUnitNotFound))
	})

	s.Run("hidden unit is not bookable", func() {
		hidden := builder.NewUnitBuilder().With(func(b *builder.UnitBuilder) { b.Status = unit.StatusHidden }).BuildDomain()
		s.store.AddUnit(hidden)
		_, err := s.q.CheckAvailability(s.ctx, queries.CheckAvailabilityInput{
			UnitID: hidden.ID(), CheckIn: day("2026-03-01"), CheckOut: day("2026-03-02"),
		})
		s.True(errs.Is(err, errs.ErrUnbookable))
	})
}

func (s *AvailabilityQueriesTestSuite) TestOccupiedDates() {
	b := s.addBooking("2026-03-10", "2026-03-12", booking.StatusPending)
	s.addBooking("2026-02-27", "2026-03-02", booking.StatusPaid)
	s.block(calendar.Source("airbnb"), nil, "2026-03-15")

	got, err := s.q.OccupiedDates(s.ctx, s.unit.ID(), day("2026-03-01"), day("2026-04-01"))
	s.Require().NoError(err)

	var dates []string
	for _, d := range got {
		dates = append(dates, d.Date)
	}
	s.Equal([]string{"2026-03-01", "2026-03-10", "2026-03-11", "2026-03-15"}, dates)
	s.Equal(b.ID().String(), got[1].BookingID)
	s.Equal("pending", got[1].Status)
	s.Equal(queries.BlockedMarker, got[3].BookingID)
	s.Equal("airbnb", got[3].Status)
}

func (s *AvailabilityQueriesTestSuite) TestAvailabilityCalendar() {
	s.addBooking("2026-03-10", "2026-03-12", booking.StatusConfirmed)
	s.block(calendar.SourceManual, nil, "2026-03-20")

	s.Run("without pricing rule", func() {
		days, err := s.q.AvailabilityCalendar(s.ctx, s.unit.ID(), 2026, time.March)
		s.Require().NoError(err)
		s.Require().Len(days, 31)
		s.True(days[0].Available)
		s.Nil(days[0].Price)
		s.False(days[9].Available)
		s.False(days[10].Available)
		s.True(days[11].Available)
		s.False(days[19].Available)
	})

	s.Run("with pricing rule only free days carry a price", func() {
		s.store.SetPlan(s.unit.ID(), builder.NewPlanBuilder(s.unit.ID()).BuildDomain())
		days, err := s.q.AvailabilityCalendar(s.ctx, s.unit.ID(), 2026, time.March)
		s.Require().NoError(err)
		s.Require().NotNil(days[0].Price)
		s.Equal(int64(100), *days[0].Price)
		s.Nil(days[9].Price)
	})

	s.Run("february length", func() {
		days, err := s.q.AvailabilityCalendar(s.ctx, s.unit.ID(), 2028, time.February)
		s.Require().NoError(err)
		s.Len(days, 29)
		s.Equal("2028-02-29", days[28].Date)
	})

	s.Run("invalid month", func() {
		_, err := s.q.AvailabilityCalendar(s.ctx, s.unit.ID(), 2026, time.Month(13))
		s.True(errs.Is(err, errs.ErrInvalidDates))
	})
}

func (s *AvailabilityQueriesTestSuite) TestFindNextAvailable() {
	s.addBooking("2026-03-01", "2026-03-05", booking.StatusConfirmed)
	s.block(calendar.SourceManual, nil, "2026-03-06")

	s.Run("skips bookings and blocked days", func() {
		stay, err := s.q.FindNextAvailable(s.ctx, s.unit.ID(), day("2026-03-01"), 3)
		s.Require().NoError(err)
		s.Require().NotNil(stay)
		s.Equal(queries.StayView{CheckIn: "2026-03-07", CheckOut: "2026-03-10", Nights: 3}, *stay)
	})

	s.Run("one night fits the gap before the block", func() {
		stay, err := s.q.FindNextAvailable(s.ctx, s.unit.ID(), day("2026-03-01"), 1)
		s.Require().NoError(err)
		s.Require().NotNil(stay)
		s.Equal("2026-03-05", stay.CheckIn)
	})

	s.Run("past preference starts today", func() {
		s.clock.Set(time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC))
		defer s.clock.Set(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

		stay, err := s.q.FindNextAvailable(s.ctx, s.unit.ID(), day("2026-01-01"), 2)
		s.Require().NoError(err)
		s.Require().NotNil(stay)
		s.Equal("2026-03-12", stay.CheckIn)
	})

	s.Run("nothing within horizon", func() {
		s.addBooking("2026-04-01", "2026-04-30", booking.StatusPaid)
		q := queries.NewAvailabilityQueries(s.store, s.clock, config.BookingConfig{SearchHorizonDays: 10})
		stay, err := q.FindNextAvailable(s.ctx, s.unit.ID(), day("2026-04-01"), 2)
		s.Require().NoError(err)
		s.Nil(stay)
	})

	s.Run("length rule violations surface", func() {
		_, err := s.q.FindNextAvailable(s.ctx, s.unit.ID(), day("2026-03-01"), 45)
		s.True(errs.Is(err, errs.ErrInvalidStayLength))

		_, err = s.q.FindNextAvailable(s.ctx, s.unit.ID(), day("2026-03-01"), 0)
		s.True(errs.Is(err, errs.ErrInvalidStayLength))
	})
}

func (s *AvailabilityQueriesTestSuite) TestCalendarEvents() {
	b := s.addBooking("2026-03-10", "2026-03-12", booking.StatusConfirmed)
	reason := "painting"
	s.block(calendar.SourceManual, &reason, "2026-03-15", "2026-03-16", "2026-03-17")
	s.block(calendar.Source("vrbo"), nil, "2026-03-18")

	events, err := s.q.CalendarEvents(s.ctx, s.unit.ID(), day("2026-03-01"), day("2026-04-01"))
	s.Require().NoError(err)
	s.Require().Len(events, 3)

	s.Equal(b.ID().String(), events[0].ID)
	s.Equal("booking", events[0].Kind)
	s.Equal("2026-03-12", events[0].End)

	s.Equal("painting", events[1].Title)
	s.Equal("2026-03-15", events[1].Start)
	s.Equal("2026-03-18", events[1].End)
	s.Equal("manual", events[1].Status)

	s.Equal("Blocked", events[2].Title)
	s.Equal("vrbo", events[2].Status)
}

func ptrID(id uuid.UUID) *uuid.UUID { return &id }

// EvaluateStay is shared with booking creation; the exclusion must not hide other bookings.
func TestEvaluateStay_ExcludeOnlyOwnBooking(t *testing.T) {
	store := memstore.New()
	u := builder.NewUnitBuilder().BuildDomain()
	store.AddUnit(u)

	mine := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UnitID = u.ID() }).
		WithStay(day("2026-05-01"), day("2026-05-04")).BuildDomain()
	other := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UnitID = u.ID() }).
		WithStay(day("2026-05-04"), day("2026-05-06")).BuildDomain()
	store.AddBooking(mine)
	store.AddBooking(other)

	stay, err := queries.NewStay(day("2026-05-02"), day("2026-05-05"))
	require.NoError(t, err)

	var result availability.Result
	err = store.WithinReadOnly(context.Background(), func(ctx context.Context, reads shared.CommandReads) error {
		var err error
		result, err = queries.EvaluateStay(ctx, reads, u, stay, ptrID(mine.ID()))
		return err
	})
	require.NoError(t, err)
	assert.False(t, result.Available)
	assert.Equal(t, []time.Time{day("2026-05-04")}, result.ConflictingDates)
}
