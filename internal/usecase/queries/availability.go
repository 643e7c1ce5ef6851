package queries

import (
	"context"
	"sort"
	"time"

	"stayhub/internal/domain/availability"
	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/unit"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultSearchHorizonDays = 90

type CheckAvailabilityInput struct {
	UnitID           uuid.UUID
	CheckIn          time.Time
	CheckOut         time.Time
	ExcludeBookingID *uuid.UUID
}

type AvailabilityQueries interface {
	CheckAvailability(ctx context.Context, in CheckAvailabilityInput) (*AvailabilityView, error)
	OccupiedDates(ctx context.Context, unitID uuid.UUID, start, end time.Time) ([]OccupiedDateView, error)
	AvailabilityCalendar(ctx context.Context, unitID uuid.UUID, year int, month time.Month) ([]CalendarDayView, error)
	// FindNextAvailable returns nil when no window fits inside the search horizon.
	FindNextAvailable(ctx context.Context, unitID uuid.UUID, preferredCheckIn time.Time, nights int) (*StayView, error)
	CalendarEvents(ctx context.Context, unitID uuid.UUID, start, end time.Time) ([]CalendarEventView, error)
}

type availabilityQueriesImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	horizonDays int
}

func NewAvailabilityQueries(uow shared.UnitOfWork, clk clock.Clock, cfg config.BookingConfig) AvailabilityQueries {
	horizon := cfg.SearchHorizonDays
	if horizon <= 0 {
		horizon = defaultSearchHorizonDays
	}
	return &availabilityQueriesImpl{uow: uow, clock: clk, horizonDays: horizon}
}

// NewStay validates a check-in/check-out pair.
func NewStay(checkIn, checkOut time.Time) (calendar.DateRange, error) {
	stay, err := calendar.NewDateRange(checkIn, checkOut)
	if err != nil {
		return calendar.DateRange{}, errs.Mark(err, errs.ErrInvalidDates)
	}
	return stay, nil
}

// LoadUnit reads a unit and maps a miss to ErrUnitNotFound.
func LoadUnit(ctx context.Context, reads shared.CommandReads, unitID uuid.UUID) (*unit.Unit, error) {
	u, err := reads.UnitByID(ctx, unitID)
	if err != nil {
		return nil, notFound(err, errs.ErrUnitNotFound)
	}
	return u, nil
}

func Occupancies(bookings []*booking.Booking) []availability.Occupancy {
	out := make([]availability.Occupancy, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, availability.Occupancy{BookingID: b.ID(), Stay: b.Stay()})
	}
	return out
}

// EvaluateStay applies the unit's stay rules and then looks for booking or blocked-date conflicts.
// It is shared by the public availability check and the in-transaction re-check of booking creation.
func EvaluateStay(ctx context.Context, reads shared.CommandReads, u *unit.Unit, stay calendar.DateRange, exclude *uuid.UUID) (availability.Result, error) {
	if err := u.ValidateStay(stay.Nights()); err != nil {
		return availability.Result{}, err
	}
	window, err := loadWindow(ctx, reads, u.ID(), stay.CheckIn(), stay.CheckOut())
	if err != nil {
		return availability.Result{}, err
	}
	return availability.Evaluate(stay, window.bookings, window.blocked, exclude), nil
}

type loadedWindow struct {
	bookings []availability.Occupancy
	blocked  []calendar.BlockedDay
	raw      []*booking.Booking
}

func loadWindow(ctx context.Context, reads shared.CommandReads, unitID uuid.UUID, from, to time.Time) (*loadedWindow, error) {
	bookings, err := reads.BookingsInRange(ctx, unitID, from, to, booking.ActiveStatuses())
	if err != nil {
		return nil, err
	}
	blocked, err := reads.BlockedDaysInRange(ctx, unitID, from, to)
	if err != nil {
		return nil, err
	}
	return &loadedWindow{bookings: Occupancies(bookings), blocked: blocked, raw: bookings}, nil
}

func (q *availabilityQueriesImpl) CheckAvailability(ctx context.Context, in CheckAvailabilityInput) (*AvailabilityView, error) {
	stay, err := NewStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}

	var result availability.Result
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		u, err := LoadUnit(ctx, reads, in.UnitID)
		if err != nil {
			return err
		}
		result, err = EvaluateStay(ctx, reads, u, stay, in.ExcludeBookingID)
		return err
	})
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{Available: result.Available, Reason: result.Reason}
	if len(result.ConflictingDates) > 0 {
		view.ConflictingDates = dayKeys(result.ConflictingDates)
	}
	return view, nil
}

func (q *availabilityQueriesImpl) OccupiedDates(ctx context.Context, unitID uuid.UUID, start, end time.Time) ([]OccupiedDateView, error) {
	window, err := NewStay(start, end)
	if err != nil {
		return nil, err
	}

	var out []OccupiedDateView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		if _, err := LoadUnit(ctx, reads, unitID); err != nil {
			return err
		}
		loaded, err := loadWindow(ctx, reads, unitID, window.CheckIn(), window.CheckOut())
		if err != nil {
			return err
		}

		for _, b := range loaded.raw {
			for _, d := range b.Stay().Days() {
				if !window.Contains(d) {
					continue
				}
				out = append(out, OccupiedDateView{
					Date:      calendar.Key(d),
					BookingID: b.ID().String(),
					Status:    b.Status().String(),
				})
			}
		}
		for _, bd := range loaded.blocked {
			out = append(out, OccupiedDateView{
				Date:      calendar.Key(bd.Date),
				BookingID: BlockedMarker,
				Status:    bd.Source.String(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (q *availabilityQueriesImpl) AvailabilityCalendar(ctx context.Context, unitID uuid.UUID, year int, month time.Month) ([]CalendarDayView, error) {
	if month < time.January || month > time.December {
		return nil, errs.ErrInvalidDates
	}
	from, to := calendar.MonthRange(year, month)

	var (
		u      *unit.Unit
		win    *availability.Window
		plan   *pricing.Plan
		loaded *loadedWindow
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		var err error
		if u, err = LoadUnit(ctx, reads, unitID); err != nil {
			return err
		}
		if loaded, err = loadWindow(ctx, reads, unitID, from, to); err != nil {
			return err
		}
		plan, err = reads.PricingPlan(ctx, unitID, from, to)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	win = availability.NewWindow(loaded.bookings, loaded.blocked)

	days := calendar.EachDay(from, to)
	out := make([]CalendarDayView, 0, len(days))
	for _, d := range days {
		day := CalendarDayView{Date: calendar.Key(d), Available: u.IsBookable() && !win.Busy(d)}
		if day.Available && plan != nil {
			price := plan.NightlyPrice(d).FinalPrice
			day.Price = &price
		}
		out = append(out, day)
	}
	return out, nil
}

func (q *availabilityQueriesImpl) FindNextAvailable(ctx context.Context, unitID uuid.UUID, preferredCheckIn time.Time, nights int) (*StayView, error) {
	if nights < 1 {
		return nil, errs.ErrInvalidStayLength
	}
	start := calendar.Day(preferredCheckIn)
	if today := calendar.Day(q.clock.Now()); start.Before(today) {
		start = today
	}
	end := calendar.AddDays(start, q.horizonDays+nights)

	var (
		stay  calendar.DateRange
		found bool
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		u, err := LoadUnit(ctx, reads, unitID)
		if err != nil {
			return err
		}
		if err := u.ValidateStay(nights); err != nil {
			return err
		}
		loaded, err := loadWindow(ctx, reads, unitID, start, end)
		if err != nil {
			return err
		}
		stay, found = availability.NewWindow(loaded.bookings, loaded.blocked).FirstFree(start, nights, q.horizonDays)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &StayView{CheckIn: calendar.Key(stay.CheckIn()), CheckOut: calendar.Key(stay.CheckOut()), Nights: stay.Nights()}, nil
}

// CalendarEvents lists bookings and grouped blocked ranges for display.
func (q *availabilityQueriesImpl) CalendarEvents(ctx context.Context, unitID uuid.UUID, start, end time.Time) ([]CalendarEventView, error) {
	window, err := NewStay(start, end)
	if err != nil {
		return nil, err
	}

	var out []CalendarEventView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		if _, err := LoadUnit(ctx, reads, unitID); err != nil {
			return err
		}
		loaded, err := loadWindow(ctx, reads, unitID, window.CheckIn(), window.CheckOut())
		if err != nil {
			return err
		}
		for _, b := range loaded.raw {
			out = append(out, CalendarEventView{
				ID:     b.ID().String(),
				Kind:   "booking",
				Title:  b.Number().String(),
				Start:  calendar.Key(b.Stay().CheckIn()),
				End:    calendar.Key(b.Stay().CheckOut()),
				Status: b.Status().String(),
			})
		}
		for _, g := range calendar.GroupConsecutive(loaded.blocked) {
			title := "Blocked"
			if g.Reason != nil && *g.Reason != "" {
				title = *g.Reason
			}
			out = append(out, CalendarEventView{
				ID:     "blocked-" + calendar.Key(g.Start),
				Kind:   BlockedMarker,
				Title:  title,
				Start:  calendar.Key(g.Start),
				End:    calendar.Key(g.ExclusiveEnd()),
				Status: g.Source.String(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}
