package availability

import (
	"time"

	"stayhub/internal/domain/calendar"

	"github.com/google/uuid"
)

const (
	ReasonOccupied = "dates occupied"
	ReasonBlocked  = "dates blocked"
)

// Occupancy is an active booking's footprint on the calendar.
type Occupancy struct {
	BookingID uuid.UUID
	Stay      calendar.DateRange
}

type Result struct {
	Available        bool
	Reason           string
	ConflictingDates []time.Time
}

// Evaluate checks a stay against the unit's active bookings first and its blocked days second.
// Only the first kind of conflict found is reported.
func Evaluate(stay calendar.DateRange, bookings []Occupancy, blocked []calendar.BlockedDay, exclude *uuid.UUID) Result {
	var occupied []time.Time
	for _, b := range bookings {
		if exclude != nil && b.BookingID == *exclude {
			continue
		}
		if stay.Overlaps(b.Stay) {
			occupied = append(occupied, stay.Intersect(b.Stay)...)
		}
	}
	if len(occupied) > 0 {
		return Result{Reason: ReasonOccupied, ConflictingDates: calendar.SortDays(occupied)}
	}

	var hits []time.Time
	for _, d := range blocked {
		if stay.Contains(d.Date) {
			hits = append(hits, d.Date)
		}
	}
	if len(hits) > 0 {
		return Result{Reason: ReasonBlocked, ConflictingDates: calendar.SortDays(hits)}
	}
	return Result{Available: true}
}

// Window is the loaded state of a unit over a period, used for repeated in-memory checks.
type Window struct {
	bookings []Occupancy
	blocked  []calendar.BlockedDay
}

func NewWindow(bookings []Occupancy, blocked []calendar.BlockedDay) *Window {
	return &Window{bookings: bookings, blocked: blocked}
}

func (w *Window) Check(stay calendar.DateRange) Result {
	return Evaluate(stay, w.bookings, w.blocked, nil)
}

// Busy reports whether a single day is booked or blocked.
func (w *Window) Busy(d time.Time) bool {
	d = calendar.Day(d)
	for _, b := range w.bookings {
		if b.Stay.Contains(d) {
			return true
		}
	}
	for _, bd := range w.blocked {
		if calendar.Day(bd.Date).Equal(d) {
			return true
		}
	}
	return false
}

// FirstFree scans forward one day at a time from preferred and returns the first stay of the given
// length that is free. Only the horizonDays check-ins starting at preferred are tried.
func (w *Window) FirstFree(preferred time.Time, nights, horizonDays int) (calendar.DateRange, bool) {
	start := calendar.Day(preferred)
	for i := 0; i < horizonDays; i++ {
		in := calendar.AddDays(start, i)
		stay, err := calendar.NewDateRange(in, calendar.AddDays(in, nights))
		if err != nil {
			return calendar.DateRange{}, false
		}
		if w.Check(stay).Available {
			return stay, true
		}
	}
	return calendar.DateRange{}, false
}
