package calendar

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidSource = errors.New("invalid blocked date source")

// Source tags who owns a blocked day. Imported days carry the provider tag of their sync config.
type Source string

const (
	SourceManual  Source = "manual"
	SourceBooking Source = "booking"
)

func NewExternalSource(tag string) (Source, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" || Source(tag) == SourceManual || Source(tag) == SourceBooking {
		return "", ErrInvalidSource
	}
	return Source(tag), nil
}

func (s Source) String() string { return string(s) }

func (s Source) IsExternal() bool {
	return s != SourceManual && s != SourceBooking && s != ""
}

// BlockedDay marks one unit-day as unavailable for reasons other than a booking.
// SyncConfigID is set on imported days and names the feed that owns them.
type BlockedDay struct {
	ID           uuid.UUID
	UnitID       uuid.UUID
	Date         time.Time
	Source       Source
	Reason       *string
	ExternalRef  *string
	SyncConfigID *uuid.UUID
}

// DateGroup is a run of consecutive days sharing a source. End is inclusive.
type DateGroup struct {
	UnitID uuid.UUID
	Start  time.Time
	End    time.Time
	Source Source
	Reason *string
	Days   int
}

// ExclusiveEnd is the day after the group, as iCal DTEND expects.
func (g DateGroup) ExclusiveEnd() time.Time {
	return AddDays(g.End, 1)
}

// GroupConsecutive sorts by date and starts a new group whenever the gap exceeds one day
// or the source changes.
func GroupConsecutive(days []BlockedDay) []DateGroup {
	if len(days) == 0 {
		return nil
	}
	sorted := make([]BlockedDay, len(days))
	copy(sorted, days)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	groups := make([]DateGroup, 0, len(sorted))
	first := sorted[0]
	current := DateGroup{UnitID: first.UnitID, Start: Day(first.Date), End: Day(first.Date), Source: first.Source, Reason: first.Reason, Days: 1}

	for _, d := range sorted[1:] {
		day := Day(d.Date)
		if d.Source == current.Source && NightsBetween(current.End, day) <= 1 {
			if day.After(current.End) {
				current.End = day
				current.Days++
			}
			continue
		}
		groups = append(groups, current)
		current = DateGroup{UnitID: d.UnitID, Start: day, End: day, Source: d.Source, Reason: d.Reason, Days: 1}
	}
	return append(groups, current)
}
