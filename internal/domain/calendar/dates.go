package calendar

import (
	"errors"
	"sort"
	"time"
)

var ErrInvalidRange = errors.New("check-out must be after check-in")

const dayLayout = time.DateOnly

// Day normalises t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a UTC day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func Key(t time.Time) string {
	return t.Format(dayLayout)
}

func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// NightsBetween returns the whole number of calendar days from in to out.
func NightsBetween(in, out time.Time) int {
	return int(Day(out).Sub(Day(in)).Hours() / 24)
}

// EachDay enumerates the days of the half-open interval [from, to).
func EachDay(from, to time.Time) []time.Time {
	from, to = Day(from), Day(to)
	if !from.Before(to) {
		return nil
	}
	days := make([]time.Time, 0, NightsBetween(from, to))
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MonthRange returns the first day of the month and the first day of the next month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// SortDays sorts in place and drops duplicates.
func SortDays(days []time.Time) []time.Time {
	if len(days) == 0 {
		return days
	}
	normalised := make([]time.Time, len(days))
	for i, d := range days {
		normalised[i] = Day(d)
	}
	sort.Slice(normalised, func(i, j int) bool { return normalised[i].Before(normalised[j]) })
	out := normalised[:1]
	for _, d := range normalised[1:] {
		if !d.Equal(out[len(out)-1]) {
			out = append(out, d)
		}
	}
	return out
}
