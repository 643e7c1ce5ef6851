package calendar

import "time"

// DateRange is a stay interval [CheckIn, CheckOut). The check-out day is never occupied.
type DateRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	in, out := Day(checkIn), Day(checkOut)
	if !out.After(in) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{checkIn: in, checkOut: out}, nil
}

// ReconstructDateRange rebuilds a range from trusted storage without validation.
func ReconstructDateRange(checkIn, checkOut time.Time) DateRange {
	return DateRange{checkIn: Day(checkIn), checkOut: Day(checkOut)}
}

func (r DateRange) CheckIn() time.Time  { return r.checkIn }
func (r DateRange) CheckOut() time.Time { return r.checkOut }

func (r DateRange) Nights() int {
	return NightsBetween(r.checkIn, r.checkOut)
}

func (r DateRange) Days() []time.Time {
	return EachDay(r.checkIn, r.checkOut)
}

func (r DateRange) Contains(d time.Time) bool {
	d = Day(d)
	return !d.Before(r.checkIn) && d.Before(r.checkOut)
}

// Overlaps is the half-open test: back-to-back stays sharing a turnover day do not overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.checkIn.Before(other.checkOut) && r.checkOut.After(other.checkIn)
}

// Intersect returns the exact nights both ranges occupy.
func (r DateRange) Intersect(other DateRange) []time.Time {
	if !r.Overlaps(other) {
		return nil
	}
	from := r.checkIn
	if other.checkIn.After(from) {
		from = other.checkIn
	}
	to := r.checkOut
	if other.checkOut.Before(to) {
		to = other.checkOut
	}
	return EachDay(from, to)
}

func (r DateRange) String() string {
	return Key(r.checkIn) + "/" + Key(r.checkOut)
}
