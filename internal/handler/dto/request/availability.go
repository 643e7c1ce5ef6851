package request

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityQuery struct {
	CheckIn          string `form:"check_in" binding:"required,isodate"`
	CheckOut         string `form:"check_out" binding:"required,isodate"`
	ExcludeBookingID string `form:"exclude_booking_id" binding:"omitempty,uuid"`
}

func (r AvailabilityQuery) ToInput(unitID uuid.UUID) (queries.CheckAvailabilityInput, error) {
	in := queries.CheckAvailabilityInput{UnitID: unitID}
	var err error
	if in.CheckIn, err = parseDay("check_in", r.CheckIn); err != nil {
		return in, err
	}
	if in.CheckOut, err = parseDay("check_out", r.CheckOut); err != nil {
		return in, err
	}
	if r.ExcludeBookingID != "" {
		id, err := uuid.Parse(r.ExcludeBookingID)
		if err != nil {
			return in, err
		}
		in.ExcludeBookingID = &id
	}
	return in, nil
}

// DateRangeQuery is a half-open [start, end) window.
type DateRangeQuery struct {
	Start string `form:"start" binding:"required,isodate"`
	End   string `form:"end" binding:"required,isodate"`
}

func (r DateRangeQuery) Days() (time.Time, time.Time, error) {
	start, err := parseDay("start", r.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDay("end", r.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

type CalendarMonthQuery struct {
	Year  int `form:"year" binding:"required,min=1970,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

type NextAvailableQuery struct {
	PreferredCheckIn string `form:"preferred_check_in" binding:"required,isodate"`
	Nights           int    `form:"nights" binding:"required,min=1,max=365"`
}

func (r NextAvailableQuery) Preferred() (time.Time, error) {
	return parseDay("preferred_check_in", r.PreferredCheckIn)
}
