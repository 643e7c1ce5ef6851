package errs

import (
	"errors"
	"strings"
	"time"
)

// Domain-specific sentinel errors shared by the domain and usecase layers
var (
	ErrNotFound = errors.New("not found")

	ErrUnitNotFound         error = &notFoundError{msg: "unit not found"}
	ErrPricingRuleNotFound  error = &notFoundError{msg: "pricing rule not found"}
	ErrBookingNotFound      error = &notFoundError{msg: "booking not found"}
	ErrPromoNotFound        error = &notFoundError{msg: "promo code not found"}
	ErrCalendarSyncNotFound error = &notFoundError{msg: "calendar sync not found"}

	// Availability errors
	ErrUnbookable        = errors.New("unit is not bookable")
	ErrInvalidStayLength = errors.New("stay length outside allowed range")
	ErrInvalidDates      = errors.New("invalid stay dates")
	ErrDatesOccupied     = errors.New("dates occupied")

	// Booking errors
	ErrGuestCountExceeded = errors.New("guest count exceeds unit capacity")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrPromoInvalid       = errors.New("promo code invalid")
	ErrForbidden          = errors.New("forbidden")

	// Calendar sync errors
	ErrInactive  = errors.New("calendar sync inactive")
	ErrSyncFetch = errors.New("calendar fetch failed")
	ErrSyncParse = errors.New("calendar parse failed")

	// Idempotency errors
	ErrIdempotencyKeyReused = errors.New("idempotency key reused with a different request")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)

type notFoundError struct {
	msg string
}

func (e *notFoundError) Error() string { return e.msg }

func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

// DatesOccupiedError carries the exact dates that blocked a stay.
type DatesOccupiedError struct {
	Reason string
	Dates  []time.Time
}

func (e *DatesOccupiedError) Error() string {
	if len(e.Dates) == 0 {
		return e.Reason
	}
	days := make([]string, len(e.Dates))
	for i, d := range e.Dates {
		days[i] = d.Format(time.DateOnly)
	}
	return e.Reason + ": " + strings.Join(days, ", ")
}

func (e *DatesOccupiedError) Is(target error) bool {
	return target == ErrDatesOccupied
}

// PromoInvalidError carries the human-readable reason a promo code was rejected.
type PromoInvalidError struct {
	Message string
}

func (e *PromoInvalidError) Error() string {
	return "promo code invalid: " + e.Message
}

func (e *PromoInvalidError) Is(target error) bool {
	return target == ErrPromoInvalid
}
