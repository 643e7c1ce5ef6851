package booking

import (
	"slices"

	"stayhub/internal/pkg/errs"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPaid      Status = "paid"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
	StatusRefunded  Status = "refunded"
)

// transitions is the whole lifecycle. A pair missing here is not a legal move.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusPaid, StatusCanceled},
	StatusPaid:      {StatusCompleted, StatusCanceled, StatusRefunded},
	StatusCompleted: {StatusRefunded},
	StatusCanceled:  nil,
	StatusRefunded:  nil,
}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusPaid, StatusCompleted, StatusCanceled, StatusRefunded}
}

// ActiveStatuses hold the unit's nights.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusPaid}
}

// ExportedStatuses are published to external calendars.
func ExportedStatuses() []Status {
	return []Status{StatusConfirmed, StatusPaid, StatusCompleted}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", errs.Wrapf(errs.ErrDomainValidation, "unknown booking status %q", s)
	}
	return st, nil
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsActive() bool { return slices.Contains(ActiveStatuses(), s) }

func (s Status) IsTerminal() bool { return s.IsValid() && len(transitions[s]) == 0 }

func CanTransition(from, to Status) bool {
	return slices.Contains(transitions[from], to)
}

// Transition is the single gate every status change passes through.
func Transition(from, to Status) error {
	if !CanTransition(from, to) {
		return errs.Wrapf(errs.ErrInvalidTransition, "%s -> %s", from, to)
	}
	return nil
}

type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "pending"
	PaymentCompleted         PaymentStatus = "completed"
	PaymentPartiallyRefunded PaymentStatus = "partially_refunded"
	PaymentRefunded          PaymentStatus = "refunded"
	PaymentFailed            PaymentStatus = "failed"
)

func (p PaymentStatus) String() string { return string(p) }
