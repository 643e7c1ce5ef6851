package unit

import (
	"time"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusHidden    Status = "hidden"
	StatusArchived  Status = "archived"
)

// Unit is a rentable property as the booking engine sees it.
type Unit struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	title     string
	status    Status
	minNights int
	maxNights int
	maxGuests int
	createdAt time.Time
	updatedAt time.Time
}

func ReconstructUnit(
	id, ownerID uuid.UUID,
	title string,
	status Status,
	minNights, maxNights, maxGuests int,
	createdAt, updatedAt time.Time,
) *Unit {
	return &Unit{
		id:        id,
		ownerID:   ownerID,
		title:     title,
		status:    status,
		minNights: minNights,
		maxNights: maxNights,
		maxGuests: maxGuests,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *Unit) IsBookable() bool {
	return u.status == StatusPublished
}

// ValidateStay checks the stay-length bounds configured by the owner.
func (u *Unit) ValidateStay(nights int) error {
	if !u.IsBookable() {
		return errs.ErrUnbookable
	}
	if nights < u.minNights || (u.maxNights > 0 && nights > u.maxNights) {
		return errs.ErrInvalidStayLength
	}
	return nil
}

func (u *Unit) ValidateGuests(guests int) error {
	if guests < 1 {
		return errs.ErrDomainValidation
	}
	if guests > u.maxGuests {
		return errs.ErrGuestCountExceeded
	}
	return nil
}

func (u *Unit) ID() uuid.UUID        { return u.id }
func (u *Unit) OwnerID() uuid.UUID   { return u.ownerID }
func (u *Unit) Title() string        { return u.title }
func (u *Unit) Status() Status       { return u.status }
func (u *Unit) MinNights() int       { return u.minNights }
func (u *Unit) MaxNights() int       { return u.maxNights }
func (u *Unit) MaxGuests() int       { return u.maxGuests }
func (u *Unit) CreatedAt() time.Time { return u.createdAt }
func (u *Unit) UpdatedAt() time.Time { return u.updatedAt }
