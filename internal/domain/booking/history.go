package booking

import (
	"time"

	"github.com/google/uuid"
)

// StatusChange is one append-only history entry. From is nil for the creation entry.
type StatusChange struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	From      *Status
	To        Status
	Comment   *string
	ActorID   *uuid.UUID
	CreatedAt time.Time
}

func NewCreationEntry(b *Booking, actorID *uuid.UUID) StatusChange {
	return StatusChange{
		ID:        uuid.New(),
		BookingID: b.id,
		To:        b.status,
		ActorID:   actorID,
		CreatedAt: b.createdAt,
	}
}

func NewTransitionEntry(b *Booking, out Outcome, actorID *uuid.UUID, comment *string) StatusChange {
	from := out.From
	return StatusChange{
		ID:        uuid.New(),
		BookingID: b.id,
		From:      &from,
		To:        out.To,
		Comment:   comment,
		ActorID:   actorID,
		CreatedAt: b.updatedAt,
	}
}
