package queries

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/user"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error)
	History(ctx context.Context, actor user.Actor, id uuid.UUID) ([]StatusChangeView, error)
	// Stats counts bookings per status, for one unit or for every unit the actor may see.
	Stats(ctx context.Context, actor user.Actor, unitID *uuid.UUID) (*BookingStatsView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

// AuthorizeBooking allows the guest who booked, the unit's owner and admins.
func AuthorizeBooking(ctx context.Context, reads shared.CommandReads, actor user.Actor, b *booking.Booking) error {
	if actor.IsAdmin() || actor.ID == b.GuestID() {
		return nil
	}
	u, err := LoadUnit(ctx, reads, b.UnitID())
	if err != nil {
		return err
	}
	if !actor.CanManage(u.OwnerID()) {
		return errs.ErrForbidden
	}
	return nil
}

func (q *bookingQueriesImpl) load(ctx context.Context, reads shared.CommandReads, actor user.Actor, id uuid.UUID) (*booking.Booking, error) {
	b, err := reads.BookingByID(ctx, id)
	if err != nil {
		return nil, notFound(err, errs.ErrBookingNotFound)
	}
	if err := AuthorizeBooking(ctx, reads, actor, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor user.Actor, id uuid.UUID) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		b, err := q.load(ctx, reads, actor, id)
		if err != nil {
			return err
		}
		view = ToBookingView(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) History(ctx context.Context, actor user.Actor, id uuid.UUID) ([]StatusChangeView, error) {
	var out []StatusChangeView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		if _, err := q.load(ctx, reads, actor, id); err != nil {
			return err
		}
		changes, err := reads.BookingHistory(ctx, id)
		if err != nil {
			return err
		}
		out = make([]StatusChangeView, 0, len(changes))
		for _, c := range changes {
			out = append(out, ToStatusChangeView(c))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (q *bookingQueriesImpl) Stats(ctx context.Context, actor user.Actor, unitID *uuid.UUID) (*BookingStatsView, error) {
	if unitID == nil && !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	var counts map[booking.Status]int64
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		if unitID != nil {
			u, err := LoadUnit(ctx, reads, *unitID)
			if err != nil {
				return err
			}
			if !actor.CanManage(u.OwnerID()) {
				return errs.ErrForbidden
			}
		}
		var err error
		counts, err = reads.BookingCounts(ctx, unitID)
		return err
	})
	if err != nil {
		return nil, err
	}

	view := &BookingStatsView{UnitID: unitID, Counts: make(map[string]int64, len(booking.AllStatuses()))}
	for _, s := range booking.AllStatuses() {
		n := counts[s]
		view.Counts[s.String()] = n
		view.Total += n
	}
	return view, nil
}
