//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/user"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingQueries_Access(t *testing.T) {
	store := memstore.New()
	owner := uuid.New()
	u := builder.NewUnitBuilder().WithOwner(owner).BuildDomain()
	store.AddUnit(u)

	b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) { bb.UnitID = u.ID() }).BuildDomain()
	store.AddBooking(b)

	q := queries.NewBookingQueries(store)
	ctx := context.Background()

	testCases := []struct {
		name    string
		actor   user.Actor
		wantErr error
	}{
		{name: "guest who booked", actor: user.Actor{ID: b.GuestID(), Role: user.RoleGuest}},
		{name: "unit owner", actor: user.Actor{ID: owner, Role: user.RoleOwner}},
		{name: "admin", actor: user.Actor{ID: uuid.New(), Role: user.RoleAdmin}},
		{name: "another guest", actor: user.Actor{ID: uuid.New(), Role: user.RoleGuest}, wantErr: errs.ErrForbidden},
		{name: "another owner", actor: user.Actor{ID: uuid.New(), Role: user.RoleOwner}, wantErr: errs.ErrForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			view, err := q.GetByID(ctx, tc.actor, b.ID())
			if tc.wantErr != nil {
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID(), view.ID)
			assert.Equal(t, b.Number().String(), view.BookingNumber)
		})
	}

	t.Run("missing booking", func(t *testing.T) {
		_, err := q.GetByID(ctx, user.Actor{ID: owner, Role: user.RoleAdmin}, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrBookingNotFound))
	})
}

func TestBookingQueries_History(t *testing.T) {
	store := memstore.New()
	u := builder.NewUnitBuilder().BuildDomain()
	store.AddUnit(u)
	b := builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) { bb.UnitID = u.ID() }).BuildDomain()
	store.AddBooking(b)

	ctx := context.Background()
	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pending := booking.StatusPending
		if err := tx.BookingHistory().Append(ctx, tx.DB(), booking.StatusChange{
			ID: uuid.New(), BookingID: b.ID(), To: booking.StatusPending, CreatedAt: time.Now(),
		}); err != nil {
			return err
		}
		return tx.BookingHistory().Append(ctx, tx.DB(), booking.StatusChange{
			ID: uuid.New(), BookingID: b.ID(), From: &pending, To: booking.StatusConfirmed, CreatedAt: time.Now(),
		})
	})
	require.NoError(t, err)

	items, err := queries.NewBookingQueries(store).History(ctx, user.Actor{ID: b.GuestID(), Role: user.RoleGuest}, b.ID())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Nil(t, items[0].FromStatus)
	assert.Equal(t, "pending", items[0].ToStatus)
	require.NotNil(t, items[1].FromStatus)
	assert.Equal(t, "pending", *items[1].FromStatus)
	assert.Equal(t, "confirmed", items[1].ToStatus)
}

func TestBookingQueries_Stats(t *testing.T) {
	store := memstore.New()
	owner := uuid.New()
	u := builder.NewUnitBuilder().WithOwner(owner).BuildDomain()
	other := builder.NewUnitBuilder().BuildDomain()
	store.AddUnit(u)
	store.AddUnit(other)

	for _, st := range []booking.Status{booking.StatusPending, booking.StatusPaid, booking.StatusPaid, booking.StatusCanceled} {
		store.AddBooking(builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) { bb.UnitID = u.ID() }).WithStatus(st).BuildDomain())
	}
	store.AddBooking(builder.NewBookingBuilder().With(func(bb *builder.BookingBuilder) { bb.UnitID = other.ID() }).BuildDomain())

	q := queries.NewBookingQueries(store)
	ctx := context.Background()
	unitID := u.ID()

	t.Run("owner sees their unit", func(t *testing.T) {
		view, err := q.Stats(ctx, user.Actor{ID: owner, Role: user.RoleOwner}, &unitID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), view.Total)
		assert.Equal(t, int64(2), view.Counts["paid"])
		assert.Equal(t, int64(0), view.Counts["refunded"])
		assert.Len(t, view.Counts, len(booking.AllStatuses()))
	})

	t.Run("admin sees every unit", func(t *testing.T) {
		view, err := q.Stats(ctx, user.Actor{ID: uuid.New(), Role: user.RoleAdmin}, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(5), view.Total)
		assert.Nil(t, view.UnitID)
	})

	t.Run("fleet-wide stats need admin", func(t *testing.T) {
		_, err := q.Stats(ctx, user.Actor{ID: owner, Role: user.RoleOwner}, nil)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("foreign unit", func(t *testing.T) {
		otherID := other.ID()
		_, err := q.Stats(ctx, user.Actor{ID: owner, Role: user.RoleOwner}, &otherID)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}
