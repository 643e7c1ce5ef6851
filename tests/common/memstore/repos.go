//go:build unit

package memstore

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/calsync"
	"stayhub/internal/domain/unit"
	"stayhub/internal/infra"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// errExclusion is the code the real booking repository classifies; raising it here keeps the
// usecases on the same error path.
var errExclusion = &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type unitRepo struct{ st *state }

func (r unitRepo) LockForUpdate(_ context.Context, _ sqlc.DBTX, unitID uuid.UUID) (*unit.Unit, error) {
	u, ok := r.st.units[unitID]
	if !ok {
		return nil, notFound("unit not found")
	}
	return u, nil
}

type bookingRepo struct {
	st    *state
	store *Store
}

func (r bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if hook := r.store.CreateHook; hook != nil {
		if winner := hook(); winner != nil {
			// the store lock is held by the running transaction
			r.store.data.bookings[winner.ID()] = copyBooking(winner)
			r.st.bookings[winner.ID()] = copyBooking(winner)
		}
	}
	for _, other := range r.st.bookings {
		if other.UnitID() == b.UnitID() && other.Status().IsActive() && other.Stay().Overlaps(b.Stay()) {
			return infra.WrapRepoErr("failed to create booking", errExclusion)
		}
	}
	r.st.bookings[b.ID()] = copyBooking(b)
	return nil
}

func (r bookingRepo) FindForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return copyBooking(b), nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if _, ok := r.st.bookings[b.ID()]; !ok {
		return notFound("booking not found")
	}
	r.st.bookings[b.ID()] = copyBooking(b)
	return nil
}

type historyRepo struct{ st *state }

func (r historyRepo) Append(_ context.Context, _ sqlc.DBTX, entry booking.StatusChange) error {
	r.st.history[entry.BookingID] = append(r.st.history[entry.BookingID], entry)
	return nil
}

type promoRepo struct{ st *state }

func (r promoRepo) IncrementUsage(_ context.Context, _ sqlc.DBTX, promoID uuid.UUID) (bool, error) {
	for _, p := range r.st.promos {
		if p.ID() != promoID {
			continue
		}
		if !p.IsActive() {
			return false, nil
		}
		if limit := p.UsageLimit(); limit != nil && r.st.promoUsed[promoID] >= *limit {
			return false, nil
		}
		r.st.promoUsed[promoID]++
		return true, nil
	}
	return false, nil
}

func (r promoRepo) DecrementUsage(_ context.Context, _ sqlc.DBTX, promoID uuid.UUID) error {
	if r.st.promoUsed[promoID] > 0 {
		r.st.promoUsed[promoID]--
	}
	return nil
}

type blockedRepo struct{ st *state }

func (r blockedRepo) bookedOn(unitID uuid.UUID, day time.Time) bool {
	for _, b := range r.st.bookings {
		if b.UnitID() == unitID && b.Status().IsActive() && b.Stay().Contains(day) {
			return true
		}
	}
	return false
}

func (r blockedRepo) UpsertManual(_ context.Context, _ sqlc.DBTX, unitID uuid.UUID, day time.Time, reason *string) (bool, error) {
	day = calendar.Day(day)
	if r.bookedOn(unitID, day) {
		return false, nil
	}
	key := blockKey{unitID, calendar.Key(day)}
	if existing, ok := r.st.blocked[key]; ok {
		if existing.Source != calendar.SourceManual {
			return false, nil
		}
		existing.Reason = reason
		r.st.blocked[key] = existing
		return true, nil
	}
	r.st.blocked[key] = calendar.BlockedDay{
		ID:     uuid.New(),
		UnitID: unitID,
		Date:   day,
		Source: calendar.SourceManual,
		Reason: reason,
	}
	return true, nil
}

func (r blockedRepo) DeleteManual(_ context.Context, _ sqlc.DBTX, unitID uuid.UUID, day time.Time) (bool, error) {
	key := blockKey{unitID, calendar.Key(day)}
	existing, ok := r.st.blocked[key]
	if !ok || existing.Source != calendar.SourceManual {
		return false, nil
	}
	delete(r.st.blocked, key)
	return true, nil
}

func (r blockedRepo) InsertImported(_ context.Context, _ sqlc.DBTX, day calendar.BlockedDay) (bool, error) {
	key := blockKey{day.UnitID, calendar.Key(day.Date)}
	if _, ok := r.st.blocked[key]; ok {
		return false, nil
	}
	if day.ID == uuid.Nil {
		day.ID = uuid.New()
	}
	day.Date = calendar.Day(day.Date)
	r.st.blocked[key] = day
	return true, nil
}

func (r blockedRepo) DeleteBySyncConfig(_ context.Context, _ sqlc.DBTX, unitID, syncConfigID uuid.UUID) (int64, error) {
	var n int64
	for k, v := range r.st.blocked {
		if k.unitID == unitID && v.SyncConfigID != nil && *v.SyncConfigID == syncConfigID {
			delete(r.st.blocked, k)
			n++
		}
	}
	return n, nil
}

type syncRepo struct{ st *state }

func (r syncRepo) Create(_ context.Context, _ sqlc.DBTX, cfg *calsync.Config) error {
	r.st.syncs[cfg.ID()] = copyConfig(cfg)
	return nil
}

func (r syncRepo) SaveState(_ context.Context, _ sqlc.DBTX, cfg *calsync.Config) error {
	if _, ok := r.st.syncs[cfg.ID()]; !ok {
		return notFound("calendar sync not found")
	}
	r.st.syncs[cfg.ID()] = copyConfig(cfg)
	return nil
}

type eventRepo struct{ st *state }

func (r eventRepo) ReplaceAll(_ context.Context, _ sqlc.DBTX, syncID uuid.UUID, events []calsync.ExternalEvent) error {
	r.st.events[syncID] = append([]calsync.ExternalEvent(nil), events...)
	return nil
}

type idemRepo struct {
	st    *state
	store *Store
}

func (r idemRepo) Reserve(_ context.Context, _ sqlc.DBTX, rec shared.IdempotencyRecord, endpoint string) (bool, error) {
	key := idemKey{rec.Key, rec.UserID}
	if hook := r.store.ReserveHook; hook != nil {
		if winner := hook(); winner != nil {
			id := winner.ID()
			done := rec
			done.Status = shared.IdempotencyCompleted
			done.ResultBookingID = &id
			// the store lock is held by the running transaction
			for _, st := range []*state{r.store.data, r.st} {
				st.bookings[id] = copyBooking(winner)
				st.idem[key] = idemEntry{rec: done, endpoint: endpoint}
			}
		}
	}
	if _, ok := r.st.idem[key]; ok {
		return false, nil
	}
	rec.Status = shared.IdempotencyProcessing
	r.st.idem[key] = idemEntry{rec: rec, endpoint: endpoint}
	return true, nil
}

func (r idemRepo) Complete(_ context.Context, _ sqlc.DBTX, key, userID, bookingID uuid.UUID) error {
	k := idemKey{key, userID}
	e, ok := r.st.idem[k]
	if !ok {
		return notFound("idempotency key not reserved")
	}
	e.rec.Status = shared.IdempotencyCompleted
	e.rec.ResultBookingID = &bookingID
	r.st.idem[k] = e
	return nil
}

func (r idemRepo) DeleteExpired(_ context.Context, _ sqlc.DBTX, key, userID uuid.UUID, now time.Time) error {
	k := idemKey{key, userID}
	if e, ok := r.st.idem[k]; ok && e.rec.Expired(now) {
		delete(r.st.idem, k)
	}
	return nil
}

type jobRepo struct{ st *state }

func (r jobRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.st.jobs = append(r.st.jobs, Job{
		ID:      uuid.New(),
		Kind:    kind,
		Topic:   topic,
		Payload: decodePayload(payload),
		RunAt:   runAt,
		raw:     append([]byte(nil), payload...),
	})
	return nil
}
