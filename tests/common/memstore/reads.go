//go:build unit

package memstore

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/calsync"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/promo"
	"stayhub/internal/domain/unit"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// memReads reads the transaction's working copy, or the committed state under the
// store lock when st is nil.
type memReads struct {
	store *Store
	st    *state
}

func (r *memReads) view() (*state, func()) {
	if r.st != nil {
		return r.st, func() {}
	}
	r.store.mu.Lock()
	return r.store.data, r.store.mu.Unlock
}

func (r *memReads) UnitByID(_ context.Context, id uuid.UUID) (*unit.Unit, error) {
	st, done := r.view()
	defer done()
	u, ok := st.units[id]
	if !ok {
		return nil, notFound("unit not found")
	}
	return u, nil
}

func (r *memReads) UnitIDsByOwner(_ context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	st, done := r.view()
	defer done()
	var out []uuid.UUID
	for id, u := range st.units {
		if u.OwnerID() == ownerID {
			out = append(out, id)
		}
	}
	sortIDs(out)
	return out, nil
}

func (r *memReads) PricingPlan(_ context.Context, unitID uuid.UUID, _, _ time.Time) (*pricing.Plan, error) {
	st, done := r.view()
	defer done()
	p, ok := st.plans[unitID]
	if !ok {
		return nil, notFound("pricing rule not found")
	}
	return p, nil
}

func (r *memReads) PromoByCode(_ context.Context, code string) (*promo.PromoCode, error) {
	st, done := r.view()
	defer done()
	p, ok := st.promos[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, notFound("promo code not found")
	}
	return promo.ReconstructPromoCode(promo.ReconstructParams{
		ID:           p.ID(),
		Code:         p.Code(),
		Discount:     p.Discount(),
		MinNights:    p.MinNights(),
		MinAmount:    p.MinAmount(),
		ValidFrom:    p.ValidFrom(),
		ValidUntil:   p.ValidUntil(),
		UsageLimit:   p.UsageLimit(),
		UsedCount:    st.promoUsed[p.ID()],
		PerUserLimit: p.PerUserLimit(),
		UnitIDs:      p.UnitIDs(),
		IsActive:     p.IsActive(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}), nil
}

func (r *memReads) PromoUsageByGuest(_ context.Context, promoID, guestID uuid.UUID) (int, error) {
	st, done := r.view()
	defer done()
	n := 0
	for _, b := range st.bookings {
		if b.PromoCodeID() == nil || *b.PromoCodeID() != promoID || b.GuestID() != guestID {
			continue
		}
		if b.Status() == booking.StatusCanceled || b.Status() == booking.StatusRefunded {
			continue
		}
		n++
	}
	return n, nil
}

func (r *memReads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	st, done := r.view()
	defer done()
	b, ok := st.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return copyBooking(b), nil
}

func (r *memReads) BookingsInRange(_ context.Context, unitID uuid.UUID, from, to time.Time, statuses []booking.Status) ([]*booking.Booking, error) {
	st, done := r.view()
	defer done()
	var out []*booking.Booking
	for _, b := range st.bookings {
		if b.UnitID() != unitID || !slices.Contains(statuses, b.Status()) {
			continue
		}
		if b.Stay().CheckIn().Before(to) && b.Stay().CheckOut().After(from) {
			out = append(out, copyBooking(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stay().CheckIn().Before(out[j].Stay().CheckIn()) })
	return out, nil
}

func (r *memReads) BookingsForExport(_ context.Context, unitIDs []uuid.UUID) ([]*booking.Booking, error) {
	st, done := r.view()
	defer done()
	statuses := booking.ExportedStatuses()
	var out []*booking.Booking
	for _, b := range st.bookings {
		if slices.Contains(unitIDs, b.UnitID()) && slices.Contains(statuses, b.Status()) {
			out = append(out, copyBooking(b))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UnitID() != out[j].UnitID() {
			return out[i].UnitID().String() < out[j].UnitID().String()
		}
		return out[i].Stay().CheckIn().Before(out[j].Stay().CheckIn())
	})
	return out, nil
}

func (r *memReads) BookingHistory(_ context.Context, bookingID uuid.UUID) ([]booking.StatusChange, error) {
	st, done := r.view()
	defer done()
	return append([]booking.StatusChange(nil), st.history[bookingID]...), nil
}

func (r *memReads) BookingCounts(_ context.Context, unitID *uuid.UUID) (map[booking.Status]int64, error) {
	st, done := r.view()
	defer done()
	out := map[booking.Status]int64{}
	for _, b := range st.bookings {
		if unitID != nil && b.UnitID() != *unitID {
			continue
		}
		out[b.Status()]++
	}
	return out, nil
}

func (r *memReads) BlockedDaysInRange(_ context.Context, unitID uuid.UUID, from, to time.Time) ([]calendar.BlockedDay, error) {
	st, done := r.view()
	defer done()
	var out []calendar.BlockedDay
	for k, v := range st.blocked {
		if k.unitID == unitID && !v.Date.Before(from) && v.Date.Before(to) {
			out = append(out, v)
		}
	}
	sortBlocked(out)
	return out, nil
}

func (r *memReads) FutureBlockedDays(_ context.Context, unitIDs []uuid.UUID, from time.Time) ([]calendar.BlockedDay, error) {
	st, done := r.view()
	defer done()
	var out []calendar.BlockedDay
	for k, v := range st.blocked {
		if slices.Contains(unitIDs, k.unitID) && !v.Date.Before(from) {
			out = append(out, v)
		}
	}
	sortBlocked(out)
	return out, nil
}

func (r *memReads) CalendarSyncByID(_ context.Context, id uuid.UUID) (*calsync.Config, error) {
	st, done := r.view()
	defer done()
	cfg, ok := st.syncs[id]
	if !ok {
		return nil, notFound("calendar sync not found")
	}
	return copyConfig(cfg), nil
}

func (r *memReads) CalendarSyncByToken(_ context.Context, token string) (*calsync.Config, error) {
	st, done := r.view()
	defer done()
	for _, cfg := range st.syncs {
		if t := cfg.ExportToken(); t != nil && *t == token {
			return copyConfig(cfg), nil
		}
	}
	return nil, notFound("calendar sync not found")
}

func (r *memReads) SyncableImports(_ context.Context) ([]*calsync.Config, error) {
	st, done := r.view()
	defer done()
	var out []*calsync.Config
	for _, cfg := range st.syncs {
		if cfg.Direction() == calsync.DirectionImport && cfg.Status() != calsync.StatusPaused {
			out = append(out, copyConfig(cfg))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID().String() < out[j].ID().String() })
	return out, nil
}

func (r *memReads) IdempotencyByKey(_ context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	st, done := r.view()
	defer done()
	e, ok := st.idem[idemKey{key, userID}]
	if !ok {
		return nil, notFound("idempotency key not found")
	}
	rec := e.rec
	return &rec, nil
}

func (r *memReads) QueuedNotifications(_ context.Context, dueBy time.Time, limit int) ([]shared.NotificationJob, error) {
	st, done := r.view()
	defer done()
	var out []shared.NotificationJob
	for _, j := range st.jobs {
		if j.RunAt.After(dueBy) {
			continue
		}
		out = append(out, shared.NotificationJob{
			ID:        j.ID,
			Kind:      j.Kind,
			Topic:     j.Topic,
			Payload:   j.raw,
			Status:    "queued",
			RunAt:     j.RunAt,
			CreatedAt: j.RunAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RunAt.Before(out[j].RunAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
}

func sortBlocked(days []calendar.BlockedDay) {
	sort.Slice(days, func(i, j int) bool {
		if days[i].UnitID != days[j].UnitID {
			return days[i].UnitID.String() < days[j].UnitID.String()
		}
		return days[i].Date.Before(days[j].Date)
	})
}
