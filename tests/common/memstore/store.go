//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for use case tests.
// Transactions are serialised on one mutex, work on a copy of the state and
// commit only when fn returns nil.
package memstore

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/calsync"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/promo"
	"stayhub/internal/domain/unit"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type blockKey struct {
	unitID uuid.UUID
	day    string
}

type idemKey struct {
	key    uuid.UUID
	userID uuid.UUID
}

// Job is a queued notification.
type Job struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload map[string]any
	RunAt   time.Time
	raw     []byte
}

type state struct {
	units     map[uuid.UUID]*unit.Unit
	plans     map[uuid.UUID]*pricing.Plan
	promos    map[string]*promo.PromoCode
	promoUsed map[uuid.UUID]int
	bookings  map[uuid.UUID]*booking.Booking
	history   map[uuid.UUID][]booking.StatusChange
	blocked   map[blockKey]calendar.BlockedDay
	syncs     map[uuid.UUID]*calsync.Config
	events    map[uuid.UUID][]calsync.ExternalEvent
	idem      map[idemKey]idemEntry
	jobs      []Job
}

type idemEntry struct {
	rec      shared.IdempotencyRecord
	endpoint string
}

func newState() *state {
	return &state{
		units:     map[uuid.UUID]*unit.Unit{},
		plans:     map[uuid.UUID]*pricing.Plan{},
		promos:    map[string]*promo.PromoCode{},
		promoUsed: map[uuid.UUID]int{},
		bookings:  map[uuid.UUID]*booking.Booking{},
		history:   map[uuid.UUID][]booking.StatusChange{},
		blocked:   map[blockKey]calendar.BlockedDay{},
		syncs:     map[uuid.UUID]*calsync.Config{},
		events:    map[uuid.UUID][]calsync.ExternalEvent{},
		idem:      map[idemKey]idemEntry{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.units {
		c.units[k] = v
	}
	for k, v := range s.plans {
		c.plans[k] = v
	}
	for k, v := range s.promos {
		c.promos[k] = v
	}
	for k, v := range s.promoUsed {
		c.promoUsed[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = copyBooking(v)
	}
	for k, v := range s.history {
		c.history[k] = append([]booking.StatusChange(nil), v...)
	}
	for k, v := range s.blocked {
		c.blocked[k] = v
	}
	for k, v := range s.syncs {
		c.syncs[k] = copyConfig(v)
	}
	for k, v := range s.events {
		c.events[k] = append([]calsync.ExternalEvent(nil), v...)
	}
	for k, v := range s.idem {
		c.idem[k] = v
	}
	c.jobs = append([]Job(nil), s.jobs...)
	return c
}

func copyBooking(b *booking.Booking) *booking.Booking {
	cp := *b
	return &cp
}

func copyConfig(cfg *calsync.Config) *calsync.Config {
	cp := *cfg
	return &cp
}

type Store struct {
	mu   sync.Mutex
	data *state

	// FailCommit makes the next write transaction roll back with this error after fn succeeds.
	FailCommit error
	// CreateHook runs inside Bookings().Create before the overlap check. A returned booking is
	// committed immediately, as if a concurrent transaction had won the race.
	CreateHook func() *booking.Booking
	// ReserveHook runs inside Idempotency().Reserve. A returned booking is committed with a
	// completed record for the key, as if a request with the same key had finished first.
	ReserveHook func() *booking.Booking
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{data: newState()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(ctx, &memTx{store: s, st: work}); err != nil {
		return err
	}
	if s.FailCommit != nil {
		err := s.FailCommit
		s.FailCommit = nil
		return err
	}
	s.data = work
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, &memReads{st: s.data})
}

func (s *Store) CommandReads() shared.CommandReads {
	return &memReads{store: s}
}

// Seeding and inspection helpers. They take the store lock and must not be called inside fn.

func (s *Store) AddUnit(u *unit.Unit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.units[u.ID()] = u
}

func (s *Store) SetPlan(unitID uuid.UUID, p *pricing.Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.plans[unitID] = p
}

func (s *Store) AddPromo(p *promo.PromoCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.promos[strings.ToUpper(p.Code().String())] = p
	s.data.promoUsed[p.ID()] = p.UsedCount()
}

func (s *Store) PromoUsed(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.promoUsed[id]
}

func (s *Store) AddBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.bookings[b.ID()] = copyBooking(b)
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data.bookings[id]
	if !ok {
		return nil, false
	}
	return copyBooking(b), true
}

func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.bookings)
}

func (s *Store) History(bookingID uuid.UUID) []booking.StatusChange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]booking.StatusChange(nil), s.data.history[bookingID]...)
}

func (s *Store) AddBlocked(days ...calendar.BlockedDay) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range days {
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
		d.Date = calendar.Day(d.Date)
		s.data.blocked[blockKey{d.UnitID, calendar.Key(d.Date)}] = d
	}
}

// Blocked returns the unit's blocked days keyed by date.
func (s *Store) Blocked(unitID uuid.UUID) map[string]calendar.BlockedDay {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[string]calendar.BlockedDay{}
	for k, v := range s.data.blocked {
		if k.unitID == unitID {
			out[k.day] = v
		}
	}
	return out
}

func (s *Store) AddSync(cfg *calsync.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.syncs[cfg.ID()] = copyConfig(cfg)
}

func (s *Store) Sync(id uuid.UUID) (*calsync.Config, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.data.syncs[id]
	if !ok {
		return nil, false
	}
	return copyConfig(cfg), true
}

func (s *Store) ExternalEvents(syncID uuid.UUID) []calsync.ExternalEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]calsync.ExternalEvent(nil), s.data.events[syncID]...)
}

func (s *Store) AddIdempotency(rec shared.IdempotencyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.idem[idemKey{rec.Key, rec.UserID}] = idemEntry{rec: rec}
}

// AddJob queues an outbox row as if a committed command had written it.
func (s *Store) AddJob(kind, topic string, payload []byte, runAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = jobRepo{s.data}.CreateJob(context.Background(), nil, kind, topic, payload, runAt)
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Job(nil), s.data.jobs...)
}

type memTx struct {
	store *Store
	st    *state
}

func (t *memTx) Units() shared.UnitRepository                       { return unitRepo{t.st} }
func (t *memTx) Bookings() shared.BookingRepository                 { return bookingRepo{t.st, t.store} }
func (t *memTx) BookingHistory() shared.BookingHistoryRepository    { return historyRepo{t.st} }
func (t *memTx) Promos() shared.PromoRepository                     { return promoRepo{t.st} }
func (t *memTx) BlockedDates() shared.BlockedDateRepository         { return blockedRepo{t.st} }
func (t *memTx) CalendarSyncs() shared.CalendarSyncRepository       { return syncRepo{t.st} }
func (t *memTx) ExternalEvents() shared.ExternalEventRepository     { return eventRepo{t.st} }
func (t *memTx) Idempotency() shared.IdempotencyRepository          { return idemRepo{t.st, t.store} }
func (t *memTx) Notifications() shared.NotificationRepository       { return jobRepo{t.st} }
func (t *memTx) Reads() shared.CommandReads                         { return &memReads{st: t.st} }
func (t *memTx) DB() sqlc.DBTX                                      { return nil }

func decodePayload(payload []byte) map[string]any {
	out := map[string]any{}
	_ = json.Unmarshal(payload, &out)
	return out
}
