package shared

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/calsync"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/promo"
	"stayhub/internal/domain/unit"
	sqlc "stayhub/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Units() UnitRepository
	Bookings() BookingRepository
	BookingHistory() BookingHistoryRepository
	Promos() PromoRepository
	BlockedDates() BlockedDateRepository
	CalendarSyncs() CalendarSyncRepository
	ExternalEvents() ExternalEventRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UnitByID(ctx context.Context, id uuid.UUID) (*unit.Unit, error)
	UnitIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
	PricingPlan(ctx context.Context, unitID uuid.UUID, from, to time.Time) (*pricing.Plan, error)
	PromoByCode(ctx context.Context, code string) (*promo.PromoCode, error)
	PromoUsageByGuest(ctx context.Context, promoID, guestID uuid.UUID) (int, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// BookingsInRange returns bookings in the given statuses whose stay overlaps [from, to).
	BookingsInRange(ctx context.Context, unitID uuid.UUID, from, to time.Time, statuses []booking.Status) ([]*booking.Booking, error)
	BookingsForExport(ctx context.Context, unitIDs []uuid.UUID) ([]*booking.Booking, error)
	BookingHistory(ctx context.Context, bookingID uuid.UUID) ([]booking.StatusChange, error)
	BookingCounts(ctx context.Context, unitID *uuid.UUID) (map[booking.Status]int64, error)
	BlockedDaysInRange(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]calendar.BlockedDay, error)
	FutureBlockedDays(ctx context.Context, unitIDs []uuid.UUID, from time.Time) ([]calendar.BlockedDay, error)
	CalendarSyncByID(ctx context.Context, id uuid.UUID) (*calsync.Config, error)
	CalendarSyncByToken(ctx context.Context, token string) (*calsync.Config, error)
	SyncableImports(ctx context.Context) ([]*calsync.Config, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
	// QueuedNotifications lists queued outbox rows due at or before the given time, oldest first.
	QueuedNotifications(ctx context.Context, dueBy time.Time, limit int) ([]NotificationJob, error)
}

type UnitRepository interface {
	// LockForUpdate serialises writers that depend on the unit's calendar.
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, unitID uuid.UUID) (*unit.Unit, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type BookingHistoryRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, entry booking.StatusChange) error
}

type PromoRepository interface {
	// IncrementUsage returns false when the usage limit was already reached.
	IncrementUsage(ctx context.Context, tx sqlc.DBTX, promoID uuid.UUID) (bool, error)
	DecrementUsage(ctx context.Context, tx sqlc.DBTX, promoID uuid.UUID) error
}

type BlockedDateRepository interface {
	// UpsertManual returns false when the day was skipped (booked or held by another source).
	UpsertManual(ctx context.Context, tx sqlc.DBTX, unitID uuid.UUID, day time.Time, reason *string) (bool, error)
	DeleteManual(ctx context.Context, tx sqlc.DBTX, unitID uuid.UUID, day time.Time) (bool, error)
	InsertImported(ctx context.Context, tx sqlc.DBTX, day calendar.BlockedDay) (bool, error)
	DeleteBySyncConfig(ctx context.Context, tx sqlc.DBTX, unitID, syncConfigID uuid.UUID) (int64, error)
}

type CalendarSyncRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, cfg *calsync.Config) error
	SaveState(ctx context.Context, tx sqlc.DBTX, cfg *calsync.Config) error
}

type ExternalEventRepository interface {
	ReplaceAll(ctx context.Context, tx sqlc.DBTX, syncID uuid.UUID, events []calsync.ExternalEvent) error
}

type IdempotencyRepository interface {
	// Reserve claims the key as processing; false means the key already exists.
	Reserve(ctx context.Context, tx sqlc.DBTX, rec IdempotencyRecord, endpoint string) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key, userID, bookingID uuid.UUID) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID, now time.Time) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
