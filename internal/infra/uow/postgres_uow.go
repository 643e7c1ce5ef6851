package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/calsync"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/promo"
	"stayhub/internal/domain/unit"
	"stayhub/internal/infra/readstore"
	"stayhub/internal/infra/repository"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, &commandReads{uow: u, dbtx: pgxTx}); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	unitRepo         shared.UnitRepository
	bookingRepo      shared.BookingRepository
	historyRepo      shared.BookingHistoryRepository
	promoRepo        shared.PromoRepository
	blockedRepo      shared.BlockedDateRepository
	syncRepo         shared.CalendarSyncRepository
	eventRepo        shared.ExternalEventRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Units() shared.UnitRepository {
	if t.unitRepo == nil {
		t.unitRepo = repository.NewUnitRepository(t.uow.q, t.dbtx)
	}
	return t.unitRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) BookingHistory() shared.BookingHistoryRepository {
	if t.historyRepo == nil {
		t.historyRepo = repository.NewBookingHistoryRepository(t.uow.q, t.dbtx)
	}
	return t.historyRepo
}

func (t *pgTx) Promos() shared.PromoRepository {
	if t.promoRepo == nil {
		t.promoRepo = repository.NewPromoRepository(t.uow.q, t.dbtx)
	}
	return t.promoRepo
}

func (t *pgTx) BlockedDates() shared.BlockedDateRepository {
	if t.blockedRepo == nil {
		t.blockedRepo = repository.NewBlockedDateRepository(t.uow.q, t.dbtx)
	}
	return t.blockedRepo
}

func (t *pgTx) CalendarSyncs() shared.CalendarSyncRepository {
	if t.syncRepo == nil {
		t.syncRepo = repository.NewCalendarSyncRepository(t.uow.q, t.dbtx)
	}
	return t.syncRepo
}

func (t *pgTx) ExternalEvents() shared.ExternalEventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewExternalEventRepository(t.uow.q, t.dbtx)
	}
	return t.eventRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q, t.dbtx)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	unitStore        *readstore.UnitReadStore
	bookingStore     *readstore.BookingReadStore
	blockedStore     *readstore.BlockedDateReadStore
	promoStore       *readstore.PromoReadStore
	syncStore        *readstore.CalendarSyncReadStore
	idempotencyStore *readstore.IdempotencyReadStore
	outboxStore      *readstore.NotificationReadStore
}

func (r *commandReads) units() *readstore.UnitReadStore {
	if r.unitStore == nil {
		r.unitStore = readstore.NewUnitReadStore(r.uow.q, r.dbtx)
	}
	return r.unitStore
}

func (r *commandReads) bookings() *readstore.BookingReadStore {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore
}

func (r *commandReads) blocked() *readstore.BlockedDateReadStore {
	if r.blockedStore == nil {
		r.blockedStore = readstore.NewBlockedDateReadStore(r.uow.q, r.dbtx)
	}
	return r.blockedStore
}

func (r *commandReads) promos() *readstore.PromoReadStore {
	if r.promoStore == nil {
		r.promoStore = readstore.NewPromoReadStore(r.uow.q, r.dbtx)
	}
	return r.promoStore
}

func (r *commandReads) syncs() *readstore.CalendarSyncReadStore {
	if r.syncStore == nil {
		r.syncStore = readstore.NewCalendarSyncReadStore(r.uow.q, r.dbtx)
	}
	return r.syncStore
}

func (r *commandReads) UnitByID(ctx context.Context, id uuid.UUID) (*unit.Unit, error) {
	return r.units().FindByID(ctx, id)
}

func (r *commandReads) UnitIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	return r.units().IDsByOwner(ctx, ownerID)
}

func (r *commandReads) PricingPlan(ctx context.Context, unitID uuid.UUID, from, to time.Time) (*pricing.Plan, error) {
	return r.units().PricingPlan(ctx, unitID, from, to)
}

func (r *commandReads) PromoByCode(ctx context.Context, code string) (*promo.PromoCode, error) {
	return r.promos().FindByCode(ctx, code)
}

func (r *commandReads) PromoUsageByGuest(ctx context.Context, promoID, guestID uuid.UUID) (int, error) {
	return r.bookings().PromoUsageByGuest(ctx, promoID, guestID)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.bookings().FindByID(ctx, id)
}

func (r *commandReads) BookingsInRange(ctx context.Context, unitID uuid.UUID, from, to time.Time, statuses []booking.Status) ([]*booking.Booking, error) {
	return r.bookings().InRange(ctx, unitID, from, to, statuses)
}

func (r *commandReads) BookingsForExport(ctx context.Context, unitIDs []uuid.UUID) ([]*booking.Booking, error) {
	return r.bookings().ForExport(ctx, unitIDs)
}

func (r *commandReads) BookingHistory(ctx context.Context, bookingID uuid.UUID) ([]booking.StatusChange, error) {
	return r.bookings().History(ctx, bookingID)
}

func (r *commandReads) BookingCounts(ctx context.Context, unitID *uuid.UUID) (map[booking.Status]int64, error) {
	return r.bookings().CountsByStatus(ctx, unitID)
}

func (r *commandReads) BlockedDaysInRange(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]calendar.BlockedDay, error) {
	return r.blocked().InRange(ctx, unitID, from, to)
}

func (r *commandReads) FutureBlockedDays(ctx context.Context, unitIDs []uuid.UUID, from time.Time) ([]calendar.BlockedDay, error) {
	return r.blocked().Future(ctx, unitIDs, from)
}

func (r *commandReads) CalendarSyncByID(ctx context.Context, id uuid.UUID) (*calsync.Config, error) {
	return r.syncs().FindByID(ctx, id)
}

func (r *commandReads) CalendarSyncByToken(ctx context.Context, token string) (*calsync.Config, error) {
	return r.syncs().FindByToken(ctx, token)
}

func (r *commandReads) SyncableImports(ctx context.Context) ([]*calsync.Config, error) {
	return r.syncs().SyncableImports(ctx)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.uow.q, r.dbtx)
	}
	return r.idempotencyStore.Get(ctx, key, userID)
}

func (r *commandReads) QueuedNotifications(ctx context.Context, dueBy time.Time, limit int) ([]shared.NotificationJob, error) {
	if r.outboxStore == nil {
		r.outboxStore = readstore.NewNotificationReadStore(r.uow.q, r.dbtx)
	}
	return r.outboxStore.Queued(ctx, dueBy, limit)
}
