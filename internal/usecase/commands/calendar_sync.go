package commands

import (
	"bytes"
	"context"
	"log/slog"
	"sort"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/calsync"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/ical"
	"stayhub/internal/pkg/ptr"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	directionImport = "import"
	directionExport = "export"

	outcomeOK    = "ok"
	outcomeError = "error"

	uidDomain = "@stayhub"

	defaultImportHorizonDays = 730
)

type CreateExportInput struct {
	UnitID   *uuid.UUID
	Interval time.Duration
}

type CreateImportInput struct {
	UnitID   uuid.UUID
	URL      string
	Label    string
	Interval time.Duration
}

type CalendarSyncCommands interface {
	CreateExport(ctx context.Context, actor user.Actor, in CreateExportInput) (*queries.CalendarSyncView, error)
	CreateImport(ctx context.Context, actor user.Actor, in CreateImportInput) (*queries.CalendarSyncView, error)
	SetStatus(ctx context.Context, actor user.Actor, syncID uuid.UUID, status string) (*queries.CalendarSyncView, error)
	// GenerateICalFeed renders the export feed identified by its secret token.
	GenerateICalFeed(ctx context.Context, token string) ([]byte, error)
	// Import refreshes one import config. A nil actor is the scheduler.
	Import(ctx context.Context, actor *user.Actor, syncID uuid.UUID) (int, error)
	SyncAllActiveImports(ctx context.Context) queries.SyncSummaryView
}

type calendarSyncCommandsImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	fetcher  FeedFetcher
	locker   SyncLocker
	recorder Recorder
	audit    shared.AuditLogger
	cfg      config.SyncConfig
	baseURL  string
}

func NewCalendarSyncCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	fetcher FeedFetcher,
	locker SyncLocker,
	recorder Recorder,
	audit shared.AuditLogger,
	cfg config.Config,
) CalendarSyncCommands {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &calendarSyncCommandsImpl{
		uow:      uow,
		clock:    clk,
		fetcher:  fetcher,
		locker:   locker,
		recorder: recorder,
		audit:    audit,
		cfg:      cfg.Sync,
		baseURL:  cfg.Server.PublicBaseURL,
	}
}

func (c *calendarSyncCommandsImpl) interval(requested time.Duration) time.Duration {
	if requested > 0 {
		return requested
	}
	if c.cfg.DefaultInterval > 0 {
		return c.cfg.DefaultInterval
	}
	return time.Hour
}

func (c *calendarSyncCommandsImpl) importHorizon() int {
	if c.cfg.ImportHorizonDays > 0 {
		return c.cfg.ImportHorizonDays
	}
	return defaultImportHorizonDays
}

func (c *calendarSyncCommandsImpl) CreateExport(ctx context.Context, actor user.Actor, in CreateExportInput) (*queries.CalendarSyncView, error) {
	var created *calsync.Config
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ownerID := actor.ID
		if in.UnitID != nil {
			u, err := queries.LoadUnit(ctx, tx.Reads(), *in.UnitID)
			if err != nil {
				return err
			}
			if !actor.CanManage(u.OwnerID()) {
				return errs.ErrForbidden
			}
			ownerID = u.OwnerID()
		}

		cfg, err := calsync.NewExportConfig(ownerID, in.UnitID, c.interval(in.Interval), c.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.CalendarSyncs().Create(ctx, tx.DB(), cfg); err != nil {
			return err
		}
		created = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.recordConfig(ctx, actor, "calendar_sync.create_export", created)
	return queries.ToCalendarSyncView(created, c.baseURL), nil
}

func (c *calendarSyncCommandsImpl) CreateImport(ctx context.Context, actor user.Actor, in CreateImportInput) (*queries.CalendarSyncView, error) {
	var created *calsync.Config
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := queries.LoadUnit(ctx, tx.Reads(), in.UnitID)
		if err != nil {
			return err
		}
		if !actor.CanManage(u.OwnerID()) {
			return errs.ErrForbidden
		}

		unitID := u.ID()
		cfg, err := calsync.NewImportConfig(u.OwnerID(), &unitID, in.URL, in.Label, c.interval(in.Interval), c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.CalendarSyncs().Create(ctx, tx.DB(), cfg); err != nil {
			return err
		}
		created = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.recordConfig(ctx, actor, "calendar_sync.create_import", created)
	return queries.ToCalendarSyncView(created, c.baseURL), nil
}

func (c *calendarSyncCommandsImpl) SetStatus(ctx context.Context, actor user.Actor, syncID uuid.UUID, status string) (*queries.CalendarSyncView, error) {
	st, err := calsync.ParseStatus(status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var updated *calsync.Config
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cfg, err := loadSyncConfig(ctx, tx.Reads(), syncID)
		if err != nil {
			return err
		}
		if !actor.CanManage(cfg.OwnerID()) {
			return errs.ErrForbidden
		}
		if err := cfg.SetStatus(st, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.CalendarSyncs().SaveState(ctx, tx.DB(), cfg); err != nil {
			return err
		}
		updated = cfg
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.recordConfig(ctx, actor, "calendar_sync.status", updated)
	return queries.ToCalendarSyncView(updated, c.baseURL), nil
}

func (c *calendarSyncCommandsImpl) GenerateICalFeed(ctx context.Context, token string) ([]byte, error) {
	start := c.clock.Now()
	var buf bytes.Buffer

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()
		cfg, err := reads.CalendarSyncByToken(ctx, token)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCalendarSyncNotFound)
			}
			return err
		}
		if err := cfg.CanExport(); err != nil {
			return err
		}

		unitIDs := []uuid.UUID{}
		if cfg.UnitID() != nil {
			unitIDs = append(unitIDs, *cfg.UnitID())
		} else {
			if unitIDs, err = reads.UnitIDsByOwner(ctx, cfg.OwnerID()); err != nil {
				return err
			}
		}

		bookings, err := reads.BookingsForExport(ctx, unitIDs)
		if err != nil {
			return err
		}
		blocked, err := reads.FutureBlockedDays(ctx, unitIDs, calendar.Day(start))
		if err != nil {
			return err
		}

		feed := ical.Calendar{ProdID: c.cfg.ProductID}
		feed.Events = append(bookingEvents(bookings, start), blockedEvents(blocked, start)...)
		if err := ical.Write(&buf, feed); err != nil {
			return errs.Wrap(err, "render feed")
		}

		cfg.MarkExported(start, len(feed.Events))
		return tx.CalendarSyncs().SaveState(ctx, tx.DB(), cfg)
	})
	if err != nil {
		if !errs.Is(err, errs.ErrCalendarSyncNotFound) && !errs.Is(err, errs.ErrInactive) {
			c.recorder.SyncFinished(directionExport, outcomeError, time.Since(start))
		}
		return nil, err
	}

	c.recorder.SyncFinished(directionExport, outcomeOK, time.Since(start))
	return buf.Bytes(), nil
}

func bookingEvents(bookings []*booking.Booking, stamp time.Time) []ical.Event {
	out := make([]ical.Event, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, ical.Event{
			UID:         "booking-" + b.ID().String() + uidDomain,
			Stamp:       stamp,
			Start:       b.Stay().CheckIn(),
			End:         b.Stay().CheckOut(),
			AllDay:      true,
			Summary:     "Reserved",
			Description: "Booking " + b.Number().String(),
		})
	}
	return out
}

// blockedEvents groups blocked days per unit so adjacent days become one multi-day event.
func blockedEvents(days []calendar.BlockedDay, stamp time.Time) []ical.Event {
	perUnit := make(map[uuid.UUID][]calendar.BlockedDay)
	for _, d := range days {
		perUnit[d.UnitID] = append(perUnit[d.UnitID], d)
	}
	unitIDs := make([]uuid.UUID, 0, len(perUnit))
	for id := range perUnit {
		unitIDs = append(unitIDs, id)
	}
	sort.Slice(unitIDs, func(i, j int) bool { return unitIDs[i].String() < unitIDs[j].String() })

	var out []ical.Event
	for _, id := range unitIDs {
		for _, g := range calendar.GroupConsecutive(perUnit[id]) {
			summary := "Blocked"
			if g.Reason != nil && *g.Reason != "" {
				summary = *g.Reason
			}
			out = append(out, ical.Event{
				UID:     "blocked-" + id.String() + "-" + calendar.Key(g.Start) + uidDomain,
				Stamp:   stamp,
				Start:   g.Start,
				End:     g.ExclusiveEnd(),
				AllDay:  true,
				Summary: summary,
			})
		}
	}
	return out
}

func (c *calendarSyncCommandsImpl) Import(ctx context.Context, actor *user.Actor, syncID uuid.UUID) (int, error) {
	cfg, err := loadSyncConfig(ctx, c.uow.CommandReads(), syncID)
	if err != nil {
		return 0, err
	}
	if actor != nil && !actor.CanManage(cfg.OwnerID()) {
		return 0, errs.ErrForbidden
	}
	return c.runImport(ctx, cfg)
}

func (c *calendarSyncCommandsImpl) runImport(ctx context.Context, cfg *calsync.Config) (int, error) {
	if err := cfg.CanImport(); err != nil {
		return 0, err
	}
	start := c.clock.Now()
	logger := slog.With(slog.String("sync_id", cfg.ID().String()))

	body, err := c.fetcher.Fetch(ctx, *cfg.SourceURL())
	if err != nil {
		return 0, c.failImport(ctx, cfg, start, errs.Mark(err, errs.ErrSyncFetch))
	}
	parsed, err := ical.Parse(bytes.NewReader(body))
	if err != nil {
		return 0, c.failImport(ctx, cfg, start, errs.Mark(err, errs.ErrSyncParse))
	}

	// Past days are never bookable, and an open-ended feed must not expand without bound.
	from := calendar.Day(start)
	until := calendar.AddDays(from, c.importHorizon())

	events := make([]calsync.ExternalEvent, 0, len(parsed.Events))
	for _, e := range parsed.Events {
		ev, err := calsync.NewExternalEvent(cfg, e.UID, e.Start, e.End, ptr.NonEmpty(e.Summary), ptr.NonEmpty(e.Description), start)
		if err != nil {
			logger.WarnContext(ctx, "skipping external event", slog.Any("error", err))
			continue
		}
		events = append(events, ev)
	}

	blockedDays := 0
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		unitID := *cfg.UnitID()
		if _, err := tx.Units().LockForUpdate(ctx, tx.DB(), unitID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrUnitNotFound)
			}
			return err
		}
		if err := tx.ExternalEvents().ReplaceAll(ctx, tx.DB(), cfg.ID(), events); err != nil {
			return err
		}
		if _, err := tx.BlockedDates().DeleteBySyncConfig(ctx, tx.DB(), unitID, cfg.ID()); err != nil {
			return err
		}
		for _, ev := range events {
			clamped, ok := ev.ClampTo(from, until)
			if !ok {
				continue
			}
			for _, day := range clamped.BlockedDays() {
				ok, err := tx.BlockedDates().InsertImported(ctx, tx.DB(), day)
				if err != nil {
					return err
				}
				if ok {
					blockedDays++
				}
			}
		}

		cfg.MarkImported(c.clock.Now(), len(events))
		return tx.CalendarSyncs().SaveState(ctx, tx.DB(), cfg)
	})
	if err != nil {
		c.recorder.SyncFinished(directionImport, outcomeError, time.Since(start))
		return 0, err
	}

	c.recorder.SyncImported(len(events))
	c.recorder.SyncFinished(directionImport, outcomeOK, time.Since(start))
	logger.InfoContext(ctx, "calendar imported",
		slog.Int("events", len(events)),
		slog.Int("skipped_events", parsed.Skipped),
		slog.Int("blocked_days", blockedDays))
	return len(events), nil
}

// failImport stores the failure on the config in its own transaction and returns cause.
func (c *calendarSyncCommandsImpl) failImport(ctx context.Context, cfg *calsync.Config, start time.Time, cause error) error {
	c.recorder.SyncFinished(directionImport, outcomeError, time.Since(start))
	cfg.MarkFailed(c.clock.Now(), cause)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.CalendarSyncs().SaveState(ctx, tx.DB(), cfg)
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to record sync failure",
			slog.String("sync_id", cfg.ID().String()),
			slog.Any("error", err))
	}
	slog.WarnContext(ctx, "calendar import failed",
		slog.String("sync_id", cfg.ID().String()),
		slog.Any("error", cause))
	return cause
}

func (c *calendarSyncCommandsImpl) SyncAllActiveImports(ctx context.Context) queries.SyncSummaryView {
	var summary queries.SyncSummaryView

	configs, err := c.uow.CommandReads().SyncableImports(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list import configs", slog.Any("error", err))
		summary.Errors++
		return summary
	}

	for _, cfg := range configs {
		if ctx.Err() != nil {
			break
		}
		if !cfg.IsDue(c.clock.Now()) {
			summary.Skipped++
			continue
		}
		switch synced, err := c.syncOne(ctx, cfg.ID()); {
		case err != nil:
			summary.Errors++
		case synced:
			summary.Synced++
		default:
			summary.Skipped++
		}
	}

	slog.InfoContext(ctx, "calendar sync pass finished",
		slog.Int("synced", summary.Synced),
		slog.Int("errors", summary.Errors),
		slog.Int("skipped", summary.Skipped))
	return summary
}

// syncOne imports under the per-config lock. It reports false when another worker holds the
// lock or already refreshed the config.
func (c *calendarSyncCommandsImpl) syncOne(ctx context.Context, syncID uuid.UUID) (bool, error) {
	if c.locker != nil {
		release, ok, err := c.locker.TryLock(ctx, "calendar-sync:"+syncID.String(), c.cfg.LockTTL)
		if err != nil {
			slog.WarnContext(ctx, "sync lock unavailable", slog.String("sync_id", syncID.String()), slog.Any("error", err))
			return false, err
		}
		if !ok {
			return false, nil
		}
		defer release(context.WithoutCancel(ctx))
	}

	cfg, err := loadSyncConfig(ctx, c.uow.CommandReads(), syncID)
	if err != nil {
		return false, err
	}
	if !cfg.IsDue(c.clock.Now()) {
		return false, nil
	}
	if _, err := c.runImport(ctx, cfg); err != nil {
		return false, err
	}
	return true, nil
}

func (c *calendarSyncCommandsImpl) recordConfig(ctx context.Context, actor user.Actor, action string, cfg *calsync.Config) {
	c.audit.Record(ctx, shared.AuditEntry{
		ActorID:  &actor.ID,
		Action:   action,
		Entity:   "calendar_sync",
		EntityID: cfg.ID(),
		Details:  map[string]any{"direction": string(cfg.Direction()), "status": string(cfg.Status())},
	})
}

func loadSyncConfig(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*calsync.Config, error) {
	cfg, err := reads.CalendarSyncByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCalendarSyncNotFound)
		}
		return nil, err
	}
	return cfg, nil
}
