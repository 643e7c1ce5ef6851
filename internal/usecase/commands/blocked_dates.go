package commands

import (
	"context"
	"log/slog"
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/unit"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type BlockDatesInput struct {
	UnitID uuid.UUID
	Dates  []time.Time
	Reason *string
}

type BlockedDateCommands interface {
	// BlockDates marks days as manually blocked and returns how many were written.
	// Days under an active booking or held by an import are skipped.
	BlockDates(ctx context.Context, actor user.Actor, in BlockDatesInput) (int, error)
	// UnblockDates removes manual blocks only and returns how many were removed.
	UnblockDates(ctx context.Context, actor user.Actor, unitID uuid.UUID, dates []time.Time) (int, error)
}

type blockedDateCommandsImpl struct {
	uow   shared.UnitOfWork
	audit shared.AuditLogger
}

func NewBlockedDateCommands(uow shared.UnitOfWork, audit shared.AuditLogger) BlockedDateCommands {
	return &blockedDateCommandsImpl{uow: uow, audit: audit}
}

func (c *blockedDateCommandsImpl) BlockDates(ctx context.Context, actor user.Actor, in BlockDatesInput) (int, error) {
	days := uniqueDays(in.Dates)
	if len(days) == 0 {
		return 0, errs.Wrap(errs.ErrInvalidDates, "no dates given")
	}

	affected := 0
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := lockManagedUnit(ctx, tx, actor, in.UnitID); err != nil {
			return err
		}
		for _, d := range days {
			ok, err := tx.BlockedDates().UpsertManual(ctx, tx.DB(), in.UnitID, d, in.Reason)
			if err != nil {
				return err
			}
			if ok {
				affected++
			} else {
				slog.DebugContext(ctx, "skipped blocking date",
					slog.String("unit_id", in.UnitID.String()),
					slog.String("date", calendar.Key(d)))
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	c.record(ctx, actor, "blocked_dates.block", in.UnitID, len(days), affected)
	return affected, nil
}

func (c *blockedDateCommandsImpl) UnblockDates(ctx context.Context, actor user.Actor, unitID uuid.UUID, dates []time.Time) (int, error) {
	days := uniqueDays(dates)
	if len(days) == 0 {
		return 0, errs.Wrap(errs.ErrInvalidDates, "no dates given")
	}

	affected := 0
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := lockManagedUnit(ctx, tx, actor, unitID); err != nil {
			return err
		}
		for _, d := range days {
			ok, err := tx.BlockedDates().DeleteManual(ctx, tx.DB(), unitID, d)
			if err != nil {
				return err
			}
			if ok {
				affected++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	c.record(ctx, actor, "blocked_dates.unblock", unitID, len(days), affected)
	return affected, nil
}

func (c *blockedDateCommandsImpl) record(ctx context.Context, actor user.Actor, action string, unitID uuid.UUID, requested, affected int) {
	c.audit.Record(ctx, shared.AuditEntry{
		ActorID:  &actor.ID,
		Action:   action,
		Entity:   "unit",
		EntityID: unitID,
		Details:  map[string]any{"requested": requested, "affected": affected},
	})
}

// lockManagedUnit serialises calendar writers on the unit and checks the actor may manage it.
func lockManagedUnit(ctx context.Context, tx shared.Tx, actor user.Actor, unitID uuid.UUID) (*unit.Unit, error) {
	u, err := tx.Units().LockForUpdate(ctx, tx.DB(), unitID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUnitNotFound)
		}
		return nil, err
	}
	if !actor.CanManage(u.OwnerID()) {
		return nil, errs.ErrForbidden
	}
	return u, nil
}

func uniqueDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := calendar.Day(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}
	return calendar.SortDays(out)
}
