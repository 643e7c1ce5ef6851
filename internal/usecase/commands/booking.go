package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"stayhub/internal/domain/availability"
	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/promo"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	createBookingEndpoint = "POST /api/bookings"
	defaultIdempotencyTTL = 24 * time.Hour

	notificationKind        = "email"
	topicBookingCreated     = "booking_created"
	topicBookingTransitions = "booking_status_changed"
)

var (
	ErrIdempotencyInProgress = errs.New("idempotency in progress")
	errOverlapRejected       = errs.New("overlap rejected by constraint")
)

type CreateBookingInput struct {
	UnitID    uuid.UUID  `json:"unit_id"`
	CheckIn   time.Time  `json:"check_in"`
	CheckOut  time.Time  `json:"check_out"`
	Guests    int        `json:"guests"`
	PromoCode *string    `json:"promo_code,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	Key       *uuid.UUID `json:"-"`
}

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type UpdateBookingStatusInput struct {
	BookingID    uuid.UUID
	Status       string
	Comment      *string
	CancelReason *string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor user.Actor, in CreateBookingInput) (*CreateBookingResult, error)
	// UpdateBookingStatus applies one lifecycle move. A nil actor is the system.
	UpdateBookingStatus(ctx context.Context, actor *user.Actor, in UpdateBookingStatusInput) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	clock          clock.Clock
	policy         booking.RefundPolicy
	idempotencyTTL time.Duration
	audit          shared.AuditLogger
	recorder       Recorder
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	cfg config.BookingConfig,
	audit shared.AuditLogger,
	recorder Recorder,
) BookingCommands {
	ttl, err := time.ParseDuration(cfg.IdempotencyTTL)
	if err != nil || ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &bookingCommandsImpl{
		uow:            uow,
		clock:          clk,
		policy:         booking.NewTieredRefundPolicy(cfg.RefundFullDays, cfg.RefundPartialDays, cfg.RefundPartialPercent),
		idempotencyTTL: ttl,
		audit:          audit,
		recorder:       recorder,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, actor user.Actor, in CreateBookingInput) (*CreateBookingResult, error) {
	stay, err := queries.NewStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}
	requestHash := calculateRequestHash(in)

	var (
		created  *booking.Booking
		replayed *booking.Booking
	)
	// Read committed: every read after the unit lock sees calendar writes committed while waiting on it.
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		if in.Key != nil {
			prev, err := c.claimIdempotencyKey(ctx, tx, *in.Key, actor.ID, requestHash, now)
			if err != nil {
				return err
			}
			if prev != nil {
				replayed = prev
				return nil
			}
		}

		u, err := tx.Units().LockForUpdate(ctx, tx.DB(), in.UnitID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrUnitNotFound)
			}
			return err
		}

		result, err := queries.EvaluateStay(ctx, tx.Reads(), u, stay, nil)
		if err != nil {
			return err
		}
		if !result.Available {
			return &errs.DatesOccupiedError{Reason: result.Reason, Dates: result.ConflictingDates}
		}
		if err := u.ValidateGuests(in.Guests); err != nil {
			return err
		}

		calc, code, err := queries.QuoteStay(ctx, tx.Reads(), queries.QuoteRequest{
			Unit:      u,
			Stay:      stay,
			Guests:    in.Guests,
			PromoCode: in.PromoCode,
			GuestID:   &actor.ID,
			Now:       now,
		})
		if err != nil {
			return err
		}

		number, err := booking.NewNumber(now)
		if err != nil {
			return err
		}
		b, err := booking.NewBooking(booking.NewParams{
			Number:  number,
			UnitID:  u.ID(),
			GuestID: actor.ID,
			Stay:    stay,
			Guests:  in.Guests,
			Quote:   calc,
			Notes:   in.Notes,
			Now:     now,
		})
		if err != nil {
			return err
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindExclusionViolated) {
				return errs.Mark(err, errOverlapRejected)
			}
			return err
		}
		if err := c.claimPromo(ctx, tx, code); err != nil {
			return err
		}
		if err := tx.BookingHistory().Append(ctx, tx.DB(), booking.NewCreationEntry(b, &actor.ID)); err != nil {
			return err
		}
		if err := c.enqueueNotification(ctx, tx, topicBookingCreated, b, now); err != nil {
			return err
		}

		if in.Key != nil {
			if err := tx.Idempotency().Complete(ctx, tx.DB(), *in.Key, actor.ID, b.ID()); err != nil {
				return err
			}
		}

		created = b
		return nil
	})
	if err != nil {
		return nil, c.explainConflict(ctx, in.UnitID, stay, err)
	}

	if replayed != nil {
		return &CreateBookingResult{Booking: queries.ToBookingView(replayed), IsReplayed: true}, nil
	}

	c.recorder.BookingCreated(created.UnitID().String())
	c.audit.Record(ctx, shared.AuditEntry{
		ActorID:  &actor.ID,
		Action:   "booking.create",
		Entity:   "booking",
		EntityID: created.ID(),
		Details: map[string]any{
			"booking_number": created.Number().String(),
			"unit_id":        created.UnitID().String(),
			"total":          created.Price().Total,
		},
	})
	slog.InfoContext(ctx, "booking created",
		slog.String("booking_id", created.ID().String()),
		slog.String("unit_id", created.UnitID().String()),
		slog.String("stay", stay.String()))

	return &CreateBookingResult{Booking: queries.ToBookingView(created)}, nil
}

// claimIdempotencyKey reserves key for this transaction and returns nil when the request should
// run. A request with the same key that is still running holds the reserved row, so the
// reservation waits for it and then replays its booking, or takes the key over after a rollback.
func (c *bookingCommandsImpl) claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	now time.Time,
) (*booking.Booking, error) {
	rec := shared.IdempotencyRecord{
		Key:         key,
		UserID:      userID,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   now.Add(c.idempotencyTTL),
	}

	for attempt := 0; attempt < 2; attempt++ {
		reserved, err := tx.Idempotency().Reserve(ctx, tx.DB(), rec, createBookingEndpoint)
		if err != nil {
			return nil, err
		}
		if reserved {
			return nil, nil
		}

		prev, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, err
		}
		if prev.Expired(now) {
			if err := tx.Idempotency().DeleteExpired(ctx, tx.DB(), key, userID, now); err != nil {
				return nil, err
			}
			continue
		}
		if prev.RequestHash != requestHash {
			return nil, errs.ErrIdempotencyKeyReused
		}
		if prev.Status != shared.IdempotencyCompleted || prev.ResultBookingID == nil {
			return nil, ErrIdempotencyInProgress
		}

		b, err := tx.Reads().BookingByID(ctx, *prev.ResultBookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, errs.ErrBookingNotFound)
			}
			return nil, err
		}
		return b, nil
	}
	return nil, ErrIdempotencyInProgress
}

func (c *bookingCommandsImpl) claimPromo(ctx context.Context, tx shared.Tx, code *promo.PromoCode) error {
	if code == nil {
		return nil
	}
	ok, err := tx.Promos().IncrementUsage(ctx, tx.DB(), code.ID())
	if err != nil {
		return err
	}
	if !ok {
		return &errs.PromoInvalidError{Message: "promo code usage limit reached"}
	}
	return nil
}

// explainConflict turns a constraint rejection into the same DatesOccupied answer an
// availability check would give, computed after the competing transaction committed.
func (c *bookingCommandsImpl) explainConflict(ctx context.Context, unitID uuid.UUID, stay calendar.DateRange, err error) error {
	var occupied *errs.DatesOccupiedError
	if errs.As(err, &occupied) {
		c.recorder.BookingConflict(occupied.Reason)
		return err
	}
	if !errs.Is(err, errOverlapRejected) {
		return err
	}

	c.recorder.BookingConflict(availability.ReasonOccupied)
	conflict := &errs.DatesOccupiedError{Reason: availability.ReasonOccupied}
	rerr := c.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		bookings, err := reads.BookingsInRange(ctx, unitID, stay.CheckIn(), stay.CheckOut(), booking.ActiveStatuses())
		if err != nil {
			return err
		}
		result := availability.Evaluate(stay, queries.Occupancies(bookings), nil, nil)
		conflict.Dates = result.ConflictingDates
		return nil
	})
	if rerr != nil {
		slog.WarnContext(ctx, "failed to load conflicting dates", slog.Any("error", rerr))
	}
	return conflict
}

func (c *bookingCommandsImpl) UpdateBookingStatus(ctx context.Context, actor *user.Actor, in UpdateBookingStatusInput) (*queries.BookingView, error) {
	to, err := booking.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}
	var actorID *uuid.UUID
	if actor != nil {
		id := actor.ID
		actorID = &id
	}

	var (
		updated *booking.Booking
		outcome booking.Outcome
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()

		b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), in.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return err
		}
		if err := c.authorizeTransition(ctx, tx.Reads(), actor, b, to); err != nil {
			return err
		}

		outcome, err = b.TransitionTo(booking.TransitionInput{
			To:           to,
			Now:          now,
			CancelReason: in.CancelReason,
			Policy:       c.policy,
		})
		if err != nil {
			return err
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return err
		}
		if outcome.ReleasePromo {
			if err := tx.Promos().DecrementUsage(ctx, tx.DB(), *b.PromoCodeID()); err != nil {
				return err
			}
		}
		if err := tx.BookingHistory().Append(ctx, tx.DB(), booking.NewTransitionEntry(b, outcome, actorID, in.Comment)); err != nil {
			return err
		}
		if err := c.enqueueNotification(ctx, tx, topicBookingTransitions, b, now); err != nil {
			return err
		}

		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.recorder.BookingTransition(outcome.From, outcome.To)
	c.audit.Record(ctx, shared.AuditEntry{
		ActorID:  actorID,
		Action:   "booking.status",
		Entity:   "booking",
		EntityID: updated.ID(),
		Details: map[string]any{
			"from":   outcome.From.String(),
			"to":     outcome.To.String(),
			"refund": outcome.Refund,
		},
	})
	slog.InfoContext(ctx, "booking status changed",
		slog.String("booking_id", updated.ID().String()),
		slog.String("from", outcome.From.String()),
		slog.String("to", outcome.To.String()))

	return queries.ToBookingView(updated), nil
}

// authorizeTransition lets the unit owner and admins drive any move; the guest may only cancel.
func (c *bookingCommandsImpl) authorizeTransition(ctx context.Context, reads shared.CommandReads, actor *user.Actor, b *booking.Booking, to booking.Status) error {
	if actor == nil || actor.IsAdmin() {
		return nil
	}
	u, err := queries.LoadUnit(ctx, reads, b.UnitID())
	if err != nil {
		return err
	}
	if actor.CanManage(u.OwnerID()) {
		return nil
	}
	if actor.ID == b.GuestID() && to == booking.StatusCanceled {
		return nil
	}
	return errs.ErrForbidden
}

func (c *bookingCommandsImpl) enqueueNotification(ctx context.Context, tx shared.Tx, topic string, b *booking.Booking, now time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id":     b.ID(),
		"booking_number": b.Number().String(),
		"unit_id":        b.UnitID(),
		"guest_id":       b.GuestID(),
		"status":         b.Status().String(),
		"type":           topic,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), notificationKind, topic, payload, now)
}

func calculateRequestHash(in CreateBookingInput) string {
	data, _ := json.Marshal(in)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
