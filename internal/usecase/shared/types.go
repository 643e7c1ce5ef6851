package shared

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}

func (r *IdempotencyRecord) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// NotificationJob is an outbox row waiting for the external dispatcher.
type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	Status    string
	Attempts  int
	LastError *string
	RunAt     time.Time
	CreatedAt time.Time
}

// AuditEntry records who did what to which entity.
type AuditEntry struct {
	ActorID  *uuid.UUID
	Action   string
	Entity   string
	EntityID uuid.UUID
	Details  map[string]any
}

type AuditLogger interface {
	Record(ctx context.Context, entry AuditEntry)
}

type slogAuditLogger struct {
	logger *slog.Logger
}

// NewSlogAuditLogger writes audit entries as structured log lines; storage of the trail is external.
func NewSlogAuditLogger(logger *slog.Logger) AuditLogger {
	return &slogAuditLogger{logger: logger.With(slog.String("channel", "audit"))}
}

func (a *slogAuditLogger) Record(ctx context.Context, e AuditEntry) {
	actor := "system"
	if e.ActorID != nil {
		actor = e.ActorID.String()
	}
	attrs := []any{
		slog.String("actor", actor),
		slog.String("action", e.Action),
		slog.String("entity", e.Entity),
		slog.String("entity_id", e.EntityID.String()),
	}
	if len(e.Details) > 0 {
		attrs = append(attrs, slog.Any("details", e.Details))
	}
	a.logger.InfoContext(ctx, "audit", attrs...)
}
