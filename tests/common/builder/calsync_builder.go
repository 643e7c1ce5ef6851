//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/calsync"

	"github.com/google/uuid"
)

type CalendarSyncBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	UnitID      *uuid.UUID
	Direction   calsync.Direction
	Status      calsync.Status
	ExportToken *string
	SourceURL   *string
	Source      calendar.Source
	Interval    time.Duration
	LastSyncAt  *time.Time
}

// NewImportSyncBuilder describes an active import for unitID that has never run.
func NewImportSyncBuilder(ownerID, unitID uuid.UUID) *CalendarSyncBuilder {
	url := "https://calendar.example.com/feed.ics"
	return &CalendarSyncBuilder{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		UnitID:    &unitID,
		Direction: calsync.DirectionImport,
		Status:    calsync.StatusActive,
		SourceURL: &url,
		Source:    calendar.Source("airbnb"),
		Interval:  time.Hour,
	}
}

func NewExportSyncBuilder(ownerID uuid.UUID, unitID *uuid.UUID) *CalendarSyncBuilder {
	token := "feedtoken" + uuid.NewString()[:8]
	return &CalendarSyncBuilder{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		UnitID:      unitID,
		Direction:   calsync.DirectionExport,
		Status:      calsync.StatusActive,
		ExportToken: &token,
		Source:      calendar.SourceBooking,
		Interval:    time.Hour,
	}
}

func (b *CalendarSyncBuilder) With(mutate func(*CalendarSyncBuilder)) *CalendarSyncBuilder {
	mutate(b)
	return b
}

func (b *CalendarSyncBuilder) BuildDomain() *calsync.Config {
	now := time.Now()
	return calsync.ReconstructConfig(calsync.ReconstructParams{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		UnitID:      b.UnitID,
		Direction:   b.Direction,
		Status:      b.Status,
		ExportToken: b.ExportToken,
		SourceURL:   b.SourceURL,
		Source:      b.Source,
		Interval:    b.Interval,
		LastSyncAt:  b.LastSyncAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}
