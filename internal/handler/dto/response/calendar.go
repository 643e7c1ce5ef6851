package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CalendarSyncResponse struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	UnitID          *uuid.UUID `json:"unit_id,omitempty"`
	Direction       string     `json:"direction"`
	Status          string     `json:"status"`
	FeedURL         *string    `json:"feed_url,omitempty"`
	SourceURL       *string    `json:"source_url,omitempty"`
	Source          string     `json:"source"`
	IntervalMinutes int        `json:"interval_minutes"`
	LastSyncAt      *time.Time `json:"last_sync_at,omitempty"`
	LastSyncError   *string    `json:"last_sync_error,omitempty"`
	ImportedCount   int        `json:"imported_count"`
	ExportedCount   int        `json:"exported_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func FromCalendarSyncView(v *queries.CalendarSyncView) (*CalendarSyncResponse, error) {
	var res CalendarSyncResponse
	if err := copier.CopyWithOption(&res, v, deepCopy); err != nil {
		return nil, err
	}
	res.IntervalMinutes = v.IntervalMin
	return &res, nil
}

type ImportResponse struct {
	SyncID   uuid.UUID `json:"sync_id"`
	Imported int       `json:"imported"`
}

type DatesAffectedResponse struct {
	UnitID   uuid.UUID `json:"unit_id"`
	Affected int       `json:"affected"`
}

type OccupiedDatesResponse struct {
	UnitID uuid.UUID                  `json:"unit_id"`
	Dates  []queries.OccupiedDateView `json:"dates"`
}

type CalendarMonthResponse struct {
	UnitID uuid.UUID                 `json:"unit_id"`
	Year   int                       `json:"year"`
	Month  int                       `json:"month"`
	Days   []queries.CalendarDayView `json:"days"`
}

type CalendarEventsResponse struct {
	UnitID uuid.UUID                   `json:"unit_id"`
	Events []queries.CalendarEventView `json:"events"`
}

// NextAvailableResponse has a nil Stay when nothing fits the search horizon.
type NextAvailableResponse struct {
	UnitID uuid.UUID         `json:"unit_id"`
	Found  bool              `json:"found"`
	Stay   *queries.StayView `json:"stay"`
}
