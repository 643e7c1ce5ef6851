package calsync

import (
	"errors"
	"strings"
	"time"

	"stayhub/internal/domain/calendar"

	"github.com/google/uuid"
)

var ErrMissingUID = errors.New("external event has no uid")

// ExternalEvent is the cached copy of one imported VEVENT.
type ExternalEvent struct {
	ID           uuid.UUID
	SyncConfigID uuid.UUID
	UnitID       uuid.UUID
	UID          string
	Stay         calendar.DateRange
	Summary      *string
	Description  *string
	Source       calendar.Source
	CreatedAt    time.Time
}

// NewExternalEvent normalises an imported busy period. An end on or before the start is read as a
// single-day event, which is how several providers emit one-night holds.
func NewExternalEvent(cfg *Config, uid string, start, end time.Time, summary, description *string, now time.Time) (ExternalEvent, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return ExternalEvent{}, ErrMissingUID
	}
	in, out := calendar.Day(start), calendar.Day(end)
	if !out.After(in) {
		out = calendar.AddDays(in, 1)
	}
	var unitID uuid.UUID
	if cfg.UnitID() != nil {
		unitID = *cfg.UnitID()
	}
	return ExternalEvent{
		ID:           uuid.New(),
		SyncConfigID: cfg.ID(),
		UnitID:       unitID,
		UID:          uid,
		Stay:         calendar.ReconstructDateRange(in, out),
		Summary:      summary,
		Description:  description,
		Source:       cfg.Source(),
		CreatedAt:    now,
	}, nil
}

// ClampTo trims the stay to [from, to). False means no night of it falls inside the window.
func (e ExternalEvent) ClampTo(from, to time.Time) (ExternalEvent, bool) {
	in, out := e.Stay.CheckIn(), e.Stay.CheckOut()
	from, to = calendar.Day(from), calendar.Day(to)
	if in.Before(from) {
		in = from
	}
	if out.After(to) {
		out = to
	}
	if !out.After(in) {
		return ExternalEvent{}, false
	}
	e.Stay = calendar.ReconstructDateRange(in, out)
	return e, true
}

// BlockedDays expands the event into one blocked day per night, tagged with the provider source.
func (e ExternalEvent) BlockedDays() []calendar.BlockedDay {
	ref := e.UID
	syncID := e.SyncConfigID
	days := e.Stay.Days()
	out := make([]calendar.BlockedDay, 0, len(days))
	for _, d := range days {
		out = append(out, calendar.BlockedDay{
			ID:           uuid.New(),
			UnitID:       e.UnitID,
			Date:         d,
			Source:       e.Source,
			Reason:       e.Summary,
			ExternalRef:  &ref,
			SyncConfigID: &syncID,
		})
	}
	return out
}
