package request

import (
	"time"

	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type BlockDatesRequest struct {
	Dates  []string `json:"dates" binding:"required,min=1,max=366,dive,isodate"`
	Reason *string  `json:"reason,omitempty" binding:"omitempty,max=255"`
}

func (r BlockDatesRequest) ToInput(unitID uuid.UUID) (commands.BlockDatesInput, error) {
	days, err := parseDays(r.Dates)
	if err != nil {
		return commands.BlockDatesInput{}, err
	}
	return commands.BlockDatesInput{UnitID: unitID, Dates: days, Reason: trimmed(r.Reason)}, nil
}

type UnblockDatesRequest struct {
	Dates []string `json:"dates" binding:"required,min=1,max=366,dive,isodate"`
}

func (r UnblockDatesRequest) Days() ([]time.Time, error) {
	return parseDays(r.Dates)
}

type CreateCalendarSyncRequest struct {
	Direction       string     `json:"direction" binding:"required,oneof=import export"`
	UnitID          *uuid.UUID `json:"unit_id,omitempty"`
	URL             string     `json:"url" binding:"omitempty,max=2048"`
	Label           string     `json:"label" binding:"omitempty,max=100"`
	IntervalMinutes int        `json:"interval_minutes" binding:"omitempty,min=5,max=10080"`
}

func (r CreateCalendarSyncRequest) Interval() time.Duration {
	return time.Duration(r.IntervalMinutes) * time.Minute
}

func (r CreateCalendarSyncRequest) ToExportInput() commands.CreateExportInput {
	return commands.CreateExportInput{UnitID: r.UnitID, Interval: r.Interval()}
}

// ToImportInput requires a unit; imports are always unit-scoped.
func (r CreateCalendarSyncRequest) ToImportInput() (commands.CreateImportInput, bool) {
	if r.UnitID == nil {
		return commands.CreateImportInput{}, false
	}
	return commands.CreateImportInput{
		UnitID:   *r.UnitID,
		URL:      r.URL,
		Label:    r.Label,
		Interval: r.Interval(),
	}, true
}

type UpdateCalendarSyncStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active paused"`
}

func parseDays(values []string) ([]time.Time, error) {
	days := make([]time.Time, 0, len(values))
	for _, v := range values {
		d, err := parseDay("dates", v)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}
