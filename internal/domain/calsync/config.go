package calsync

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/url"
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidDirection = errors.New("invalid sync direction")
	ErrInvalidStatus    = errors.New("invalid sync status")
	ErrInvalidURL       = errors.New("import url must be an absolute http(s) url")
	ErrUnitRequired     = errors.New("import configs must target a unit")
	ErrInvalidInterval  = errors.New("sync interval must be positive")
)

type Direction string

const (
	DirectionExport Direction = "export"
	DirectionImport Direction = "import"
)

type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusError  Status = "error"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusActive, StatusPaused, StatusError:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

const tokenBytes = 24

// Config links a unit (or all of an owner's units, for export) to an external calendar.
type Config struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	unitID        *uuid.UUID
	direction     Direction
	status        Status
	exportToken   *string
	sourceURL     *string
	source        calendar.Source
	interval      time.Duration
	lastSyncAt    *time.Time
	lastSyncError *string
	importedCount int
	exportedCount int
	createdAt     time.Time
	updatedAt     time.Time
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "generate export token")
	}
	return hex.EncodeToString(buf), nil
}

func NewExportConfig(ownerID uuid.UUID, unitID *uuid.UUID, interval time.Duration, now time.Time) (*Config, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	return &Config{
		id:          uuid.New(),
		ownerID:     ownerID,
		unitID:      unitID,
		direction:   DirectionExport,
		status:      StatusActive,
		exportToken: &token,
		source:      calendar.SourceBooking,
		interval:    interval,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func NewImportConfig(ownerID uuid.UUID, unitID *uuid.UUID, rawURL, label string, interval time.Duration, now time.Time) (*Config, error) {
	if unitID == nil {
		return nil, ErrUnitRequired
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidURL
	}
	source, err := calendar.NewExternalSource(label)
	if err != nil {
		return nil, err
	}
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	normalized := u.String()
	return &Config{
		id:        uuid.New(),
		ownerID:   ownerID,
		unitID:    unitID,
		direction: DirectionImport,
		status:    StatusActive,
		sourceURL: &normalized,
		source:    source,
		interval:  interval,
		createdAt: now,
		updatedAt: now,
	}, nil
}

type ReconstructParams struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	UnitID        *uuid.UUID
	Direction     Direction
	Status        Status
	ExportToken   *string
	SourceURL     *string
	Source        calendar.Source
	Interval      time.Duration
	LastSyncAt    *time.Time
	LastSyncError *string
	ImportedCount int
	ExportedCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructConfig(p ReconstructParams) *Config {
	return &Config{
		id:            p.ID,
		ownerID:       p.OwnerID,
		unitID:        p.UnitID,
		direction:     p.Direction,
		status:        p.Status,
		exportToken:   p.ExportToken,
		sourceURL:     p.SourceURL,
		source:        p.Source,
		interval:      p.Interval,
		lastSyncAt:    p.LastSyncAt,
		lastSyncError: p.LastSyncError,
		importedCount: p.ImportedCount,
		exportedCount: p.ExportedCount,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}
}

// IsDue reports whether the interval since the last sync has elapsed.
func (c *Config) IsDue(now time.Time) bool {
	return c.lastSyncAt == nil || !now.Before(c.lastSyncAt.Add(c.interval))
}

// CanExport rejects paused feeds; export feeds never enter the error state.
func (c *Config) CanExport() error {
	if c.direction != DirectionExport {
		return errs.ErrCalendarSyncNotFound
	}
	if c.status == StatusPaused {
		return errs.ErrInactive
	}
	return nil
}

func (c *Config) CanImport() error {
	if c.direction != DirectionImport || c.sourceURL == nil || c.unitID == nil {
		return errs.Wrap(errs.ErrDomainValidation, "calendar sync is not an import")
	}
	if c.status == StatusPaused {
		return errs.ErrInactive
	}
	return nil
}

func (c *Config) MarkImported(now time.Time, count int) {
	c.status = StatusActive
	c.lastSyncAt = &now
	c.lastSyncError = nil
	c.importedCount = count
	c.updatedAt = now
}

// MarkFailed records the failure on the config so the next cycle retries it.
func (c *Config) MarkFailed(now time.Time, cause error) {
	msg := cause.Error()
	c.status = StatusError
	c.lastSyncAt = &now
	c.lastSyncError = &msg
	c.updatedAt = now
}

func (c *Config) MarkExported(now time.Time, count int) {
	c.lastSyncAt = &now
	c.exportedCount = count
	c.updatedAt = now
}

// SetStatus is the owner's pause/resume switch. Resuming clears a recorded error.
func (c *Config) SetStatus(status Status, now time.Time) error {
	switch status {
	case StatusPaused:
	case StatusActive:
		c.lastSyncError = nil
	default:
		return ErrInvalidStatus
	}
	c.status = status
	c.updatedAt = now
	return nil
}

func (c *Config) ID() uuid.UUID           { return c.id }
func (c *Config) OwnerID() uuid.UUID      { return c.ownerID }
func (c *Config) UnitID() *uuid.UUID      { return c.unitID }
func (c *Config) Direction() Direction    { return c.direction }
func (c *Config) Status() Status          { return c.status }
func (c *Config) ExportToken() *string    { return c.exportToken }
func (c *Config) SourceURL() *string      { return c.sourceURL }
func (c *Config) Source() calendar.Source { return c.source }
func (c *Config) Interval() time.Duration { return c.interval }
func (c *Config) LastSyncAt() *time.Time  { return c.lastSyncAt }
func (c *Config) LastSyncError() *string  { return c.lastSyncError }
func (c *Config) ImportedCount() int      { return c.importedCount }
func (c *Config) ExportedCount() int      { return c.exportedCount }
func (c *Config) CreatedAt() time.Time    { return c.createdAt }
func (c *Config) UpdatedAt() time.Time    { return c.updatedAt }
