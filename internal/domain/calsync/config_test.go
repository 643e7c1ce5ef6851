//go:build unit

package calsync_test

import (
	"errors"
	"testing"
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/calsync"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

func TestNewExportConfig(t *testing.T) {
	a, err := calsync.NewExportConfig(uuid.New(), nil, time.Hour, now)
	require.NoError(t, err)
	b, err := calsync.NewExportConfig(uuid.New(), nil, time.Hour, now)
	require.NoError(t, err)

	require.NotNil(t, a.ExportToken())
	assert.Len(t, *a.ExportToken(), 48)
	assert.NotEqual(t, *a.ExportToken(), *b.ExportToken())
	assert.NoError(t, a.CanExport())

	require.NoError(t, a.SetStatus(calsync.StatusPaused, now))
	assert.ErrorIs(t, a.CanExport(), errs.ErrInactive)
}

func TestNewImportConfig(t *testing.T) {
	unitID := uuid.New()

	testCases := []struct {
		name   string
		unitID *uuid.UUID
		url    string
		label  string
		errIs  error
	}{
		{name: "valid", unitID: &unitID, url: "https://www.airbnb.com/calendar/ical/1.ics", label: "Airbnb"},
		{name: "unit required", url: "https://example.com/a.ics", label: "vrbo", errIs: calsync.ErrUnitRequired},
		{name: "relative url", unitID: &unitID, url: "/a.ics", label: "vrbo", errIs: calsync.ErrInvalidURL},
		{name: "ftp url", unitID: &unitID, url: "ftp://example.com/a.ics", label: "vrbo", errIs: calsync.ErrInvalidURL},
		{name: "reserved label", unitID: &unitID, url: "https://example.com/a.ics", label: "manual", errIs: calendar.ErrInvalidSource},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := calsync.NewImportConfig(uuid.New(), tc.unitID, tc.url, tc.label, time.Hour, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, calendar.Source("airbnb"), cfg.Source())
			assert.NoError(t, cfg.CanImport())
		})
	}
}

func TestConfig_SyncBookkeeping(t *testing.T) {
	unitID := uuid.New()
	cfg, err := calsync.NewImportConfig(uuid.New(), &unitID, "https://example.com/a.ics", "vrbo", time.Hour, now)
	require.NoError(t, err)

	assert.True(t, cfg.IsDue(now), "never synced")

	cfg.MarkFailed(now, errors.New("status 503"))
	assert.Equal(t, calsync.StatusError, cfg.Status())
	assert.Equal(t, "status 503", *cfg.LastSyncError())
	assert.False(t, cfg.IsDue(now.Add(30*time.Minute)))
	assert.True(t, cfg.IsDue(now.Add(time.Hour)))
	assert.NoError(t, cfg.CanImport(), "errored configs are retried")

	cfg.MarkImported(now.Add(time.Hour), 4)
	assert.Equal(t, calsync.StatusActive, cfg.Status())
	assert.Nil(t, cfg.LastSyncError())
	assert.Equal(t, 4, cfg.ImportedCount())

	assert.ErrorIs(t, cfg.SetStatus(calsync.StatusError, now), calsync.ErrInvalidStatus)
}

func TestExternalEvent_BlockedDays(t *testing.T) {
	unitID := uuid.New()
	cfg, err := calsync.NewImportConfig(uuid.New(), &unitID, "https://example.com/a.ics", "vrbo", time.Hour, now)
	require.NoError(t, err)
	start, _ := calendar.ParseDay("2025-07-01")
	end, _ := calendar.ParseDay("2025-07-04")

	ev, err := calsync.NewExternalEvent(cfg, "abc@vrbo", start, end, ptr.To("Reserved"), nil, now)
	require.NoError(t, err)
	days := ev.BlockedDays()
	require.Len(t, days, 3)
	assert.Equal(t, unitID, days[0].UnitID)
	assert.Equal(t, calendar.Source("vrbo"), days[2].Source)
	assert.Equal(t, "abc@vrbo", *days[1].ExternalRef)
	require.NotNil(t, days[0].SyncConfigID)
	assert.Equal(t, cfg.ID(), *days[0].SyncConfigID)

	single, err := calsync.NewExternalEvent(cfg, "one", start, start, nil, nil, now)
	require.NoError(t, err)
	assert.Equal(t, 1, single.Stay.Nights())

	_, err = calsync.NewExternalEvent(cfg, " ", start, end, nil, nil, now)
	assert.ErrorIs(t, err, calsync.ErrMissingUID)
}

func TestExternalEvent_ClampTo(t *testing.T) {
	unitID := uuid.New()
	cfg, err := calsync.NewImportConfig(uuid.New(), &unitID, "https://example.com/a.ics", "airbnb", time.Hour, now)
	require.NoError(t, err)
	from, _ := calendar.ParseDay("2025-05-01")
	to := calendar.AddDays(from, 30)

	testCases := []struct {
		name      string
		start     string
		end       string
		wantOK    bool
		wantIn    string
		wantOut   string
		wantNight int
	}{
		{name: "inside the window is untouched", start: "2025-05-10", end: "2025-05-12", wantOK: true, wantIn: "2025-05-10", wantOut: "2025-05-12", wantNight: 2},
		{name: "centuries wide is cut to the window", start: "1900-01-01", end: "2200-01-01", wantOK: true, wantIn: "2025-05-01", wantOut: "2025-05-31", wantNight: 30},
		{name: "started in the past", start: "2025-04-20", end: "2025-05-03", wantOK: true, wantIn: "2025-05-01", wantOut: "2025-05-03", wantNight: 2},
		{name: "runs past the horizon", start: "2025-05-29", end: "2025-06-10", wantOK: true, wantIn: "2025-05-29", wantOut: "2025-05-31", wantNight: 2},
		{name: "ended before today", start: "2025-04-01", end: "2025-05-01"},
		{name: "starts at the horizon", start: "2025-05-31", end: "2025-06-02"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, _ := calendar.ParseDay(tc.start)
			end, _ := calendar.ParseDay(tc.end)
			ev, err := calsync.NewExternalEvent(cfg, "uid@airbnb", start, end, nil, nil, now)
			require.NoError(t, err)

			clamped, ok := ev.ClampTo(from, to)
			require.Equal(t, tc.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tc.wantIn, calendar.Key(clamped.Stay.CheckIn()))
			assert.Equal(t, tc.wantOut, calendar.Key(clamped.Stay.CheckOut()))
			assert.Len(t, clamped.BlockedDays(), tc.wantNight)
			assert.Equal(t, ev.UID, clamped.UID)
		})
	}
}
