package converter

import (
	"time"

	"stayhub/internal/domain/calendar"
	"stayhub/internal/domain/calsync"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"
)

func SyncConfigToCreateParams(c *calsync.Config) sqlc.CreateCalendarSyncConfigParams {
	return sqlc.CreateCalendarSyncConfigParams{
		ID:                  c.ID(),
		OwnerID:             c.OwnerID(),
		UnitID:              pgconv.UUIDPtrToPgtype(c.UnitID()),
		Direction:           string(c.Direction()),
		Status:              string(c.Status()),
		ExportToken:         pgconv.StringPtrToPgtype(c.ExportToken()),
		SourceUrl:           pgconv.StringPtrToPgtype(c.SourceURL()),
		Source:              c.Source().String(),
		SyncIntervalMinutes: int32(c.Interval() / time.Minute), // #nosec G115 -- validated interval
		CreatedAt:           pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func SyncConfigToStateParams(c *calsync.Config) sqlc.UpdateCalendarSyncStateParams {
	return sqlc.UpdateCalendarSyncStateParams{
		ID:            c.ID(),
		Status:        string(c.Status()),
		LastSyncAt:    pgconv.TimePtrToPgtype(c.LastSyncAt()),
		LastSyncError: pgconv.StringPtrToPgtype(c.LastSyncError()),
		ImportedCount: int32(c.ImportedCount()), // #nosec G115
		ExportedCount: int32(c.ExportedCount()), // #nosec G115
		UpdatedAt:     pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func SyncConfigFromRow(row sqlc.CalendarSyncConfigs) *calsync.Config {
	return calsync.ReconstructConfig(calsync.ReconstructParams{
		ID:            row.ID,
		OwnerID:       row.OwnerID,
		UnitID:        pgconv.UUIDPtrFromPgtype(row.UnitID),
		Direction:     calsync.Direction(row.Direction),
		Status:        calsync.Status(row.Status),
		ExportToken:   pgconv.StringPtrFromPgtype(row.ExportToken),
		SourceURL:     pgconv.StringPtrFromPgtype(row.SourceUrl),
		Source:        calendar.Source(row.Source),
		Interval:      time.Duration(row.SyncIntervalMinutes) * time.Minute,
		LastSyncAt:    pgconv.TimePtrFromPgtype(row.LastSyncAt),
		LastSyncError: pgconv.StringPtrFromPgtype(row.LastSyncError),
		ImportedCount: int(row.ImportedCount),
		ExportedCount: int(row.ExportedCount),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func ExternalEventToParams(e calsync.ExternalEvent) sqlc.CreateExternalEventParams {
	return sqlc.CreateExternalEventParams{
		ID:           e.ID,
		SyncConfigID: e.SyncConfigID,
		UnitID:       e.UnitID,
		ExternalUid:  e.UID,
		StartDate:    pgconv.DateToPgtype(e.Stay.CheckIn()),
		EndDate:      pgconv.DateToPgtype(e.Stay.CheckOut()),
		Summary:      pgconv.StringPtrToPgtype(e.Summary),
		Description:  pgconv.StringPtrToPgtype(e.Description),
		Source:       e.Source.String(),
		CreatedAt:    pgconv.TimeToPgtype(e.CreatedAt),
	}
}
