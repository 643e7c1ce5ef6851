package readstore

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc/generated"
	"stayhub/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListUnitBookingsInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUnitBookingsInRangeParams) ([]sqlc.Bookings, error)
	ListBookingsForExport(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsForExportParams) ([]sqlc.Bookings, error)
	ListBookingStatusHistory(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) ([]sqlc.BookingStatusHistory, error)
	CountBookingsByStatus(ctx context.Context, db sqlc.DBTX, unitID pgtype.UUID) ([]sqlc.CountBookingsByStatusRow, error)
	CountPromoUsageByGuest(ctx context.Context, db sqlc.DBTX, arg sqlc.CountPromoUsageByGuestParams) (int64, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	return converter.BookingFromRow(row), nil
}

// InRange returns bookings in the given statuses whose stay overlaps [from, to).
func (r *BookingReadStore) InRange(ctx context.Context, unitID uuid.UUID, from, to time.Time, statuses []booking.Status) ([]*booking.Booking, error) {
	rows, err := r.queries.ListUnitBookingsInRange(ctx, r.db, sqlc.ListUnitBookingsInRangeParams{
		UnitID:    unitID,
		RangeFrom: pgconv.DateToPgtype(from),
		RangeTo:   pgconv.DateToPgtype(to),
		Statuses:  converter.StatusStrings(statuses),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings in range", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func (r *BookingReadStore) ForExport(ctx context.Context, unitIDs []uuid.UUID) ([]*booking.Booking, error) {
	if len(unitIDs) == 0 {
		return nil, nil
	}
	rows, err := r.queries.ListBookingsForExport(ctx, r.db, sqlc.ListBookingsForExportParams{
		UnitIds:  unitIDs,
		Statuses: converter.StatusStrings(booking.ExportedStatuses()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings for export", err)
	}
	return converter.BookingsFromRows(rows), nil
}

func (r *BookingReadStore) History(ctx context.Context, bookingID uuid.UUID) ([]booking.StatusChange, error) {
	rows, err := r.queries.ListBookingStatusHistory(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking history", err)
	}
	out := make([]booking.StatusChange, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.StatusChangeFromRow(row))
	}
	return out, nil
}

// CountsByStatus counts bookings per status, across all units when unitID is nil.
func (r *BookingReadStore) CountsByStatus(ctx context.Context, unitID *uuid.UUID) (map[booking.Status]int64, error) {
	rows, err := r.queries.CountBookingsByStatus(ctx, r.db, pgconv.UUIDPtrToPgtype(unitID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings", err)
	}
	counts := make(map[booking.Status]int64, len(rows))
	for _, row := range rows {
		counts[booking.Status(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *BookingReadStore) PromoUsageByGuest(ctx context.Context, promoID, guestID uuid.UUID) (int, error) {
	n, err := r.queries.CountPromoUsageByGuest(ctx, r.db, sqlc.CountPromoUsageByGuestParams{
		PromoCodeID: pgconv.UUIDToPgtype(promoID),
		GuestID:     guestID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count promo usage", err)
	}
	return int(n), nil
}
