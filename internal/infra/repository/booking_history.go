package repository

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/repository/converter"
	sqlc "stayhub/internal/infra/sqlc/generated"
)

type BookingHistoryWriteQueries interface {
	CreateBookingStatusHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingStatusHistoryParams) error
}

type BookingHistoryRepository struct {
	queries BookingHistoryWriteQueries
	db      sqlc.DBTX
}

func NewBookingHistoryRepository(queries BookingHistoryWriteQueries, db sqlc.DBTX) *BookingHistoryRepository {
	return &BookingHistoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingHistoryRepository) Append(ctx context.Context, tx sqlc.DBTX, entry booking.StatusChange) error {
	if err := r.queries.CreateBookingStatusHistory(ctx, tx, converter.StatusChangeToParams(entry)); err != nil {
		return infra.WrapRepoErr("failed to append booking status history", err)
	}
	return nil
}
