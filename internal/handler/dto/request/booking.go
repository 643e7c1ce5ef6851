package request

import (
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	UnitID    uuid.UUID `json:"unit_id" binding:"required"`
	CheckIn   string    `json:"check_in" binding:"required,isodate"`
	CheckOut  string    `json:"check_out" binding:"required,isodate"`
	Guests    int       `json:"guests" binding:"required,min=1"`
	PromoCode *string   `json:"promo_code,omitempty" binding:"omitempty,max=64"`
	Notes     *string   `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

func (r CreateBookingRequest) ToInput(key *uuid.UUID) (commands.CreateBookingInput, error) {
	in := commands.CreateBookingInput{
		UnitID:    r.UnitID,
		Guests:    r.Guests,
		PromoCode: trimmed(r.PromoCode),
		Notes:     trimmed(r.Notes),
		Key:       key,
	}
	var err error
	if in.CheckIn, err = parseDay("check_in", r.CheckIn); err != nil {
		return in, err
	}
	if in.CheckOut, err = parseDay("check_out", r.CheckOut); err != nil {
		return in, err
	}
	return in, nil
}

type UpdateBookingStatusRequest struct {
	Status       string  `json:"status" binding:"required,oneof=pending confirmed paid completed canceled refunded"`
	Comment      *string `json:"comment,omitempty" binding:"omitempty,max=1000"`
	CancelReason *string `json:"cancel_reason,omitempty" binding:"omitempty,max=1000"`
}

func (r UpdateBookingStatusRequest) ToInput(bookingID uuid.UUID) commands.UpdateBookingStatusInput {
	return commands.UpdateBookingStatusInput{
		BookingID:    bookingID,
		Status:       r.Status,
		Comment:      trimmed(r.Comment),
		CancelReason: trimmed(r.CancelReason),
	}
}

type BookingStatsQuery struct {
	UnitID string `form:"unit_id" binding:"omitempty,uuid"`
}

func (r BookingStatsQuery) Unit() *uuid.UUID {
	if r.UnitID == "" {
		return nil
	}
	id, err := uuid.Parse(r.UnitID)
	if err != nil {
		return nil
	}
	return &id
}
