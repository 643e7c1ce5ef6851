package request

import (
	"strings"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	UnitID    uuid.UUID `json:"unit_id" binding:"required"`
	CheckIn   string    `json:"check_in" binding:"required,isodate"`
	CheckOut  string    `json:"check_out" binding:"required,isodate"`
	Guests    int       `json:"guests" binding:"required,min=1"`
	PromoCode *string   `json:"promo_code,omitempty" binding:"omitempty,max=64"`
}

func (r QuoteRequest) ToInput(guestID *uuid.UUID) (queries.CalculatePriceInput, error) {
	in := queries.CalculatePriceInput{
		UnitID:    r.UnitID,
		Guests:    r.Guests,
		PromoCode: trimmed(r.PromoCode),
		GuestID:   guestID,
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

type ValidatePromoRequest struct {
	Code   string    `json:"code" binding:"required,max=64"`
	UnitID uuid.UUID `json:"unit_id" binding:"required"`
	Amount int64     `json:"amount" binding:"min=0"`
	Nights int       `json:"nights" binding:"min=0"`
}

func (r ValidatePromoRequest) ToInput(userID *uuid.UUID) queries.ValidatePromoInput {
	return queries.ValidatePromoInput{
		Code:   r.Code,
		UnitID: r.UnitID,
		Amount: r.Amount,
		Nights: r.Nights,
		UserID: userID,
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
