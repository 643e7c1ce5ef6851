package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	BookingNumber      string     `json:"booking_number"`
	UnitID             uuid.UUID  `json:"unit_id"`
	GuestID            uuid.UUID  `json:"guest_id"`
	CheckIn            string     `json:"check_in"`
	CheckOut           string     `json:"check_out"`
	Nights             int        `json:"nights"`
	Guests             int        `json:"guests"`
	Status             string     `json:"status"`
	PaymentStatus      string     `json:"payment_status"`
	Currency           string     `json:"currency"`
	AccommodationTotal int64      `json:"accommodation_total"`
	CleaningFee        int64      `json:"cleaning_fee"`
	ServiceFee         int64      `json:"service_fee"`
	ExtraGuestFee      int64      `json:"extra_guest_fee"`
	SeasonalAdjustment int64      `json:"seasonal_adjustment"`
	WeekdayAdjustment  int64      `json:"weekday_adjustment"`
	Discount           int64      `json:"discount"`
	PromoDiscount      int64      `json:"promo_discount"`
	TotalPrice         int64      `json:"total_price"`
	PromoCodeID        *uuid.UUID `json:"promo_code_id,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	CanceledAt         *time.Time `json:"canceled_at,omitempty"`
	CancelReason       *string    `json:"cancel_reason,omitempty"`
	RefundAmount       int64      `json:"refund_amount"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type StatusChangeResponse struct {
	ID         uuid.UUID  `json:"id"`
	FromStatus *string    `json:"from_status"`
	ToStatus   string     `json:"to_status"`
	Comment    *string    `json:"comment,omitempty"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type BookingStatsResponse struct {
	UnitID *uuid.UUID       `json:"unit_id,omitempty"`
	Total  int64            `json:"total"`
	Counts map[string]int64 `json:"counts"`
}

var deepCopy = copier.Option{DeepCopy: true}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.CopyWithOption(&res, v, deepCopy); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromStatusChanges(items []queries.StatusChangeView) ([]StatusChangeResponse, error) {
	res := make([]StatusChangeResponse, 0, len(items))
	if err := copier.CopyWithOption(&res, &items, deepCopy); err != nil {
		return nil, err
	}
	return res, nil
}

func FromBookingStats(v *queries.BookingStatsView) (*BookingStatsResponse, error) {
	var res BookingStatsResponse
	if err := copier.CopyWithOption(&res, v, deepCopy); err != nil {
		return nil, err
	}
	return &res, nil
}
