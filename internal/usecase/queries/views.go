package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const BlockedMarker = "blocked"

type AvailabilityView struct {
	Available        bool     `json:"available"`
	Reason           string   `json:"reason,omitempty"`
	ConflictingDates []string `json:"conflicting_dates,omitempty"`
}

// OccupiedDateView is one booked or blocked day. BookingID is BlockedMarker for blocked days,
// and Status then carries the blocking source.
type OccupiedDateView struct {
	Date      string `json:"date"`
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

type CalendarDayView struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	Price     *int64 `json:"price,omitempty"`
}

type StayView struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Nights   int    `json:"nights"`
}

// CalendarEventView is a display block; End is exclusive.
type CalendarEventView struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
}

type NightPriceView struct {
	Date               string `json:"date"`
	BasePrice          int64  `json:"base_price"`
	SeasonalMultiplier string `json:"seasonal_multiplier"`
	WeekdayMultiplier  string `json:"weekday_multiplier"`
	FinalPrice         int64  `json:"final_price"`
}

type PriceCalculationView struct {
	UnitID             uuid.UUID        `json:"unit_id"`
	CheckIn            string           `json:"check_in"`
	CheckOut           string           `json:"check_out"`
	Guests             int              `json:"guests"`
	Currency           string           `json:"currency"`
	Nights             int              `json:"nights"`
	BasePrice          int64            `json:"base_price"`
	Breakdown          []NightPriceView `json:"breakdown"`
	AccommodationTotal int64            `json:"accommodation_total"`
	SeasonalAdjustment int64            `json:"seasonal_adjustment"`
	WeekdayAdjustment  int64            `json:"weekday_adjustment"`
	ExtraGuestFee      int64            `json:"extra_guest_fee"`
	CleaningFee        int64            `json:"cleaning_fee"`
	ServiceFee         int64            `json:"service_fee"`
	DiscountKind       string           `json:"discount_kind"`
	DiscountPercent    string           `json:"discount_percent"`
	Discount           int64            `json:"discount"`
	PromoCode          string           `json:"promo_code,omitempty"`
	PromoDiscount      int64            `json:"promo_discount"`
	Total              int64            `json:"total"`
}

type PromoValidationView struct {
	Valid    bool   `json:"valid"`
	Message  string `json:"message,omitempty"`
	Discount *int64 `json:"discount,omitempty"`
}

type BookingView struct {
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

type StatusChangeView struct {
	ID         uuid.UUID  `json:"id"`
	FromStatus *string    `json:"from_status"`
	ToStatus   string     `json:"to_status"`
	Comment    *string    `json:"comment,omitempty"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type BookingStatsView struct {
	UnitID *uuid.UUID       `json:"unit_id,omitempty"`
	Total  int64            `json:"total"`
	Counts map[string]int64 `json:"counts"`
}

type CalendarSyncView struct {
	ID            uuid.UUID  `json:"id"`
	OwnerID       uuid.UUID  `json:"owner_id"`
	UnitID        *uuid.UUID `json:"unit_id,omitempty"`
	Direction     string     `json:"direction"`
	Status        string     `json:"status"`
	FeedURL       *string    `json:"feed_url,omitempty"`
	SourceURL     *string    `json:"source_url,omitempty"`
	Source        string     `json:"source"`
	IntervalMin   int        `json:"interval_minutes"`
	LastSyncAt    *time.Time `json:"last_sync_at,omitempty"`
	LastSyncError *string    `json:"last_sync_error,omitempty"`
	ImportedCount int        `json:"imported_count"`
	ExportedCount int        `json:"exported_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type SyncSummaryView struct {
	Synced  int `json:"synced"`
	Errors  int `json:"errors"`
	Skipped int `json:"skipped"`
}

type NotificationJobView struct {
	ID        uuid.UUID       `json:"id"`
	Kind      string          `json:"kind"`
	Topic     string          `json:"topic"`
	Payload   json.RawMessage `json:"payload"`
	Attempts  int             `json:"attempts"`
	LastError *string         `json:"last_error,omitempty"`
	RunAt     time.Time       `json:"run_at"`
	CreatedAt time.Time       `json:"created_at"`
}
