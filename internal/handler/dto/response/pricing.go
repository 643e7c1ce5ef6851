package response

import (
	"stayhub/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type NightPriceResponse struct {
	Date               string `json:"date"`
	BasePrice          int64  `json:"base_price"`
	SeasonalMultiplier string `json:"seasonal_multiplier"`
	WeekdayMultiplier  string `json:"weekday_multiplier"`
	FinalPrice         int64  `json:"final_price"`
}

type QuoteResponse struct {
	UnitID             string               `json:"unit_id"`
	CheckIn            string               `json:"check_in"`
	CheckOut           string               `json:"check_out"`
	Guests             int                  `json:"guests"`
	Currency           string               `json:"currency"`
	Nights             int                  `json:"nights"`
	BasePrice          int64                `json:"base_price"`
	Breakdown          []NightPriceResponse `json:"breakdown"`
	AccommodationTotal int64                `json:"accommodation_total"`
	SeasonalAdjustment int64                `json:"seasonal_adjustment"`
	WeekdayAdjustment  int64                `json:"weekday_adjustment"`
	ExtraGuestFee      int64                `json:"extra_guest_fee"`
	CleaningFee        int64                `json:"cleaning_fee"`
	ServiceFee         int64                `json:"service_fee"`
	DiscountKind       string               `json:"discount_kind"`
	DiscountPercent    string               `json:"discount_percent"`
	Discount           int64                `json:"discount"`
	PromoCode          string               `json:"promo_code,omitempty"`
	PromoDiscount      int64                `json:"promo_discount"`
	Total              int64                `json:"total"`
}

func FromPriceCalculationView(v *queries.PriceCalculationView) (*QuoteResponse, error) {
	var res QuoteResponse
	if err := copier.CopyWithOption(&res, v, deepCopy); err != nil {
		return nil, err
	}
	res.UnitID = v.UnitID.String()
	return &res, nil
}
