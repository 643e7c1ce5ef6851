//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/api"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/httptest"
	"stayhub/tests/common/testutil"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPricingQueries
	userID      uuid.UUID
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.userID = uuid.New()

	// optional auth: identify the caller only when a token is sent
	optionalAuth := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
			c.Set("user_role", user.RoleGuest)
		}
		c.Next()
	}

	h := api.NewPricingHandler(s.mockQueries)
	s.router.POST("/pricing/quote", optionalAuth, h.Quote)
	s.router.POST("/promo-codes/validate", optionalAuth, h.ValidatePromo)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func (s *PricingHandlerTestSuite) TestQuote() {
	unitID := uuid.New()
	reqBody := reqdto.QuoteRequest{UnitID: unitID, CheckIn: "2025-07-01", CheckOut: "2025-07-04", Guests: 2}
	view := &queries.PriceCalculationView{
		UnitID:   unitID,
		CheckIn:  "2025-07-01",
		CheckOut: "2025-07-04",
		Guests:   2,
		Currency: "USD",
		Nights:   3,
		Breakdown: []queries.NightPriceView{
			{Date: "2025-07-01", BasePrice: 10000, SeasonalMultiplier: "1", WeekdayMultiplier: "1", FinalPrice: 10000},
		},
		AccommodationTotal: 30000,
		DiscountKind:       "none",
		DiscountPercent:    "0",
		Total:              30000,
	}

	s.Run("success: anonymous quote", func() {
		s.mockQueries.EXPECT().CalculatePrice(gomock.Any(), queries.CalculatePriceInput{
			UnitID:   unitID,
			CheckIn:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
			Guests:   2,
		}).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pricing/quote", reqBody, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(unitID.String(), body.UnitID)
		s.Equal(int64(30000), body.Total)
		s.Require().Len(body.Breakdown, 1)
		s.Equal(int64(10000), body.Breakdown[0].FinalPrice)
	})

	s.Run("success: signed-in caller is passed for promo limits", func() {
		s.mockQueries.EXPECT().CalculatePrice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in queries.CalculatePriceInput) (*queries.PriceCalculationView, error) {
				s.Require().NotNil(in.GuestID)
				s.Equal(s.userID, *in.GuestID)
				s.Require().NotNil(in.PromoCode)
				s.Equal("SAVE10", *in.PromoCode)
				return view, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pricing/quote",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("promo_code", " SAVE10 ")), "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on missing guests", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pricing/quote",
			testutil.DtoMap(s.T(), reqBody, testutil.Field("guests", nil)), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 422 for a rejected promo", func() {
		s.mockQueries.EXPECT().CalculatePrice(gomock.Any(), gomock.Any()).
			Return(nil, &errs.PromoInvalidError{Message: "minimum stay not met"})
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pricing/quote", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "minimum stay not met")
	})

	s.Run("error: 404 without a pricing rule", func() {
		s.mockQueries.EXPECT().CalculatePrice(gomock.Any(), gomock.Any()).Return(nil, errs.ErrPricingRuleNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pricing/quote", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pricing rule not found")
	})
}

func (s *PricingHandlerTestSuite) TestValidatePromo() {
	unitID := uuid.New()

	s.Run("success: valid code", func() {
		discount := int64(3000)
		s.mockQueries.EXPECT().ValidatePromoCode(gomock.Any(), queries.ValidatePromoInput{
			Code: "SAVE10", UnitID: unitID, Amount: 30000, Nights: 3,
		}).Return(&queries.PromoValidationView{Valid: true, Discount: &discount}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/promo-codes/validate",
			map[string]any{"code": "SAVE10", "unit_id": unitID, "amount": 30000, "nights": 3}, "")

		var body queries.PromoValidationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Valid)
		s.Equal(discount, *body.Discount)
	})

	s.Run("success: invalid code is still 200", func() {
		s.mockQueries.EXPECT().ValidatePromoCode(gomock.Any(), gomock.Any()).
			Return(&queries.PromoValidationView{Valid: false, Message: "promo code not found"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/promo-codes/validate",
			map[string]any{"code": "NOPE", "unit_id": unitID, "amount": 100}, "")

		var body queries.PromoValidationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Valid)
		s.Equal("promo code not found", body.Message)
	})

	s.Run("error: negative amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/promo-codes/validate",
			map[string]any{"code": "SAVE10", "unit_id": unitID, "amount": -1}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
