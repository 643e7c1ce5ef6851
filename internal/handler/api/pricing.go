package api

import (
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

func optionalUserID(c *gin.Context) *uuid.UUID {
	if id, ok := middleware.GetUserID(c); ok {
		return &id
	}
	return nil
}

// @Summary Price quote
// @Description Nightly breakdown, fees, discounts and total for a stay
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	in, err := req.ToInput(optionalUserID(c))
	if err != nil {
		bindError(c, err)
		return
	}
	view, err := h.q.CalculatePrice(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "price quote failed")
		return
	}
	res, err := resdto.FromPriceCalculationView(view)
	if err != nil {
		respondError(c, err, "price quote mapping failed")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Validate promo code
// @Description Check a promo code against a unit and an order amount
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromoRequest true "Promo validation request"
// @Success 200 {object} queries.PromoValidationView
// @Failure 400 {object} map[string]string
// @Router /promo-codes/validate [post]
func (h *PricingHandler) ValidatePromo(c *gin.Context) {
	var req reqdto.ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.q.ValidatePromoCode(c.Request.Context(), req.ToInput(optionalUserID(c)))
	if err != nil {
		respondError(c, err, "validate promo failed")
		return
	}
	c.JSON(http.StatusOK, view)
}
