package api

import (
	"log/slog"
	"net/http"
	"time"

	"stayhub/internal/handler/httperr"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type datesOccupiedDetail struct {
	Reason           string   `json:"reason"`
	ConflictingDates []string `json:"conflicting_dates"`
}

var notFoundErrors = []struct {
	err error
	msg string
}{
	{errs.ErrUnitNotFound, "Unit not found"},
	{errs.ErrPricingRuleNotFound, "Pricing rule not found"},
	{errs.ErrBookingNotFound, "Booking not found"},
	{errs.ErrPromoNotFound, "Promo code not found"},
	{errs.ErrCalendarSyncNotFound, "Calendar sync not found"},
	{errs.ErrNotFound, "Not found"},
}

var unprocessableErrors = []struct {
	err error
	msg string
}{
	{errs.ErrUnbookable, "Unit is not bookable"},
	{errs.ErrInvalidStayLength, "Stay length outside allowed range"},
	{errs.ErrGuestCountExceeded, "Guest count exceeds unit capacity"},
	{errs.ErrInvalidDates, "Invalid dates"},
	{errs.ErrDomainValidation, "Validation failed"},
}

// respondError maps use-case errors onto HTTP statuses.
func respondError(c *gin.Context, err error, fallback string) {
	for _, nf := range notFoundErrors {
		if errs.Is(err, nf.err) {
			httperr.AbortWithError(c, http.StatusNotFound, err, nf.msg, nil)
			return
		}
	}

	var occupied *errs.DatesOccupiedError
	if errs.As(err, &occupied) {
		dates := make([]string, len(occupied.Dates))
		for i, d := range occupied.Dates {
			dates[i] = d.Format(time.DateOnly)
		}
		httperr.AbortWithError(c, http.StatusConflict, err, "Dates are not available",
			datesOccupiedDetail{Reason: occupied.Reason, ConflictingDates: dates})
		return
	}

	var promoErr *errs.PromoInvalidError
	if errs.As(err, &promoErr) {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, promoErr.Message, nil)
		return
	}

	switch {
	case errs.Is(err, errs.ErrInactive):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Calendar feed not available", nil)
		return
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		return
	case errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Status change not allowed", nil)
		return
	case errs.Is(err, errs.ErrIdempotencyKeyReused):
		httperr.AbortWithError(c, http.StatusConflict, err, "Idempotency key reused with a different request", nil)
		return
	case errs.Is(err, commands.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request is currently being processed", nil)
		return
	case errs.Is(err, errs.ErrSyncFetch):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Calendar feed could not be fetched", nil)
		return
	case errs.Is(err, errs.ErrSyncParse):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Calendar feed could not be parsed", nil)
		return
	}

	for _, ue := range unprocessableErrors {
		if errs.Is(err, ue.err) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, ue.msg, nil)
			return
		}
	}

	slog.ErrorContext(c.Request.Context(), fallback,
		slog.String("error", err.Error()),
		slog.Any("stack", errs.ExtractStackLines(err, 10)))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func bindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

func unauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing actor"), "Unauthorized", nil)
}
