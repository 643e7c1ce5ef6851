package api

import (
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyHeader = "Idempotency-Key"

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a unit for a stay. A repeated Idempotency-Key replays the original booking.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key (UUID)"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "Replayed"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		unauthorized(c)
		return
	}

	var key *uuid.UUID
	if raw := c.GetHeader(idempotencyHeader); raw != "" {
		k, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", nil)
			return
		}
		key = &k
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	in, err := req.ToInput(key)
	if err != nil {
		bindError(c, err)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), actor, in)
	if err != nil {
		respondError(c, err, "create booking failed")
		return
	}
	res, err := resdto.FromBookingView(result.Booking)
	if err != nil {
		respondError(c, err, "booking mapping failed")
		return
	}
	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, res)
}

// @Summary Get booking
// @Description Get a booking visible to the guest, the unit owner or an admin
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		unauthorized(c)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "get booking failed")
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		respondError(c, err, "booking mapping failed")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Booking status history
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.StatusChangeResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/history [get]
func (h *BookingHandler) History(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		unauthorized(c)
		return
	}
	items, err := h.q.History(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err, "booking history failed")
		return
	}
	res, err := resdto.FromStatusChanges(items)
	if err != nil {
		respondError(c, err, "history mapping failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": res})
}

// @Summary Update booking status
// @Description Move a booking through its lifecycle. Guests may only cancel.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status change"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.cmds.UpdateBookingStatus(c.Request.Context(), &actor, req.ToInput(id))
	if err != nil {
		respondError(c, err, "update booking status failed")
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		respondError(c, err, "booking mapping failed")
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Booking statistics
// @Description Booking counts per status. Without unit_id the caller must be an admin.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param unit_id query string false "Unit ID"
// @Success 200 {object} resdto.BookingStatsResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /bookings/stats [get]
func (h *BookingHandler) Stats(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req reqdto.BookingStatsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.q.Stats(c.Request.Context(), actor, req.Unit())
	if err != nil {
		respondError(c, err, "booking stats failed")
		return
	}
	res, err := resdto.FromBookingStats(view)
	if err != nil {
		respondError(c, err, "stats mapping failed")
		return
	}
	c.JSON(http.StatusOK, res)
}
