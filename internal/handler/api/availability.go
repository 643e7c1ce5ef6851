package api

import (
	"net/http"
	"time"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Check availability
// @Description Check whether a unit can be booked for a stay
// @Tags availability
// @Produce json
// @Param id path string true "Unit ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param exclude_booking_id query string false "Booking to ignore when checking"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /units/{id}/availability [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	unitID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}
	in, err := req.ToInput(unitID)
	if err != nil {
		bindError(c, err)
		return
	}
	view, err := h.q.CheckAvailability(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "check availability failed")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Occupied dates
// @Description List booked and blocked days of a unit in [start, end)
// @Tags availability
// @Produce json
// @Param id path string true "Unit ID"
// @Param start query string true "First day (YYYY-MM-DD)"
// @Param end query string true "Day after the last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.OccupiedDatesResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /units/{id}/occupied-dates [get]
func (h *AvailabilityHandler) OccupiedDates(c *gin.Context) {
	unitID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.DateRangeQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}
	start, end, err := req.Days()
	if err != nil {
		bindError(c, err)
		return
	}
	dates, err := h.q.OccupiedDates(c.Request.Context(), unitID, start, end)
	if err != nil {
		respondError(c, err, "occupied dates failed")
		return
	}
	c.JSON(http.StatusOK, resdto.OccupiedDatesResponse{UnitID: unitID, Dates: dates})
}

// @Summary Availability calendar
// @Description Per-day availability and nightly price for one month
// @Tags availability
// @Produce json
// @Param id path string true "Unit ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} resdto.CalendarMonthResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /units/{id}/calendar [get]
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	unitID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CalendarMonthQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}
	days, err := h.q.AvailabilityCalendar(c.Request.Context(), unitID, req.Year, time.Month(req.Month))
	if err != nil {
		respondError(c, err, "availability calendar failed")
		return
	}
	c.JSON(http.StatusOK, resdto.CalendarMonthResponse{UnitID: unitID, Year: req.Year, Month: req.Month, Days: days})
}

// @Summary Next available stay
// @Description Earliest free stay of the given length on or after the preferred check-in
// @Tags availability
// @Produce json
// @Param id path string true "Unit ID"
// @Param preferred_check_in query string true "Preferred check-in (YYYY-MM-DD)"
// @Param nights query int true "Number of nights"
// @Success 200 {object} resdto.NextAvailableResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /units/{id}/next-available [get]
func (h *AvailabilityHandler) NextAvailable(c *gin.Context) {
	unitID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.NextAvailableQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}
	preferred, err := req.Preferred()
	if err != nil {
		bindError(c, err)
		return
	}
	stay, err := h.q.FindNextAvailable(c.Request.Context(), unitID, preferred, req.Nights)
	if err != nil {
		respondError(c, err, "find next available failed")
		return
	}
	c.JSON(http.StatusOK, resdto.NextAvailableResponse{UnitID: unitID, Found: stay != nil, Stay: stay})
}

// @Summary Calendar events
// @Description Bookings and grouped blocked ranges for calendar display
// @Tags availability
// @Produce json
// @Param id path string true "Unit ID"
// @Param start query string true "First day (YYYY-MM-DD)"
// @Param end query string true "Day after the last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.CalendarEventsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /units/{id}/calendar-events [get]
func (h *AvailabilityHandler) Events(c *gin.Context) {
	unitID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.DateRangeQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}
	start, end, err := req.Days()
	if err != nil {
		bindError(c, err)
		return
	}
	events, err := h.q.CalendarEvents(c.Request.Context(), unitID, start, end)
	if err != nil {
		respondError(c, err, "calendar events failed")
		return
	}
	c.JSON(http.StatusOK, resdto.CalendarEventsResponse{UnitID: unitID, Events: events})
}
