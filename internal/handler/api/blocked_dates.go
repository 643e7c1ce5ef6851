package api

import (
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BlockedDateHandler struct {
	cmds commands.BlockedDateCommands
}

func NewBlockedDateHandler(cmds commands.BlockedDateCommands) *BlockedDateHandler {
	return &BlockedDateHandler{cmds: cmds}
}

// @Summary Block dates
// @Description Manually block days. Booked days and imported blocks are skipped.
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Param request body reqdto.BlockDatesRequest true "Days to block"
// @Success 200 {object} resdto.DatesAffectedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /units/{id}/blocked-dates [post]
func (h *BlockedDateHandler) Block(c *gin.Context) {
	unitID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req reqdto.BlockDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	in, err := req.ToInput(unitID)
	if err != nil {
		bindError(c, err)
		return
	}
	n, err := h.cmds.BlockDates(c.Request.Context(), actor, in)
	if err != nil {
		respondError(c, err, "block dates failed")
		return
	}
	c.JSON(http.StatusOK, resdto.DatesAffectedResponse{UnitID: unitID, Affected: n})
}

// @Summary Unblock dates
// @Description Remove manual blocks. Imported blocks are left alone.
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Param request body reqdto.UnblockDatesRequest true "Days to unblock"
// @Success 200 {object} resdto.DatesAffectedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /units/{id}/blocked-dates [delete]
func (h *BlockedDateHandler) Unblock(c *gin.Context) {
	unitID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req reqdto.UnblockDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	days, err := req.Days()
	if err != nil {
		bindError(c, err)
		return
	}
	n, err := h.cmds.UnblockDates(c.Request.Context(), actor, unitID, days)
	if err != nil {
		respondError(c, err, "unblock dates failed")
		return
	}
	c.JSON(http.StatusOK, resdto.DatesAffectedResponse{UnitID: unitID, Affected: n})
}
