package api

import (
	"net/http"
	"strings"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const icalContentType = "text/calendar; charset=utf-8"

type CalendarSyncHandler struct {
	cmds commands.CalendarSyncCommands
}

func NewCalendarSyncHandler(cmds commands.CalendarSyncCommands) *CalendarSyncHandler {
	return &CalendarSyncHandler{cmds: cmds}
}

// @Summary Create calendar sync
// @Description Create an export feed (owner-wide or per unit) or a unit-scoped import
// @Tags calendar-sync
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCalendarSyncRequest true "Sync config"
// @Success 201 {object} resdto.CalendarSyncResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /calendar-syncs [post]
func (h *CalendarSyncHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req reqdto.CreateCalendarSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	var (
		view *queries.CalendarSyncView
		err  error
	)
	switch req.Direction {
	case "export":
		view, err = h.cmds.CreateExport(c.Request.Context(), actor, req.ToExportInput())
	default:
		in, ok := req.ToImportInput()
		if !ok {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity,
				errs.Wrap(errs.ErrDomainValidation, "import without unit"), "Imports require unit_id", nil)
			return
		}
		view, err = h.cmds.CreateImport(c.Request.Context(), actor, in)
	}
	if err != nil {
		respondError(c, err, "create calendar sync failed")
		return
	}
	h.respondSync(c, http.StatusCreated, view)
}

// @Summary Pause or resume a calendar sync
// @Tags calendar-sync
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sync ID"
// @Param request body reqdto.UpdateCalendarSyncStatusRequest true "New status"
// @Success 200 {object} resdto.CalendarSyncResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /calendar-syncs/{id}/status [patch]
func (h *CalendarSyncHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		unauthorized(c)
		return
	}
	var req reqdto.UpdateCalendarSyncStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	view, err := h.cmds.SetStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		respondError(c, err, "update calendar sync status failed")
		return
	}
	h.respondSync(c, http.StatusOK, view)
}

// @Summary Run an import now
// @Description Fetch the external feed and replace the unit's imported blocks
// @Tags calendar-sync
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sync ID"
// @Success 200 {object} resdto.ImportResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /calendar-syncs/{id}/import [post]
func (h *CalendarSyncHandler) Import(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		unauthorized(c)
		return
	}
	n, err := h.cmds.Import(c.Request.Context(), &actor, id)
	if err != nil {
		respondError(c, err, "calendar import failed")
		return
	}
	c.JSON(http.StatusOK, resdto.ImportResponse{SyncID: id, Imported: n})
}

// @Summary iCalendar export feed
// @Description Public feed of reserved and blocked days, addressed by its secret token
// @Tags calendar-sync
// @Produce text/calendar
// @Param token path string true "Feed token, optionally suffixed with .ics"
// @Success 200 {string} string
// @Failure 404 {object} map[string]string
// @Router /ical/{token} [get]
func (h *CalendarSyncHandler) Feed(c *gin.Context) {
	token := strings.TrimSuffix(c.Param("token"), ".ics")
	if token == "" {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrCalendarSyncNotFound, "Calendar sync not found", nil)
		return
	}
	body, err := h.cmds.GenerateICalFeed(c.Request.Context(), token)
	if err != nil {
		respondError(c, err, "generate ical feed failed")
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, icalContentType, body)
}

func (h *CalendarSyncHandler) respondSync(c *gin.Context, status int, view *queries.CalendarSyncView) {
	res, err := resdto.FromCalendarSyncView(view)
	if err != nil {
		respondError(c, err, "calendar sync mapping failed")
		return
	}
	c.JSON(status, res)
}
