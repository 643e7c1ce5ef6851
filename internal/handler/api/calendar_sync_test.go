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
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/httptest"
	commandsmock "stayhub/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarSyncHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCalendarSyncCommands
	ownerID      uuid.UUID
}

func (s *CalendarSyncHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCalendarSyncCommands(s.mockCtrl)
	s.ownerID = uuid.New()

	h := api.NewCalendarSyncHandler(s.mockCommands)
	auth := fakeAuth(s.ownerID, user.RoleOwner)
	s.router.POST("/calendar-syncs", auth, h.Create)
	s.router.PATCH("/calendar-syncs/:id/status", auth, h.UpdateStatus)
	s.router.POST("/calendar-syncs/:id/import", auth, h.Import)
	s.router.GET("/ical/:token", h.Feed)
}

func (s *CalendarSyncHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCalendarSyncHandlerSuite(t *testing.T) {
	suite.Run(t, new(CalendarSyncHandlerTestSuite))
}

func (s *CalendarSyncHandlerTestSuite) view(direction string) *queries.CalendarSyncView {
	unitID := uuid.New()
	now := time.Now().UTC()
	return &queries.CalendarSyncView{
		ID:          uuid.New(),
		OwnerID:     s.ownerID,
		UnitID:      &unitID,
		Direction:   direction,
		Status:      "active",
		Source:      "airbnb",
		IntervalMin: 60,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *CalendarSyncHandlerTestSuite) TestCreate() {
	s.Run("success: export", func() {
		v := s.view("export")
		feed := "https://stayhub.example.com/ical/abc.ics"
		v.FeedURL = &feed
		s.mockCommands.EXPECT().CreateExport(gomock.Any(), user.Actor{ID: s.ownerID, Role: user.RoleOwner}, commands.CreateExportInput{}).
			Return(v, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar-syncs", map[string]any{"direction": "export"}, "bearer-token")

		var body resdto.CalendarSyncResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(60, body.IntervalMinutes)
		s.Require().NotNil(body.FeedURL)
		s.Equal(feed, *body.FeedURL)
	})

	s.Run("success: import", func() {
		v := s.view("import")
		s.mockCommands.EXPECT().CreateImport(gomock.Any(), gomock.Any(), commands.CreateImportInput{
			UnitID:   *v.UnitID,
			URL:      "https://calendar.example.com/feed.ics",
			Label:    "airbnb",
			Interval: 30 * time.Minute,
		}).Return(v, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar-syncs", map[string]any{
			"direction":        "import",
			"unit_id":          v.UnitID,
			"url":              "https://calendar.example.com/feed.ics",
			"label":            "airbnb",
			"interval_minutes": 30,
		}, "bearer-token")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 422 for an import without unit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar-syncs",
			map[string]any{"direction": "import", "url": "https://calendar.example.com/feed.ics"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "unit_id")
	})

	s.Run("error: 400 on unknown direction", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar-syncs", map[string]any{"direction": "both"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 when interval is too short", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar-syncs",
			map[string]any{"direction": "export", "interval_minutes": 1}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 403 for a unit owned by someone else", func() {
		s.mockCommands.EXPECT().CreateExport(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.ErrForbidden)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar-syncs",
			map[string]any{"direction": "export", "unit_id": uuid.New()}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 401 without credentials", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar-syncs", map[string]any{"direction": "export"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *CalendarSyncHandlerTestSuite) TestUpdateStatus() {
	v := s.view("import")
	v.Status = "paused"

	s.Run("success", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), gomock.Any(), v.ID, "paused").Return(v, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/calendar-syncs/"+v.ID.String()+"/status",
			map[string]any{"status": "paused"}, "bearer-token")

		var body resdto.CalendarSyncResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("paused", body.Status)
	})

	s.Run("error: status must be active or paused", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/calendar-syncs/"+v.ID.String()+"/status",
			map[string]any{"status": "error"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CalendarSyncHandlerTestSuite) TestImport() {
	id := uuid.New()

	s.Run("success: reports imported days", func() {
		s.mockCommands.EXPECT().Import(gomock.Any(), gomock.Any(), id).
			DoAndReturn(func(_ any, actor *user.Actor, _ uuid.UUID) (int, error) {
				s.Require().NotNil(actor)
				s.Equal(s.ownerID, actor.ID)
				return 7, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar-syncs/"+id.String()+"/import", nil, "bearer-token")

		var body resdto.ImportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(id, body.SyncID)
		s.Equal(7, body.Imported)
	})

	upstream := []struct {
		name string
		err  error
		msg  string
	}{
		{"fetch failure", errs.Wrap(errs.ErrSyncFetch, "GET feed: 503"), "could not be fetched"},
		{"parse failure", errs.Wrap(errs.ErrSyncParse, "no VCALENDAR"), "could not be parsed"},
	}
	for _, tc := range upstream {
		s.Run("error: 502 on "+tc.name, func() {
			s.mockCommands.EXPECT().Import(gomock.Any(), gomock.Any(), id).Return(0, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar-syncs/"+id.String()+"/import", nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, tc.msg)
		})
	}

	s.Run("error: 404 for unknown sync", func() {
		s.mockCommands.EXPECT().Import(gomock.Any(), gomock.Any(), id).Return(0, errs.ErrCalendarSyncNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/calendar-syncs/"+id.String()+"/import", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Calendar sync not found")
	})
}

func (s *CalendarSyncHandlerTestSuite) TestFeed() {
	feed := []byte("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n")

	s.Run("success: serves text/calendar and strips .ics", func() {
		s.mockCommands.EXPECT().GenerateICalFeed(gomock.Any(), "secret-token").Return(feed, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/ical/secret-token.ics", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Type":  "text/calendar; charset=utf-8",
			"Cache-Control": "no-cache",
		})
		s.Equal(string(feed), rec.Body.String())
	})

	s.Run("success: token without suffix", func() {
		s.mockCommands.EXPECT().GenerateICalFeed(gomock.Any(), "secret-token").Return(feed, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/ical/secret-token", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 404 for a paused feed", func() {
		s.mockCommands.EXPECT().GenerateICalFeed(gomock.Any(), "paused").Return(nil, errs.ErrInactive)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/ical/paused.ics", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 404 for a bare suffix", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/ical/.ics", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Calendar sync not found")
	})
}
