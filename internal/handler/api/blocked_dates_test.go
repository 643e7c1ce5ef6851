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
	"stayhub/tests/common/httptest"
	commandsmock "stayhub/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BlockedDateHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBlockedDateCommands
	unitID       uuid.UUID
}

func (s *BlockedDateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(reqdto.RegisterValidators())
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBlockedDateCommands(s.mockCtrl)
	s.unitID = uuid.New()

	h := api.NewBlockedDateHandler(s.mockCommands)
	auth := fakeAuth(uuid.New(), user.RoleOwner)
	s.router.POST("/units/:id/blocked-dates", auth, h.Block)
	s.router.DELETE("/units/:id/blocked-dates", auth, h.Unblock)
}

func (s *BlockedDateHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBlockedDateHandlerSuite(t *testing.T) {
	suite.Run(t, new(BlockedDateHandlerTestSuite))
}

func (s *BlockedDateHandlerTestSuite) url() string {
	return "/units/" + s.unitID.String() + "/blocked-dates"
}

func (s *BlockedDateHandlerTestSuite) TestBlock() {
	s.Run("success: returns affected count", func() {
		reason := "maintenance"
		s.mockCommands.EXPECT().BlockDates(gomock.Any(), gomock.Any(), commands.BlockDatesInput{
			UnitID: s.unitID,
			Dates: []time.Time{
				time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
			},
			Reason: &reason,
		}).Return(1, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(),
			map[string]any{"dates": []string{"2025-07-01", "2025-07-02"}, "reason": "maintenance"}, "bearer-token")

		var body resdto.DatesAffectedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.unitID, body.UnitID)
		s.Equal(1, body.Affected)
	})

	invalid := []struct {
		name string
		body map[string]any
	}{
		{"empty list", map[string]any{"dates": []string{}}},
		{"missing dates", map[string]any{"reason": "x"}},
		{"bad date in list", map[string]any{"dates": []string{"2025-07-01", "tomorrow"}}},
	}
	for _, tc := range invalid {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(), tc.body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: 403 when caller does not manage the unit", func() {
		s.mockCommands.EXPECT().BlockDates(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errs.ErrForbidden)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url(),
			map[string]any{"dates": []string{"2025-07-01"}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *BlockedDateHandlerTestSuite) TestUnblock() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().UnblockDates(gomock.Any(), gomock.Any(), s.unitID,
			[]time.Time{time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)}).Return(1, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.url(),
			map[string]any{"dates": []string{"2025-07-01"}}, "bearer-token")

		var body resdto.DatesAffectedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Affected)
	})

	s.Run("error: 404 for unknown unit", func() {
		s.mockCommands.EXPECT().UnblockDates(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errs.ErrUnitNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.url(),
			map[string]any{"dates": []string{"2025-07-01"}}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Unit not found")
	})
}
