//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"pantryshare/internal/handler/api"
	resdto "pantryshare/internal/handler/dto/response"
	"pantryshare/internal/usecase/commands"
	"pantryshare/internal/usecase/queries"
	"pantryshare/tests/common/httptest"
	commandsmock "pantryshare/tests/mock/commands"
	queriesmock "pantryshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HouseholdHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHouseholdCommands
	mockQueries  *queriesmock.MockHouseholdQueries
	handler      *api.HouseholdHandler
	userID       uuid.UUID
}

func (s *HouseholdHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHouseholdCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHouseholdQueries(s.mockCtrl)
	s.handler = api.NewHouseholdHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Access token required"})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/households", authMiddleware, s.handler.CreateHousehold)
	s.router.GET("/households/current", authMiddleware, s.handler.CurrentHousehold)
}

func (s *HouseholdHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHouseholdHandlerSuite(t *testing.T) {
	suite.Run(t, new(HouseholdHandlerTestSuite))
}

// ================================================================================
// TestCreateHousehold
// ================================================================================

func (s *HouseholdHandlerTestSuite) TestCreateHousehold() {
	url := "/households"

	s.Run("success: returns 201 Created with the household id", func() {
		householdID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), "Miller household").
			Return(householdID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"name": "Miller household"}, "bearer-token")

		var response resdto.HouseholdCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(householdID, response.HouseholdID)
	})

	s.Run("error: 400 Bad Request on missing name", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "name is required")
	})

	s.Run("error: 400 Bad Request when the command rejects the name", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), "   ").
			Return(uuid.Nil, commands.ErrInvalidHousehold).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"name": "   "}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "name is required")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"name": "Miller household"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 500 Internal Server Error on command failure", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), "Miller household").
			Return(uuid.Nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"name": "Miller household"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestCurrentHousehold
// ================================================================================

func (s *HouseholdHandlerTestSuite) TestCurrentHousehold() {
	url := "/households/current"

	s.Run("success: returns the active household", func() {
		view := &queries.HouseholdView{
			ID:        uuid.New(),
			Name:      "Miller household",
			CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		}
		s.mockQueries.EXPECT().Current(gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.HouseholdResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Household)
		s.Equal(view.ID, response.Household.ID)
		s.Equal("Miller household", response.Household.Name)
	})

	s.Run("success: null household when none exists", func() {
		s.mockQueries.EXPECT().Current(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.HouseholdResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response.Household)
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().Current(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
