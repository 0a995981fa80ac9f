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

type InventoryHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockCommands   *commandsmock.MockInventoryCommands
	mockQueries    *queriesmock.MockInventoryQueries
	mockHouseholds *queriesmock.MockHouseholdQueries
	handler        *api.InventoryHandler
	userID         uuid.UUID
}

func (s *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockInventoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockInventoryQueries(s.mockCtrl)
	s.mockHouseholds = queriesmock.NewMockHouseholdQueries(s.mockCtrl)
	s.handler = api.NewInventoryHandler(s.mockCommands, s.mockQueries, s.mockHouseholds)
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

	s.router.POST("/items", authMiddleware, s.handler.IngestItems)
	s.router.GET("/items", authMiddleware, s.handler.ListItems)
	s.router.GET("/items/soon-expiring", authMiddleware, s.handler.SoonExpiring)
}

func (s *InventoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInventoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}

// ================================================================================
// TestIngestItems
// ================================================================================

func (s *InventoryHandlerTestSuite) TestIngestItems() {
	url := "/items"
	householdID := uuid.New()

	reqBody := map[string]any{
		"householdId": householdID.String(),
		"items": []map[string]any{
			{"name": "Yogurt", "qty": 1, "unit": "count"},
			{"name": "Milk", "qty": 2, "unit": "l", "storage": "fridge"},
		},
	}

	s.Run("success: returns 201 Created with created ids", func() {
		itemIDs := []uuid.UUID{uuid.New(), uuid.New()}
		s.mockCommands.EXPECT().Ingest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.IngestParams) (*commands.IngestResult, error) {
				s.Equal(householdID, params.HouseholdID)
				s.Equal(s.userID, params.OwnerID)
				s.Require().Len(params.Lines, 2)
				s.Equal("Yogurt", params.Lines[0].Name)
				return &commands.IngestResult{ItemIDs: itemIDs, ItemsCreated: 2}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.IngestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(2, response.ItemsCreated)
		s.Equal(itemIDs, response.ItemIDs)
		s.Nil(response.ReceiptID)
	})

	s.Run("success: receipt metadata rides along", func() {
		receiptID := uuid.New()
		body := map[string]any{
			"householdId": householdID.String(),
			"receipt":     map[string]any{"storeName": "Corner Market", "purchaseDate": "2024-03-01"},
			"items":       []map[string]any{{"name": "Yogurt"}},
		}

		s.mockCommands.EXPECT().Ingest(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.IngestParams) (*commands.IngestResult, error) {
				s.Require().NotNil(params.Receipt)
				s.Require().NotNil(params.Receipt.StoreName)
				s.Equal("Corner Market", *params.Receipt.StoreName)
				s.Require().NotNil(params.Receipt.PurchaseDate)
				s.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *params.Receipt.PurchaseDate)
				// omitted qty defaults to one
				s.Equal(1.0, params.Lines[0].Qty)
				return &commands.IngestResult{ReceiptID: &receiptID, ItemIDs: []uuid.UUID{uuid.New()}, ItemsCreated: 1}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var response resdto.IngestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Require().NotNil(response.ReceiptID)
		s.Equal(receiptID, *response.ReceiptID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing items", body: map[string]any{"householdId": householdID.String()}},
			{name: "empty items", body: map[string]any{"householdId": householdID.String(), "items": []map[string]any{}}},
			{name: "item without name", body: map[string]any{"householdId": householdID.String(), "items": []map[string]any{{"qty": 1}}}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Items are required")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid line item",
				commandsError:  commands.ErrInvalidLineItem,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid line item",
			},
			{
				name:           "store failure",
				commandsError:  commands.ErrDatabaseOperationFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Ingest(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListItems
// ================================================================================

func (s *InventoryHandlerTestSuite) TestListItems() {
	householdID := uuid.New()
	baseURL := "/items?householdId=" + householdID.String()

	items := []*queries.ItemView{
		{ID: uuid.New(), DisplayName: "Yogurt", Qty: 1, Unit: "count"},
		{ID: uuid.New(), DisplayName: "Milk", Qty: 2, Unit: "l"},
	}

	s.Run("success: returns the household inventory", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), householdID, queries.ListItemsFilter{}).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var response resdto.ItemListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
	})

	s.Run("success: query parameters become filters", func() {
		url := baseURL + "&q=milk&storage=fridge&limit=10"
		name := "milk"
		storage := "fridge"
		expectedFilter := queries.ListItemsFilter{NameContains: &name, Storage: &storage, Limit: 10}

		s.mockQueries.EXPECT().List(gomock.Any(), householdID, expectedFilter).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ItemListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
	})

	s.Run("success: falls back to the current household", func() {
		s.mockHouseholds.EXPECT().Current(gomock.Any()).
			Return(&queries.HouseholdView{ID: householdID, Name: "Home"}, nil).Times(1)
		s.mockQueries.EXPECT().List(gomock.Any(), householdID, queries.ListItemsFilter{}).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for malformed householdId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items?householdId=not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid household ID format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), householdID, queries.ListItemsFilter{}).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestSoonExpiring
// ================================================================================

func (s *InventoryHandlerTestSuite) TestSoonExpiring() {
	householdID := uuid.New()
	baseURL := "/items/soon-expiring?householdId=" + householdID.String()

	expiry := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	items := []*queries.ItemView{
		{ID: uuid.New(), DisplayName: "Yogurt", ExpiryDate: &expiry},
	}

	s.Run("success: default window when days is absent", func() {
		s.mockQueries.EXPECT().SoonExpiring(gomock.Any(), householdID, s.userID, 0).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var response resdto.ItemListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
	})

	s.Run("success: days parameter passed through", func() {
		s.mockQueries.EXPECT().SoonExpiring(gomock.Any(), householdID, s.userID, 7).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"&days=7", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().SoonExpiring(gomock.Any(), householdID, s.userID, 0).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
