//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"pantryshare/internal/handler/api"
	resdto "pantryshare/internal/handler/dto/response"
	"pantryshare/internal/usecase/queries"
	"pantryshare/tests/common/httptest"
	queriesmock "pantryshare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockProductQueries
	handler     *api.ProductHandler
	userID      uuid.UUID
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockProductQueries(s.mockCtrl)
	s.handler = api.NewProductHandler(s.mockQueries)
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

	s.router.GET("/products/search", authMiddleware, s.handler.Search)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

// ================================================================================
// TestSearch
// ================================================================================

func (s *ProductHandlerTestSuite) TestSearch() {
	s.Run("success: returns catalog hits for the term", func() {
		dairy := "dairy"
		hits := []*queries.ProductHit{
			{ID: uuid.New(), DisplayName: "Whole Milk", Category: &dairy},
			{ID: uuid.New(), DisplayName: "Oat Milk"},
		}
		s.mockQueries.EXPECT().Search(gomock.Any(), "milk").Return(hits, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/search?q=milk", nil, "bearer-token")

		var response resdto.ProductSearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Products, 2)
		s.Equal("Whole Milk", response.Products[0].DisplayName)
	})

	s.Run("success: blank term yields an empty array", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "").
			Return([]*queries.ProductHit{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/search", nil, "bearer-token")

		var response resdto.ProductSearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Products)
		s.Empty(response.Products)
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/search?q=milk", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 500 Internal Server Error on store failure", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), "milk").
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/products/search?q=milk", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
