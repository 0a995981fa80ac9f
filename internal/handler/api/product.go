package api

import (
	"net/http"

	resdto "pantryshare/internal/handler/dto/response"
	"pantryshare/internal/handler/httperr"
	"pantryshare/internal/handler/middleware"
	"pantryshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	productQueries queries.ProductQueries
}

func NewProductHandler(productQueries queries.ProductQueries) *ProductHandler {
	return &ProductHandler{productQueries: productQueries}
}

// @Summary Search products
// @Description Substring search over the product catalog
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term"
// @Success 200 {object} resdto.ProductSearchResponse
// @Failure 401 {object} httperr.Response
// @Router /products/search [get]
func (h *ProductHandler) Search(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error")
		return
	}

	hits, err := h.productQueries.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductHits(hits))
}
