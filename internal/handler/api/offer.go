package api

import (
	"net/http"

	reqdto "pantryshare/internal/handler/dto/request"
	resdto "pantryshare/internal/handler/dto/response"
	"pantryshare/internal/handler/httperr"
	"pantryshare/internal/handler/middleware"
	"pantryshare/internal/usecase/commands"
	"pantryshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	offerCommands    commands.OfferCommands
	boardQueries     queries.BoardQueries
	householdQueries queries.HouseholdQueries
}

func NewOfferHandler(
	offerCommands commands.OfferCommands,
	boardQueries queries.BoardQueries,
	householdQueries queries.HouseholdQueries,
) *OfferHandler {
	return &OfferHandler{
		offerCommands:    offerCommands,
		boardQueries:     boardQueries,
		householdQueries: householdQueries,
	}
}

// @Summary Create share offer
// @Description Post an item to the household share board
// @Tags share-offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Offer request"
// @Success 201 {object} resdto.OfferCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /share-offers [post]
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error")
		return
	}

	var req reqdto.CreateOfferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "itemId and qtyOffered are required")
		return
	}

	householdID, ok := resolveHouseholdID(c, req.HouseholdID, h.householdQueries)
	if !ok {
		return
	}

	result, err := h.offerCommands.Create(c.Request.Context(), commands.CreateOfferParams{
		HouseholdID: householdID,
		ItemID:      req.ItemID,
		QtyOffered:  *req.QtyOffered,
		ExpiresAt:   req.ExpiresAt.ToTimePtr(),
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateOfferResult(result))
}

// @Summary Claim share offer
// @Description Race for an open offer; losing the race is a normal response
// @Tags share-offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ClaimOfferRequest true "Claim request"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /share-offers/claim [post]
func (h *OfferHandler) ClaimOffer(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error")
		return
	}

	var req reqdto.ClaimOfferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "offerId is required")
		return
	}

	result, err := h.offerCommands.Claim(c.Request.Context(), commands.ClaimOfferParams{
		OfferID:    req.OfferID,
		ClaimantID: userID,
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromClaimResult(result))
}

// @Summary List share offers
// @Description List unclaimed offers joined with their item and owner
// @Tags share-offers
// @Produce json
// @Success 200 {object} resdto.OfferListResponse
// @Router /share-offers [get]
func (h *OfferHandler) ListOffers(c *gin.Context) {
	explicit, err := parseOptionalUUID(c, "householdId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid household ID format")
		return
	}
	householdID, ok := resolveHouseholdID(c, explicit, h.householdQueries)
	if !ok {
		return
	}

	offers, err := h.boardQueries.ListOffers(c.Request.Context(), householdID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferViews(offers))
}
