package api

import (
	"errors"
	"net/http"

	reqdto "pantryshare/internal/handler/dto/request"
	resdto "pantryshare/internal/handler/dto/response"
	"pantryshare/internal/handler/httperr"
	"pantryshare/internal/handler/middleware"
	"pantryshare/internal/usecase/commands"
	"pantryshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HouseholdHandler struct {
	householdCommands commands.HouseholdCommands
	householdQueries  queries.HouseholdQueries
}

func NewHouseholdHandler(
	householdCommands commands.HouseholdCommands,
	householdQueries queries.HouseholdQueries,
) *HouseholdHandler {
	return &HouseholdHandler{
		householdCommands: householdCommands,
		householdQueries:  householdQueries,
	}
}

// @Summary Create household
// @Tags households
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHouseholdRequest true "Household request"
// @Success 201 {object} resdto.HouseholdCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /households [post]
func (h *HouseholdHandler) CreateHousehold(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error")
		return
	}

	var req reqdto.CreateHouseholdRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "name is required")
		return
	}

	id, err := h.householdCommands.Create(c.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidHousehold):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "name is required")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHouseholdID(id))
}

// @Summary Current household
// @Description The active household, or null when none exists yet
// @Tags households
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.HouseholdResponse
// @Failure 401 {object} httperr.Response
// @Router /households/current [get]
func (h *HouseholdHandler) CurrentHousehold(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error")
		return
	}

	view, err := h.householdQueries.Current(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromHouseholdView(view))
}
