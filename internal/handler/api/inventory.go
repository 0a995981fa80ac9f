package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "pantryshare/internal/handler/dto/request"
	resdto "pantryshare/internal/handler/dto/response"
	"pantryshare/internal/handler/httperr"
	"pantryshare/internal/handler/middleware"
	"pantryshare/internal/usecase/commands"
	"pantryshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
	inventoryQueries  queries.InventoryQueries
	householdQueries  queries.HouseholdQueries
}

func NewInventoryHandler(
	inventoryCommands commands.InventoryCommands,
	inventoryQueries queries.InventoryQueries,
	householdQueries queries.HouseholdQueries,
) *InventoryHandler {
	return &InventoryHandler{
		inventoryCommands: inventoryCommands,
		inventoryQueries:  inventoryQueries,
		householdQueries:  householdQueries,
	}
}

// @Summary Ingest items
// @Description Persist parsed receipt line items, optionally with receipt metadata
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IngestItemsRequest true "Ingest request"
// @Success 201 {object} resdto.IngestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /items [post]
func (h *InventoryHandler) IngestItems(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error")
		return
	}

	var req reqdto.IngestItemsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Items are required")
		return
	}

	householdID, ok := resolveHouseholdID(c, req.HouseholdID, h.householdQueries)
	if !ok {
		return
	}

	result, err := h.inventoryCommands.Ingest(c.Request.Context(), req.ToParams(householdID, userID))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoLineItems):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Items are required")
		case errors.Is(err, commands.ErrInvalidLineItem):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid line item")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromIngestResult(result))
}

// @Summary List items
// @Description List household items with optional name and storage filters
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param q query string false "Substring filter on display name"
// @Param storage query string false "Storage location filter"
// @Param limit query int false "Page size, clamped to 1..200"
// @Success 200 {object} resdto.ItemListResponse
// @Failure 401 {object} httperr.Response
// @Router /items [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error")
		return
	}

	explicit, err := parseOptionalUUID(c, "householdId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid household ID format")
		return
	}
	householdID, ok := resolveHouseholdID(c, explicit, h.householdQueries)
	if !ok {
		return
	}

	filter := queries.ListItemsFilter{}
	if q := c.Query("q"); q != "" {
		filter.NameContains = &q
	}
	if storage := c.Query("storage"); storage != "" {
		filter.Storage = &storage
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, convErr := strconv.Atoi(raw); convErr == nil {
			filter.Limit = limit
		}
	}

	items, err := h.inventoryQueries.List(c.Request.Context(), householdID, filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(items))
}

// @Summary Soon-expiring items
// @Description List the caller's unoffered items expiring within the window
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window in days (default 3)"
// @Success 200 {object} resdto.ItemListResponse
// @Failure 401 {object} httperr.Response
// @Router /items/soon-expiring [get]
func (h *InventoryHandler) SoonExpiring(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error")
		return
	}

	explicit, err := parseOptionalUUID(c, "householdId")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid household ID format")
		return
	}
	householdID, ok := resolveHouseholdID(c, explicit, h.householdQueries)
	if !ok {
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		if parsed, convErr := strconv.Atoi(raw); convErr == nil {
			days = parsed
		}
	}

	items, err := h.inventoryQueries.SoonExpiring(c.Request.Context(), householdID, userID, days)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(items))
}
