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

type NotificationHandler struct {
	notificationCommands commands.NotificationCommands
	notificationQueries  queries.NotificationQueries
	householdQueries     queries.HouseholdQueries
}

func NewNotificationHandler(
	notificationCommands commands.NotificationCommands,
	notificationQueries queries.NotificationQueries,
	householdQueries queries.HouseholdQueries,
) *NotificationHandler {
	return &NotificationHandler{
		notificationCommands: notificationCommands,
		notificationQueries:  notificationQueries,
		householdQueries:     householdQueries,
	}
}

// @Summary Create notification
// @Description Create a targeted or household-broadcast notification
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateNotificationRequest true "Notification request"
// @Success 201 {object} resdto.NotificationCreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /notifications [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error")
		return
	}

	var req reqdto.CreateNotificationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "type is required")
		return
	}

	householdID, ok := resolveHouseholdID(c, req.HouseholdID, h.householdQueries)
	if !ok {
		return
	}

	id, err := h.notificationCommands.Create(c.Request.Context(), commands.CreateNotificationParams{
		HouseholdID: householdID,
		UserID:      req.UserID,
		Kind:        req.Type,
		Payload:     req.Payload,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidNotification):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "type is required")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromNotificationID(id))
}

// @Summary Notification feed
// @Description The caller's targeted notifications plus household broadcasts
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.FeedResponse
// @Failure 401 {object} httperr.Response
// @Router /notifications/feed [get]
func (h *NotificationHandler) Feed(c *gin.Context) {
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

	views, err := h.notificationQueries.Feed(c.Request.Context(), householdID, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationViews(views))
}

// @Summary Mark notifications seen
// @Description Record the caller in the seen-by set of the listed notifications
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MarkSeenRequest true "IDs to mark"
// @Success 200 {object} resdto.MarkSeenResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /notifications/mark-seen [post]
func (h *NotificationHandler) MarkSeen(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error")
		return
	}

	var req reqdto.MarkSeenRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "ids are required")
		return
	}

	result, err := h.notificationCommands.MarkSeen(c.Request.Context(), commands.MarkSeenParams{
		UserID: userID,
		IDs:    req.IDs,
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, &resdto.MarkSeenResponse{OK: true, Updated: result.Updated})
}
