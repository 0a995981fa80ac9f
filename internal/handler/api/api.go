package api

import (
	"net/http"

	"pantryshare/internal/handler/httperr"
	"pantryshare/internal/pkg/errs"
	"pantryshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errNoHousehold     = errs.New("no household configured")
	errMissingIdentity = errs.New("user id missing from context")
)

// resolveHouseholdID picks the explicit household from the request when given,
// otherwise falls back to the deployment's current household. Aborts the
// request when neither resolves.
func resolveHouseholdID(c *gin.Context, explicit *uuid.UUID, households queries.HouseholdQueries) (uuid.UUID, bool) {
	if explicit != nil {
		return *explicit, true
	}

	view, err := households.Current(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return uuid.Nil, false
	}
	if view == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errNoHousehold, "No household configured")
		return uuid.Nil, false
	}
	return view.ID, true
}

// parseOptionalUUID reads a uuid query parameter, returning nil when absent.
func parseOptionalUUID(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
