package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"familysync-backend/internal/core"
)

// respondError maps service-layer errors onto the API's error contract.
// Validation failures keep their user-facing messages; everything
// unexpected collapses to a generic 500 with details logged server-side.
func respondError(c *gin.Context, err error) {
	var verr *core.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    "invalid-argument",
			Message: verr.Error(),
		})
	case errors.Is(err, core.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Code:    "permission-denied",
			Message: "You do not have permission to perform this action",
		})
	case errors.Is(err, core.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    "not-found",
			Message: "The requested resource was not found",
		})
	default:
		log.Printf("api: internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    "internal",
			Message: "An internal error occurred",
		})
	}
}

// callerUID returns the authenticated uid set by the auth middleware.
// ok is false only if the middleware did not run, which is a routing bug;
// the handler answers 401 in that case.
func callerUID(c *gin.Context) (string, bool) {
	raw, exists := c.Get("userID")
	uid, isString := raw.(string)
	if !exists || !isString || uid == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    "unauthenticated",
			Message: "Authentication error: user ID not found in context",
		})
		return "", false
	}
	return uid, true
}
