package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familysync-backend/internal/core"
	"familysync-backend/internal/models"
)

// ChildHandler handles child-record endpoints.
type ChildHandler struct {
	childService core.ChildService
}

// NewChildHandler creates a new ChildHandler.
func NewChildHandler(cs core.ChildService) *ChildHandler {
	return &ChildHandler{childService: cs}
}

// CreateChild handles POST /api/v1/children.
func (h *ChildHandler) CreateChild(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.CreateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid-argument", Message: "Invalid request body"})
		return
	}
	childID, err := h.childService.CreateChild(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse("childId", childID))
}
