package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familysync-backend/internal/core"
	"familysync-backend/internal/models"
)

// FamilyHandler handles family endpoints.
type FamilyHandler struct {
	familyService core.FamilyService
}

// NewFamilyHandler creates a new FamilyHandler.
func NewFamilyHandler(fs core.FamilyService) *FamilyHandler {
	return &FamilyHandler{familyService: fs}
}

// GetFamily handles GET /api/v1/families/:familyId.
func (h *FamilyHandler) GetFamily(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	family, err := h.familyService.GetFamily(c.Request.Context(), uid, c.Param("familyId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, family)
}

// UpdateSettings handles PUT /api/v1/families/:familyId/settings.
func (h *FamilyHandler) UpdateSettings(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.UpdateFamilySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid-argument", Message: "Invalid request body"})
		return
	}
	if err := h.familyService.UpdateSettings(c.Request.Context(), uid, c.Param("familyId"), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Settings updated"})
}
