package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familysync-backend/internal/core"
	"familysync-backend/internal/models"
)

// ProfileHandler handles user-profile endpoints.
type ProfileHandler struct {
	profileService core.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(ps core.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: ps}
}

// InitializeProfile handles POST /api/v1/users/initialize. Called after
// client-side Firebase login to make sure the backend profile and the
// user's family exist. Returns 201 when the profile was created, 200 when
// it already existed.
func (h *ProfileHandler) InitializeProfile(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	email := c.GetString("userEmail")
	displayName := c.GetString("userDisplayName")

	user, created, err := h.profileService.InitializeProfile(c.Request.Context(), uid, email, displayName)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, user)
}

// GetCurrentProfile handles GET /api/v1/users/me.
func (h *ProfileHandler) GetCurrentProfile(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	user, err := h.profileService.GetByID(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /api/v1/users/profile. The target user in the
// body must be the caller; updating anyone else's profile is denied.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid-argument", Message: "Invalid request body"})
		return
	}
	if err := h.profileService.UpdateProfile(c.Request.Context(), uid, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Profile updated"})
}
