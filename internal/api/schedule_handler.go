package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familysync-backend/internal/core"
	"familysync-backend/internal/models"
)

// ScheduleHandler handles the conflict-scan endpoint.
type ScheduleHandler struct {
	scheduleService core.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(ss core.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: ss}
}

// OptimizeSchedule handles POST /api/v1/schedule/optimize.
func (h *ScheduleHandler) OptimizeSchedule(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.OptimizeScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid-argument", Message: "Invalid request body"})
		return
	}
	report, err := h.scheduleService.OptimizeSchedule(c.Request.Context(), uid, req.FamilyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
