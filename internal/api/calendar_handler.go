package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familysync-backend/internal/core"
	"familysync-backend/internal/models"
)

// CalendarHandler handles calendar-event endpoints.
type CalendarHandler struct {
	calendarService core.CalendarService
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(cs core.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: cs}
}

// CreateEvent handles POST /api/v1/calendar.
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid-argument", Message: "Invalid request body"})
		return
	}
	eventID, err := h.calendarService.CreateEvent(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse("eventId", eventID))
}

// UpdateEvent handles PUT /api/v1/calendar/:familyId/:eventId.
func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid-argument", Message: "Invalid request body"})
		return
	}
	event, err := h.calendarService.UpdateEvent(c.Request.Context(), uid, c.Param("familyId"), c.Param("eventId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}
