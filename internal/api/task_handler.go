package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"familysync-backend/internal/core"
	"familysync-backend/internal/models"
)

// TaskHandler handles task endpoints.
type TaskHandler struct {
	taskService core.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(ts core.TaskService) *TaskHandler {
	return &TaskHandler{taskService: ts}
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Code: "invalid-argument", Message: "Invalid request body"})
		return
	}
	taskID, err := h.taskService.CreateTask(c.Request.Context(), uid, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse("taskId", taskID))
}

// CompleteTask handles POST /api/v1/tasks/:familyId/:taskId/complete.
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	uid, ok := callerUID(c)
	if !ok {
		return
	}
	err := h.taskService.CompleteTask(c.Request.Context(), uid, c.Param("familyId"), c.Param("taskId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Task completed"})
}
