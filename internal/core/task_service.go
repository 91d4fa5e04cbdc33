package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"familysync-backend/internal/db"
	"familysync-backend/internal/models"
	"familysync-backend/internal/validation"
)

// taskService implements TaskService.
type taskService struct {
	taskRepo   db.TaskRepository
	membership MembershipService
	notifier   NotificationDispatcher
	logger     *zap.Logger
}

// NewTaskService creates a new TaskService instance.
func NewTaskService(taskRepo db.TaskRepository, membership MembershipService, notifier NotificationDispatcher, logger *zap.Logger) TaskService {
	return &taskService{
		taskRepo:   taskRepo,
		membership: membership,
		notifier:   notifier,
		logger:     logger,
	}
}

// CreateTask runs the validated-write protocol and, once the write has
// committed, hands the new task to the notifier. Notification delivery is
// best-effort and never affects the result of the create.
func (s *taskService) CreateTask(ctx context.Context, callerUID string, req models.CreateTaskRequest) (string, error) {
	req = validation.SanitizeTaskRequest(req)

	if res := validation.ValidateTask(req); !res.IsValid {
		return "", &ValidationError{Violations: res.Errors}
	}

	if !s.membership.IsMember(ctx, callerUID, req.FamilyID) {
		return "", ErrPermissionDenied
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	task := &models.Task{
		Title:      req.Title,
		FamilyID:   req.FamilyID,
		AssignedTo: req.AssignedTo,
		Priority:   priority,
		Completed:  false,
		CreatedBy:  callerUID,
	}
	if req.DueDate != "" {
		if due, ok := validation.ParseTimestamp(req.DueDate); ok {
			task.DueDate = &due
		}
	}

	taskID, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		s.logger.Error("task creation failed",
			zap.String("familyId", req.FamilyID),
			zap.Error(err))
		return "", fmt.Errorf("failed to create task in family '%s': %w", req.FamilyID, err)
	}

	s.notifier.TaskCreated(task)
	return taskID, nil
}

// CompleteTask marks a task done on behalf of a family member.
// Re-completing an already-completed task is a no-op, which keeps the
// lifecycle monotonic.
func (s *taskService) CompleteTask(ctx context.Context, callerUID, familyID, taskID string) error {
	if !s.membership.IsMember(ctx, callerUID, familyID) {
		return ErrPermissionDenied
	}

	task, err := s.taskRepo.GetByID(ctx, familyID, taskID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load task '%s': %w", taskID, err)
	}
	if task.Completed {
		return nil
	}

	if err := s.taskRepo.Complete(ctx, familyID, taskID, callerUID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("task completion failed",
			zap.String("familyId", familyID),
			zap.String("taskId", taskID),
			zap.Error(err))
		return fmt.Errorf("failed to complete task '%s': %w", taskID, err)
	}
	return nil
}
