package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"familysync-backend/internal/models"
)

const tasksCollection = "tasks"

// firestoreTaskRepository implements TaskRepository using Firestore.
// Tasks live in a subcollection under their family document.
type firestoreTaskRepository struct {
	client *firestore.Client
}

// NewFirestoreTaskRepository creates a new instance of firestoreTaskRepository.
func NewFirestoreTaskRepository(client *firestore.Client) TaskRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for TaskRepository.")
	}
	return &firestoreTaskRepository{client: client}
}

func (r *firestoreTaskRepository) taskRef(familyID, taskID string) *firestore.DocumentRef {
	return r.client.Collection(familiesCollection).Doc(familyID).
		Collection(tasksCollection).Doc(taskID)
}

// Create adds a task document with an auto-generated ID under
// families/{familyId}/tasks.
func (r *firestoreTaskRepository) Create(ctx context.Context, task *models.Task) (string, error) {
	if task.FamilyID == "" {
		return "", errors.New("task familyID cannot be empty for Create operation")
	}
	docRef := r.client.Collection(familiesCollection).Doc(task.FamilyID).
		Collection(tasksCollection).NewDoc()
	task.ID = docRef.ID

	if _, err := docRef.Create(ctx, task); err != nil {
		return "", fmt.Errorf("failed to create task in family '%s': %w", task.FamilyID, err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a task document.
func (r *firestoreTaskRepository) GetByID(ctx context.Context, familyID, taskID string) (*models.Task, error) {
	if familyID == "" || taskID == "" {
		return nil, errors.New("familyID and taskID cannot be empty for GetByID operation")
	}
	docSnap, err := r.taskRef(familyID, taskID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("task with ID '%s' not found: %w", taskID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get task with ID '%s': %w", taskID, err)
	}

	var task models.Task
	if err := docSnap.DataTo(&task); err != nil {
		return nil, fmt.Errorf("failed to decode task data for ID '%s': %w", taskID, err)
	}
	task.ID = docSnap.Ref.ID
	return &task, nil
}

// Complete marks a task completed, stamping completedBy and the server
// time. Completion is monotonic; callers skip the write when the task is
// already completed.
func (r *firestoreTaskRepository) Complete(ctx context.Context, familyID, taskID, completedBy string) error {
	if familyID == "" || taskID == "" {
		return errors.New("familyID and taskID cannot be empty for Complete operation")
	}
	_, err := r.taskRef(familyID, taskID).Update(ctx, []firestore.Update{
		{Path: "completed", Value: true},
		{Path: "completedBy", Value: completedBy},
		{Path: "completedAt", Value: firestore.ServerTimestamp},
		{Path: "updatedBy", Value: completedBy},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("task with ID '%s' not found for completion: %w", taskID, ErrNotFound)
		}
		return fmt.Errorf("failed to complete task '%s': %w", taskID, err)
	}
	return nil
}
