package models

import "time"

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a family-scoped to-do assigned to one member. Completion is
// monotonic: there is no path back to the uncompleted state.
type Task struct {
	ID          string     `json:"id" firestore:"-"`
	Title       string     `json:"title" firestore:"title"`
	FamilyID    string     `json:"familyId" firestore:"familyId"`
	AssignedTo  string     `json:"assignedTo" firestore:"assignedTo"`
	DueDate     *time.Time `json:"dueDate,omitempty" firestore:"dueDate,omitempty"`
	Priority    string     `json:"priority" firestore:"priority"`
	Completed   bool       `json:"completed" firestore:"completed"`
	CompletedBy string     `json:"completedBy,omitempty" firestore:"completedBy,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty" firestore:"completedAt,omitempty"`
	CreatedBy   string     `json:"createdBy" firestore:"createdBy"`
	UpdatedBy   string     `json:"updatedBy,omitempty" firestore:"updatedBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time  `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
