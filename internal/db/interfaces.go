package db

import (
	"context"

	"familysync-backend/internal/models"
)

// UserRepository defines the interface for user data storage operations.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	// GetFamilyMembers returns every user whose familyId matches. Used by
	// the notifiers to resolve recipients and their push tokens.
	GetFamilyMembers(ctx context.Context, familyID string) ([]*models.User, error)
}

// FamilyRepository defines the interface for family data storage operations.
type FamilyRepository interface {
	GetByID(ctx context.Context, familyID string) (*models.Family, error)
	// CreateWithOwner creates the family document and assigns the owner's
	// familyId and parent role in a single transaction, so a crash cannot
	// leave the user without a family.
	CreateWithOwner(ctx context.Context, family *models.Family, ownerUID string) (string, error)
	UpdateSettings(ctx context.Context, familyID string, settings *models.FamilySettings, supermarkets *[]string) error
}

// ChildRepository defines the interface for child data storage operations.
type ChildRepository interface {
	Create(ctx context.Context, child *models.Child) (string, error)
}

// TaskRepository defines the interface for task data storage operations.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) (string, error)
	GetByID(ctx context.Context, familyID, taskID string) (*models.Task, error)
	Complete(ctx context.Context, familyID, taskID, completedBy string) error
}

// EventRepository defines the interface for calendar-event storage operations.
type EventRepository interface {
	Create(ctx context.Context, event *models.CalendarEvent) (string, error)
	GetByID(ctx context.Context, familyID, eventID string) (*models.CalendarEvent, error)
	Update(ctx context.Context, event *models.CalendarEvent) error
	ListByFamily(ctx context.Context, familyID string) ([]*models.CalendarEvent, error)
}

// ShoppingRepository defines the interface for shopping-list storage operations.
type ShoppingRepository interface {
	GetList(ctx context.Context, familyID, listID string) (*models.ShoppingList, error)
	// UpsertItem writes one entry of the list's items map, creating the
	// list document if it does not exist yet.
	UpsertItem(ctx context.Context, familyID, listID, itemID string, item models.ShoppingItem, updatedBy string) error
	// SetItemPurchased marks an item purchased and returns the item's state
	// prior to the write, so callers can detect the false-to-true transition.
	SetItemPurchased(ctx context.Context, familyID, listID, itemID, purchasedBy string) (*models.ShoppingItem, error)
}

// NoteRepository defines the interface for family-note storage operations.
type NoteRepository interface {
	Create(ctx context.Context, note *models.FamilyNote) (string, error)
	ListByFamily(ctx context.Context, familyID string) ([]*models.FamilyNote, error)
	// Dismiss adds userID to the note's dismissedBy set and returns the
	// updated note. Dismissing twice is a no-op.
	Dismiss(ctx context.Context, familyID, noteID, userID string) (*models.FamilyNote, error)
}
