package core

import (
	"context"

	"familysync-backend/internal/models"
)

// MembershipService is the authorization boundary for family-scoped
// writes. IsMember is fail-closed: any lookup failure reads as "not a
// member" and the caller cannot tell the two apart from the boolean.
type MembershipService interface {
	IsMember(ctx context.Context, userID, familyID string) bool
	// Invalidate drops any cached member list for the family.
	Invalidate(ctx context.Context, familyID string)
}

// ProfileService manages user profiles and the first-login family bootstrap.
type ProfileService interface {
	// InitializeProfile gets or creates the caller's profile. A profile
	// without a family gets one created, with the caller as parent member,
	// in a single transaction. Returns the profile and whether it was created.
	InitializeProfile(ctx context.Context, uid, email, displayName string) (*models.User, bool, error)
	GetByID(ctx context.Context, uid string) (*models.User, error)
	// UpdateProfile is the self-scoped validated write for user profiles.
	UpdateProfile(ctx context.Context, callerUID string, req models.UpdateProfileRequest) error
}

// FamilyService reads and updates family documents for members.
type FamilyService interface {
	GetFamily(ctx context.Context, callerUID, familyID string) (*models.Family, error)
	UpdateSettings(ctx context.Context, callerUID, familyID string, req models.UpdateFamilySettingsRequest) error
}

// ChildService creates child records through the validated-write protocol.
type ChildService interface {
	CreateChild(ctx context.Context, callerUID string, req models.CreateChildRequest) (string, error)
}

// TaskService creates and completes tasks through the validated-write protocol.
type TaskService interface {
	CreateTask(ctx context.Context, callerUID string, req models.CreateTaskRequest) (string, error)
	// CompleteTask marks a task done. Completing an already-completed task
	// is a no-op; there is no way back to the uncompleted state.
	CompleteTask(ctx context.Context, callerUID, familyID, taskID string) error
}

// CalendarService creates and updates calendar events through the
// validated-write protocol.
type CalendarService interface {
	CreateEvent(ctx context.Context, callerUID string, req models.CreateEventRequest) (string, error)
	UpdateEvent(ctx context.Context, callerUID, familyID, eventID string, req models.UpdateEventRequest) (*models.CalendarEvent, error)
}

// ShoppingService creates shopping items and records purchases.
type ShoppingService interface {
	CreateItem(ctx context.Context, callerUID string, req models.CreateShoppingItemRequest) (string, error)
	MarkItemPurchased(ctx context.Context, callerUID, familyID, listID, itemID string) error
}

// NoteService manages family notes and per-member dismissal.
type NoteService interface {
	CreateNote(ctx context.Context, callerUID string, req models.CreateNoteRequest) (string, error)
	ListNotes(ctx context.Context, callerUID, familyID string) ([]*models.FamilyNote, error)
	DismissNote(ctx context.Context, callerUID, familyID, noteID string) (*models.FamilyNote, error)
}

// ScheduleService scans a family calendar for conflicts.
type ScheduleService interface {
	OptimizeSchedule(ctx context.Context, callerUID, familyID string) (*models.ScheduleReport, error)
}

// NotificationDispatcher receives document transitions after the
// triggering write committed and fans out push notifications. Delivery is
// best-effort: implementations must never fail the triggering operation.
type NotificationDispatcher interface {
	TaskCreated(task *models.Task)
	CalendarEventUpdated(event *models.CalendarEvent)
	ShoppingItemPurchased(familyID, listID, itemID string, item models.ShoppingItem)
}

// PushSender delivers one payload to a set of device tokens. failed
// counts recipients whose individual delivery was rejected; err reports a
// whole-batch failure.
type PushSender interface {
	Send(ctx context.Context, tokens []string, n models.PushNotification) (failed int, err error)
}
