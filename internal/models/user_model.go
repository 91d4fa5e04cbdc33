package models

import "time"

// Roles a family member can hold.
const (
	RoleParent = "parent"
	RoleAuPair = "aupair"
)

// UserPreferences holds per-user client settings.
type UserPreferences struct {
	Language      string `json:"language,omitempty" firestore:"language,omitempty"`
	Theme         string `json:"theme,omitempty" firestore:"theme,omitempty"`
	Notifications bool   `json:"notifications" firestore:"notifications"`
	DefaultView   string `json:"defaultView,omitempty" firestore:"defaultView,omitempty"`
}

// User represents a family member. The Firebase Auth UID is the document ID.
// FamilyID is empty until the user creates or joins a family.
type User struct {
	ID          string          `json:"id" firestore:"-"`
	Name        string          `json:"name" firestore:"name"`
	Email       string          `json:"email" firestore:"email"`
	Phone       string          `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role        string          `json:"role" firestore:"role"` // "parent" or "aupair"
	FamilyID    string          `json:"familyId" firestore:"familyId"`
	FCMToken    string          `json:"fcmToken,omitempty" firestore:"fcmToken,omitempty"`
	Preferences UserPreferences `json:"preferences" firestore:"preferences"`
	CreatedAt   time.Time       `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time       `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
