package models

import "time"

// FamilyNote is a short message pinned for the whole family. Members
// dismiss a note for themselves by adding their uid to DismissedBy;
// dismissal is idempotent and never removes the note.
type FamilyNote struct {
	ID          string    `json:"id" firestore:"-"`
	FamilyID    string    `json:"familyId" firestore:"familyId"`
	Text        string    `json:"text" firestore:"text"`
	Author      string    `json:"author" firestore:"author"`
	DismissedBy []string  `json:"dismissedBy,omitempty" firestore:"dismissedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
