package models

import "time"

// FamilySettings holds family-wide defaults shared by all members.
type FamilySettings struct {
	Language      string `json:"language,omitempty" firestore:"language,omitempty"`
	Timezone      string `json:"timezone,omitempty" firestore:"timezone,omitempty"`
	Notifications bool   `json:"notifications" firestore:"notifications"`
}

// Family is the tenancy and authorization boundary. Membership in
// MemberUIDs is the sole check for access to child resources.
type Family struct {
	ID           string         `json:"id" firestore:"-"`
	Name         string         `json:"name" firestore:"name"`
	MemberUIDs   []string       `json:"memberUids" firestore:"memberUids"`
	Settings     FamilySettings `json:"settings" firestore:"settings"`
	Supermarkets []string       `json:"supermarkets,omitempty" firestore:"supermarkets,omitempty"`
	CreatedBy    string         `json:"createdBy" firestore:"createdBy"`
	CreatedAt    time.Time      `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt    time.Time      `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// IsMember reports whether uid appears in the family's member list.
func (f *Family) IsMember(uid string) bool {
	for _, m := range f.MemberUIDs {
		if m == uid {
			return true
		}
	}
	return false
}
