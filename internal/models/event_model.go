package models

import "time"

// CalendarEvent is a family-scoped calendar entry. EndTime is always
// strictly after StartTime; the validators enforce this before any write.
type CalendarEvent struct {
	ID        string    `json:"id" firestore:"-"`
	Title     string    `json:"title" firestore:"title"`
	FamilyID  string    `json:"familyId" firestore:"familyId"`
	StartTime time.Time `json:"startTime" firestore:"startTime"`
	EndTime   time.Time `json:"endTime" firestore:"endTime"`
	Attendees []string  `json:"attendees,omitempty" firestore:"attendees,omitempty"`
	Location  string    `json:"location,omitempty" firestore:"location,omitempty"`
	CreatedBy string    `json:"createdBy" firestore:"createdBy"`
	UpdatedBy string    `json:"updatedBy,omitempty" firestore:"updatedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}

// HasAttendee reports whether uid is in the event's attendee list.
func (e *CalendarEvent) HasAttendee(uid string) bool {
	for _, a := range e.Attendees {
		if a == uid {
			return true
		}
	}
	return false
}
