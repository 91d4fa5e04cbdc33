package models

// Request bodies for the validated-write endpoints. Date and time fields
// arrive as strings and are checked by the validators before parsing, so
// a malformed value surfaces as a validation error rather than a bind
// failure.

// UpdateProfileRequest updates the caller's own user profile.
type UpdateProfileRequest struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	FamilyID string `json:"familyId"`
}

// CreateChildRequest adds a child record to a family.
type CreateChildRequest struct {
	Name              string             `json:"name"`
	FamilyID          string             `json:"familyId"`
	BirthDate         string             `json:"birthDate,omitempty"` // RFC 3339 or YYYY-MM-DD
	MedicalConditions string             `json:"medicalConditions,omitempty"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts,omitempty"`
}

// CreateTaskRequest creates a task assigned to a family member.
type CreateTaskRequest struct {
	Title      string `json:"title"`
	FamilyID   string `json:"familyId"`
	AssignedTo string `json:"assignedTo"`
	DueDate    string `json:"dueDate,omitempty"` // RFC 3339
	Priority   string `json:"priority,omitempty"`
}

// CreateEventRequest creates a calendar event.
type CreateEventRequest struct {
	Title     string   `json:"title"`
	FamilyID  string   `json:"familyId"`
	StartTime string   `json:"startTime"` // RFC 3339
	EndTime   string   `json:"endTime"`   // RFC 3339
	Attendees []string `json:"attendees,omitempty"`
	Location  string   `json:"location,omitempty"`
}

// UpdateEventRequest carries a partial calendar-event update. Pointer
// fields distinguish "not provided" from an explicit empty value.
type UpdateEventRequest struct {
	Title     *string   `json:"title,omitempty"`
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	Attendees *[]string `json:"attendees,omitempty"`
	Location  *string   `json:"location,omitempty"`
}

// CreateShoppingItemRequest adds an item to a family shopping list.
// Quantity is a pointer so an absent field and an explicit zero validate
// differently: absent is fine, zero or negative is rejected.
type CreateShoppingItemRequest struct {
	FamilyID string   `json:"familyId"`
	ListID   string   `json:"listId"`
	Name     string   `json:"name"`
	Quantity *float64 `json:"quantity,omitempty"`
	Category string   `json:"category,omitempty"`
}

// UpdateFamilySettingsRequest updates family-wide settings. Pointer
// fields distinguish "not provided" from an explicit replacement.
type UpdateFamilySettingsRequest struct {
	Settings     *FamilySettings `json:"settings,omitempty"`
	Supermarkets *[]string       `json:"supermarkets,omitempty"`
}

// CreateNoteRequest pins a note for the whole family.
type CreateNoteRequest struct {
	FamilyID string `json:"familyId"`
	Text     string `json:"text"`
}

// OptimizeScheduleRequest asks for a conflict scan of a family's calendar.
type OptimizeScheduleRequest struct {
	FamilyID string `json:"familyId"`
}
