package validation

import (
	"strings"

	"familysync-backend/internal/models"
)

// SanitizeString removes every '<' and '>' character and trims leading and
// trailing whitespace. This is deliberately not a full HTML escape: the
// text between stripped brackets is preserved unchanged. Brackets are
// removed before trimming so the result is a fixed point of the function.
func SanitizeString(s string) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	return strings.TrimSpace(s)
}

// Sanitize recursively sanitizes a decoded JSON value. Strings are passed
// through SanitizeString; objects keep their keys and lists keep their
// order and length; numbers, booleans and nulls are returned unchanged.
// Must run on all external input before validation, because the
// validators assume already-sanitized strings.
func Sanitize(v any) any {
	switch t := v.(type) {
	case string:
		return SanitizeString(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Sanitize(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Sanitize(e)
		}
		return out
	default:
		return v
	}
}

// SanitizeProfileRequest returns a copy of req with all string fields sanitized.
func SanitizeProfileRequest(req models.UpdateProfileRequest) models.UpdateProfileRequest {
	req.UserID = SanitizeString(req.UserID)
	req.Name = SanitizeString(req.Name)
	req.Email = SanitizeString(req.Email)
	req.Phone = SanitizeString(req.Phone)
	req.Role = SanitizeString(req.Role)
	req.FamilyID = SanitizeString(req.FamilyID)
	return req
}

// SanitizeChildRequest returns a copy of req with all string fields
// sanitized, including the nested emergency contacts.
func SanitizeChildRequest(req models.CreateChildRequest) models.CreateChildRequest {
	req.Name = SanitizeString(req.Name)
	req.FamilyID = SanitizeString(req.FamilyID)
	req.BirthDate = SanitizeString(req.BirthDate)
	req.MedicalConditions = SanitizeString(req.MedicalConditions)
	contacts := make([]models.EmergencyContact, len(req.EmergencyContacts))
	for i, c := range req.EmergencyContacts {
		contacts[i] = models.EmergencyContact{
			Name:     SanitizeString(c.Name),
			Phone:    SanitizeString(c.Phone),
			Relation: SanitizeString(c.Relation),
		}
	}
	req.EmergencyContacts = contacts
	return req
}

// SanitizeTaskRequest returns a copy of req with all string fields sanitized.
func SanitizeTaskRequest(req models.CreateTaskRequest) models.CreateTaskRequest {
	req.Title = SanitizeString(req.Title)
	req.FamilyID = SanitizeString(req.FamilyID)
	req.AssignedTo = SanitizeString(req.AssignedTo)
	req.DueDate = SanitizeString(req.DueDate)
	req.Priority = SanitizeString(req.Priority)
	return req
}

// SanitizeEventRequest returns a copy of req with all string fields sanitized.
func SanitizeEventRequest(req models.CreateEventRequest) models.CreateEventRequest {
	req.Title = SanitizeString(req.Title)
	req.FamilyID = SanitizeString(req.FamilyID)
	req.StartTime = SanitizeString(req.StartTime)
	req.EndTime = SanitizeString(req.EndTime)
	req.Location = SanitizeString(req.Location)
	attendees := make([]string, len(req.Attendees))
	for i, a := range req.Attendees {
		attendees[i] = SanitizeString(a)
	}
	req.Attendees = attendees
	return req
}

// SanitizeShoppingItemRequest returns a copy of req with all string fields sanitized.
func SanitizeShoppingItemRequest(req models.CreateShoppingItemRequest) models.CreateShoppingItemRequest {
	req.FamilyID = SanitizeString(req.FamilyID)
	req.ListID = SanitizeString(req.ListID)
	req.Name = SanitizeString(req.Name)
	req.Category = SanitizeString(req.Category)
	return req
}
