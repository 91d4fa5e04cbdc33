package validation

import (
	"regexp"
	"time"

	"familysync-backend/internal/models"
)

// Result is the outcome of validating a record. Errors holds every
// violated rule, not just the first, so a caller sees all problems in one
// round trip. The strings are user-facing and part of the API contract.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

func result(errs []string) Result {
	if errs == nil {
		errs = []string{}
	}
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z '\-]+$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9]{2,15}$`)
)

const maxNameLength = 50

// ParseDate accepts RFC 3339 timestamps or bare YYYY-MM-DD dates.
func ParseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ParseTimestamp accepts RFC 3339 timestamps only.
func ParseTimestamp(s string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, s)
	return t, err == nil
}

// ValidateUserProfile checks a profile update. Input must already be sanitized.
func ValidateUserProfile(req models.UpdateProfileRequest) Result {
	var errs []string
	switch {
	case req.Name == "":
		errs = append(errs, "Name is required")
	case !nameRe.MatchString(req.Name):
		errs = append(errs, "Name contains invalid characters")
	case len(req.Name) > maxNameLength:
		errs = append(errs, "Name must be 50 characters or less")
	}
	if req.Email == "" || !emailRe.MatchString(req.Email) {
		errs = append(errs, "Valid email is required")
	}
	if req.Phone != "" && !phoneRe.MatchString(req.Phone) {
		errs = append(errs, "Valid phone number is required")
	}
	if req.Role != models.RoleParent && req.Role != models.RoleAuPair {
		errs = append(errs, "Role must be parent or aupair")
	}
	if req.FamilyID == "" {
		errs = append(errs, "Family ID is required")
	}
	return result(errs)
}

// ValidateChild checks a child-creation request.
func ValidateChild(req models.CreateChildRequest) Result {
	var errs []string
	switch {
	case req.Name == "":
		errs = append(errs, "Name is required")
	case !nameRe.MatchString(req.Name):
		errs = append(errs, "Name contains invalid characters")
	}
	if req.FamilyID == "" {
		errs = append(errs, "Family ID is required")
	}
	if req.BirthDate != "" {
		if birth, ok := ParseDate(req.BirthDate); !ok {
			errs = append(errs, "Birth date is invalid")
		} else if birth.After(time.Now()) {
			errs = append(errs, "Birth date cannot be in the future")
		}
	}
	return result(errs)
}

// ValidateTask checks a task-creation request.
func ValidateTask(req models.CreateTaskRequest) Result {
	var errs []string
	if req.Title == "" {
		errs = append(errs, "Title is required")
	}
	if req.FamilyID == "" {
		errs = append(errs, "Family ID is required")
	}
	if req.AssignedTo == "" {
		errs = append(errs, "Assignee is required")
	}
	if req.DueDate != "" {
		if _, ok := ParseTimestamp(req.DueDate); !ok {
			errs = append(errs, "Due date is invalid")
		}
	}
	if req.Priority != "" &&
		req.Priority != models.PriorityLow &&
		req.Priority != models.PriorityMedium &&
		req.Priority != models.PriorityHigh {
		errs = append(errs, "Priority must be low, medium, or high")
	}
	return result(errs)
}

// ValidateCalendarEvent checks an event-creation request, including the
// end-after-start invariant.
func ValidateCalendarEvent(req models.CreateEventRequest) Result {
	var errs []string
	if req.Title == "" {
		errs = append(errs, "Title is required")
	}
	if req.FamilyID == "" {
		errs = append(errs, "Family ID is required")
	}

	var start, end time.Time
	startOK, endOK := false, false
	if req.StartTime == "" {
		errs = append(errs, "Start time is required")
	} else if start, startOK = ParseTimestamp(req.StartTime); !startOK {
		errs = append(errs, "Start time is invalid")
	}
	if req.EndTime == "" {
		errs = append(errs, "End time is required")
	} else if end, endOK = ParseTimestamp(req.EndTime); !endOK {
		errs = append(errs, "End time is invalid")
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, "End time must be after start time")
	}
	return result(errs)
}

// ValidateShoppingItem checks a shopping-item creation request.
func ValidateShoppingItem(req models.CreateShoppingItemRequest) Result {
	var errs []string
	if req.Name == "" {
		errs = append(errs, "Item name is required")
	}
	if req.FamilyID == "" {
		errs = append(errs, "Family ID is required")
	}
	if req.Quantity != nil && *req.Quantity <= 0 {
		errs = append(errs, "Quantity must be greater than zero")
	}
	return result(errs)
}
