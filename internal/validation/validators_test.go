package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"familysync-backend/internal/models"
)

func validProfileRequest() models.UpdateProfileRequest {
	return models.UpdateProfileRequest{
		UserID:   "uid-1",
		Name:     "Alice Smith",
		Email:    "alice@example.com",
		Phone:    "+4915112345678",
		Role:     models.RoleParent,
		FamilyID: "fam-1",
	}
}

func TestValidateUserProfile(t *testing.T) {
	t.Run("valid profile passes", func(t *testing.T) {
		res := ValidateUserProfile(validProfileRequest())
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Errors)
	})

	t.Run("errors accumulate instead of failing fast", func(t *testing.T) {
		req := validProfileRequest()
		req.Name = ""
		req.Email = "not-an-email"
		res := ValidateUserProfile(req)
		assert.False(t, res.IsValid)
		assert.Contains(t, res.Errors, "Name is required")
		assert.Contains(t, res.Errors, "Valid email is required")
	})

	t.Run("name with digits rejected", func(t *testing.T) {
		req := validProfileRequest()
		req.Name = "Alice2"
		res := ValidateUserProfile(req)
		assert.Contains(t, res.Errors, "Name contains invalid characters")
	})

	t.Run("name with apostrophe and hyphen accepted", func(t *testing.T) {
		req := validProfileRequest()
		req.Name = "Mary-Jane O'Brien"
		assert.True(t, ValidateUserProfile(req).IsValid)
	})

	t.Run("name over fifty characters rejected", func(t *testing.T) {
		req := validProfileRequest()
		req.Name = strings.Repeat("a", 51)
		res := ValidateUserProfile(req)
		assert.Contains(t, res.Errors, "Name must be 50 characters or less")
	})

	t.Run("empty phone is allowed", func(t *testing.T) {
		req := validProfileRequest()
		req.Phone = ""
		assert.True(t, ValidateUserProfile(req).IsValid)
	})

	t.Run("malformed phone rejected", func(t *testing.T) {
		req := validProfileRequest()
		req.Phone = "abc"
		res := ValidateUserProfile(req)
		assert.Contains(t, res.Errors, "Valid phone number is required")
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		req := validProfileRequest()
		req.Role = "admin"
		res := ValidateUserProfile(req)
		assert.Contains(t, res.Errors, "Role must be parent or aupair")
	})

	t.Run("missing family id rejected", func(t *testing.T) {
		req := validProfileRequest()
		req.FamilyID = ""
		res := ValidateUserProfile(req)
		assert.Contains(t, res.Errors, "Family ID is required")
	})
}

func TestValidateChild(t *testing.T) {
	t.Run("valid child passes", func(t *testing.T) {
		res := ValidateChild(models.CreateChildRequest{
			Name:      "Emma",
			FamilyID:  "fam-1",
			BirthDate: "2019-04-02",
		})
		assert.True(t, res.IsValid)
	})

	t.Run("birth date optional", func(t *testing.T) {
		res := ValidateChild(models.CreateChildRequest{Name: "Emma", FamilyID: "fam-1"})
		assert.True(t, res.IsValid)
	})

	t.Run("unparseable birth date rejected", func(t *testing.T) {
		res := ValidateChild(models.CreateChildRequest{Name: "Emma", FamilyID: "fam-1", BirthDate: "02/04/2019"})
		assert.Contains(t, res.Errors, "Birth date is invalid")
	})

	t.Run("future birth date rejected", func(t *testing.T) {
		future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
		res := ValidateChild(models.CreateChildRequest{Name: "Emma", FamilyID: "fam-1", BirthDate: future})
		assert.Contains(t, res.Errors, "Birth date cannot be in the future")
	})
}

func TestValidateTask(t *testing.T) {
	valid := models.CreateTaskRequest{
		Title:      "Pick up groceries",
		FamilyID:   "fam-1",
		AssignedTo: "uid-2",
		DueDate:    "2026-09-01T10:00:00Z",
		Priority:   models.PriorityHigh,
	}

	t.Run("valid task passes", func(t *testing.T) {
		assert.True(t, ValidateTask(valid).IsValid)
	})

	t.Run("missing fields accumulate", func(t *testing.T) {
		res := ValidateTask(models.CreateTaskRequest{})
		assert.ElementsMatch(t, []string{
			"Title is required",
			"Family ID is required",
			"Assignee is required",
		}, res.Errors)
	})

	t.Run("due date and priority optional", func(t *testing.T) {
		req := valid
		req.DueDate = ""
		req.Priority = ""
		assert.True(t, ValidateTask(req).IsValid)
	})

	t.Run("bad due date rejected", func(t *testing.T) {
		req := valid
		req.DueDate = "tomorrow"
		assert.Contains(t, ValidateTask(req).Errors, "Due date is invalid")
	})

	t.Run("unknown priority rejected", func(t *testing.T) {
		req := valid
		req.Priority = "urgent"
		assert.Contains(t, ValidateTask(req).Errors, "Priority must be low, medium, or high")
	})
}

func TestValidateCalendarEvent(t *testing.T) {
	valid := models.CreateEventRequest{
		Title:     "Dentist",
		FamilyID:  "fam-1",
		StartTime: "2026-09-01T10:00:00Z",
		EndTime:   "2026-09-01T11:00:00Z",
	}

	t.Run("valid event passes", func(t *testing.T) {
		assert.True(t, ValidateCalendarEvent(valid).IsValid)
	})

	t.Run("missing times reported individually", func(t *testing.T) {
		res := ValidateCalendarEvent(models.CreateEventRequest{Title: "x", FamilyID: "f"})
		assert.Contains(t, res.Errors, "Start time is required")
		assert.Contains(t, res.Errors, "End time is required")
	})

	t.Run("end must be strictly after start", func(t *testing.T) {
		req := valid
		req.EndTime = req.StartTime
		res := ValidateCalendarEvent(req)
		assert.Contains(t, res.Errors, "End time must be after start time")
	})

	t.Run("unparseable start does not trigger ordering error", func(t *testing.T) {
		req := valid
		req.StartTime = "nonsense"
		res := ValidateCalendarEvent(req)
		assert.Contains(t, res.Errors, "Start time is invalid")
		assert.NotContains(t, res.Errors, "End time must be after start time")
	})
}

func TestValidateShoppingItem(t *testing.T) {
	qty := func(f float64) *float64 { return &f }

	t.Run("valid item passes", func(t *testing.T) {
		res := ValidateShoppingItem(models.CreateShoppingItemRequest{
			FamilyID: "fam-1",
			Name:     "Milk",
			Quantity: qty(2),
		})
		assert.True(t, res.IsValid)
	})

	t.Run("absent quantity allowed", func(t *testing.T) {
		res := ValidateShoppingItem(models.CreateShoppingItemRequest{FamilyID: "fam-1", Name: "Milk"})
		assert.True(t, res.IsValid)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		res := ValidateShoppingItem(models.CreateShoppingItemRequest{FamilyID: "fam-1", Name: "Milk", Quantity: qty(0)})
		assert.Contains(t, res.Errors, "Quantity must be greater than zero")
	})

	t.Run("missing name rejected", func(t *testing.T) {
		res := ValidateShoppingItem(models.CreateShoppingItemRequest{FamilyID: "fam-1"})
		assert.Contains(t, res.Errors, "Item name is required")
	})
}
