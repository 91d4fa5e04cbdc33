package core

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"familysync-backend/internal/db"
	"familysync-backend/internal/models"
	"familysync-backend/internal/validation"
)

// calendarService implements CalendarService.
type calendarService struct {
	eventRepo  db.EventRepository
	membership MembershipService
	notifier   NotificationDispatcher
	logger     *zap.Logger
}

// NewCalendarService creates a new CalendarService instance.
func NewCalendarService(eventRepo db.EventRepository, membership MembershipService, notifier NotificationDispatcher, logger *zap.Logger) CalendarService {
	return &calendarService{
		eventRepo:  eventRepo,
		membership: membership,
		notifier:   notifier,
		logger:     logger,
	}
}

// CreateEvent runs the validated-write protocol for a new calendar event.
func (s *calendarService) CreateEvent(ctx context.Context, callerUID string, req models.CreateEventRequest) (string, error) {
	req = validation.SanitizeEventRequest(req)

	if res := validation.ValidateCalendarEvent(req); !res.IsValid {
		return "", &ValidationError{Violations: res.Errors}
	}

	if !s.membership.IsMember(ctx, callerUID, req.FamilyID) {
		return "", ErrPermissionDenied
	}

	// Both parse: validation already passed.
	start, _ := validation.ParseTimestamp(req.StartTime)
	end, _ := validation.ParseTimestamp(req.EndTime)

	event := &models.CalendarEvent{
		Title:     req.Title,
		FamilyID:  req.FamilyID,
		StartTime: start,
		EndTime:   end,
		Attendees: req.Attendees,
		Location:  req.Location,
		CreatedBy: callerUID,
	}

	eventID, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		s.logger.Error("event creation failed",
			zap.String("familyId", req.FamilyID),
			zap.Error(err))
		return "", fmt.Errorf("failed to create event in family '%s': %w", req.FamilyID, err)
	}
	return eventID, nil
}

// UpdateEvent applies a partial update to an event. When the update moves
// the event in time or changes the attendee set, the updated event goes to
// the notifier so attendees learn about the change; cosmetic updates
// (title, location) do not re-notify.
func (s *calendarService) UpdateEvent(ctx context.Context, callerUID, familyID, eventID string, req models.UpdateEventRequest) (*models.CalendarEvent, error) {
	if !s.membership.IsMember(ctx, callerUID, familyID) {
		return nil, ErrPermissionDenied
	}

	event, err := s.eventRepo.GetByID(ctx, familyID, eventID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load event '%s': %w", eventID, err)
	}

	updated := *event
	if req.Title != nil {
		title := validation.SanitizeString(*req.Title)
		if title == "" {
			return nil, &ValidationError{Violations: []string{"Title is required"}}
		}
		updated.Title = title
	}
	if req.Location != nil {
		updated.Location = validation.SanitizeString(*req.Location)
	}
	if req.StartTime != nil {
		start, ok := validation.ParseTimestamp(validation.SanitizeString(*req.StartTime))
		if !ok {
			return nil, &ValidationError{Violations: []string{"Start time is invalid"}}
		}
		updated.StartTime = start
	}
	if req.EndTime != nil {
		end, ok := validation.ParseTimestamp(validation.SanitizeString(*req.EndTime))
		if !ok {
			return nil, &ValidationError{Violations: []string{"End time is invalid"}}
		}
		updated.EndTime = end
	}
	if !updated.EndTime.After(updated.StartTime) {
		return nil, &ValidationError{Violations: []string{"End time must be after start time"}}
	}
	if req.Attendees != nil {
		attendees := make([]string, len(*req.Attendees))
		for i, a := range *req.Attendees {
			attendees[i] = validation.SanitizeString(a)
		}
		updated.Attendees = attendees
	}
	updated.UpdatedBy = callerUID

	timesChanged := !updated.StartTime.Equal(event.StartTime) || !updated.EndTime.Equal(event.EndTime)
	attendeesChanged := !sameStringSet(event.Attendees, updated.Attendees)

	if err := s.eventRepo.Update(ctx, &updated); err != nil {
		s.logger.Error("event update failed",
			zap.String("familyId", familyID),
			zap.String("eventId", eventID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to update event '%s': %w", eventID, err)
	}

	if timesChanged || attendeesChanged {
		s.notifier.CalendarEventUpdated(&updated)
	}
	return &updated, nil
}

// sameStringSet compares two slices as sets, ignoring order and duplicates.
func sameStringSet(a, b []string) bool {
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	as = dedup(as)
	bs = dedup(bs)
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func dedup(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
