package core

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"familysync-backend/internal/db"
	"familysync-backend/internal/models"
)

// assumedEventWindow is the duration assumed for every event during the
// conflict scan, measured from its start time. The scan deliberately
// ignores stored end times and uses this fixed window instead, matching
// the heuristic the scheduling clients rely on.
const assumedEventWindow = time.Hour

// scheduleService implements ScheduleService.
type scheduleService struct {
	eventRepo  db.EventRepository
	membership MembershipService
	logger     *zap.Logger
}

// NewScheduleService creates a new ScheduleService instance.
func NewScheduleService(eventRepo db.EventRepository, membership MembershipService, logger *zap.Logger) ScheduleService {
	return &scheduleService{
		eventRepo:  eventRepo,
		membership: membership,
		logger:     logger,
	}
}

// OptimizeSchedule loads every calendar event of the family and reports
// each unordered pair that overlaps in time and shares at least one
// attendee. The scan is O(n^2) in the event count and read-only: despite
// the name it does not compute or apply a new schedule.
func (s *scheduleService) OptimizeSchedule(ctx context.Context, callerUID, familyID string) (*models.ScheduleReport, error) {
	if familyID == "" {
		return nil, &ValidationError{Violations: []string{"Family ID is required"}}
	}
	if !s.membership.IsMember(ctx, callerUID, familyID) {
		return nil, ErrPermissionDenied
	}

	events, err := s.eventRepo.ListByFamily(ctx, familyID)
	if err != nil {
		s.logger.Error("conflict scan failed to load events",
			zap.String("familyId", familyID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to load events for family '%s': %w", familyID, err)
	}

	report := &models.ScheduleReport{
		Conflicts:       []models.EventConflict{},
		OptimizedEvents: []*models.CalendarEvent{},
		Suggestions:     []string{},
	}
	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			if eventsConflict(events[i], events[j]) {
				report.Conflicts = append(report.Conflicts, models.EventConflict{
					Event1: events[i],
					Event2: events[j],
				})
			}
		}
	}
	if len(report.Conflicts) > 0 {
		report.Suggestions = append(report.Suggestions,
			fmt.Sprintf("Found %d scheduling conflicts. Consider rescheduling overlapping events or assigning them to different family members.", len(report.Conflicts)))
	}
	return report, nil
}

// eventsConflict reports whether two events overlap under the fixed
// one-hour window assumption and share at least one attendee. The check
// is symmetric and an event never conflicts with itself because only
// pairs with i < j are scanned.
func eventsConflict(a, b *models.CalendarEvent) bool {
	if !shareAttendee(a, b) {
		return false
	}
	return a.StartTime.Before(b.StartTime.Add(assumedEventWindow)) &&
		b.StartTime.Before(a.StartTime.Add(assumedEventWindow))
}

func shareAttendee(a, b *models.CalendarEvent) bool {
	for _, x := range a.Attendees {
		for _, y := range b.Attendees {
			if x == y {
				return true
			}
		}
	}
	return false
}
