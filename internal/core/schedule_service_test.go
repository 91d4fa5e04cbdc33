package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"familysync-backend/internal/models"
)

func eventAt(id string, start time.Time, attendees ...string) *models.CalendarEvent {
	return &models.CalendarEvent{
		ID:        id,
		FamilyID:  "fam-1",
		Title:     "event " + id,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Attendees: attendees,
	}
}

func scheduleServiceWith(events []*models.CalendarEvent) ScheduleService {
	repo := &fakeEventRepo{
		listByFamily: func(ctx context.Context, familyID string) ([]*models.CalendarEvent, error) {
			return events, nil
		},
	}
	return NewScheduleService(repo, allowMember("uid-1", "fam-1"), zap.NewNop())
}

func TestOptimizeSchedule(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	t.Run("overlapping events with shared attendee conflict", func(t *testing.T) {
		events := []*models.CalendarEvent{
			eventAt("e1", base, "uid-1"),
			eventAt("e2", base.Add(30*time.Minute), "uid-1"),
		}
		report, err := scheduleServiceWith(events).OptimizeSchedule(ctx, "uid-1", "fam-1")
		require.NoError(t, err)
		require.Len(t, report.Conflicts, 1)
		assert.Equal(t, "e1", report.Conflicts[0].Event1.ID)
		assert.Equal(t, "e2", report.Conflicts[0].Event2.ID)
		require.Len(t, report.Suggestions, 1)
		assert.Equal(t, "Found 1 scheduling conflicts. Consider rescheduling overlapping events or assigning them to different family members.", report.Suggestions[0])
	})

	t.Run("disjoint attendees never conflict", func(t *testing.T) {
		events := []*models.CalendarEvent{
			eventAt("e1", base, "uid-1"),
			eventAt("e2", base.Add(10*time.Minute), "uid-2"),
		}
		report, err := scheduleServiceWith(events).OptimizeSchedule(ctx, "uid-1", "fam-1")
		require.NoError(t, err)
		assert.Empty(t, report.Conflicts)
	})

	t.Run("starts exactly one hour apart do not conflict", func(t *testing.T) {
		events := []*models.CalendarEvent{
			eventAt("e1", base, "uid-1"),
			eventAt("e2", base.Add(time.Hour), "uid-1"),
		}
		report, err := scheduleServiceWith(events).OptimizeSchedule(ctx, "uid-1", "fam-1")
		require.NoError(t, err)
		assert.Empty(t, report.Conflicts)
	})

	t.Run("stored end times are ignored", func(t *testing.T) {
		// e1 ends before e2 starts, yet the fixed window still overlaps.
		e1 := eventAt("e1", base, "uid-1")
		e1.EndTime = base.Add(10 * time.Minute)
		e2 := eventAt("e2", base.Add(20*time.Minute), "uid-1")
		report, err := scheduleServiceWith([]*models.CalendarEvent{e1, e2}).OptimizeSchedule(ctx, "uid-1", "fam-1")
		require.NoError(t, err)
		assert.Len(t, report.Conflicts, 1)
	})

	t.Run("each pair reported once", func(t *testing.T) {
		events := []*models.CalendarEvent{
			eventAt("e1", base, "uid-1"),
			eventAt("e2", base.Add(5*time.Minute), "uid-1"),
			eventAt("e3", base.Add(10*time.Minute), "uid-1"),
		}
		report, err := scheduleServiceWith(events).OptimizeSchedule(ctx, "uid-1", "fam-1")
		require.NoError(t, err)
		assert.Len(t, report.Conflicts, 3)
	})

	t.Run("empty calendar yields empty non-nil report", func(t *testing.T) {
		report, err := scheduleServiceWith(nil).OptimizeSchedule(ctx, "uid-1", "fam-1")
		require.NoError(t, err)
		assert.NotNil(t, report.Conflicts)
		assert.NotNil(t, report.OptimizedEvents)
		assert.NotNil(t, report.Suggestions)
		assert.Empty(t, report.Conflicts)
	})

	t.Run("missing family id is a validation error", func(t *testing.T) {
		_, err := scheduleServiceWith(nil).OptimizeSchedule(ctx, "uid-1", "")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Violations, "Family ID is required")
	})

	t.Run("non-member is denied", func(t *testing.T) {
		_, err := scheduleServiceWith(nil).OptimizeSchedule(ctx, "uid-9", "fam-1")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}

func TestEventsConflictSymmetry(t *testing.T) {
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	a := eventAt("a", base, "uid-1")
	b := eventAt("b", base.Add(45*time.Minute), "uid-1")
	assert.Equal(t, eventsConflict(a, b), eventsConflict(b, a))
}
