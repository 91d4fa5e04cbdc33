package models

// EventConflict is one pair of overlapping events sharing an attendee.
type EventConflict struct {
	Event1 *CalendarEvent `json:"event1"`
	Event2 *CalendarEvent `json:"event2"`
}

// ScheduleReport is the result of a conflict scan. OptimizedEvents is
// always present and currently always empty: the scanner reports
// conflicts and suggestions but does not compute a new schedule.
type ScheduleReport struct {
	Conflicts       []EventConflict  `json:"conflicts"`
	OptimizedEvents []*CalendarEvent `json:"optimizedEvents"`
	Suggestions     []string         `json:"suggestions"`
}
