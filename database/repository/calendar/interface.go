package calendarRepo

import "aria/models"

// CalendarRepository defines storage operations for calendar events.
type CalendarRepository interface {
	Insert(event models.CalendarEvent) error
	// QueryRange returns events whose start time falls within [startMs, endMs],
	// ordered ascending by start time.
	QueryRange(userID string, startMs, endMs int64) ([]models.CalendarEvent, error)
	// DeleteByTitle removes events whose title contains the fragment and
	// returns the number of events removed.
	DeleteByTitle(userID, fragment string) (int64, error)
	// DeleteInRange removes events starting within [startMs, endMs] and
	// returns the number of events removed.
	DeleteInRange(userID string, startMs, endMs int64) (int64, error)
}
