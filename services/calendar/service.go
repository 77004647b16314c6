package calendar

import (
	"context"
	"fmt"

	"aria/models"

	"github.com/google/uuid"
)

const (
	defaultLocation = "Office"
	defaultDuration = 60
)

// Insert stores a new event, filling in the location and duration defaults.
func (s *DefaultCalendarService) Insert(ctx context.Context, userID string, input models.CalendarEventInput) error {
	if input.Title == "" {
		return fmt.Errorf("calendar insert requires a title")
	}
	duration := input.DurationMinutes
	if duration <= 0 {
		duration = defaultDuration
	}
	location := input.Location
	if location == "" {
		location = defaultLocation
	}

	event := models.CalendarEvent{
		ID:              uuid.NewString(),
		UserID:          userID,
		Title:           input.Title,
		StartTime:       input.StartTime,
		EndTime:         input.StartTime + int64(duration)*60_000,
		DurationMinutes: duration,
		Location:        location,
		Description:     "Automated by Aria",
	}
	if err := s.Repo.Insert(event); err != nil {
		return fmt.Errorf("failed to schedule %q: %w", input.Title, err)
	}
	return nil
}

// Query returns events within [startMs, endMs] ordered ascending by start time.
func (s *DefaultCalendarService) Query(ctx context.Context, userID string, startMs, endMs int64) ([]models.CalendarEvent, error) {
	return s.Repo.QueryRange(userID, startMs, endMs)
}

// DeleteByTitle removes events whose title contains the fragment.
func (s *DefaultCalendarService) DeleteByTitle(ctx context.Context, userID, fragment string) (int64, error) {
	if fragment == "" {
		return 0, fmt.Errorf("calendar delete requires a title fragment")
	}
	return s.Repo.DeleteByTitle(userID, fragment)
}

// DeleteInRange removes events starting within [startMs, endMs].
func (s *DefaultCalendarService) DeleteInRange(ctx context.Context, userID string, startMs, endMs int64) (int64, error) {
	return s.Repo.DeleteInRange(userID, startMs, endMs)
}
