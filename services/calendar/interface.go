package calendar

import (
	"context"

	calendarRepo "aria/database/repository/calendar"
	"aria/models"
)

// CalendarService manages a user's server-side calendar.
type CalendarService interface {
	Insert(ctx context.Context, userID string, input models.CalendarEventInput) error
	Query(ctx context.Context, userID string, startMs, endMs int64) ([]models.CalendarEvent, error)
	DeleteByTitle(ctx context.Context, userID, fragment string) (int64, error)
	DeleteInRange(ctx context.Context, userID string, startMs, endMs int64) (int64, error)
}

// DefaultCalendarService implements CalendarService.
type DefaultCalendarService struct {
	Repo calendarRepo.CalendarRepository
}
