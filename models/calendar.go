package models

// CalendarEvent is a stored calendar entry.
type CalendarEvent struct {
	ID              string `bson:"id" json:"id"`
	UserID          string `bson:"userId" json:"userId"`
	Title           string `bson:"title" json:"title"`
	StartTime       int64  `bson:"startTime" json:"startTime"` // epoch millis
	EndTime         int64  `bson:"endTime" json:"endTime"`
	DurationMinutes int    `bson:"durationMinutes" json:"durationMinutes"`
	Location        string `bson:"location,omitempty" json:"location,omitempty"`
	Description     string `bson:"description,omitempty" json:"description,omitempty"`
}

// CalendarEventInput carries the fields needed to create an event.
type CalendarEventInput struct {
	Title           string `json:"title"`
	StartTime       int64  `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Location        string `json:"location,omitempty"`
}
