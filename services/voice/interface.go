package voice

import (
	"context"

	"aria/models"
)

// VoiceService turns raw utterance text into typed intents and executes them.
type VoiceService interface {
	// Parse classifies one utterance. It never fails; unmatched input yields
	// models.Unrecognized carrying the original text.
	Parse(text string) models.Intent
	// Dispatch announces and executes the effects implied by an intent.
	Dispatch(ctx context.Context, userID string, intent models.Intent) DispatchResult
}

// DispatchResult is the transient outcome of one dispatch. It is never persisted.
type DispatchResult struct {
	// Confirmations are the user-facing strings in the order they were
	// spoken: the announce string first, then the result string once the
	// effect outcome is known.
	Confirmations []string `json:"confirmations"`
	Success       bool     `json:"success"`
	FailureReason string   `json:"failureReason,omitempty"`
	UsageTag      string   `json:"usageTag,omitempty"`
}

// ContactDirectory resolves a spoken name to the best fuzzy contact match.
type ContactDirectory interface {
	// FindContact returns at most one match, chosen by minimum edit distance
	// below the directory's threshold, or nil when nothing is close enough.
	FindContact(ctx context.Context, userID, spokenName string) (*models.ContactMatch, error)
}

// CalendarEffects is the calendar collaborator the dispatcher writes and reads.
type CalendarEffects interface {
	Insert(ctx context.Context, userID string, input models.CalendarEventInput) error
	// Query returns events within [startMs, endMs] ordered ascending by start time.
	Query(ctx context.Context, userID string, startMs, endMs int64) ([]models.CalendarEvent, error)
	DeleteByTitle(ctx context.Context, userID, fragment string) (int64, error)
	DeleteInRange(ctx context.Context, userID string, startMs, endMs int64) (int64, error)
}

// Messenger routes a message body to a target address over a channel.
type Messenger interface {
	SendMessage(ctx context.Context, userID string, channel models.Channel, target, body string) error
}

// Dialer places a call on the given SIM slot.
type Dialer interface {
	PlaceCall(ctx context.Context, userID, number string, simSlot int) error
}

// CabBooker launches a ride-hailing app towards a destination.
type CabBooker interface {
	BookCab(ctx context.Context, userID string, provider models.CabProvider, destination string) error
}

// AppLauncher launches an app search (maps, browser, or a named external app).
type AppLauncher interface {
	LaunchSearch(ctx context.Context, userID, app, query string) error
}

// Speaker delivers spoken confirmations. Best effort; implementations queue
// text until the voice engine is ready.
type Speaker interface {
	Speak(ctx context.Context, userID, text string)
}

// NotificationLog answers "last message from" queries over the bounded
// notification log the device feeds.
type NotificationLog interface {
	// LastFrom returns the most recent logged message whose sender contains
	// the contact name (case-insensitive), or nil.
	LastFrom(contact string, channel models.Channel) *models.LoggedMessage
}

// UsageTracker reports coarse feature usage. Best effort, fire-and-forget;
// failures and missing auth are silently dropped.
type UsageTracker interface {
	Track(userID, feature string)
}
