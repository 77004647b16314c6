package models

// Channel identifies the messaging surface a communication intent targets.
type Channel string

const (
	ChannelWhatsApp Channel = "WHATSAPP"
	ChannelEmail    Channel = "EMAIL"
	ChannelSlack    Channel = "SLACK"
	ChannelSMS      Channel = "SMS"
)

// CabProvider identifies the ride-hailing app a booking targets.
type CabProvider string

const (
	CabUber CabProvider = "UBER"
	CabOla  CabProvider = "OLA"
)

// Built-in search targets. Anything else is a named external app (AMAZON, ZOMATO, ...).
const (
	AppMaps    = "MAPS"
	AppBrowser = "BROWSER"
)

// IntentKind names an intent variant.
type IntentKind string

const (
	KindScheduleEvent       IntentKind = "SCHEDULE_EVENT"
	KindCalendarQuery       IntentKind = "CALENDAR_QUERY"
	KindCalendarDelete      IntentKind = "CALENDAR_DELETE"
	KindCalendarRangeDelete IntentKind = "CALENDAR_RANGE_DELETE"
	KindSendMessage         IntentKind = "SEND_MESSAGE"
	KindLastMessageQuery    IntentKind = "LAST_MESSAGE_QUERY"
	KindPlaceCall           IntentKind = "PLACE_CALL"
	KindBookCab             IntentKind = "BOOK_CAB"
	KindAppSearch           IntentKind = "APP_SEARCH"
	KindUnrecognized        IntentKind = "UNRECOGNIZED"
)

// Intent is the structured, typed outcome of classifying one utterance.
// Exactly one variant is produced per parse; intents are constructed fresh
// per utterance and never mutated.
type Intent interface {
	Kind() IntentKind
}

// ScheduleEvent is a calendar-insert request.
type ScheduleEvent struct {
	Title           string `json:"title"`
	StartTime       int64  `json:"startTime"` // epoch millis
	DurationMinutes int    `json:"durationMinutes"`
	Location        string `json:"location,omitempty"`
	InviteeName     string `json:"inviteeName,omitempty"`
}

// CalendarQuery asks for events within an absolute time range.
type CalendarQuery struct {
	RangeStart int64 `json:"rangeStart"`
	RangeEnd   int64 `json:"rangeEnd"`
}

// CalendarDelete removes events whose title contains the fragment.
type CalendarDelete struct {
	TitleFragment string `json:"titleFragment"`
}

// CalendarRangeDelete removes all events within a time range.
type CalendarRangeDelete struct {
	RangeStart int64 `json:"rangeStart"`
	RangeEnd   int64 `json:"rangeEnd"`
}

// SendMessage routes a message body to a recipient over a channel.
type SendMessage struct {
	Channel   Channel `json:"channel"`
	Recipient string  `json:"recipient"`
	Body      string  `json:"body"`
}

// LastMessageQuery asks for the most recent logged message from a contact.
type LastMessageQuery struct {
	Channel     Channel `json:"channel"`
	ContactName string  `json:"contactName"`
}

// PlaceCall dials a contact or raw number on the given SIM slot (1 or 2).
type PlaceCall struct {
	Recipient string `json:"recipient"`
	SimSlot   int    `json:"simSlot"`
}

// BookCab launches a ride-hailing app towards a destination.
type BookCab struct {
	Provider    CabProvider `json:"provider"`
	Destination string      `json:"destination"`
}

// AppSearch launches an app (maps, browser, or a named external app) with a query.
type AppSearch struct {
	TargetApp string `json:"targetApp"`
	Query     string `json:"query"`
}

// Unrecognized carries the original, un-normalized utterance.
type Unrecognized struct {
	RawText string `json:"rawText"`
}

func (ScheduleEvent) Kind() IntentKind       { return KindScheduleEvent }
func (CalendarQuery) Kind() IntentKind       { return KindCalendarQuery }
func (CalendarDelete) Kind() IntentKind      { return KindCalendarDelete }
func (CalendarRangeDelete) Kind() IntentKind { return KindCalendarRangeDelete }
func (SendMessage) Kind() IntentKind         { return KindSendMessage }
func (LastMessageQuery) Kind() IntentKind    { return KindLastMessageQuery }
func (PlaceCall) Kind() IntentKind           { return KindPlaceCall }
func (BookCab) Kind() IntentKind             { return KindBookCab }
func (AppSearch) Kind() IntentKind           { return KindAppSearch }
func (Unrecognized) Kind() IntentKind        { return KindUnrecognized }
