package voice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"aria/models"
)

// fixedNow pins the clock to Monday, March 10, 2025 09:00 UTC.
var fixedNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func fixedParser() *Parser {
	return &Parser{Now: func() time.Time { return fixedNow }}
}

func TestParseScheduleKeywordTitle(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("schedule haircut tomorrow at 3pm")
	ev, ok := intent.(models.ScheduleEvent)
	require.True(t, ok)
	require.Equal(t, "Haircut", ev.Title)
	require.Equal(t, 60, ev.DurationMinutes)
	require.Empty(t, ev.InviteeName)

	want := time.Date(2025, time.March, 11, 15, 0, 0, 0, time.UTC).UnixMilli()
	require.Equal(t, want, ev.StartTime)
}

func TestParseScheduleWithInvitee(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("schedule meeting with John tomorrow at 8:30pm")
	ev, ok := intent.(models.ScheduleEvent)
	require.True(t, ok)
	require.Equal(t, "Meeting", ev.Title)
	require.Equal(t, "John", ev.InviteeName)

	want := time.Date(2025, time.March, 11, 20, 30, 0, 0, time.UTC).UnixMilli()
	require.Equal(t, want, ev.StartTime)
}

func TestParseAppointmentKeywordWithoutVerb(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("haircut at 5pm")
	ev, ok := intent.(models.ScheduleEvent)
	require.True(t, ok)
	require.Equal(t, "Haircut", ev.Title)

	want := time.Date(2025, time.March, 10, 17, 0, 0, 0, time.UTC).UnixMilli()
	require.Equal(t, want, ev.StartTime)
}

func TestParseScheduleExplicitDateBumpsYear(t *testing.T) {
	p := fixedParser()

	// March 3 has already passed on March 10; the next occurrence is meant.
	intent := p.Parse("book dentist appointment on March 3rd at 10am")
	ev, ok := intent.(models.ScheduleEvent)
	require.True(t, ok)
	require.Equal(t, "Dentist Appointment", ev.Title)

	want := time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC).UnixMilli()
	require.Equal(t, want, ev.StartTime)
}

func TestParseCall(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("call John use sim 2")
	call, ok := intent.(models.PlaceCall)
	require.True(t, ok)
	require.Equal(t, "John", call.Recipient)
	require.Equal(t, 2, call.SimSlot)

	intent = p.Parse("Call Mom")
	call, ok = intent.(models.PlaceCall)
	require.True(t, ok)
	require.Equal(t, "Mom", call.Recipient)
	require.Equal(t, 1, call.SimSlot)
}

func TestParseSendMessage(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("send whatsapp message to Mary saying hello")
	msg, ok := intent.(models.SendMessage)
	require.True(t, ok)
	require.Equal(t, models.ChannelWhatsApp, msg.Channel)
	require.Equal(t, "Mary", msg.Recipient)
	require.Equal(t, "hello", msg.Body)
}

func TestParseSendMailSelectsEmailChannel(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("send mail to bob saying report is ready")
	msg, ok := intent.(models.SendMessage)
	require.True(t, ok)
	require.Equal(t, models.ChannelEmail, msg.Channel)
	require.Equal(t, "Bob", msg.Recipient)
	require.Equal(t, "report is ready", msg.Body)
}

func TestParseEmailVerbWithoutSend(t *testing.T) {
	p := fixedParser()

	// "email" carries the "mail" trigger even without a "send" verb.
	intent := p.Parse("email mom saying hi")
	msg, ok := intent.(models.SendMessage)
	require.True(t, ok)
	require.Equal(t, models.ChannelEmail, msg.Channel)
	require.Equal(t, "Contact", msg.Recipient)
	require.Equal(t, "hi", msg.Body)
}

func TestParseSendMessageDefaults(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("send message to sam")
	msg, ok := intent.(models.SendMessage)
	require.True(t, ok)
	require.Equal(t, models.ChannelWhatsApp, msg.Channel)
	require.Equal(t, "Sam", msg.Recipient)
	require.Equal(t, "Hi", msg.Body)
}

func TestParseCab(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("book uber to airport")
	cab, ok := intent.(models.BookCab)
	require.True(t, ok)
	require.Equal(t, models.CabUber, cab.Provider)
	require.Equal(t, "airport", cab.Destination)
}

func TestParseCabStationCanonicalization(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("book ola to the station")
	cab, ok := intent.(models.BookCab)
	require.True(t, ok)
	require.Equal(t, models.CabOla, cab.Provider)
	require.Equal(t, "Pune Station", cab.Destination)
}

func TestParseMaps(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("navigate to central park")
	search, ok := intent.(models.AppSearch)
	require.True(t, ok)
	require.Equal(t, models.AppMaps, search.TargetApp)
	require.Equal(t, "central park", search.Query)

	intent = p.Parse("where is mg road")
	search, ok = intent.(models.AppSearch)
	require.True(t, ok)
	require.Equal(t, models.AppMaps, search.TargetApp)
	require.Equal(t, "mg road", search.Query)
}

func TestParseBrowserSearch(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("search for pizza recipes")
	search, ok := intent.(models.AppSearch)
	require.True(t, ok)
	require.Equal(t, models.AppBrowser, search.TargetApp)
	require.Equal(t, "pizza recipes", search.Query)

	intent = p.Parse("nearest petrol pump")
	search, ok = intent.(models.AppSearch)
	require.True(t, ok)
	require.Equal(t, "petrol pump", search.Query)
}

func TestParseSearchMentioningMeetingsBecomesQuery(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("find my meeting today")
	q, ok := intent.(models.CalendarQuery)
	require.True(t, ok)

	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC).UnixMilli()
	end := time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC).UnixMilli()
	require.Equal(t, start, q.RangeStart)
	require.Equal(t, end, q.RangeEnd)
}

func TestParseCalendarQuery(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("any meeting today")
	q, ok := intent.(models.CalendarQuery)
	require.True(t, ok)
	require.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC).UnixMilli(), q.RangeStart)
}

func TestParseBulkDelete(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("cancel all meetings tomorrow")
	del, ok := intent.(models.CalendarRangeDelete)
	require.True(t, ok)
	require.Equal(t, time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC).UnixMilli(), del.RangeStart)
	require.Equal(t, time.Date(2025, time.March, 11, 23, 59, 59, 0, time.UTC).UnixMilli(), del.RangeEnd)
}

func TestParseTitleDelete(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("cancel the team meeting")
	del, ok := intent.(models.CalendarDelete)
	require.True(t, ok)
	require.Equal(t, "team", del.TitleFragment)
}

func TestParseLastMessage(t *testing.T) {
	p := fixedParser()

	intent := p.Parse("last message from John on whatsapp")
	q, ok := intent.(models.LastMessageQuery)
	require.True(t, ok)
	require.Equal(t, models.ChannelWhatsApp, q.Channel)
	require.Equal(t, "John", q.ContactName)

	intent = p.Parse("check message from alice in gmail")
	q, ok = intent.(models.LastMessageQuery)
	require.True(t, ok)
	require.Equal(t, models.ChannelEmail, q.Channel)
	require.Equal(t, "Alice", q.ContactName)
}

func TestParseLastMessagePreemptsSearch(t *testing.T) {
	p := fixedParser()

	// "what is" must not steal a last-message lookup.
	intent := p.Parse("what is the last message from john")
	q, ok := intent.(models.LastMessageQuery)
	require.True(t, ok)
	require.Equal(t, models.ChannelWhatsApp, q.Channel)
	require.Equal(t, "John", q.ContactName)
}

func TestParseUnrecognizedKeepsRawText(t *testing.T) {
	p := fixedParser()

	raw := "Open the pod bay doors"
	intent := p.Parse(raw)
	un, ok := intent.(models.Unrecognized)
	require.True(t, ok)
	require.Equal(t, raw, un.RawText)
}

func TestParseRuleOrdering(t *testing.T) {
	p := fixedParser()

	// "cancel all" must win over the generic title delete.
	_, isBulk := p.Parse("cancel all meetings").(models.CalendarRangeDelete)
	require.True(t, isBulk)

	// A search phrase mentioning a cab provider is still a search.
	search, isSearch := p.Parse("search for uber fares").(models.AppSearch)
	require.True(t, isSearch)
	require.Equal(t, models.AppBrowser, search.TargetApp)
	require.Equal(t, "uber fares", search.Query)
}

func TestParseIsDeterministic(t *testing.T) {
	p := fixedParser()

	first := p.Parse("schedule haircut tomorrow at 3pm")
	second := p.Parse("schedule haircut tomorrow at 3pm")
	require.Equal(t, first, second)
}

func TestTitleCase(t *testing.T) {
	require.Equal(t, "John Doe", titleCase("john doe"))
	require.Equal(t, "Über Fahrer", titleCase("über fahrer"))
	require.Equal(t, "", titleCase("  "))
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "meeting on the 30 of june", normalize("Meeting on the 30th of June."))
	require.Equal(t, "a b c", normalize("  a,  b   c "))
}
