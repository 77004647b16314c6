package voice

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"aria/models"
)

// recorder collects the cross-collaborator event order so tests can assert
// that announcements are spoken before their triggering effect runs.
type recorder struct {
	events []string
}

func (r *recorder) record(ev string) { r.events = append(r.events, ev) }

type fakeContacts struct {
	byName map[string]*models.ContactMatch
	err    error
}

func (f *fakeContacts) FindContact(_ context.Context, _, name string) (*models.ContactMatch, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byName[name], nil
}

type fakeCalendar struct {
	rec *recorder

	insertErr   error
	inserted    []models.CalendarEventInput
	events      []models.CalendarEvent
	queryErr    error
	deleteCount int64
	deleteErr   error
}

func (f *fakeCalendar) Insert(_ context.Context, _ string, input models.CalendarEventInput) error {
	f.rec.record("insert")
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, input)
	return nil
}

func (f *fakeCalendar) Query(_ context.Context, _ string, _, _ int64) ([]models.CalendarEvent, error) {
	f.rec.record("query")
	return f.events, f.queryErr
}

func (f *fakeCalendar) DeleteByTitle(_ context.Context, _, _ string) (int64, error) {
	f.rec.record("deleteByTitle")
	return f.deleteCount, f.deleteErr
}

func (f *fakeCalendar) DeleteInRange(_ context.Context, _ string, _, _ int64) (int64, error) {
	f.rec.record("deleteInRange")
	return f.deleteCount, f.deleteErr
}

type sentMessage struct {
	channel models.Channel
	target  string
	body    string
}

type fakeMessenger struct {
	rec  *recorder
	sent []sentMessage
	err  error
}

func (f *fakeMessenger) SendMessage(_ context.Context, _ string, channel models.Channel, target, body string) error {
	f.rec.record("send")
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{channel, target, body})
	return nil
}

type fakeDialer struct {
	rec     *recorder
	numbers []string
	slots   []int
}

func (f *fakeDialer) PlaceCall(_ context.Context, _, number string, slot int) error {
	f.rec.record("call")
	f.numbers = append(f.numbers, number)
	f.slots = append(f.slots, slot)
	return nil
}

type fakeCab struct {
	rec   *recorder
	dests []string
}

func (f *fakeCab) BookCab(_ context.Context, _ string, _ models.CabProvider, dest string) error {
	f.rec.record("cab")
	f.dests = append(f.dests, dest)
	return nil
}

type fakeLauncher struct {
	rec *recorder
	err error
}

func (f *fakeLauncher) LaunchSearch(_ context.Context, _, app, query string) error {
	f.rec.record("launch")
	return f.err
}

type fakeSpeaker struct {
	rec    *recorder
	spoken []string
}

func (f *fakeSpeaker) Speak(_ context.Context, _, text string) {
	f.rec.record("speak:" + text)
	f.spoken = append(f.spoken, text)
}

type fakeInbox struct {
	msg *models.LoggedMessage
}

func (f *fakeInbox) LastFrom(_ string, _ models.Channel) *models.LoggedMessage {
	return f.msg
}

type fakeUsage struct {
	tracked []string
}

func (f *fakeUsage) Track(_, feature string) {
	f.tracked = append(f.tracked, feature)
}

type fixture struct {
	rec       *recorder
	contacts  *fakeContacts
	calendar  *fakeCalendar
	messenger *fakeMessenger
	dialer    *fakeDialer
	cab       *fakeCab
	launcher  *fakeLauncher
	speaker   *fakeSpeaker
	inbox     *fakeInbox
	usage     *fakeUsage
	svc       *DefaultVoiceService
}

func newFixture() *fixture {
	rec := &recorder{}
	f := &fixture{
		rec:       rec,
		contacts:  &fakeContacts{byName: map[string]*models.ContactMatch{}},
		calendar:  &fakeCalendar{rec: rec},
		messenger: &fakeMessenger{rec: rec},
		dialer:    &fakeDialer{rec: rec},
		cab:       &fakeCab{rec: rec},
		launcher:  &fakeLauncher{rec: rec},
		speaker:   &fakeSpeaker{rec: rec},
		inbox:     &fakeInbox{},
		usage:     &fakeUsage{},
	}
	f.svc = &DefaultVoiceService{
		Parser:    fixedParser(),
		Contacts:  f.contacts,
		Calendar:  f.calendar,
		Messenger: f.messenger,
		Dialer:    f.dialer,
		Cab:       f.cab,
		Launcher:  f.launcher,
		Speaker:   f.speaker,
		Inbox:     f.inbox,
		Usage:     f.usage,
	}
	return f
}

func TestDispatchScheduleAnnouncesBeforeInsert(t *testing.T) {
	f := newFixture()

	res := f.svc.Dispatch(context.Background(), "u1", models.ScheduleEvent{
		Title:           "Haircut",
		StartTime:       fixedNow.UnixMilli(),
		DurationMinutes: 60,
	})

	require.True(t, res.Success)
	require.Equal(t, []string{
		"INITIALIZING CALENDAR PROTOCOL FOR HAIRCUT. MARKING YOUR CALENDAR.",
		"PROTOCOL COMPLETE.",
	}, res.Confirmations)
	require.Equal(t, []string{models.FeatureMeeting}, f.usage.tracked)

	require.Equal(t, []string{
		"speak:INITIALIZING CALENDAR PROTOCOL FOR HAIRCUT. MARKING YOUR CALENDAR.",
		"insert",
		"speak:PROTOCOL COMPLETE.",
		"speak:CALENDAR SYNCHRONIZED.",
	}, f.rec.events)
}

func TestDispatchScheduleInviteeNotFoundAborts(t *testing.T) {
	f := newFixture()

	res := f.svc.Dispatch(context.Background(), "u1", models.ScheduleEvent{
		Title:       "Meeting",
		InviteeName: "John",
	})

	require.False(t, res.Success)
	require.Equal(t, []string{"PROTOCOL ABORTED. EMAIL FOR JOHN NOT FOUND IN CONTACTS."}, res.Confirmations)
	require.Empty(t, f.calendar.inserted)
	require.Empty(t, f.usage.tracked)
}

func TestDispatchScheduleInviteeGetsInviteEmail(t *testing.T) {
	f := newFixture()
	f.contacts.byName["John"] = &models.ContactMatch{Name: "John", Email: "john@example.com"}

	start := time.Date(2025, time.March, 11, 14, 0, 0, 0, time.Local).UnixMilli()
	res := f.svc.Dispatch(context.Background(), "u1", models.ScheduleEvent{
		Title:       "Meeting",
		StartTime:   start,
		InviteeName: "John",
	})

	require.True(t, res.Success)
	require.Equal(t,
		"INITIALIZING CALENDAR PROTOCOL FOR MEETING WITH JOHN. SENDING INVITE.",
		res.Confirmations[0])

	require.Len(t, f.messenger.sent, 1)
	sent := f.messenger.sent[0]
	require.Equal(t, models.ChannelEmail, sent.channel)
	require.Equal(t, "john@example.com", sent.target)
	require.Equal(t, "Hi John, I have scheduled a meeting: Meeting at 14:00.", sent.body)
}

func TestDispatchScheduleInsertFailureStaysSilent(t *testing.T) {
	f := newFixture()
	f.calendar.insertErr = fmt.Errorf("mongo down")

	res := f.svc.Dispatch(context.Background(), "u1", models.ScheduleEvent{Title: "Haircut"})

	require.False(t, res.Success)
	require.Equal(t, "calendar insert failed", res.FailureReason)
	// The announce string stands alone; no failure is spoken.
	require.Equal(t, []string{"INITIALIZING CALENDAR PROTOCOL FOR HAIRCUT. MARKING YOUR CALENDAR."}, res.Confirmations)
	require.Empty(t, f.usage.tracked)
}

func TestDispatchQueryEmpty(t *testing.T) {
	f := newFixture()

	res := f.svc.Dispatch(context.Background(), "u1", models.CalendarQuery{})

	require.True(t, res.Success)
	require.Equal(t, []string{"SCANNING TEMPORAL DATA.", "NO TEMPORAL DATA DETECTED."}, res.Confirmations)
}

func TestDispatchQueryResults(t *testing.T) {
	f := newFixture()
	f.calendar.events = []models.CalendarEvent{
		{Title: "Standup", StartTime: time.Date(2025, time.March, 10, 9, 30, 0, 0, time.Local).UnixMilli()},
		{Title: "Review", StartTime: time.Date(2025, time.March, 10, 16, 0, 0, 0, time.Local).UnixMilli()},
	}

	res := f.svc.Dispatch(context.Background(), "u1", models.CalendarQuery{})

	require.True(t, res.Success)
	require.Equal(t, "DATA RETRIEVED: Standup AT 09:30, Review AT 16:00.", res.Confirmations[1])
}

func TestDispatchQueryFailureIsSpoken(t *testing.T) {
	f := newFixture()
	f.calendar.queryErr = fmt.Errorf("mongo down")

	res := f.svc.Dispatch(context.Background(), "u1", models.CalendarQuery{})

	require.False(t, res.Success)
	require.Equal(t, []string{"SCANNING TEMPORAL DATA.", "TEMPORAL SCAN FAILED."}, res.Confirmations)
}

func TestDispatchDelete(t *testing.T) {
	f := newFixture()
	f.calendar.deleteCount = 2

	res := f.svc.Dispatch(context.Background(), "u1", models.CalendarDelete{TitleFragment: "standup"})

	require.True(t, res.Success)
	require.Equal(t, []string{
		"INITIATING PURGE FOR STANDUP.",
		"PURGE SUCCESSFUL. REMOVED 2 EVENTS.",
	}, res.Confirmations)
}

func TestDispatchDeleteTargetNotFound(t *testing.T) {
	f := newFixture()
	f.calendar.deleteCount = 0

	res := f.svc.Dispatch(context.Background(), "u1", models.CalendarDelete{TitleFragment: "standup"})

	require.False(t, res.Success)
	require.Equal(t, "PURGE FAILED. TARGET NOT FOUND.", res.Confirmations[1])
}

func TestDispatchRangeDelete(t *testing.T) {
	f := newFixture()
	f.calendar.deleteCount = 3

	res := f.svc.Dispatch(context.Background(), "u1", models.CalendarRangeDelete{})

	require.True(t, res.Success)
	require.Equal(t, []string{
		"INITIATING GLOBAL PURGE FOR THE SPECIFIED RANGE.",
		"GLOBAL PURGE COMPLETE. 3 MEETINGS REMOVED.",
	}, res.Confirmations)

	f = newFixture()
	res = f.svc.Dispatch(context.Background(), "u1", models.CalendarRangeDelete{})
	require.False(t, res.Success)
	require.Equal(t, "SPECIFIED RANGE IS ALREADY VOID.", res.Confirmations[1])
}

func TestDispatchMessageUnknownRecipientAborts(t *testing.T) {
	f := newFixture()

	res := f.svc.Dispatch(context.Background(), "u1", models.SendMessage{
		Channel:   models.ChannelWhatsApp,
		Recipient: "Mary",
		Body:      "hello",
	})

	require.False(t, res.Success)
	require.Equal(t, []string{"PROTOCOL FAILED. MARY NOT FOUND IN CONTACTS."}, res.Confirmations)
	require.Empty(t, f.messenger.sent)
	require.Empty(t, f.usage.tracked)
}

func TestDispatchMessageWhatsApp(t *testing.T) {
	f := newFixture()
	f.contacts.byName["Mary"] = &models.ContactMatch{Name: "Mary", Phone: "+15550100"}

	res := f.svc.Dispatch(context.Background(), "u1", models.SendMessage{
		Channel:   models.ChannelWhatsApp,
		Recipient: "Mary",
		Body:      "hello",
	})

	require.True(t, res.Success)
	require.Equal(t, "SENDING WHATSAPP MESSAGE TO MARY SAYING HELLO.", res.Confirmations[0])
	require.Equal(t, []string{models.FeatureMessage}, f.usage.tracked)
	require.Len(t, f.messenger.sent, 1)
	require.Equal(t, "+15550100", f.messenger.sent[0].target)

	// The announcement precedes the send.
	require.Equal(t, []string{
		"speak:SENDING WHATSAPP MESSAGE TO MARY SAYING HELLO.",
		"send",
	}, f.rec.events)
}

func TestDispatchMessageEmailUsesEmailTargetAndCounter(t *testing.T) {
	f := newFixture()
	f.contacts.byName["Bob"] = &models.ContactMatch{Name: "Bob", Phone: "+15550101", Email: "bob@example.com"}

	res := f.svc.Dispatch(context.Background(), "u1", models.SendMessage{
		Channel:   models.ChannelEmail,
		Recipient: "Bob",
		Body:      "report",
	})

	require.True(t, res.Success)
	require.Equal(t, "bob@example.com", f.messenger.sent[0].target)
	require.Equal(t, []string{models.FeatureEmail}, f.usage.tracked)
}

func TestDispatchMessageSendFailureStaysSilent(t *testing.T) {
	f := newFixture()
	f.contacts.byName["Mary"] = &models.ContactMatch{Name: "Mary", Phone: "+15550100"}
	f.messenger.err = fmt.Errorf("queue down")

	res := f.svc.Dispatch(context.Background(), "u1", models.SendMessage{
		Channel:   models.ChannelWhatsApp,
		Recipient: "Mary",
		Body:      "hello",
	})

	require.False(t, res.Success)
	require.Equal(t, "message send failed", res.FailureReason)
	require.Len(t, res.Confirmations, 1)
	require.Empty(t, f.usage.tracked)
}

func TestDispatchLastMessage(t *testing.T) {
	f := newFixture()
	f.inbox.msg = &models.LoggedMessage{Sender: "John Doe", Text: "running late", App: "WhatsApp"}

	res := f.svc.Dispatch(context.Background(), "u1", models.LastMessageQuery{
		Channel:     models.ChannelWhatsApp,
		ContactName: "John",
	})

	require.True(t, res.Success)
	require.Equal(t,
		"DATA RETRIEVED: LAST WHATSAPP MESSAGE FROM JOHN DOE: running late.",
		res.Confirmations[0])
}

func TestDispatchLastMessageNoData(t *testing.T) {
	f := newFixture()

	res := f.svc.Dispatch(context.Background(), "u1", models.LastMessageQuery{ContactName: "John"})

	require.False(t, res.Success)
	require.Equal(t, []string{"NO RECENT DATA FROM JOHN."}, res.Confirmations)
}

func TestDispatchCallResolvesContactNumber(t *testing.T) {
	f := newFixture()
	f.contacts.byName["John"] = &models.ContactMatch{Name: "John", Phone: "+15550102"}

	res := f.svc.Dispatch(context.Background(), "u1", models.PlaceCall{Recipient: "John", SimSlot: 2})

	require.True(t, res.Success)
	require.Equal(t, []string{"INITIATING VOICE LINK TO JOHN."}, res.Confirmations)
	require.Equal(t, []string{"+15550102"}, f.dialer.numbers)
	require.Equal(t, []int{2}, f.dialer.slots)
	require.Equal(t, []string{models.FeatureOther}, f.usage.tracked)
}

func TestDispatchCallFallsBackToSpokenName(t *testing.T) {
	f := newFixture()

	res := f.svc.Dispatch(context.Background(), "u1", models.PlaceCall{Recipient: "9876543210", SimSlot: 1})

	require.True(t, res.Success)
	require.Equal(t, []string{"9876543210"}, f.dialer.numbers)
}

func TestDispatchCab(t *testing.T) {
	f := newFixture()

	res := f.svc.Dispatch(context.Background(), "u1", models.BookCab{
		Provider:    models.CabUber,
		Destination: "airport",
	})

	require.True(t, res.Success)
	require.Equal(t, "INITIALIZING CAB PROTOCOL. LAUNCHING UBER TO AIRPORT.", res.Confirmations[0])
	require.Equal(t, []string{"airport"}, f.cab.dests)
	require.Equal(t, []string{models.FeatureCab}, f.usage.tracked)
}

func TestDispatchAppSearch(t *testing.T) {
	f := newFixture()

	res := f.svc.Dispatch(context.Background(), "u1", models.AppSearch{
		TargetApp: models.AppBrowser,
		Query:     "pizza recipes",
	})

	require.True(t, res.Success)
	require.Equal(t, "SEARCHING BROWSER FOR PIZZA RECIPES.", res.Confirmations[0])
	require.Equal(t, []string{models.FeatureOther}, f.usage.tracked)
}

func TestDispatchAppSearchUnknownApp(t *testing.T) {
	f := newFixture()
	f.launcher.err = fmt.Errorf("app protocol not defined for NETFLIX")

	res := f.svc.Dispatch(context.Background(), "u1", models.AppSearch{
		TargetApp: "NETFLIX",
		Query:     "space documentaries",
	})

	require.False(t, res.Success)
	require.Equal(t, "app launch failed", res.FailureReason)
}

func TestDispatchUnrecognizedSpeaksWithoutConfirmation(t *testing.T) {
	f := newFixture()

	res := f.svc.Dispatch(context.Background(), "u1", models.Unrecognized{RawText: "open the pod bay doors"})

	require.False(t, res.Success)
	require.Empty(t, res.Confirmations)
	require.Equal(t, []string{"NEURAL INPUT UNRECOGNIZED: open the pod bay doors"}, f.speaker.spoken)
	require.Empty(t, f.usage.tracked)
}
