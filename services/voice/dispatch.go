package voice

import (
	"context"
	"fmt"
	"strings"

	"aria/models"
	"aria/utils"

	"go.uber.org/zap"
)

// DefaultVoiceService wires the classifier to the effect collaborators.
// Each Dispatch call is independent; the service holds no cross-call state.
type DefaultVoiceService struct {
	Parser    *Parser
	Contacts  ContactDirectory
	Calendar  CalendarEffects
	Messenger Messenger
	Dialer    Dialer
	Cab       CabBooker
	Launcher  AppLauncher
	Speaker   Speaker
	Inbox     NotificationLog
	Usage     UsageTracker
}

// Parse classifies one utterance.
func (s *DefaultVoiceService) Parse(text string) models.Intent {
	return s.Parser.Parse(text)
}

// Dispatch announces and executes the effects implied by an intent. The
// announce string is always spoken before the triggering effect call; a
// completion string is only emitted once that effect's result is known.
func (s *DefaultVoiceService) Dispatch(ctx context.Context, userID string, intent models.Intent) DispatchResult {
	switch it := intent.(type) {
	case models.ScheduleEvent:
		return s.dispatchSchedule(ctx, userID, it)
	case models.CalendarQuery:
		return s.dispatchQuery(ctx, userID, it)
	case models.CalendarDelete:
		return s.dispatchDelete(ctx, userID, it)
	case models.CalendarRangeDelete:
		return s.dispatchRangeDelete(ctx, userID, it)
	case models.SendMessage:
		return s.dispatchMessage(ctx, userID, it)
	case models.LastMessageQuery:
		return s.dispatchLastMessage(ctx, userID, it)
	case models.PlaceCall:
		return s.dispatchCall(ctx, userID, it)
	case models.BookCab:
		return s.dispatchCab(ctx, userID, it)
	case models.AppSearch:
		return s.dispatchAppSearch(ctx, userID, it)
	case models.Unrecognized:
		// Spoken notice only; the UI result field stays clear.
		s.Speaker.Speak(ctx, userID, "NEURAL INPUT UNRECOGNIZED: "+it.RawText)
		return DispatchResult{Success: false, FailureReason: "unrecognized input"}
	default:
		return DispatchResult{Success: false, FailureReason: "unknown intent"}
	}
}

// speakAndConfirm delivers one confirmation string to both the voice channel
// and the dispatch result.
func (s *DefaultVoiceService) speakAndConfirm(ctx context.Context, userID, text string, res *DispatchResult) {
	res.Confirmations = append(res.Confirmations, text)
	s.Speaker.Speak(ctx, userID, text)
}

func (s *DefaultVoiceService) dispatchSchedule(ctx context.Context, userID string, it models.ScheduleEvent) DispatchResult {
	var res DispatchResult

	var invitee *models.ContactMatch
	if it.InviteeName != "" {
		match, err := s.Contacts.FindContact(ctx, userID, it.InviteeName)
		if err != nil {
			utils.GetLogger().Warn("contact lookup failed", zap.String("name", it.InviteeName), zap.Error(err))
		}
		if match == nil || match.Email == "" {
			s.speakAndConfirm(ctx, userID,
				fmt.Sprintf("PROTOCOL ABORTED. EMAIL FOR %s NOT FOUND IN CONTACTS.", strings.ToUpper(it.InviteeName)), &res)
			res.FailureReason = "invitee not found"
			return res
		}
		invitee = match
	}

	if invitee != nil {
		s.speakAndConfirm(ctx, userID,
			fmt.Sprintf("INITIALIZING CALENDAR PROTOCOL FOR %s WITH %s. SENDING INVITE.",
				strings.ToUpper(it.Title), strings.ToUpper(invitee.Name)), &res)
	} else {
		s.speakAndConfirm(ctx, userID,
			fmt.Sprintf("INITIALIZING CALENDAR PROTOCOL FOR %s. MARKING YOUR CALENDAR.", strings.ToUpper(it.Title)), &res)
	}

	input := models.CalendarEventInput{
		Title:           it.Title,
		StartTime:       it.StartTime,
		DurationMinutes: it.DurationMinutes,
		Location:        it.Location,
	}
	if err := s.Calendar.Insert(ctx, userID, input); err != nil {
		// Insert failures are swallowed without a completion announcement,
		// matching the confirmation strings existing clients expect.
		utils.GetLogger().Error("calendar insert failed", zap.String("title", it.Title), zap.Error(err))
		res.FailureReason = "calendar insert failed"
		return res
	}

	s.speakAndConfirm(ctx, userID, "PROTOCOL COMPLETE.", &res)
	s.Speaker.Speak(ctx, userID, "CALENDAR SYNCHRONIZED.")
	res.Success = true
	res.UsageTag = models.FeatureMeeting
	s.Usage.Track(userID, models.FeatureMeeting)

	if invitee != nil {
		body := fmt.Sprintf("Hi %s, I have scheduled a meeting: %s at %s.",
			invitee.Name, it.Title, formatClock(it.StartTime))
		if err := s.Messenger.SendMessage(ctx, userID, models.ChannelEmail, invitee.Email, body); err != nil {
			utils.GetLogger().Warn("invite email failed", zap.String("email", invitee.Email), zap.Error(err))
		}
	}
	return res
}

func (s *DefaultVoiceService) dispatchQuery(ctx context.Context, userID string, it models.CalendarQuery) DispatchResult {
	var res DispatchResult
	s.speakAndConfirm(ctx, userID, "SCANNING TEMPORAL DATA.", &res)

	events, err := s.Calendar.Query(ctx, userID, it.RangeStart, it.RangeEnd)
	if err != nil {
		utils.GetLogger().Error("calendar query failed", zap.Error(err))
		s.speakAndConfirm(ctx, userID, "TEMPORAL SCAN FAILED.", &res)
		res.FailureReason = "calendar query failed"
		return res
	}

	if len(events) == 0 {
		s.speakAndConfirm(ctx, userID, "NO TEMPORAL DATA DETECTED.", &res)
	} else {
		lines := make([]string, 0, len(events))
		for _, ev := range events {
			lines = append(lines, fmt.Sprintf("%s AT %s", ev.Title, formatClock(ev.StartTime)))
		}
		s.speakAndConfirm(ctx, userID, fmt.Sprintf("DATA RETRIEVED: %s.", strings.Join(lines, ", ")), &res)
	}
	res.Success = true
	return res
}

func (s *DefaultVoiceService) dispatchDelete(ctx context.Context, userID string, it models.CalendarDelete) DispatchResult {
	var res DispatchResult
	s.speakAndConfirm(ctx, userID, fmt.Sprintf("INITIATING PURGE FOR %s.", strings.ToUpper(it.TitleFragment)), &res)

	count, err := s.Calendar.DeleteByTitle(ctx, userID, it.TitleFragment)
	if err != nil {
		utils.GetLogger().Error("calendar delete failed", zap.Error(err))
		s.speakAndConfirm(ctx, userID, "PURGE FAILED. CALENDAR UNREACHABLE.", &res)
		res.FailureReason = "calendar delete failed"
		return res
	}

	if count > 0 {
		s.speakAndConfirm(ctx, userID, fmt.Sprintf("PURGE SUCCESSFUL. REMOVED %d EVENTS.", count), &res)
		res.Success = true
	} else {
		s.speakAndConfirm(ctx, userID, "PURGE FAILED. TARGET NOT FOUND.", &res)
		res.FailureReason = "no matching events"
	}
	return res
}

func (s *DefaultVoiceService) dispatchRangeDelete(ctx context.Context, userID string, it models.CalendarRangeDelete) DispatchResult {
	var res DispatchResult
	s.speakAndConfirm(ctx, userID, "INITIATING GLOBAL PURGE FOR THE SPECIFIED RANGE.", &res)

	count, err := s.Calendar.DeleteInRange(ctx, userID, it.RangeStart, it.RangeEnd)
	if err != nil {
		utils.GetLogger().Error("calendar range delete failed", zap.Error(err))
		s.speakAndConfirm(ctx, userID, "GLOBAL PURGE FAILED. CALENDAR UNREACHABLE.", &res)
		res.FailureReason = "calendar delete failed"
		return res
	}

	if count > 0 {
		s.speakAndConfirm(ctx, userID, fmt.Sprintf("GLOBAL PURGE COMPLETE. %d MEETINGS REMOVED.", count), &res)
		res.Success = true
	} else {
		s.speakAndConfirm(ctx, userID, "SPECIFIED RANGE IS ALREADY VOID.", &res)
		res.FailureReason = "no matching events"
	}
	return res
}

func (s *DefaultVoiceService) dispatchMessage(ctx context.Context, userID string, it models.SendMessage) DispatchResult {
	var res DispatchResult

	match, err := s.Contacts.FindContact(ctx, userID, it.Recipient)
	if err != nil {
		utils.GetLogger().Warn("contact lookup failed", zap.String("name", it.Recipient), zap.Error(err))
	}
	if match == nil {
		s.speakAndConfirm(ctx, userID,
			fmt.Sprintf("PROTOCOL FAILED. %s NOT FOUND IN CONTACTS.", strings.ToUpper(it.Recipient)), &res)
		res.FailureReason = "recipient not found"
		return res
	}

	target := match.Phone
	if it.Channel == models.ChannelEmail {
		target = match.Email
	}
	if target == "" {
		target = it.Recipient
	}

	s.speakAndConfirm(ctx, userID,
		fmt.Sprintf("SENDING %s MESSAGE TO %s SAYING %s.",
			it.Channel, strings.ToUpper(match.Name), strings.ToUpper(it.Body)), &res)

	if err := s.Messenger.SendMessage(ctx, userID, it.Channel, target, it.Body); err != nil {
		// Same confirmation-compatibility gap as calendar insert: the send
		// failure stays silent on the voice channel.
		utils.GetLogger().Error("message send failed", zap.String("target", target), zap.Error(err))
		res.FailureReason = "message send failed"
		return res
	}

	res.Success = true
	if it.Channel == models.ChannelEmail {
		res.UsageTag = models.FeatureEmail
	} else {
		res.UsageTag = models.FeatureMessage
	}
	s.Usage.Track(userID, res.UsageTag)
	return res
}

func (s *DefaultVoiceService) dispatchLastMessage(ctx context.Context, userID string, it models.LastMessageQuery) DispatchResult {
	var res DispatchResult

	msg := s.Inbox.LastFrom(it.ContactName, it.Channel)
	if msg == nil {
		s.speakAndConfirm(ctx, userID,
			fmt.Sprintf("NO RECENT DATA FROM %s.", strings.ToUpper(it.ContactName)), &res)
		res.FailureReason = "no logged messages"
		return res
	}

	s.speakAndConfirm(ctx, userID,
		fmt.Sprintf("DATA RETRIEVED: LAST %s MESSAGE FROM %s: %s.",
			strings.ToUpper(msg.App), strings.ToUpper(msg.Sender), msg.Text), &res)
	res.Success = true
	return res
}

func (s *DefaultVoiceService) dispatchCall(ctx context.Context, userID string, it models.PlaceCall) DispatchResult {
	var res DispatchResult

	target := it.Recipient
	name := it.Recipient
	if match, err := s.Contacts.FindContact(ctx, userID, it.Recipient); err == nil && match != nil {
		if match.Phone != "" {
			target = match.Phone
		}
		name = match.Name
	}

	s.speakAndConfirm(ctx, userID, fmt.Sprintf("INITIATING VOICE LINK TO %s.", strings.ToUpper(name)), &res)

	if err := s.Dialer.PlaceCall(ctx, userID, target, it.SimSlot); err != nil {
		utils.GetLogger().Error("call failed", zap.String("target", target), zap.Error(err))
		res.FailureReason = "call failed"
		return res
	}

	res.Success = true
	res.UsageTag = models.FeatureOther
	s.Usage.Track(userID, models.FeatureOther)
	return res
}

func (s *DefaultVoiceService) dispatchCab(ctx context.Context, userID string, it models.BookCab) DispatchResult {
	var res DispatchResult
	s.speakAndConfirm(ctx, userID,
		fmt.Sprintf("INITIALIZING CAB PROTOCOL. LAUNCHING %s TO %s.", it.Provider, strings.ToUpper(it.Destination)), &res)

	if err := s.Cab.BookCab(ctx, userID, it.Provider, it.Destination); err != nil {
		utils.GetLogger().Error("cab booking failed", zap.String("provider", string(it.Provider)), zap.Error(err))
		res.FailureReason = "cab launch failed"
		return res
	}

	res.Success = true
	res.UsageTag = models.FeatureCab
	s.Usage.Track(userID, models.FeatureCab)
	return res
}

func (s *DefaultVoiceService) dispatchAppSearch(ctx context.Context, userID string, it models.AppSearch) DispatchResult {
	var res DispatchResult
	s.speakAndConfirm(ctx, userID,
		fmt.Sprintf("SEARCHING %s FOR %s.", strings.ToUpper(it.TargetApp), strings.ToUpper(it.Query)), &res)

	if err := s.Launcher.LaunchSearch(ctx, userID, it.TargetApp, it.Query); err != nil {
		utils.GetLogger().Error("app search failed", zap.String("app", it.TargetApp), zap.Error(err))
		res.FailureReason = "app launch failed"
		return res
	}

	res.Success = true
	res.UsageTag = models.FeatureOther
	s.Usage.Track(userID, models.FeatureOther)
	return res
}
