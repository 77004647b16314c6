package voice

import (
	"strings"
	"time"

	"aria/models"
)

// appointmentKeywords are service/profession nouns that route an utterance to
// scheduling even without an explicit "schedule"/"book" verb.
var appointmentKeywords = []string{
	"haircut", "barber", "salon", "spa", "massage",
	"doctor", "dentist", "checkup", "therapy",
	"plumber", "electrician", "mechanic", "cleaning",
	"lawyer", "gym", "yoga",
}

// Parser is the rule-based intent classifier. It is a pure function of the
// utterance text and the injected clock; safe for concurrent use.
type Parser struct {
	// Now supplies parse time for relative date resolution. Defaults to time.Now.
	Now func() time.Time
}

func NewParser() *Parser {
	return &Parser{Now: time.Now}
}

// rule is one entry of the ordered decision list. Earlier rules intentionally
// pre-empt later, broader ones; the first match wins.
type rule struct {
	name  string
	match func(norm string) bool
	build func(p *Parser, norm, raw string) models.Intent
}

var rules = []rule{
	{
		name:  "last-message",
		match: func(n string) bool { return containsAny(n, "last message", "check message") },
		build: (*Parser).buildLastMessage,
	},
	{
		name:  "calendar-bulk-delete",
		match: func(n string) bool { return containsAny(n, "cancel all", "clear all", "delete all") },
		build: (*Parser).buildRangeDelete,
	},
	{
		name: "calendar-delete",
		match: func(n string) bool {
			return strings.HasPrefix(n, "cancel") || strings.HasPrefix(n, "delete")
		},
		build: (*Parser).buildDelete,
	},
	{
		name:  "maps",
		match: func(n string) bool { return containsAny(n, "maps", "where is", "navigate to", "directions to") },
		build: (*Parser).buildMaps,
	},
	{
		name: "browser-search",
		match: func(n string) bool {
			return containsAny(n, "search for", "who is", "what is", "nearest", "find", "browse")
		},
		build: (*Parser).buildSearch,
	},
	{
		name:  "cab",
		match: func(n string) bool { return hasAnyWord(n, "uber", "ola") },
		build: (*Parser).buildCab,
	},
	{
		name:  "call",
		match: func(n string) bool { return strings.HasPrefix(n, "call") },
		build: (*Parser).buildCall,
	},
	{
		name:  "calendar-query",
		match: func(n string) bool { return containsAny(n, "any meeting", "what is scheduled", "check my calendar") },
		build: (*Parser).buildQuery,
	},
	{
		name: "communication",
		// Substring containment on purpose: "email" triggers via "mail".
		match: func(n string) bool {
			return containsAny(n, "send", "mail", "whatsapp", "sms", "text")
		},
		build: (*Parser).buildMessage,
	},
	{
		name: "scheduling",
		match: func(n string) bool {
			return hasAnyWord(n, "schedule", "book") || hasAnyWord(n, appointmentKeywords...)
		},
		build: (*Parser).buildSchedule,
	},
}

// Parse classifies one utterance. Never fails; unmatched input yields
// Unrecognized carrying the original, un-normalized text.
func (p *Parser) Parse(text string) models.Intent {
	norm := normalize(text)
	for _, r := range rules {
		if r.match(norm) {
			return r.build(p, norm, text)
		}
	}
	return models.Unrecognized{RawText: text}
}

func (p *Parser) buildRangeDelete(norm, _ string) models.Intent {
	start, end := resolveDayRange(norm, p.Now())
	return models.CalendarRangeDelete{RangeStart: start, RangeEnd: end}
}

func (p *Parser) buildDelete(norm, _ string) models.Intent {
	rest, _ := cutAfterFirst(norm, "cancel", "delete")
	rest = stripPhrases(rest, "meetings", "meeting", "appointments", "appointment")
	rest = stripLeadingArticles(rest)
	return models.CalendarDelete{TitleFragment: rest}
}

func (p *Parser) buildMaps(norm, _ string) models.Intent {
	dest, _ := cutAfterFirst(norm, "navigate to", "directions to", "where is")
	dest = stripPhrases(dest, "google maps", "on maps", "on map", "maps")
	return models.AppSearch{TargetApp: models.AppMaps, Query: dest}
}

func (p *Parser) buildSearch(norm, raw string) models.Intent {
	// Utterances that also mention meetings fall through to the calendar query.
	if containsAny(norm, "meeting", "schedule") {
		return p.buildQuery(norm, raw)
	}
	query, _ := cutAfterFirst(norm, "search for", "who is", "what is", "nearest", "find", "browse")
	return models.AppSearch{TargetApp: models.AppBrowser, Query: query}
}

func (p *Parser) buildCab(norm, _ string) models.Intent {
	provider := models.CabUber
	if hasWord(norm, "ola") {
		provider = models.CabOla
	}

	dest, ok := cutAfterFirst(norm, " to ", " for ", " at ")
	if !ok || dest == "" {
		dest = "your destination"
	}
	// Demo canonicalization carried over from the pilot deployment.
	if strings.Contains(dest, "station") {
		dest = "Pune Station"
	}
	return models.BookCab{Provider: provider, Destination: dest}
}

func (p *Parser) buildCall(norm, _ string) models.Intent {
	sim := 1
	if containsAny(norm, "sim 2", "sim2") {
		sim = 2
	}

	recipient, _ := cutAfterFirst(norm, "call ")
	recipient = cutBeforeFirst(recipient, " use", " on sim", " sim")
	if recipient == "" {
		recipient = "Contact"
	}
	return models.PlaceCall{Recipient: titleCase(recipient), SimSlot: sim}
}

func (p *Parser) buildQuery(norm, _ string) models.Intent {
	start, end := resolveDayRange(norm, p.Now())
	return models.CalendarQuery{RangeStart: start, RangeEnd: end}
}

func (p *Parser) buildLastMessage(norm, _ string) models.Intent {
	channel := models.ChannelWhatsApp
	if containsAny(norm, "mail", "gmail", "email") {
		channel = models.ChannelEmail
	}
	contact, _ := cutAfterFirst(norm, "from ")
	contact = cutBeforeFirst(contact, " in ", " on ")
	return models.LastMessageQuery{Channel: channel, ContactName: titleCase(contact)}
}

func (p *Parser) buildMessage(norm, _ string) models.Intent {
	channel := models.ChannelWhatsApp
	switch {
	case containsAny(norm, "mail", "gmail"):
		channel = models.ChannelEmail
	case strings.Contains(norm, "whatsapp"):
		channel = models.ChannelWhatsApp
	case hasAnyWord(norm, "sms", "text"):
		channel = models.ChannelSMS
	}

	recipient := "Contact"
	if r, ok := cutAfterFirst(norm, " to "); ok {
		r = cutBeforeFirst(r, " saying", " say")
		r = stripPhrases(r, "in whatsapp", "on whatsapp")
		if r != "" {
			recipient = titleCase(r)
		}
	}

	// "Hi" stands in when no saying/say trigger was found at all.
	body := "Hi"
	if b, ok := cutAfterFirst(norm, "saying ", "say "); ok && b != "" {
		body = b
	}

	return models.SendMessage{Channel: channel, Recipient: recipient, Body: body}
}

func (p *Parser) buildSchedule(norm, _ string) models.Intent {
	title, ok := cutAfterFirst(norm, "schedule ", "book ")
	if !ok {
		// Keyword-triggered scheduling: the matched noun becomes the title.
		title = ""
		for _, kw := range appointmentKeywords {
			if hasWord(norm, kw) {
				title = kw
				break
			}
		}
	}
	title = cutBeforeFirst(title, " on ", " today", " tomorrow", " at ", " with ")
	title = stripLeadingArticles(title)
	title = titleCase(title)
	if title == "" {
		title = "Meeting"
	}

	invitee := ""
	if inv, ok := cutAfterFirst(norm, "with "); ok {
		inv = cutBeforeFirst(inv, " on ", " today", " tomorrow", " at ")
		invitee = titleCase(inv)
	}

	return models.ScheduleEvent{
		Title:           title,
		StartTime:       resolveInstant(norm, p.Now()),
		DurationMinutes: 60,
		InviteeName:     invitee,
	}
}
