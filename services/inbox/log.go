// Package inbox keeps the bounded log of messaging notifications the device
// reports, so "last message from" queries can be answered without touching
// the messaging apps themselves.
package inbox

import (
	"strings"
	"sync"
	"time"

	"aria/models"
)

// logCap bounds the ring buffer; older entries are evicted first.
const logCap = 100

// channelApps maps intent channels to the app labels the device reports.
var channelApps = map[models.Channel]string{
	models.ChannelWhatsApp: "WhatsApp",
	models.ChannelEmail:    "Gmail",
}

// Log is a fixed-capacity, append-only notification log. Safe for concurrent use.
type Log struct {
	mu      sync.RWMutex
	entries []models.LoggedMessage
}

func NewLog() *Log {
	return &Log{}
}

// Record appends one notification, evicting the oldest entry at capacity.
func (l *Log) Record(msg models.LoggedMessage) {
	if msg.Timestamp == 0 {
		msg.Timestamp = time.Now().UnixMilli()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, msg)
	if len(l.entries) > logCap {
		l.entries = l.entries[len(l.entries)-logCap:]
	}
}

// LastFrom returns the most recent entry whose sender contains the contact
// name, case-insensitive, optionally restricted to the channel's app. Nil
// when nothing matches.
func (l *Log) LastFrom(contact string, channel models.Channel) *models.LoggedMessage {
	app := channelApps[channel]
	needle := strings.ToLower(contact)

	l.mu.RLock()
	defer l.mu.RUnlock()
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if app != "" && e.App != app {
			continue
		}
		if strings.Contains(strings.ToLower(e.Sender), needle) {
			msg := e
			return &msg
		}
	}
	return nil
}

// MessagesAfter returns all entries newer than the given instant, oldest first.
func (l *Log) MessagesAfter(sinceMs int64) []models.LoggedMessage {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []models.LoggedMessage
	for _, e := range l.entries {
		if e.Timestamp > sinceMs {
			out = append(out, e)
		}
	}
	return out
}
