package models

// LoggedMessage is one notification the device reported into the inbox log.
type LoggedMessage struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	App       string `json:"app"` // "WhatsApp" or "Gmail"
	Timestamp int64  `json:"timestamp"`
}
