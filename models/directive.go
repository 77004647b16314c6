package models

// DirectiveKind tells the device what to do with a directive.
type DirectiveKind string

const (
	// DirectiveLaunch asks the device to fire the URI as a view/deep-link intent.
	DirectiveLaunch DirectiveKind = "LAUNCH"
	// DirectiveCall asks the device to dial the URI on the given SIM slot.
	DirectiveCall DirectiveKind = "CALL"
	// DirectiveSpeak asks the device TTS engine to read Text aloud.
	DirectiveSpeak DirectiveKind = "SPEAK"
)

// Directive is one unit of device automation produced by the dispatcher.
// The phone drains its queue in order and executes each entry.
type Directive struct {
	Kind      DirectiveKind `json:"kind"`
	App       string        `json:"app,omitempty"`     // target package hint (WHATSAPP, MAPS, ...)
	URI       string        `json:"uri,omitempty"`     // deep link for LAUNCH/CALL
	Text      string        `json:"text,omitempty"`    // spoken text for SPEAK
	SimSlot   int           `json:"simSlot,omitempty"` // CALL only
	CreatedAt int64         `json:"createdAt"`         // epoch millis
}
