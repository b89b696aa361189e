package model

// InboundFrame is one JSON frame received on the websocket. Every field other
// than Message is optional and merges into the session profile.
type InboundFrame struct {
	Message  string `json:"message"`
	Language string `json:"language,omitempty"`
	// ClientID is an optional stable identifier supplied by the client. When
	// present it keys the persisted profile; otherwise persistence is scoped
	// to the connection.
	ClientID string `json:"client_id,omitempty"`

	// Agriculture attributes.
	State    string `json:"state,omitempty"`
	District string `json:"district,omitempty"`
	Crop     string `json:"crop,omitempty"`

	// Medical attributes.
	Age      string `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Symptoms string `json:"symptoms,omitempty"`
}

func (f InboundFrame) attributes() map[string]string {
	return map[string]string{
		FieldState:    f.State,
		FieldDistrict: f.District,
		FieldCrop:     f.Crop,
		FieldAge:      f.Age,
		FieldGender:   f.Gender,
		FieldSymptoms: f.Symptoms,
	}
}

// Frame types emitted to the client.
const (
	SenderBot = "bot"
	// FrameTyping is the fire-and-forget progress notification sent before a
	// delegated generative call.
	FrameTyping = "typing"
)

// OutboundFrame is one JSON frame sent to the client.
type OutboundFrame struct {
	Sender  string `json:"sender"`
	Message string `json:"message,omitempty"`
	Type    string `json:"type,omitempty"`
}

// BotReply builds a plain reply frame.
func BotReply(message string) OutboundFrame {
	return OutboundFrame{Sender: SenderBot, Message: message}
}

// TypingFrame builds the interim progress frame.
func TypingFrame() OutboundFrame {
	return OutboundFrame{Sender: SenderBot, Type: FrameTyping}
}

// ReplySource tags where a reply's text came from.
type ReplySource string

const (
	SourceGenerated ReplySource = "generated"
	SourceFallback  ReplySource = "fallback"
)

// AIReply is the normalised result of the generative path.
type AIReply struct {
	Text      string
	Source    ReplySource
	Truncated bool
}
