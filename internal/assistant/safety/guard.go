// Package safety applies the guardrails that run regardless of what the
// generative backend produced: the emergency short-circuit, upstream failure
// normalisation and reply length normalisation.
package safety

import (
	"strings"
	"unicode"

	"github.com/sahayak-assistant/server/internal/assistant/model"
)

// Ellipsis suffixes every truncated reply.
const Ellipsis = "…"

var emergencyMessages = map[model.Language]string{
	model.English: "This may be an emergency. Please visit the nearest hospital immediately.",
	model.Hindi:   "यह एक आपातकालीन स्थिति हो सकती है। कृपया तुरंत नज़दीकी अस्पताल जाएँ।",
	model.Telugu:  "ఇది అత్యవసర పరిస్థితి కావచ్చు. దయచేసి వెంటనే సమీప ఆసుపత్రికి వెళ్లండి.",
}

var fallbackMessages = map[model.Language]string{
	model.English: "Sorry, I am temporarily unavailable. Please try again shortly.",
	model.Hindi:   "क्षमा करें, सेवा अभी अस्थायी रूप से उपलब्ध नहीं है। कृपया थोड़ी देर बाद फिर कोशिश करें।",
	model.Telugu:  "క్షమించండి, సేవ ప్రస్తుతం అందుబాటులో లేదు. దయచేసి కాసేపటి తర్వాత మళ్లీ ప్రయత్నించండి.",
}

// Guard holds the configured reply policy.
type Guard struct {
	maxRunes int
}

// New builds a guard. A zero or negative MaxReplyRunes disables truncation.
func New(cfg model.SafetyConfig) *Guard {
	return &Guard{maxRunes: cfg.MaxReplyRunes}
}

// EmergencyReply returns the fixed pre-translated emergency message. The
// generative backend is never consulted for emergencies.
func (g *Guard) EmergencyReply(lang model.Language) string {
	if msg, ok := emergencyMessages[lang]; ok {
		return msg
	}
	return emergencyMessages[model.DefaultLanguage]
}

// FallbackReply returns the fixed pre-translated message used when the
// generative backend failed.
func (g *Guard) FallbackReply(lang model.Language) string {
	if msg, ok := fallbackMessages[lang]; ok {
		return msg
	}
	return fallbackMessages[model.DefaultLanguage]
}

// Fallback wraps FallbackReply into an AIReply tagged as fallback.
func (g *Guard) Fallback(lang model.Language) model.AIReply {
	return model.AIReply{Text: g.FallbackReply(lang), Source: model.SourceFallback}
}

// Normalize shortens an over-long reply at the nearest word boundary at or
// before the limit and suffixes the ellipsis marker. Replies at or under the
// limit pass through unchanged; replies are never cut mid-word.
func (g *Guard) Normalize(reply model.AIReply) model.AIReply {
	if g.maxRunes <= 0 {
		return reply
	}
	runes := []rune(reply.Text)
	if len(runes) <= g.maxRunes {
		return reply
	}

	cut := runes[:g.maxRunes]
	if !unicode.IsSpace(runes[g.maxRunes]) {
		boundary := -1
		for i, r := range cut {
			if unicode.IsSpace(r) {
				boundary = i
			}
		}
		if boundary > 0 {
			cut = cut[:boundary]
		}
	}
	reply.Text = strings.TrimRightFunc(string(cut), unicode.IsSpace) + Ellipsis
	reply.Truncated = true
	return reply
}
