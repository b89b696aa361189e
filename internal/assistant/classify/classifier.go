// Package classify selects exactly one intent per inbound message using an
// ordered rule table: the first rule with a matching keyword wins, so intent
// priority lives in data rather than branching code.
package classify

import (
	"strings"

	"github.com/sahayak-assistant/server/internal/assistant/model"
)

// Rule binds an intent to the keywords that trigger it. Keywords match as
// case-insensitive substrings of the normalised message text.
type Rule struct {
	Intent   model.Intent
	Keywords []string
}

// DefaultRules returns the built-in rule table in priority order, highest
// first: Emergency > Time > Weather > Price > DomainFollowUp. Adding an
// intent, keyword or locale means editing this table only.
func DefaultRules() []Rule {
	return []Rule{
		{
			Intent: model.IntentEmergency,
			Keywords: []string{
				"emergency", "chest pain", "heart attack", "unconscious",
				"not breathing", "severe bleeding", "snake bite", "snakebite",
				"poison", "suicide", "accident", "stroke",
				"आपातकाल", "सीने में दर्द", "दिल का दौरा", "बेहोश", "जहर", "सांप",
				"అత్యవసరం", "గుండె నొప్పి", "స్పృహ తప్ప", "పాము కాటు", "విషం",
			},
		},
		{
			Intent: model.IntentTime,
			Keywords: []string{
				"time", "clock", "समय", "टाइम", "సమయం", "టైం",
			},
		},
		{
			Intent: model.IntentWeather,
			Keywords: []string{
				"weather", "rain", "forecast", "humidity", "climate",
				"मौसम", "बारिश", "वर्षा",
				"వాతావరణం", "వర్షం",
			},
		},
		{
			Intent: model.IntentPrice,
			Keywords: []string{
				"price", "rate", "mandi", "market value",
				"भाव", "कीमत", "दाम", "मंडी",
				"ధర", "రేటు", "మార్కెట్",
			},
		},
		{
			Intent: model.IntentDomainFollowUp,
			Keywords: []string{
				"my profile", "my details", "profile", "setup", "start over",
				"change language", "update my",
				"मेरी जानकारी", "प्रोफाइल",
				"నా వివరాలు", "ప్రొఫైల్",
			},
		},
	}
}

// Classifier evaluates an ordered rule table top-down.
type Classifier struct {
	rules []Rule
}

// New builds a classifier over the given rules, falling back to the default
// table when none are provided.
func New(rules ...Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Classify returns the first matching rule's intent, or IntentGeneric when no
// rule matches.
func (c *Classifier) Classify(text string) model.Intent {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return model.IntentGeneric
	}
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(normalized, strings.ToLower(kw)) {
				return rule.Intent
			}
		}
	}
	return model.IntentGeneric
}
