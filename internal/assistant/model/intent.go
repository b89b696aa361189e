package model

// Intent is the classified purpose of an inbound message. Exactly one intent
// is selected per message.
type Intent int

// Intents in priority order, highest first. The classifier's rule table is
// evaluated in this order, so a message matching several categories always
// resolves to the highest one.
const (
	IntentEmergency Intent = iota
	IntentTime
	IntentWeather
	IntentPrice
	IntentDomainFollowUp
	IntentGeneric
)

func (i Intent) String() string {
	switch i {
	case IntentEmergency:
		return "emergency"
	case IntentTime:
		return "time"
	case IntentWeather:
		return "weather"
	case IntentPrice:
		return "price"
	case IntentDomainFollowUp:
		return "domain_follow_up"
	default:
		return "generic"
	}
}

// Deterministic reports whether the intent is answered locally, without the
// generative backend.
func (i Intent) Deterministic() bool {
	return i != IntentGeneric
}
