package model

import "strings"

// Language identifies one of the languages the assistant replies in.
type Language string

const (
	English Language = "english"
	Hindi   Language = "hindi"
	Telugu  Language = "telugu"
)

// DefaultLanguage is applied to every new session until the client says otherwise.
const DefaultLanguage = English

// String returns the string representation of the language.
func (l Language) String() string {
	return string(l)
}

// ParseLanguage normalises the provided value into one of the supported
// languages. Unknown values fall back to the current language so a bad frame
// never resets an established choice.
func ParseLanguage(v string, current Language) Language {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "english", "en", "eng":
		return English
	case "hindi", "hi", "hin", "हिंदी", "हिन्दी":
		return Hindi
	case "telugu", "te", "tel", "తెలుగు":
		return Telugu
	case "":
		return current
	default:
		return current
	}
}

// Languages lists every supported language, used to validate message tables.
func Languages() []Language {
	return []Language{English, Hindi, Telugu}
}
