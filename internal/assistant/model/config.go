package model

// ================ Config ================

// PersonaConfig selects the assistant's domain persona.
type PersonaConfig struct {
	Domain        string `envconfig:"PERSONA_DOMAIN" default:"agriculture"`
	AssistantName string `envconfig:"PERSONA_NAME" default:"Sahayak"`
}

// GatewayConfig tunes the generative backend call.
type GatewayConfig struct {
	Model       string  `envconfig:"RESPONSE_MODEL" default:"gemini-2.0-flash"`
	MaxTokens   int     `envconfig:"RESPONSE_MAX_TOKENS" default:"1024"`
	Temperature float32 `envconfig:"RESPONSE_TEMPERATURE" default:"0.4"`
	// Timeout bounds a single generateContent call. The baseline contract is
	// one attempt per message, no retries.
	Timeout string `envconfig:"RESPONSE_TIMEOUT" default:"20s"`
}

// SafetyConfig tunes reply post-processing.
type SafetyConfig struct {
	// MaxReplyRunes shortens generated replies at a word boundary. Zero means
	// replies are never cut.
	MaxReplyRunes int `envconfig:"SAFETY_MAX_REPLY_RUNES" default:"0"`
}

// WeatherConfig points at the weather lookup service.
type WeatherConfig struct {
	BaseURL string `envconfig:"WEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	APIKey  string `envconfig:"WEATHER_API_KEY"`
	Timeout int    `envconfig:"WEATHER_TIMEOUT" default:"8"`
}

// ProfileStoreConfig tunes profile persistence.
type ProfileStoreConfig struct {
	TTL string `envconfig:"PROFILE_TTL" default:"720h"`
	// UpsertTimeout bounds the fire-and-forget write issued after a reply.
	UpsertTimeout string `envconfig:"PROFILE_UPSERT_TIMEOUT" default:"5s"`
}

// ServerConfig tunes the HTTP/websocket surface.
type ServerConfig struct {
	Addr           string `envconfig:"SERVER_ADDR" default:":5000"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"*"`
}
