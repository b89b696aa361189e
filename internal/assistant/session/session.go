// Package session owns one websocket connection's lifecycle: it merges
// profile updates, routes each message through the classifier and dispatches
// to a deterministic handler or the generative path. A reply is always
// produced, whatever the upstreams do.
package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/sahayak-assistant/server/internal/assistant/handlers"
	"github.com/sahayak-assistant/server/internal/assistant/model"
	"github.com/sahayak-assistant/server/internal/assistant/prompt"
	logx "github.com/sahayak-assistant/server/pkg/logger"
)

// Conn is the slice of the websocket connection the session uses.
// *websocket.Conn from gorilla satisfies it.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v any) error
	Close() error
}

// Classifier selects one intent per normalised message.
type Classifier interface {
	Classify(text string) model.Intent
}

// Guard applies safety post-processing to replies.
type Guard interface {
	EmergencyReply(lang model.Language) string
	FallbackReply(lang model.Language) string
	Fallback(lang model.Language) model.AIReply
	Normalize(reply model.AIReply) model.AIReply
}

// Asker is the generative gateway.
type Asker interface {
	Ask(ctx context.Context, promptText string) (model.AIReply, error)
}

// Deps wires every collaborator a session needs.
type Deps struct {
	Classifier   Classifier
	Handlers     *handlers.Deterministic
	Guard        Guard
	Gateway      Asker
	Persona      model.PersonaConfig
	Store        model.ProfileStore
	StoreTimeout time.Duration
}

// Session processes one connection's messages strictly sequentially. The
// profile is exclusively owned by the session for the connection's lifetime.
type Session struct {
	id      string
	conn    Conn
	deps    Deps
	profile model.Profile
	// storeKey is the session id until the client supplies a stable
	// client_id; persistence is connection-scoped in that case.
	storeKey string

	writeMu sync.Mutex
	closed  atomic.Bool
	wg      sync.WaitGroup
}

// New builds a session with a fresh identity and the default profile.
func New(conn Conn, deps Deps) *Session {
	if deps.StoreTimeout <= 0 {
		deps.StoreTimeout = 5 * time.Second
	}
	id := uuid.NewString()
	return &Session{
		id:       id,
		conn:     conn,
		deps:     deps,
		profile:  model.NewProfile(),
		storeKey: id,
	}
}

// ID returns the session's connection identity.
func (s *Session) ID() string { return s.id }

// Profile returns a copy of the current merged profile.
func (s *Session) Profile() model.Profile {
	attrs := make(map[string]string, len(s.profile.Attributes))
	for k, v := range s.profile.Attributes {
		attrs[k] = v
	}
	return model.Profile{Language: s.profile.Language, Attributes: attrs}
}

// Run receives frames until disconnect. A malformed frame is logged and
// dropped; only a read error or client close ends the loop.
func (s *Session) Run(ctx context.Context) {
	logx.Info().Str("session", s.id).Msg("session opened")
	s.send(model.BotReply(handlers.Greeting(s.profile.Language)))

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			logx.Info().Err(err).Str("session", s.id).Msg("connection closed")
			break
		}
		if ctx.Err() != nil {
			break
		}

		var frame model.InboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			logx.Warn().Err(err).Str("session", s.id).Msg("dropping malformed frame")
			continue
		}

		s.handleFrame(ctx, frame)
	}

	s.closed.Store(true)
	s.wg.Wait()
	logx.Info().Str("session", s.id).Msg("session closed")
}

// HandleFrame processes one already-decoded frame. Exposed for tests; Run is
// the production entry point.
func (s *Session) HandleFrame(ctx context.Context, frame model.InboundFrame) {
	s.handleFrame(ctx, frame)
}

func (s *Session) handleFrame(ctx context.Context, frame model.InboundFrame) {
	s.profile.Merge(frame)
	if id := strings.TrimSpace(frame.ClientID); id != "" {
		s.storeKey = id
	}

	normalized := strings.ToLower(strings.TrimSpace(frame.Message))
	intent := s.deps.Classifier.Classify(normalized)
	logx.Debug().
		Str("session", s.id).
		Str("intent", intent.String()).
		Str("language", s.profile.Language.String()).
		Msg("message classified")

	reply := s.reply(ctx, intent, frame.Message, normalized)
	s.send(model.BotReply(reply))
	s.upsertAsync()
}

func (s *Session) reply(ctx context.Context, intent model.Intent, original, normalized string) string {
	lang := s.profile.Language

	switch intent {
	case model.IntentEmergency:
		// Short-circuit: the generative backend is never invoked.
		return s.deps.Guard.EmergencyReply(lang)
	case model.IntentTime:
		return s.deps.Handlers.Time(s.profile)
	case model.IntentWeather:
		return s.deps.Handlers.Weather(ctx, s.profile)
	case model.IntentPrice:
		return s.deps.Handlers.Price(s.profile, normalized)
	case model.IntentDomainFollowUp:
		return s.deps.Handlers.FollowUp(s.profile)
	}

	// A profile-only frame has nothing to delegate; acknowledge and ask for
	// the next missing detail instead.
	if normalized == "" {
		return s.deps.Handlers.FollowUp(s.profile)
	}

	return s.delegated(ctx, original)
}

// delegated runs the generative path: typing notification, prompt, gateway,
// safety normalisation. Typed failures degrade to the localized fallback.
func (s *Session) delegated(ctx context.Context, message string) string {
	lang := s.profile.Language
	s.sendAsync(model.TypingFrame())

	promptText, err := prompt.Render(ctx, s.deps.Persona, s.Profile(), message)
	if err != nil {
		logx.Error().Err(err).Str("session", s.id).Msg("prompt render failed")
		return s.deps.Guard.FallbackReply(lang)
	}

	aiReply, err := s.deps.Gateway.Ask(ctx, promptText)
	if err != nil {
		logx.Warn().Err(err).Str("session", s.id).Msg("generative path degraded to fallback")
		aiReply = s.deps.Guard.Fallback(lang)
	} else {
		aiReply = s.deps.Guard.Normalize(aiReply)
	}
	return aiReply.Text
}

// send writes one frame, serialised against concurrent typing notifications.
// After disconnect the frame is discarded.
func (s *Session) send(frame model.OutboundFrame) {
	if s.closed.Load() {
		logx.Debug().Str("session", s.id).Msg("discarding frame for closed session")
		return
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.conn.WriteJSON(frame); err != nil {
		logx.Warn().Err(err).Str("session", s.id).Msg("write failed, closing session")
		s.closed.Store(true)
	}
}

// sendAsync fires a frame without blocking the caller.
func (s *Session) sendAsync(frame model.OutboundFrame) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.send(frame)
	}()
}

// upsertAsync persists the merged profile without delaying reply delivery.
// Failures are logged only.
func (s *Session) upsertAsync() {
	if s.deps.Store == nil {
		return
	}
	key := s.storeKey
	fields := s.profile.StoreFields()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.deps.StoreTimeout)
		defer cancel()
		if err := s.deps.Store.Upsert(ctx, key, fields); err != nil {
			logx.Error().Err(err).Str("session", s.id).Str("key", key).Msg("profile upsert failed")
		}
	}()
}
