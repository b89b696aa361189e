// Package gateway owns the bounded-timeout calls to the generative backend.
// Callers always get either a reply or a typed failure, never a panic or an
// unclassified error.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	"github.com/sahayak-assistant/server/internal/assistant/model"
	errx "github.com/sahayak-assistant/server/internal/core/error"
	logx "github.com/sahayak-assistant/server/pkg/logger"
)

// DefaultTimeout bounds a generateContent call when no valid timeout is configured.
const DefaultTimeout = 20 * time.Second

// ChatModel is the slice of the eino chat model the gateway needs.
// *gemini.ChatModel satisfies it.
type ChatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error)
}

// Gateway issues one generative call per message. No retries.
type Gateway struct {
	cm      ChatModel
	timeout time.Duration
}

// New builds a gateway around an already constructed chat model.
func New(cm ChatModel, cfg model.GatewayConfig) *Gateway {
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil || timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{cm: cm, timeout: timeout}
}

// Ask sends the prompt and extracts the first candidate's text. Failures are
// mapped to errx.ErrUpstreamTimeout or errx.ErrUpstreamParse.
func (g *Gateway) Ask(ctx context.Context, promptText string) (model.AIReply, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	msg, err := g.cm.Generate(ctx, []*schema.Message{schema.UserMessage(promptText)})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logx.Warn().Dur("timeout", g.timeout).Msg("generative call timed out")
			return model.AIReply{}, fmt.Errorf("%w: %w", errx.ErrUpstreamTimeout, err)
		}
		logx.Error().Err(err).Msg("generative call failed")
		return model.AIReply{}, errx.WrapGateway(err)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		logx.Warn().Msg("generative call returned no usable candidate")
		return model.AIReply{}, errx.ErrUpstreamParse
	}

	return model.AIReply{
		Text:   strings.TrimSpace(msg.Content),
		Source: model.SourceGenerated,
	}, nil
}

// NewGeminiClient creates the shared Gemini API client.
func NewGeminiClient(ctx context.Context, apiKey, baseURL string) (*genai.Client, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientCfg.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}
	return client, nil
}

// NewGeminiModel builds the eino chat model used for the reply path.
func NewGeminiModel(ctx context.Context, client *genai.Client, cfg model.GatewayConfig) (*gemini.ChatModel, error) {
	cm, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model,
		Temperature: &cfg.Temperature,
		MaxTokens:   &cfg.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Msg("Error creating response model")
		return nil, fmt.Errorf("error creating response model: %w", err)
	}
	return cm, nil
}
