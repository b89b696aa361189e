package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/sahayak-assistant/server/internal/assistant/model"
	errx "github.com/sahayak-assistant/server/internal/core/error"
	logx "github.com/sahayak-assistant/server/pkg/logger"
)

// Vision answers the one-shot image analysis endpoint. It shares the Gemini
// client with the chat gateway but calls the API directly since eino's chat
// path is message-oriented.
type Vision struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewVision builds the image analysis gateway.
func NewVision(client *genai.Client, cfg model.GatewayConfig) *Vision {
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil || timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Vision{client: client, model: cfg.Model, timeout: timeout}
}

// Describe analyses one uploaded image and returns a short description in the
// requested language. Failures use the same taxonomy as the chat gateway.
func (v *Vision) Describe(ctx context.Context, data []byte, mimeType string, lang model.Language) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	instruction := fmt.Sprintf(
		"Describe what this image shows and any visible problem, in 2-3 sentences. Respond only in %s.",
		lang,
	)
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, mimeType),
			genai.NewPartFromText(instruction),
		}, genai.RoleUser),
	}

	resp, err := v.client.Models.GenerateContent(ctx, v.model, contents, nil)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %w", errx.ErrUpstreamTimeout, err)
		}
		logx.Error().Err(err).Msg("image analysis call failed")
		return "", errx.WrapGateway(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errx.ErrUpstreamParse
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errx.ErrUpstreamParse
	}
	return text, nil
}
