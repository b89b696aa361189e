package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahayak-assistant/server/internal/assistant/model"
	errx "github.com/sahayak-assistant/server/internal/core/error"
)

type fakeChatModel struct {
	reply *schema.Message
	err   error
	delay time.Duration
	calls int
}

func (f *fakeChatModel) Generate(ctx context.Context, _ []*schema.Message, _ ...einomodel.Option) (*schema.Message, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	return f.reply, f.err
}

func TestAskExtractsCandidateText(t *testing.T) {
	cm := &fakeChatModel{reply: schema.AssistantMessage("  use drip irrigation  ", nil)}
	g := New(cm, model.GatewayConfig{Timeout: "20s"})

	reply, err := g.Ask(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "use drip irrigation", reply.Text)
	assert.Equal(t, model.SourceGenerated, reply.Source)
	assert.False(t, reply.Truncated)
}

func TestAskMapsTimeout(t *testing.T) {
	cm := &fakeChatModel{delay: time.Second, reply: schema.AssistantMessage("late", nil)}
	g := &Gateway{cm: cm, timeout: 10 * time.Millisecond}

	_, err := g.Ask(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, errx.ErrUpstreamTimeout)
}

func TestAskMapsBackendError(t *testing.T) {
	cm := &fakeChatModel{err: errors.New("boom")}
	g := New(cm, model.GatewayConfig{Timeout: "20s"})

	_, err := g.Ask(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, errx.ErrUpstreamParse)
}

func TestAskMapsEmptyCandidate(t *testing.T) {
	for _, msg := range []*schema.Message{nil, schema.AssistantMessage("   ", nil)} {
		cm := &fakeChatModel{reply: msg}
		g := New(cm, model.GatewayConfig{Timeout: "20s"})

		_, err := g.Ask(context.Background(), "prompt")
		assert.ErrorIs(t, err, errx.ErrUpstreamParse)
	}
}

func TestAskSingleAttempt(t *testing.T) {
	cm := &fakeChatModel{err: errors.New("boom")}
	g := New(cm, model.GatewayConfig{Timeout: "20s"})

	_, _ = g.Ask(context.Background(), "prompt")
	assert.Equal(t, 1, cm.calls)
}

func TestNewDefaultsBadTimeout(t *testing.T) {
	g := New(&fakeChatModel{}, model.GatewayConfig{Timeout: "not-a-duration"})
	assert.Equal(t, DefaultTimeout, g.timeout)
}
