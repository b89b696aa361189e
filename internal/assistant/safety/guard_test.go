package safety

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahayak-assistant/server/internal/assistant/model"
)

func TestEmergencyReplyPerLanguage(t *testing.T) {
	g := New(model.SafetyConfig{})

	assert.Equal(t,
		"This may be an emergency. Please visit the nearest hospital immediately.",
		g.EmergencyReply(model.English))

	for _, lang := range model.Languages() {
		assert.NotEmpty(t, g.EmergencyReply(lang), "language %s", lang)
		assert.NotEmpty(t, g.FallbackReply(lang), "language %s", lang)
	}

	// Unknown language falls back to the default.
	assert.Equal(t, g.EmergencyReply(model.DefaultLanguage), g.EmergencyReply(model.Language("french")))
}

func TestFallbackReplyTagged(t *testing.T) {
	g := New(model.SafetyConfig{})
	reply := g.Fallback(model.Hindi)

	assert.Equal(t, model.SourceFallback, reply.Source)
	assert.Equal(t, g.FallbackReply(model.Hindi), reply.Text)
	assert.False(t, reply.Truncated)
}

func TestNormalizeDisabledByDefault(t *testing.T) {
	g := New(model.SafetyConfig{})
	long := strings.Repeat("word ", 500)

	out := g.Normalize(model.AIReply{Text: long, Source: model.SourceGenerated})
	assert.Equal(t, long, out.Text)
	assert.False(t, out.Truncated)
}

func TestNormalizePassThroughAtLimit(t *testing.T) {
	g := New(model.SafetyConfig{MaxReplyRunes: 11})
	out := g.Normalize(model.AIReply{Text: "hello world"})

	assert.Equal(t, "hello world", out.Text)
	assert.False(t, out.Truncated)
}

func TestNormalizeCutsAtWordBoundary(t *testing.T) {
	g := New(model.SafetyConfig{MaxReplyRunes: 12})

	out := g.Normalize(model.AIReply{Text: "sow the seeds after the first rain"})
	require.True(t, out.Truncated)
	assert.Equal(t, "sow the"+Ellipsis, out.Text)

	// Never cut mid-word: every truncated reply minus the ellipsis is a
	// prefix of the original ending at a space.
	trimmed := strings.TrimSuffix(out.Text, Ellipsis)
	assert.True(t, strings.HasPrefix("sow the seeds after the first rain", trimmed))
	assert.False(t, strings.HasSuffix(trimmed, " "))
}

func TestNormalizeBoundaryExactlyAtLimit(t *testing.T) {
	// Rune at the limit index is a space, so the full window survives.
	g := New(model.SafetyConfig{MaxReplyRunes: 9})
	out := g.Normalize(model.AIReply{Text: "sow seeds after rain"})

	require.True(t, out.Truncated)
	assert.Equal(t, "sow seeds"+Ellipsis, out.Text)
}

func TestNormalizeSingleLongWord(t *testing.T) {
	g := New(model.SafetyConfig{MaxReplyRunes: 5})
	out := g.Normalize(model.AIReply{Text: "antidisestablishment"})

	require.True(t, out.Truncated)
	assert.Equal(t, "antid"+Ellipsis, out.Text)
}

func TestNormalizeCountsRunesNotBytes(t *testing.T) {
	g := New(model.SafetyConfig{MaxReplyRunes: 10})
	out := g.Normalize(model.AIReply{Text: "बीज बोने का सही समय बारिश के बाद है"})

	require.True(t, out.Truncated)
	assert.LessOrEqual(t, len([]rune(strings.TrimSuffix(out.Text, Ellipsis))), 10)
}
