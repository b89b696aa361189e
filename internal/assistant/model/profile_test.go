package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePartialUpdate(t *testing.T) {
	p := NewProfile()
	p.Merge(InboundFrame{Message: "hi", Language: "hindi", Crop: "wheat"})

	require.Equal(t, Hindi, p.Language)
	require.Equal(t, "wheat", p.Get(FieldCrop))

	// A later frame omitting crop keeps the merged value.
	p.Merge(InboundFrame{Message: "weather", District: "Guntur"})
	assert.Equal(t, "wheat", p.Get(FieldCrop))
	assert.Equal(t, "Guntur", p.Get(FieldDistrict))
	assert.Equal(t, Hindi, p.Language)
}

func TestMergeNeverResetsToEmpty(t *testing.T) {
	p := NewProfile()
	p.Merge(InboundFrame{Age: "34", Symptoms: "cough"})
	p.Merge(InboundFrame{Age: "", Symptoms: "   "})

	assert.Equal(t, "34", p.Get(FieldAge))
	assert.Equal(t, "cough", p.Get(FieldSymptoms))
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Telugu, ParseLanguage("TELUGU", English))
	assert.Equal(t, Hindi, ParseLanguage("hi", English))
	assert.Equal(t, English, ParseLanguage("", English))
	// Unknown values keep the established choice.
	assert.Equal(t, Telugu, ParseLanguage("klingon", Telugu))
}

func TestMissingFollowsDomainOrder(t *testing.T) {
	p := NewProfile()
	p.Attributes[FieldState] = "Telangana"

	field, ok := p.Missing(DomainAgriculture)
	require.True(t, ok)
	assert.Equal(t, FieldDistrict, field)

	p.Attributes[FieldDistrict] = "Warangal"
	p.Attributes[FieldCrop] = "cotton"
	_, ok = p.Missing(DomainAgriculture)
	assert.False(t, ok)
}

func TestStoreFieldsIncludesLanguage(t *testing.T) {
	p := NewProfile()
	p.Merge(InboundFrame{Language: "telugu", Crop: "paddy"})

	fields := p.StoreFields()
	assert.Equal(t, "telugu", fields["language"])
	assert.Equal(t, "paddy", fields[FieldCrop])
}
