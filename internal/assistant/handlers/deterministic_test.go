package handlers

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahayak-assistant/server/internal/assistant/model"
	"github.com/sahayak-assistant/server/internal/assistant/weather"
)

type fakeLookup struct {
	report weather.Report
	err    error
	last   string
}

func (f *fakeLookup) Current(_ context.Context, location string) (weather.Report, error) {
	f.last = location
	return f.report, f.err
}

func fixedClock() time.Time {
	return time.Date(2026, time.March, 5, 14, 7, 0, 0, time.UTC)
}

func TestTimeFormat(t *testing.T) {
	d := New(model.DomainAgriculture, &fakeLookup{}, WithClock(fixedClock))
	p := model.NewProfile()

	got := d.Time(p)
	assert.Contains(t, got, "02:07 PM")
	assert.Regexp(t, regexp.MustCompile(`\d{2}:\d{2} (AM|PM)`), got)

	p.Language = model.Hindi
	assert.Contains(t, d.Time(p), "⏰ अभी का समय: 02:07 PM")
}

func TestWeatherFormatsAllThreeValues(t *testing.T) {
	lookup := &fakeLookup{report: weather.Report{Temperature: 31, Humidity: 75, Description: "light rain"}}
	d := New(model.DomainAgriculture, lookup)

	p := model.NewProfile()
	p.Attributes[model.FieldDistrict] = "Guntur"

	got := d.Weather(context.Background(), p)
	assert.Contains(t, got, "Guntur")
	assert.Contains(t, got, "light rain")
	assert.Contains(t, got, "31")
	assert.Contains(t, got, "75")
	assert.Equal(t, "Guntur", lookup.last)
}

func TestWeatherLookupFailureDegrades(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("connection refused")}
	d := New(model.DomainAgriculture, lookup)

	p := model.NewProfile()
	p.Attributes[model.FieldState] = "Telangana"

	assert.Equal(t, weatherUnavailable[model.English], d.Weather(context.Background(), p))
}

func TestWeatherAsksForLocation(t *testing.T) {
	lookup := &fakeLookup{}
	d := New(model.DomainAgriculture, lookup)

	got := d.Weather(context.Background(), model.NewProfile())
	assert.Equal(t, weatherAskLocation[model.English], got)
	assert.Empty(t, lookup.last, "lookup must not run without a location")
}

func TestPriceFromMessage(t *testing.T) {
	d := New(model.DomainAgriculture, &fakeLookup{})
	p := model.NewProfile()

	got := d.Price(p, "what is the wheat price today")
	assert.Contains(t, got, "wheat")
	assert.Contains(t, got, "2275")
}

func TestPriceFallsBackToProfileCrop(t *testing.T) {
	d := New(model.DomainAgriculture, &fakeLookup{})
	p := model.NewProfile()
	p.Attributes[model.FieldCrop] = "cotton"

	got := d.Price(p, "what is today's rate")
	assert.Contains(t, got, "cotton")
	assert.Contains(t, got, "7121")
}

func TestPriceUnknownCommodity(t *testing.T) {
	d := New(model.DomainAgriculture, &fakeLookup{})
	got := d.Price(model.NewProfile(), "price of saffron")
	assert.Equal(t, priceUnknown[model.English], got)
}

func TestFollowUpAsksFirstMissingField(t *testing.T) {
	d := New(model.DomainMedical, &fakeLookup{})
	p := model.NewProfile()
	p.Attributes[model.FieldAge] = "29"

	got := d.FollowUp(p)
	assert.Contains(t, got, "- age: 29")
	assert.Contains(t, got, fieldQuestions[model.FieldGender][model.English])
}

func TestFollowUpCompleteProfile(t *testing.T) {
	d := New(model.DomainAgriculture, &fakeLookup{})
	p := model.NewProfile()
	p.Attributes[model.FieldState] = "Andhra Pradesh"
	p.Attributes[model.FieldDistrict] = "Guntur"
	p.Attributes[model.FieldCrop] = "chilli"

	got := d.FollowUp(p)
	assert.Contains(t, got, profileComplete[model.English])
}

func TestGreetingLocalized(t *testing.T) {
	for _, lang := range model.Languages() {
		require.NotEmpty(t, Greeting(lang))
	}
	assert.Equal(t, greetings[model.English], Greeting(model.Language("unknown")))
}
