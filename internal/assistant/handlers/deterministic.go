// Package handlers computes replies for deterministic intents without
// touching the generative backend.
package handlers

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/sahayak-assistant/server/internal/assistant/model"
	"github.com/sahayak-assistant/server/internal/assistant/weather"
	logx "github.com/sahayak-assistant/server/pkg/logger"
)

// Clock supplies the current time, injectable for tests.
type Clock func() time.Time

// WeatherLookup is the slice of the weather client the handlers need.
type WeatherLookup interface {
	Current(ctx context.Context, location string) (weather.Report, error)
}

// DefaultPrices maps commodities to an indicative ₹ per quintal figure.
var DefaultPrices = map[string]int{
	"wheat":     2275,
	"rice":      2300,
	"paddy":     2300,
	"cotton":    7121,
	"maize":     2225,
	"groundnut": 6783,
	"tomato":    1600,
	"onion":     1200,
}

// Deterministic bundles the local reply handlers.
type Deterministic struct {
	domain model.Domain
	lookup WeatherLookup
	prices map[string]int
	clock  Clock
}

// Option customises a handler set.
type Option func(*Deterministic)

// WithClock overrides the time source.
func WithClock(c Clock) Option {
	return func(d *Deterministic) { d.clock = c }
}

// WithPrices overrides the commodity price table.
func WithPrices(p map[string]int) Option {
	return func(d *Deterministic) { d.prices = p }
}

// New builds the deterministic handler set for a domain.
func New(domain model.Domain, lookup WeatherLookup, opts ...Option) *Deterministic {
	d := &Deterministic{
		domain: domain,
		lookup: lookup,
		prices: DefaultPrices,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Time answers the time intent with an HH:MM AM/PM value.
func (d *Deterministic) Time(p model.Profile) string {
	now := d.clock().Format("03:04 PM")
	return fmt.Sprintf(text(timeFormats, p.Language), now)
}

// Weather answers the weather intent using the profile's district or state.
// A lookup failure degrades to the fixed unavailable message.
func (d *Deterministic) Weather(ctx context.Context, p model.Profile) string {
	location := p.Get(model.FieldDistrict)
	if location == "" {
		location = p.Get(model.FieldState)
	}
	if location == "" {
		return text(weatherAskLocation, p.Language)
	}

	report, err := d.lookup.Current(ctx, location)
	if err != nil {
		logx.Warn().Err(err).Str("location", location).Msg("weather handler degrading to unavailable message")
		return text(weatherUnavailable, p.Language)
	}
	return fmt.Sprintf(text(weatherFormats, p.Language),
		location, report.Description, report.Temperature, report.Humidity)
}

// Price answers the price intent. The commodity comes from the message text
// when mentioned, otherwise from the profile's crop.
func (d *Deterministic) Price(p model.Profile, messageText string) string {
	// Token match, not substring: "price" would otherwise match "rice".
	tokens := strings.FieldsFunc(strings.ToLower(messageText), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	names := make([]string, 0, len(d.prices))
	for name := range d.prices {
		names = append(names, name)
	}
	sort.Strings(names)

	commodity := ""
	for _, name := range names {
		if slices.Contains(tokens, name) {
			commodity = name
			break
		}
	}
	if commodity == "" {
		commodity = strings.ToLower(p.Get(model.FieldCrop))
	}

	price, ok := d.prices[commodity]
	if !ok {
		return text(priceUnknown, p.Language)
	}
	return fmt.Sprintf(text(priceFormats, p.Language), commodity, price)
}

// FollowUp answers the profile follow-up intent: it summarises what is known
// and asks for the first missing domain field.
func (d *Deterministic) FollowUp(p model.Profile) string {
	var b strings.Builder
	b.WriteString(text(profileSummaryHeaders, p.Language))
	b.WriteString("\n- language: ")
	b.WriteString(p.Language.String())
	for _, field := range d.domain.Fields() {
		if value := p.Get(field); value != "" {
			b.WriteString(fmt.Sprintf("\n- %s: %s", field, value))
		}
	}
	b.WriteString("\n\n")

	if missing, ok := p.Missing(d.domain); ok {
		b.WriteString(text(fieldQuestions[missing], p.Language))
	} else {
		b.WriteString(text(profileComplete, p.Language))
	}
	return b.String()
}
