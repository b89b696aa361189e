// Package weather wraps the external weather lookup service. A failed lookup
// is total unavailability, partial data is never returned.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sahayak-assistant/server/internal/assistant/model"
	errx "github.com/sahayak-assistant/server/internal/core/error"
	logx "github.com/sahayak-assistant/server/pkg/logger"
)

// Report is the only data the assistant surfaces from the lookup service.
type Report struct {
	Temperature float64
	Humidity    int
	Description string
}

// Client calls an OpenWeather-compatible current conditions endpoint.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New builds a client with a bounded request timeout.
func New(cfg model.WeatherConfig) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type lookupResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Current fetches conditions for a free-text location. Every failure maps to
// errx.ErrLookupUnavailable.
func (c *Client) Current(ctx context.Context, location string) (Report, error) {
	endpoint := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		c.baseURL, url.QueryEscape(location), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Report{}, errx.WrapLookup(err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		logx.Warn().Err(err).Str("location", location).Msg("weather lookup request failed")
		return Report{}, errx.WrapLookup(err)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	if res.StatusCode/100 != 2 {
		logx.Warn().Int("status", res.StatusCode).Str("location", location).Msg("weather lookup non-2xx")
		return Report{}, errx.WrapLookup(fmt.Errorf("status %d", res.StatusCode))
	}

	var out lookupResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return Report{}, errx.WrapLookup(fmt.Errorf("decode: %w", err))
	}
	if len(out.Weather) == 0 {
		return Report{}, errx.WrapLookup(fmt.Errorf("empty conditions"))
	}

	return Report{
		Temperature: out.Main.Temp,
		Humidity:    out.Main.Humidity,
		Description: out.Weather[0].Description,
	}, nil
}
