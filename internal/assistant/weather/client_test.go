package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahayak-assistant/server/internal/assistant/model"
	errx "github.com/sahayak-assistant/server/internal/core/error"
)

func newTestClient(ts *httptest.Server) *Client {
	return New(model.WeatherConfig{BaseURL: ts.URL, APIKey: "test-key", Timeout: 2})
}

func TestCurrentParsesReport(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Guntur", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{"main":{"temp":31.2,"humidity":75},"weather":[{"description":"light rain"}]}`))
	}))
	defer ts.Close()

	report, err := newTestClient(ts).Current(context.Background(), "Guntur")
	require.NoError(t, err)
	assert.Equal(t, 31.2, report.Temperature)
	assert.Equal(t, 75, report.Humidity)
	assert.Equal(t, "light rain", report.Description)
}

func TestCurrentNon2xxIsUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "city not found", http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := newTestClient(ts).Current(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, errx.ErrLookupUnavailable)
}

func TestCurrentMalformedBodyIsUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts).Current(context.Background(), "Guntur")
	assert.ErrorIs(t, err, errx.ErrLookupUnavailable)
}

func TestCurrentEmptyConditionsIsUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"main":{"temp":30,"humidity":50},"weather":[]}`))
	}))
	defer ts.Close()

	// No partial data: missing conditions mean total unavailability.
	_, err := newTestClient(ts).Current(context.Background(), "Guntur")
	assert.ErrorIs(t, err, errx.ErrLookupUnavailable)
}

func TestCurrentUnreachableServer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	ts.Close()

	_, err := newTestClient(ts).Current(context.Background(), "Guntur")
	assert.ErrorIs(t, err, errx.ErrLookupUnavailable)
}
