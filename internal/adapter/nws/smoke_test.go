//go:build nws

package nws

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/couchcryptid/forecast-strip-service/internal/domain"
	"github.com/couchcryptid/forecast-strip-service/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the live api.weather.gov endpoint.
// Run with: go test -tags=nws ./internal/adapter/nws/ -v -count=1

func smokeClient(t *testing.T) *Client {
	t.Helper()
	url := os.Getenv("FORECAST_URL")
	if url == "" {
		url = "https://api.weather.gov/gridpoints/DTX/40,28/forecast/hourly"
	}
	return &Client{
		url:        url,
		userAgent:  "forecast-strip-service smoke test",
		httpClient: &http.Client{Timeout: 15 * time.Second},
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestSmoke_FetchAndCompose(t *testing.T) {
	c := smokeClient(t)

	raw, err := c.FetchForecast(context.Background())
	require.NoError(t, err)

	samples, err := domain.NormalizeForecast(raw)
	require.NoError(t, err)
	require.NotEmpty(t, samples)

	view, err := domain.ComposeView(samples, domain.DefaultLayout())
	require.NoError(t, err)
	assert.NotEmpty(t, view.Today)
	assert.NotEmpty(t, view.Week)
	t.Logf("today=%d rows, week=%d rows, first=%s", len(view.Today), len(view.Week), view.Today[0].Label)
}
