package nws

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/forecast-strip-service/internal/domain"
	"github.com/couchcryptid/forecast-strip-service/internal/observability"
)

const (
	acceptGeoJSON = "application/geo+json"

	// maxBodyBytes bounds the response read; a week of hourly periods is ~150KB.
	maxBodyBytes = 8 << 20
)

// Client implements domain.ForecastSource against the NWS gridpoint hourly forecast API.
type Client struct {
	url        string
	userAgent  string
	maxBody    int64
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a forecast client for one gridpoint URL. The NWS rejects
// requests without a User-Agent identifying the caller.
func NewClient(forecastURL, userAgent string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		url:       forecastURL,
		userAgent: userAgent,
		maxBody:   maxBodyBytes,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// FetchForecast downloads and decodes the hourly forecast. It makes exactly one
// request; transport failures and non-2xx responses wrap domain.ErrUpstreamFetch,
// undecodable bodies wrap domain.ErrMalformedPayload.
func (c *Client) FetchForecast(ctx context.Context) (domain.RawForecast, error) {
	start := time.Now()
	raw, outcome, err := c.fetch(ctx)
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	c.metrics.FetchRequests.WithLabelValues(outcome).Inc()
	if err != nil {
		return domain.RawForecast{}, err
	}

	periods := 0
	if raw.Properties != nil {
		periods = len(raw.Properties.Periods)
	}
	c.logger.Debug("forecast fetched", "url", c.url, "periods", periods, "duration", time.Since(start))
	return raw, nil
}

func (c *Client) fetch(ctx context.Context) (domain.RawForecast, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.RawForecast{}, "error", fmt.Errorf("%w: create request: %w", domain.ErrUpstreamFetch, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptGeoJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.RawForecast{}, "error", fmt.Errorf("%w: %w", domain.ErrUpstreamFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.RawForecast{}, "status", fmt.Errorf("%w: status %d: %s", domain.ErrUpstreamFetch, resp.StatusCode, body)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return domain.RawForecast{}, "error", fmt.Errorf("%w: read body: %w", domain.ErrUpstreamFetch, err)
	}
	if int64(len(data)) > c.maxBody {
		return domain.RawForecast{}, "error", fmt.Errorf("%w: response too large: exceeds %d bytes", domain.ErrUpstreamFetch, c.maxBody)
	}

	raw, err := domain.ParseForecast(data)
	if err != nil {
		return domain.RawForecast{}, "malformed", err
	}
	return raw, "success", nil
}
