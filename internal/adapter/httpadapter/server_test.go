package httpadapter_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/forecast-strip-service/internal/adapter/httpadapter"
	"github.com/couchcryptid/forecast-strip-service/internal/adapter/svg"
	"github.com/couchcryptid/forecast-strip-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRenderer struct {
	view     domain.View
	err      error
	readyErr error
	calls    int
}

func (m *mockRenderer) CheckReadiness(_ context.Context) error { return m.readyErr }

func (m *mockRenderer) Render(_ context.Context) (domain.View, error) {
	m.calls++
	return m.view, m.err
}

type failingEncoder struct{}

func (failingEncoder) Render(_ io.Writer, _ domain.View) error { return errors.New("encoder broke") }

func testView() domain.View {
	return domain.View{
		ID:          "view-1",
		GeneratedAt: time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC),
		Width:       560,
		Height:      35,
		Today: []domain.DrawRow{{
			Kind: domain.RowHour, Height: 35, Label: "6 AM", Bucket: domain.BucketClear,
			Glyph: domain.GlyphMoon, LineStart: 150, LineEnd: 150, NumericLabel: "25°", IsFreezing: true,
		}},
	}
}

func newTestServer(m *mockRenderer) *httpadapter.Server {
	return httpadapter.NewServer(":0", m, svg.NewRenderer(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func serve(srv *httpadapter.Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	rec := serve(newTestServer(&mockRenderer{}), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	rec := serve(newTestServer(&mockRenderer{}), "/readyz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	rec := serve(newTestServer(&mockRenderer{readyErr: fmt.Errorf("not ready yet")}), "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "not ready yet", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	rec := serve(newTestServer(&mockRenderer{}), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestForecastSVG(t *testing.T) {
	m := &mockRenderer{view: testView()}
	srv := newTestServer(m)

	rec := serve(srv, "/forecast.svg")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "<svg")
	assert.Contains(t, rec.Body.String(), ">6 AM<")

	serve(srv, "/forecast.svg")
	assert.Equal(t, 2, m.calls, "every request renders a fresh cycle")
}

func TestForecastJSON(t *testing.T) {
	rec := serve(newTestServer(&mockRenderer{view: testView()}), "/forecast.json")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got domain.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testView(), got)
}

func TestForecastErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"upstream", fmt.Errorf("fetch forecast: %w", domain.ErrUpstreamFetch), http.StatusBadGateway},
		{"malformed", fmt.Errorf("%w: period 4", domain.ErrMalformedPayload), http.StatusBadGateway},
		{"empty", fmt.Errorf("today range: %w", domain.ErrNoSamples), http.StatusUnprocessableEntity},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		for _, path := range []string{"/forecast.svg", "/forecast.json"} {
			t.Run(tt.name+path, func(t *testing.T) {
				rec := serve(newTestServer(&mockRenderer{err: tt.err}), path)

				assert.Equal(t, tt.status, rec.Code)
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "error", body["status"])
				assert.Equal(t, tt.err.Error(), body["error"])
			})
		}
	}
}

func TestForecastSVG_EncoderFailure(t *testing.T) {
	srv := httpadapter.NewServer(":0", &mockRenderer{view: testView()}, failingEncoder{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := serve(srv, "/forecast.svg")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "encoder broke")
}

func TestForecastRejectsPost(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(&mockRenderer{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/forecast.svg", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
