package httpadapter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/forecast-strip-service/internal/domain"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ForecastRenderer runs one render cycle per call and reports readiness.
type ForecastRenderer interface {
	sharedobs.ReadinessChecker
	Render(ctx context.Context) (domain.View, error)
}

// ViewEncoder writes a view in a presentation format.
type ViewEncoder interface {
	Render(w io.Writer, view domain.View) error
}

// Server exposes the forecast, health, readiness, and metrics HTTP endpoints.
type Server struct {
	httpServer *http.Server
	forecasts  ForecastRenderer
	encoder    ViewEncoder
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /forecast.svg, /forecast.json,
// /healthz, /readyz, and /metrics routes.
func NewServer(addr string, forecasts ForecastRenderer, encoder ViewEncoder, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		forecasts: forecasts,
		encoder:   encoder,
		logger:    logger,
	}

	mux.HandleFunc("GET /forecast.svg", s.handleSVG)
	mux.HandleFunc("GET /forecast.json", s.handleJSON)
	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(forecasts))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	view, err := s.forecasts.Render(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	// Buffer so an encoding failure can still be reported as a 500.
	var buf bytes.Buffer
	if err := s.encoder.Render(&buf, view); err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck // client disconnects are not actionable
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	view, err := s.forecasts.Render(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	sharedobs.WriteJSON(w, http.StatusOK, view)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("forecast request failed", "error", err)
	}
	sharedobs.WriteJSON(w, status, map[string]string{
		"status": "error",
		"error":  err.Error(),
	})
}

// errorStatus maps a render failure to an HTTP status: upstream problems are
// a bad gateway, a feed with nothing to draw is unprocessable.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoSamples):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUpstreamFetch), errors.Is(err, domain.ErrMalformedPayload):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
