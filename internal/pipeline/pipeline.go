package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/forecast-strip-service/internal/domain"
	"github.com/couchcryptid/forecast-strip-service/internal/observability"
)

// Transformer converts a raw forecast into a composed view.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawForecast) (domain.View, error)
}

// Sink publishes a composed view to one destination.
type Sink interface {
	Name() string
	Publish(ctx context.Context, view domain.View) error
}

// ErrSink marks a failure while publishing a view.
var ErrSink = errors.New("publish view")

// Pipeline orchestrates the fetch-compose-publish cycle.
type Pipeline struct {
	source      domain.ForecastSource
	transformer Transformer
	sinks       []Sink
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
}

// New creates a Pipeline with the given stages and observability. Sinks are
// published to in order.
func New(s domain.ForecastSource, t Transformer, logger *slog.Logger, metrics *observability.Metrics, sinks ...Sink) *Pipeline {
	return &Pipeline{
		source:      s,
		transformer: t,
		sinks:       sinks,
		logger:      logger,
		metrics:     metrics,
	}
}

// CheckReadiness returns nil if the most recent cycle succeeded, or an error
// describing why the service is not ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no successful forecast render")
	}
	return nil
}

// Render fetches the forecast and composes a view without publishing it.
func (p *Pipeline) Render(ctx context.Context) (domain.View, error) {
	return p.cycle(ctx, nil)
}

// Run performs one full cycle: fetch, compose, then publish to every sink in
// order. The first failure ends the cycle; sinks already written are not
// rolled back.
func (p *Pipeline) Run(ctx context.Context) error {
	_, err := p.cycle(ctx, p.sinks)
	return err
}

func (p *Pipeline) cycle(ctx context.Context, sinks []Sink) (domain.View, error) {
	start := time.Now()

	view, err := p.render(ctx)
	if err == nil {
		err = p.publish(ctx, view, sinks)
	}

	outcome := outcomeOf(err)
	p.metrics.RendersTotal.WithLabelValues(outcome).Inc()
	p.metrics.RenderDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		p.ready.Store(false)
		p.logger.Warn("forecast render failed", "error", err, "outcome", outcome)
		return domain.View{}, err
	}

	p.ready.Store(true)
	p.metrics.RowsRendered.WithLabelValues("today").Set(float64(len(view.Today)))
	p.metrics.RowsRendered.WithLabelValues("week").Set(float64(len(view.Week)))
	p.logger.Info("forecast rendered",
		"view_id", view.ID,
		"today_rows", len(view.Today),
		"week_rows", len(view.Week),
		"sinks", len(sinks),
		"duration", time.Since(start),
	)
	return view, nil
}

func (p *Pipeline) render(ctx context.Context) (domain.View, error) {
	raw, err := p.source.FetchForecast(ctx)
	if err != nil {
		return domain.View{}, fmt.Errorf("fetch forecast: %w", err)
	}
	return p.transformer.Transform(ctx, raw)
}

func (p *Pipeline) publish(ctx context.Context, view domain.View, sinks []Sink) error {
	for _, s := range sinks {
		if err := s.Publish(ctx, view); err != nil {
			p.metrics.SinkErrors.WithLabelValues(s.Name()).Inc()
			return fmt.Errorf("%w to %s: %w", ErrSink, s.Name(), err)
		}
	}
	return nil
}

// outcomeOf labels a cycle result for the renders_total counter.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrUpstreamFetch):
		return "upstream_error"
	case errors.Is(err, domain.ErrMalformedPayload):
		return "malformed"
	case errors.Is(err, domain.ErrNoSamples):
		return "empty"
	case errors.Is(err, ErrSink):
		return "sink_error"
	default:
		return "error"
	}
}
