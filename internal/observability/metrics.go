package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "forecast_strip"

// Metrics holds the Prometheus counters, histograms, and gauges for the render pipeline.
type Metrics struct {
	RendersTotal   *prometheus.CounterVec // labels: outcome={success,upstream_error,malformed,empty,sink_error,error}
	RenderDuration prometheus.Histogram
	RowsRendered   *prometheus.GaugeVec   // labels: view={today,week}
	SinkErrors     *prometheus.CounterVec // labels: sink

	// Upstream fetch metrics.
	FetchRequests *prometheus.CounterVec // labels: outcome={success,error,status,malformed}
	FetchDuration prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RendersTotal,
		m.RenderDuration,
		m.RowsRendered,
		m.SinkErrors,
		m.FetchRequests,
		m.FetchDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RendersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Render cycles by outcome.",
		}, []string{"outcome"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Duration of a complete fetch-compose-publish cycle.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		RowsRendered: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rows_rendered",
			Help:      "Rows in the most recently composed view, by strip.",
		}, []string{"view"}),
		SinkErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sink_errors_total",
			Help:      "Publish failures by sink.",
		}, []string{"sink"}),
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_requests_total",
			Help:      "Forecast API requests by outcome.",
		}, []string{"outcome"}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Forecast API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}
