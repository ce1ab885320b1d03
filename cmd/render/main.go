// Command render fetches the hourly forecast once, writes the SVG strip to
// OUTPUT_PATH ("-" for stdout), publishes to Kafka when enabled, and exits.
// A failed cycle exits with status 1.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	kafkaadapter "github.com/couchcryptid/forecast-strip-service/internal/adapter/kafka"
	"github.com/couchcryptid/forecast-strip-service/internal/adapter/nws"
	"github.com/couchcryptid/forecast-strip-service/internal/adapter/svg"
	"github.com/couchcryptid/forecast-strip-service/internal/config"
	"github.com/couchcryptid/forecast-strip-service/internal/domain"
	"github.com/couchcryptid/forecast-strip-service/internal/observability"
	"github.com/couchcryptid/forecast-strip-service/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		sharedobs.NewLogger("info", "json").Error("failed to load config", "error", err)
		return 1
	}

	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if cfg.OutputPath == svg.Stdout {
		// stdout carries the document.
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	metrics := observability.NewMetrics()

	layout := domain.DefaultLayout()
	layout.HourRows = cfg.HourRows
	layout.RowHeight = cfg.RowHeight

	client := nws.NewClient(cfg.ForecastURL, cfg.ForecastUserAgent, cfg.FetchTimeout, metrics, logger)
	transformer := pipeline.NewTransformer(layout, logger)

	sinks := []pipeline.Sink{svg.NewFileSink(cfg.OutputPath, svg.NewRenderer(), logger)}
	if cfg.KafkaEnabled {
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer writer.Close() //nolint:errcheck // process is exiting
		sinks = append(sinks, writer)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := pipeline.New(client, transformer, logger, metrics, sinks...).Run(ctx); err != nil {
		return 1
	}
	return 0
}
