package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/forecast-strip-service/internal/adapter/httpadapter"
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

// cycleRunner runs one publishing render cycle.
type cycleRunner interface {
	Run(ctx context.Context) error
}

// warmUp runs the startup cycle and reports whether it succeeded.
func warmUp(ctx context.Context, r cycleRunner, logger *slog.Logger) bool {
	if err := r.Run(ctx); err != nil {
		logger.Error("startup render failed", "error", err)
		return false
	}
	return true
}

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	layout := domain.DefaultLayout()
	layout.HourRows = cfg.HourRows
	layout.RowHeight = cfg.RowHeight

	client := nws.NewClient(cfg.ForecastURL, cfg.ForecastUserAgent, cfg.FetchTimeout, metrics, logger)
	transformer := pipeline.NewTransformer(layout, logger)
	renderer := svg.NewRenderer()

	// The startup cycle publishes to the configured sinks; HTTP requests render on demand.
	sinks := []pipeline.Sink{svg.NewFileSink(cfg.OutputPath, renderer, logger)}
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		sinks = append(sinks, writer)
		logger.Info("kafka view sink enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	p := pipeline.New(client, transformer, logger, metrics, sinks...)
	srv := httpadapter.NewServer(cfg.HTTPAddr, p, renderer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	// Warm up readiness with one full cycle. The server keeps serving on failure.
	go warmUp(ctx, p, logger)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
