package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	ForecastURL       string
	ForecastUserAgent string
	FetchTimeout      time.Duration

	HourRows   int
	RowHeight  float64
	OutputPath string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Kafka view sink configuration.
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	fetchTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("FETCH_TIMEOUT", "10s"))
	if err != nil || fetchTimeout <= 0 {
		return nil, errors.New("invalid FETCH_TIMEOUT")
	}

	hourRows, err := strconv.Atoi(sharedcfg.EnvOrDefault("HOUR_ROWS", "12"))
	if err != nil || hourRows <= 0 {
		return nil, errors.New("HOUR_ROWS must be a positive integer")
	}

	rowHeight, err := strconv.ParseFloat(sharedcfg.EnvOrDefault("ROW_HEIGHT", "35"), 64)
	if err != nil || rowHeight <= 0 {
		return nil, errors.New("ROW_HEIGHT must be a positive number")
	}

	cfg := &Config{
		ForecastURL:       sharedcfg.EnvOrDefault("FORECAST_URL", "https://api.weather.gov/gridpoints/DTX/40,28/forecast/hourly"),
		ForecastUserAgent: sharedcfg.EnvOrDefault("FORECAST_USER_AGENT", "forecast-strip-service (ops@example.com)"),
		FetchTimeout:      fetchTimeout,
		HourRows:          hourRows,
		RowHeight:         rowHeight,
		OutputPath:        sharedcfg.EnvOrDefault("OUTPUT_PATH", "forecast.svg"),
		HTTPAddr:          sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:          sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:         sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:   shutdownTimeout,
		KafkaEnabled:      os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:      sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:        sharedcfg.EnvOrDefault("KAFKA_TOPIC", "forecast-views"),
	}

	if u, err := url.Parse(cfg.ForecastURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errors.New("FORECAST_URL must be an absolute URL")
	}
	if cfg.ForecastUserAgent == "" {
		return nil, errors.New("FORECAST_USER_AGENT is required")
	}
	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is true")
		}
		if cfg.KafkaTopic == "" {
			return nil, errors.New("KAFKA_TOPIC is required when KAFKA_ENABLED is true")
		}
	}

	return cfg, nil
}
