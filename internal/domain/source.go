package domain

import "context"

// ForecastSource supplies the raw hourly forecast payload.
type ForecastSource interface {
	FetchForecast(ctx context.Context) (RawForecast, error)
}
