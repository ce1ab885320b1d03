package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/forecast-strip-service/internal/domain"
	"github.com/google/uuid"
)

// ForecastTransformer implements Transformer using the domain normalize and
// compose functions.
type ForecastTransformer struct {
	layout domain.Layout
	logger *slog.Logger
}

// NewTransformer creates a ForecastTransformer for the given layout.
func NewTransformer(layout domain.Layout, logger *slog.Logger) *ForecastTransformer {
	return &ForecastTransformer{
		layout: layout,
		logger: logger,
	}
}

func (t *ForecastTransformer) Transform(_ context.Context, raw domain.RawForecast) (domain.View, error) {
	samples, err := domain.NormalizeForecast(raw)
	if err != nil {
		return domain.View{}, err
	}

	view, err := domain.ComposeView(samples, t.layout)
	if err != nil {
		return domain.View{}, err
	}
	view.ID = uuid.NewString()

	t.logger.Debug("forecast composed", "view_id", view.ID, "samples", len(samples))
	return view, nil
}
