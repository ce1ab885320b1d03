package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// ParseForecast decodes a raw NWS hourly forecast document.
func ParseForecast(data []byte) (RawForecast, error) {
	var raw RawForecast
	if err := json.Unmarshal(data, &raw); err != nil {
		return RawForecast{}, fmt.Errorf("%w: decode forecast: %w", ErrMalformedPayload, err)
	}
	return raw, nil
}

// NormalizeForecast downsamples the raw periods to every other entry
// (indices 0, 2, 4, ...) and converts each kept period into a Sample.
// Skipped periods are never inspected. Any kept period missing a required
// field fails the whole payload with ErrMalformedPayload.
func NormalizeForecast(raw RawForecast) ([]Sample, error) {
	if err := validate.Struct(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	periods := raw.Properties.Periods
	samples := make([]Sample, 0, (len(periods)+1)/2)
	for i := 0; i < len(periods); i += 2 {
		s, err := normalizePeriod(periods[i])
		if err != nil {
			return nil, fmt.Errorf("%w: period %d: %w", ErrMalformedPayload, i, err)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func normalizePeriod(p RawPeriod) (Sample, error) {
	if err := validate.Struct(p); err != nil {
		return Sample{}, err
	}

	start, err := time.Parse(time.RFC3339, p.StartTime)
	if err != nil {
		return Sample{}, fmt.Errorf("parse startTime: %w", err)
	}
	end, err := time.Parse(time.RFC3339, p.EndTime)
	if err != nil {
		return Sample{}, fmt.Errorf("parse endTime: %w", err)
	}

	return Sample{
		Start:                    start,
		End:                      end,
		Temperature:              *p.Temperature,
		PrecipitationProbability: *p.ProbabilityOfPrecipitation.Value,
	}, nil
}
