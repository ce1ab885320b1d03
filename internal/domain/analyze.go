package domain

// AnalyzeRange returns the min and max temperature over samples in one pass.
// Ties keep the existing value. An empty slice returns ErrNoSamples.
func AnalyzeRange(samples []Sample) (TemperatureRange, error) {
	if len(samples) == 0 {
		return TemperatureRange{}, ErrNoSamples
	}

	r := TemperatureRange{Min: samples[0].Temperature, Max: samples[0].Temperature}
	for _, s := range samples[1:] {
		if s.Temperature < r.Min {
			r.Min = s.Temperature
		}
		if s.Temperature > r.Max {
			r.Max = s.Temperature
		}
	}
	return r, nil
}

// WorstPrecipitation returns the highest precipitation probability in the
// samples, or 0 for none.
func WorstPrecipitation(samples []Sample) int {
	worst := 0
	for _, s := range samples {
		if s.PrecipitationProbability > worst {
			worst = s.PrecipitationProbability
		}
	}
	return worst
}

// MapTemperature linearly maps temp from r onto d. A degenerate range (min ==
// max) maps every temperature to d.Low, so a flat day draws a zero-length bar
// at the left anchor instead of NaN geometry.
func MapTemperature(temp int, r TemperatureRange, d Domain) float64 {
	if r.Degenerate() {
		return d.Low
	}
	pct := float64(temp-r.Min) / float64(r.Max-r.Min)
	return d.Low + pct*(d.High-d.Low)
}
