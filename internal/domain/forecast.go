package domain

import "time"

// RawForecast is the subset of the NWS hourly forecast GeoJSON that the
// pipeline consumes.
type RawForecast struct {
	Properties *RawProperties `json:"properties" validate:"required"`
}

// RawProperties holds the ordered forecast periods.
type RawProperties struct {
	Periods []RawPeriod `json:"periods" validate:"required"`
}

// RawPeriod is one hourly entry as published by the NWS.
type RawPeriod struct {
	StartTime                  string        `json:"startTime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime                    string        `json:"endTime" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Temperature                *int          `json:"temperature" validate:"required"`
	TemperatureUnit            string        `json:"temperatureUnit,omitempty"`
	ProbabilityOfPrecipitation *QuantityValue `json:"probabilityOfPrecipitation" validate:"required"`
}

// QuantityValue is the NWS {unitCode, value} wrapper. A null value is
// reported as a nil pointer.
type QuantityValue struct {
	UnitCode string `json:"unitCode,omitempty"`
	Value    *int   `json:"value" validate:"required"`
}

// Sample is one normalized forecast record.
type Sample struct {
	Start                    time.Time `json:"start"`
	End                      time.Time `json:"end"`
	Temperature              int       `json:"temperature"`
	PrecipitationProbability int       `json:"precipitation_probability"`
}

// DateKey returns the YYYY-MM-DD date of the sample's start in the offset the
// timestamp was published with. It matches the first ten characters of the
// raw startTime string.
func (s Sample) DateKey() string {
	return s.Start.Format(time.DateOnly)
}

// Hour returns the hour of day of the sample's start, 0-23.
func (s Sample) Hour() int {
	return s.Start.Hour()
}

// TemperatureRange is the inclusive min/max temperature over a set of samples.
type TemperatureRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Degenerate reports whether the range has zero width.
func (r TemperatureRange) Degenerate() bool {
	return r.Min == r.Max
}

// Tranche is a contiguous run of samples sharing one calendar date.
type Tranche struct {
	Date    string   `json:"date"`
	Samples []Sample `json:"samples"`
}
