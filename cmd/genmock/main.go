// Command genmock generates a deterministic NWS hourly forecast fixture and the
// view the pipeline composes from it. It runs the real domain package so the
// expected view always matches pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -forecast-out internal/pipeline/testdata/hourly_forecast.json \
//	  -view-out internal/pipeline/testdata/hourly_forecast_view.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/forecast-strip-service/internal/domain"
	"github.com/jonboulle/clockwork"
)

// diurnal is the temperature offset in °F for each local hour.
var diurnal = [24]int{-4, -5, -5, -6, -6, -6, -5, -4, -2, 0, 2, 3, 4, 5, 6, 6, 5, 4, 2, 1, 0, -1, -2, -3}

// baseTemps is the daily mean temperature, one entry per forecast day.
var baseTemps = []int{30, 34, 41, 38, 27, 25, 33}

// precipBlocks is the probability of precipitation for each six-hour block of a day.
var precipBlocks = [][4]int{
	{0, 0, 10, 20},
	{30, 50, 70, 40},
	{100, 90, 60, 20},
	{0, 0, 0, 0},
	{5, 15, 25, 15},
	{0, 0, 0, 10},
	{20, 35, 55, 45},
}

// Fixture types mirror the fields the NWS publishes for an hourly period,
// including ones the pipeline ignores.

type fixture struct {
	Type       string            `json:"type"`
	Properties fixtureProperties `json:"properties"`
}

type fixtureProperties struct {
	Units             string          `json:"units"`
	ForecastGenerator string          `json:"forecastGenerator"`
	GeneratedAt       string          `json:"generatedAt"`
	UpdateTime        string          `json:"updateTime"`
	Periods           []fixturePeriod `json:"periods"`
}

type fixturePeriod struct {
	Number                     int          `json:"number"`
	Name                       string       `json:"name"`
	StartTime                  string       `json:"startTime"`
	EndTime                    string       `json:"endTime"`
	IsDaytime                  bool         `json:"isDaytime"`
	Temperature                int          `json:"temperature"`
	TemperatureUnit            string       `json:"temperatureUnit"`
	TemperatureTrend           string       `json:"temperatureTrend"`
	ProbabilityOfPrecipitation fixtureValue `json:"probabilityOfPrecipitation"`
	RelativeHumidity           fixtureValue `json:"relativeHumidity"`
	WindSpeed                  string       `json:"windSpeed"`
	WindDirection              string       `json:"windDirection"`
	ShortForecast              string       `json:"shortForecast"`
	DetailedForecast           string       `json:"detailedForecast"`
}

type fixtureValue struct {
	UnitCode string `json:"unitCode"`
	Value    int    `json:"value"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	startFlag := flag.String("start", "2024-01-01T06:00:00-05:00", "start of the first period (RFC 3339)")
	hours := flag.Int("hours", 156, "number of hourly periods to generate")
	forecastOut := flag.String("forecast-out", "", "output path for the raw forecast fixture")
	viewOut := flag.String("view-out", "", "output path for the composed view fixture")
	flag.Parse()

	if *forecastOut == "" || *viewOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -forecast-out, -view-out")
	}

	start, err := time.Parse(time.RFC3339, *startFlag)
	if err != nil {
		return fmt.Errorf("parse -start: %w", err)
	}

	fx := generate(start, *hours)
	if err := writeJSON(*forecastOut, fx); err != nil {
		return fmt.Errorf("writing forecast fixture: %w", err)
	}
	log.Printf("wrote forecast fixture: %s (%d periods)", *forecastOut, len(fx.Properties.Periods))

	// Fixed clock for a reproducible GeneratedAt.
	domain.SetClock(clockwork.NewFakeClockAt(start.Add(-30 * time.Minute).UTC()))
	defer domain.SetClock(nil)

	view, err := compose(fx)
	if err != nil {
		return fmt.Errorf("composing view: %w", err)
	}
	if err := writeJSON(*viewOut, view); err != nil {
		return fmt.Errorf("writing view fixture: %w", err)
	}
	log.Printf("wrote view fixture: %s", *viewOut)

	printStats(view)
	return nil
}

func generate(start time.Time, hours int) fixture {
	periods := make([]fixturePeriod, 0, hours)
	for n := range hours {
		t := start.Add(time.Duration(n) * time.Hour)
		day := daysBetween(start, t)
		hour := t.Hour()

		temp := baseTemps[day%len(baseTemps)] + diurnal[hour]
		precip := precipBlocks[day%len(precipBlocks)][hour/6]
		daytime := hour >= 6 && hour < 18

		periods = append(periods, fixturePeriod{
			Number:                     n + 1,
			StartTime:                  t.Format(time.RFC3339),
			EndTime:                    t.Add(time.Hour).Format(time.RFC3339),
			IsDaytime:                  daytime,
			Temperature:                temp,
			TemperatureUnit:            "F",
			ProbabilityOfPrecipitation: fixtureValue{UnitCode: "wmoUnit:percent", Value: precip},
			RelativeHumidity:           fixtureValue{UnitCode: "wmoUnit:percent", Value: 60 + precip/4},
			WindSpeed:                  fmt.Sprintf("%d mph", 5+day),
			WindDirection:              "SW",
			ShortForecast:              shortForecast(precip, daytime),
		})
	}

	issued := start.Add(-time.Hour).UTC().Format(time.RFC3339)
	return fixture{
		Type: "Feature",
		Properties: fixtureProperties{
			Units:             "us",
			ForecastGenerator: "HourlyForecastGenerator",
			GeneratedAt:       issued,
			UpdateTime:        issued,
			Periods:           periods,
		},
	}
}

// daysBetween counts calendar days from a's date to b's date in a's offset.
func daysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = b.In(a.Location())
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

func shortForecast(precip int, daytime bool) string {
	switch domain.PrecipitationBucket(precip) {
	case domain.BucketClear:
		if daytime {
			return "Sunny"
		}
		return "Clear"
	case domain.BucketChance:
		return "Slight Chance Rain Showers"
	case domain.BucketPossible:
		return "Chance Rain Showers"
	case domain.BucketLikely:
		return "Rain Showers Likely"
	default:
		return "Rain"
	}
}

func compose(fx fixture) (domain.View, error) {
	data, err := json.Marshal(fx)
	if err != nil {
		return domain.View{}, err
	}
	raw, err := domain.ParseForecast(data)
	if err != nil {
		return domain.View{}, err
	}
	samples, err := domain.NormalizeForecast(raw)
	if err != nil {
		return domain.View{}, err
	}
	view, err := domain.ComposeView(samples, domain.DefaultLayout())
	if err != nil {
		return domain.View{}, err
	}
	view.ID = "genmock"
	return view, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(view domain.View) {
	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Today rows: %d, week rows: %d, height: %g\n", len(view.Today), len(view.Week), view.Height)
	for _, r := range view.Today {
		fmt.Printf("  %-6s %-8s %s x2=%-7.2f freezing=%t\n", r.Label, r.Bucket, r.NumericLabel, r.LineEnd, r.IsFreezing)
	}
	for _, r := range view.Week {
		fmt.Printf("  %s %s %-8s %s..%s x=%.2f..%.2f\n", r.Label, r.Date, r.Bucket, r.LowLabel, r.NumericLabel, r.LineStart, r.LineEnd)
	}
}
