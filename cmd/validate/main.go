// Command validate performs integrity checks on a saved NWS hourly forecast
// document and, optionally, on the view fixture composed from it. It verifies
// period validity, downsampling, day partitioning, and view geometry.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -forecast-json internal/pipeline/testdata/hourly_forecast.json \
//	  -view-json internal/pipeline/testdata/hourly_forecast_view.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/couchcryptid/forecast-strip-service/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jonboulle/clockwork"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	forecastJSON := flag.String("forecast-json", "", "path to a raw NWS hourly forecast document")
	viewJSON := flag.String("view-json", "", "optional path to the expected composed view")
	generatedAt := flag.String("generated-at", "2024-01-01T10:30:00Z", "clock used when recomposing the view")
	flag.Parse()

	if *forecastJSON == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*forecastJSON, *viewJSON, *generatedAt); code != 0 {
		os.Exit(code)
	}
}

func run(forecastPath, viewPath, generatedAt string) int {
	now, err := time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: parse -generated-at: %v\n", err)
		return 1
	}
	domain.SetClock(clockwork.NewFakeClockAt(now))
	defer domain.SetClock(nil)

	fmt.Println("=== Forecast Strip Integrity Validation ===")
	fmt.Println()

	data, err := os.ReadFile(forecastPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load forecast JSON: %v\n", err)
		return 1
	}
	raw, err := domain.ParseForecast(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	layout := domain.DefaultLayout()
	payload, samples := validatePayload(raw)
	phases := []*phase{
		payload,
		validateDownsampling(raw, samples),
		validateTranches(samples),
		validateGeometry(samples, layout),
	}
	if viewPath != "" {
		phases = append(phases, validateFixture(samples, layout, viewPath))
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Periods: %d raw, %d samples, %d days\n",
		periodCount(raw), len(samples), len(domain.BuildDailyTranches(samples)))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func periodCount(raw domain.RawForecast) int {
	if raw.Properties == nil {
		return 0
	}
	return len(raw.Properties.Periods)
}

// ── Phase 1: Payload ──
// Every kept period must normalize; the feed must be ordered and hourly.

func validatePayload(raw domain.RawForecast) (*phase, []domain.Sample) {
	p := &phase{name: "Phase 1: Payload (kept periods)"}

	samples, err := domain.NormalizeForecast(raw)
	if err != nil {
		p.errorf("%v", err)
		return p, nil
	}
	if len(samples) == 0 {
		p.errorf("forecast has no periods")
	}

	for i, s := range samples {
		if !s.End.After(s.Start) {
			p.errorf("sample %d: end %s is not after start %s", i, s.End.Format(time.RFC3339), s.Start.Format(time.RFC3339))
		}
		if i > 0 && !s.Start.After(samples[i-1].Start) {
			p.errorf("sample %d: start %s is not after the previous sample", i, s.Start.Format(time.RFC3339))
		}
		if s.PrecipitationProbability < 0 || s.PrecipitationProbability > 100 {
			p.errorf("sample %d: precipitation %d%% out of range", i, s.PrecipitationProbability)
		}
	}
	for i, period := range raw.Properties.Periods {
		if period.TemperatureUnit != "" && period.TemperatureUnit != "F" {
			p.errorf("period %d: temperature unit %q, expected F", i, period.TemperatureUnit)
		}
	}
	return p, samples
}

// ── Phase 2: Downsampling ──

func validateDownsampling(raw domain.RawForecast, samples []domain.Sample) *phase {
	p := &phase{name: "Phase 2: Downsampling (even indices)"}
	if samples == nil {
		p.errorf("skipped: payload did not normalize")
		return p
	}

	periods := raw.Properties.Periods
	if want := (len(periods) + 1) / 2; len(samples) != want {
		p.errorf("sample count: expected %d, got %d", want, len(samples))
		return p
	}
	for i, s := range samples {
		src := periods[2*i]
		if s.Start.Format(time.RFC3339) != src.StartTime {
			p.errorf("sample %d: start %s does not match period %d (%s)", i, s.Start.Format(time.RFC3339), 2*i, src.StartTime)
		}
		if s.Temperature != *src.Temperature {
			p.errorf("sample %d: temperature %d does not match period %d (%d)", i, s.Temperature, 2*i, *src.Temperature)
		}
	}
	return p
}

// ── Phase 3: Tranches ──

func validateTranches(samples []domain.Sample) *phase {
	p := &phase{name: "Phase 3: Day Tranches (partition)"}

	tranches := domain.BuildDailyTranches(samples)
	total := 0
	prev := ""
	for k, tr := range tranches {
		if len(tr.Samples) == 0 {
			p.errorf("tranche %d (%s): empty", k, tr.Date)
		}
		if tr.Date <= prev {
			p.errorf("tranche %d: date %s does not follow %s", k, tr.Date, prev)
		}
		prev = tr.Date
		for _, s := range tr.Samples {
			if s.DateKey() != tr.Date {
				p.errorf("tranche %d: sample dated %s grouped under %s", k, s.DateKey(), tr.Date)
			}
			if !samples[total].Start.Equal(s.Start) {
				p.errorf("tranche %d: sample order differs from input at %d", k, total)
			}
			total++
		}
	}
	if total != len(samples) {
		p.errorf("tranches hold %d samples, input has %d", total, len(samples))
	}
	return p
}

// ── Phase 4: Geometry ──

func validateGeometry(samples []domain.Sample, layout domain.Layout) *phase {
	p := &phase{name: "Phase 4: View Geometry"}
	if len(samples) == 0 {
		p.errorf("skipped: no samples")
		return p
	}

	view, err := domain.ComposeView(samples, layout)
	if err != nil {
		p.errorf("compose: %v", err)
		return p
	}

	if want := min(len(samples), layout.HourRows); len(view.Today) != want {
		p.errorf("today rows: expected %d, got %d", want, len(view.Today))
	}
	for i, r := range view.Rows() {
		if want := float64(i) * layout.RowHeight; i < len(view.Today) && r.Y != want {
			p.errorf("row %d (%s): y=%g, expected %g", i, r.Label, r.Y, want)
		}
		for _, x := range []float64{r.LineStart, r.LineEnd} {
			if x < layout.Domain.Low || x > layout.Domain.High {
				p.errorf("row %d (%s): x=%g outside [%g, %g]", i, r.Label, x, layout.Domain.Low, layout.Domain.High)
			}
		}
		if r.LineStart > r.LineEnd {
			p.errorf("row %d (%s): bar runs backwards (%g > %g)", i, r.Label, r.LineStart, r.LineEnd)
		}
	}
	if want := float64(layout.HourRows+len(view.Week)) * layout.RowHeight; view.Height != want {
		p.errorf("height: expected %g, got %g", want, view.Height)
	}
	return p
}

// ── Phase 5: Fixture ──

func validateFixture(samples []domain.Sample, layout domain.Layout, path string) *phase {
	p := &phase{name: "Phase 5: View Fixture (recomposed)"}

	data, err := os.ReadFile(path)
	if err != nil {
		p.errorf("load view JSON: %v", err)
		return p
	}
	var want domain.View
	if err := json.Unmarshal(data, &want); err != nil {
		p.errorf("decode view JSON: %v", err)
		return p
	}

	got, err := domain.ComposeView(samples, layout)
	if err != nil {
		p.errorf("compose: %v", err)
		return p
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(domain.View{}, "ID")); diff != "" {
		p.errorf("view differs from fixture (-want +got):\n%s", diff)
	}
	return p
}
