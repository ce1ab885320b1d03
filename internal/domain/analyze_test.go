package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDomain = Domain{Low: 150, High: 500}

func TestAnalyzeRange(t *testing.T) {
	t.Run("two samples", func(t *testing.T) {
		r, err := AnalyzeRange([]Sample{
			sample(t, "2024-01-01T00:00:00Z", 30, 0),
			sample(t, "2024-01-01T02:00:00Z", 40, 50),
		})
		require.NoError(t, err)
		assert.Equal(t, TemperatureRange{Min: 30, Max: 40}, r)
	})

	t.Run("single sample is degenerate", func(t *testing.T) {
		r, err := AnalyzeRange([]Sample{sample(t, "2024-01-01T00:00:00Z", 55, 0)})
		require.NoError(t, err)
		assert.Equal(t, TemperatureRange{Min: 55, Max: 55}, r)
		assert.True(t, r.Degenerate())
	})

	t.Run("unordered temperatures", func(t *testing.T) {
		temps := []int{12, -3, 40, 7, 40, -3, 21}
		samples := make([]Sample, 0, len(temps))
		for _, temp := range temps {
			samples = append(samples, sample(t, "2024-01-01T00:00:00Z", temp, 0))
		}
		r, err := AnalyzeRange(samples)
		require.NoError(t, err)
		assert.Equal(t, -3, r.Min)
		assert.Equal(t, 40, r.Max)
		assert.LessOrEqual(t, r.Min, r.Max)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := AnalyzeRange(nil)
		require.ErrorIs(t, err, ErrNoSamples)
	})
}

func TestMapTemperature(t *testing.T) {
	r := TemperatureRange{Min: 30, Max: 40}

	assert.Equal(t, 150.0, MapTemperature(30, r, testDomain))
	assert.Equal(t, 500.0, MapTemperature(40, r, testDomain))
	assert.InDelta(t, 325.0, MapTemperature(35, r, testDomain), 1e-9)

	t.Run("endpoints are exact across ranges", func(t *testing.T) {
		for _, rr := range []TemperatureRange{{-20, 7}, {0, 1}, {33, 101}, {-40, -39}} {
			assert.Equal(t, testDomain.Low, MapTemperature(rr.Min, rr, testDomain))
			assert.Equal(t, testDomain.High, MapTemperature(rr.Max, rr, testDomain))
		}
	})

	t.Run("degenerate range maps to low anchor", func(t *testing.T) {
		flat := TemperatureRange{Min: 45, Max: 45}
		got := MapTemperature(45, flat, testDomain)
		assert.Equal(t, testDomain.Low, got)
		assert.False(t, math.IsNaN(got))
		assert.False(t, math.IsInf(got, 0))
	})
}

func TestWorstPrecipitation(t *testing.T) {
	samples := []Sample{
		sample(t, "2024-01-01T00:00:00Z", 30, 10),
		sample(t, "2024-01-01T02:00:00Z", 31, 70),
		sample(t, "2024-01-01T04:00:00Z", 32, 40),
	}
	assert.Equal(t, 70, WorstPrecipitation(samples))
	assert.Equal(t, 0, WorstPrecipitation(nil))
}
