package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	testDay1 = "2024-01-01"
	testDay2 = "2024-01-02"
)

// sample builds a one-hour Sample from an RFC 3339 start time.
func sample(t *testing.T, start string, temp, precip int) Sample {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, start)
	require.NoError(t, err)
	return Sample{
		Start:                    ts,
		End:                      ts.Add(time.Hour),
		Temperature:              temp,
		PrecipitationProbability: precip,
	}
}

func intPtr(v int) *int { return &v }

// rawPeriod builds a well-formed RawPeriod.
func rawPeriod(start string, temp, precip int) RawPeriod {
	ts, _ := time.Parse(time.RFC3339, start)
	return RawPeriod{
		StartTime:                  start,
		EndTime:                    ts.Add(time.Hour).Format(time.RFC3339),
		Temperature:                intPtr(temp),
		TemperatureUnit:            "F",
		ProbabilityOfPrecipitation: &QuantityValue{UnitCode: "wmoUnit:percent", Value: intPtr(precip)},
	}
}
