package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecipitationBucket(t *testing.T) {
	tests := []struct {
		name     string
		p        int
		expected Bucket
	}{
		{"zero", 0, BucketClear},
		{"negative clamps to clear", -5, BucketClear},
		{"one percent", 1, BucketChance},
		{"upper chance", 29, BucketChance},
		{"lower possible", 30, BucketPossible},
		{"upper possible", 59, BucketPossible},
		{"lower likely", 60, BucketLikely},
		{"upper likely", 94, BucketLikely},
		{"lower falling", 95, BucketFalling},
		{"certain", 100, BucketFalling},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrecipitationBucket(tt.p))
		})
	}
}

func TestPrecipitationBucket_Monotonic(t *testing.T) {
	order := map[Bucket]int{
		BucketClear:    0,
		BucketChance:   1,
		BucketPossible: 2,
		BucketLikely:   3,
		BucketFalling:  4,
	}

	prev := order[PrecipitationBucket(0)]
	for p := 1; p <= 100; p++ {
		cur, ok := order[PrecipitationBucket(p)]
		assert.True(t, ok, "p=%d produced an unknown bucket", p)
		assert.GreaterOrEqual(t, cur, prev, "p=%d moved to an earlier bucket", p)
		prev = cur
	}
}

func TestConditionGlyph(t *testing.T) {
	tests := []struct {
		name     string
		bucket   Bucket
		evening  bool
		expected string
	}{
		{"clear day", BucketClear, false, GlyphSun},
		{"clear evening", BucketClear, true, GlyphMoon},
		{"chance", BucketChance, false, GlyphSunCloud},
		{"chance evening ignores moon", BucketChance, true, GlyphSunCloud},
		{"possible", BucketPossible, false, GlyphCloudSun},
		{"likely", BucketLikely, false, GlyphRainSun},
		{"falling", BucketFalling, true, GlyphRain},
		{"unknown bucket", Bucket("hail"), false, GlyphUnknown},
		{"empty bucket", Bucket(""), true, GlyphUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConditionGlyph(tt.bucket, tt.evening))
		})
	}
}

func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour     int
		expected string
	}{
		{0, "12 AM"},
		{1, "1 AM"},
		{11, "11 AM"},
		{12, "12 PM"},
		{13, "1 PM"},
		{19, "7 PM"},
		{23, "11 PM"},
		{24, "12 AM"},
		{-1, "11 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatHour(tt.hour))
		})
	}
}

func TestIsEvening(t *testing.T) {
	evening := map[int]bool{}
	for h := 0; h < 24; h++ {
		evening[h] = IsEvening(h)
	}

	for h := 0; h < 8; h++ {
		assert.True(t, evening[h], "hour %d", h)
	}
	for h := 8; h <= 19; h++ {
		assert.False(t, evening[h], "hour %d", h)
	}
	for h := 20; h < 24; h++ {
		assert.True(t, evening[h], "hour %d", h)
	}
}

func TestFormatTemperature(t *testing.T) {
	assert.Equal(t, "30°", FormatTemperature(30))
	assert.Equal(t, "-4°", FormatTemperature(-4))
}
