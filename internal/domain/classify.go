package domain

import "strconv"

// Bucket is a precipitation-likelihood category. Its value doubles as the CSS
// class of the row background.
type Bucket string

const (
	BucketClear    Bucket = "clear"
	BucketChance   Bucket = "chance"
	BucketPossible Bucket = "possible"
	BucketLikely   Bucket = "likely"
	BucketFalling  Bucket = "falling"
)

// Condition glyphs.
const (
	GlyphMoon     = "\U0001F319"
	GlyphSun      = "\U0001F31E"
	GlyphSunCloud = "\U0001F324"
	GlyphCloudSun = "\U0001F325"
	GlyphRainSun  = "\U0001F326"
	GlyphRain     = "\U0001F327"
	GlyphUnknown  = "?"
)

// DegreeMark follows every rendered temperature.
const DegreeMark = "\u00B0"

const (
	morningEndHour   = 8
	eveningStartHour = 19
)

// PrecipitationBucket classifies a probability of precipitation in percent.
//
//	0        clear
//	1-29     chance
//	30-59    possible
//	60-94    likely
//	95+      falling
//
// Values below zero are treated as 0.
func PrecipitationBucket(p int) Bucket {
	switch {
	case p <= 0:
		return BucketClear
	case p < 30:
		return BucketChance
	case p < 60:
		return BucketPossible
	case p < 95:
		return BucketLikely
	default:
		return BucketFalling
	}
}

// ConditionGlyph maps a bucket to its display glyph. Clear skies show a moon
// in the evening and a sun otherwise.
func ConditionGlyph(b Bucket, evening bool) string {
	switch b {
	case BucketClear:
		if evening {
			return GlyphMoon
		}
		return GlyphSun
	case BucketChance:
		return GlyphSunCloud
	case BucketPossible:
		return GlyphCloudSun
	case BucketLikely:
		return GlyphRainSun
	case BucketFalling:
		return GlyphRain
	default:
		return GlyphUnknown
	}
}

// FormatHour renders an hour of day as a 12-hour clock label ("12 AM",
// "1 PM"). Out-of-range hours wrap into 0-23 first, so 24 reads "12 AM".
func FormatHour(hour int) string {
	hour = ((hour % 24) + 24) % 24
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return strconv.Itoa(hour) + " AM"
	case hour == 12:
		return "12 PM"
	default:
		return strconv.Itoa(hour-12) + " PM"
	}
}

// IsEvening reports whether the hour falls outside 08:00-19:59.
func IsEvening(hour int) bool {
	return hour < morningEndHour || hour > eveningStartHour
}

// FormatTemperature renders a temperature with a degree mark.
func FormatTemperature(temp int) string {
	return strconv.Itoa(temp) + DegreeMark
}
