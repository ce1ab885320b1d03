// Package domain turns a National Weather Service (NWS) hourly forecast into
// drawing instructions for a two-part forecast strip.
//
// # Data Source
//
// The hourly forecast for a grid point is published at
// https://api.weather.gov/gridpoints/{office}/{x},{y}/forecast/hourly as
// GeoJSON. Only properties.periods is consumed:
//
//	{
//	  "startTime": "2024-01-01T06:00:00-05:00",
//	  "endTime":   "2024-01-01T07:00:00-05:00",
//	  "temperature": 28,
//	  "temperatureUnit": "F",
//	  "probabilityOfPrecipitation": {"unitCode": "wmoUnit:percent", "value": 20}
//	}
//
// Timestamps carry the forecast office's local UTC offset. Dates and hours are
// read in that offset, so the date of a period is the first ten characters of
// its startTime.
//
// # Downsampling
//
// Periods are hourly. [NormalizeForecast] keeps every other one (indices 0, 2,
// 4, ...) which halves the row count while still spanning the full horizon.
// Periods that are skipped are not validated.
//
// # Views
//
// The "today" strip is one row per sample for the first Layout.HourRows
// samples, each bar scaled against that window's own min/max. The "week" strip
// is one row per calendar day ([BuildDailyTranches]), with the day's low and
// high placed against the min/max of the whole forecast.
//
// Precipitation classes:
//
//	0%      clear     sun, or moon between 20:00 and 07:59
//	1-29%   chance
//	30-59%  possible
//	60-94%  likely
//	95%+    falling
//
// A day's class comes from its highest hourly probability.
//
// # Degenerate ranges
//
// When every temperature in a range is equal, [MapTemperature] returns the
// domain's low edge. Hour bars collapse to the anchor and day bars to a point.
package domain
