package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Domain is the horizontal pixel span temperatures are mapped into.
type Domain struct {
	Low  float64 `json:"low"`
	High float64 `json:"high" validate:"gtfield=Low"`
}

// Layout carries every geometry constant the composer needs.
type Layout struct {
	HourRows      int     `json:"hour_rows" validate:"gt=0"`
	RowHeight     float64 `json:"row_height" validate:"gt=0"`
	Domain        Domain  `json:"domain"`
	LineAnchor    float64 `json:"line_anchor"`
	FreezingBelow int     `json:"freezing_below"`
	Width         float64 `json:"width" validate:"gt=0"`
}

// DefaultLayout returns the stock 12-hour layout: 35px rows, bars between
// x=150 and x=500, freezing below 33°F.
func DefaultLayout() Layout {
	return Layout{
		HourRows:      12,
		RowHeight:     35,
		Domain:        Domain{Low: 150, High: 500},
		LineAnchor:    150,
		FreezingBelow: 33,
		Width:         560,
	}
}

// Validate checks the layout for values that would produce invalid geometry.
func (l Layout) Validate() error {
	return validate.Struct(l)
}

// RowKind distinguishes hourly rows from daily summary rows.
type RowKind string

const (
	RowHour RowKind = "hour"
	RowDay  RowKind = "day"
)

// DrawRow is one renderable row. For day rows NumericLabel and IsFreezing
// describe the daily high drawn at LineEnd, and LowLabel/LowFreezing the daily
// low drawn at LineStart.
type DrawRow struct {
	Kind         RowKind `json:"kind"`
	Date         string  `json:"date,omitempty"`
	Y            float64 `json:"y"`
	Height       float64 `json:"height"`
	Label        string  `json:"label"`
	Bucket       Bucket  `json:"bucket"`
	Glyph        string  `json:"glyph"`
	LineStart    float64 `json:"line_start"`
	LineEnd      float64 `json:"line_end"`
	NumericLabel string  `json:"numeric_label"`
	IsFreezing   bool    `json:"is_freezing"`
	LowLabel     string  `json:"low_label,omitempty"`
	LowFreezing  bool    `json:"low_freezing,omitempty"`
}

// View is the complete set of drawing instructions for one render.
type View struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	Today       []DrawRow `json:"today"`
	Week        []DrawRow `json:"week"`
}

// Rows returns the today rows followed by the week rows.
func (v View) Rows() []DrawRow {
	rows := make([]DrawRow, 0, len(v.Today)+len(v.Week))
	rows = append(rows, v.Today...)
	return append(rows, v.Week...)
}
