package svg

import (
	_ "embed"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/couchcryptid/forecast-strip-service/internal/domain"
)

//go:embed style.css
var stylesheet string

const (
	svgNamespace = "http://www.w3.org/2000/svg"

	labelX    = 40
	glyphX    = 90
	textDrop  = 20 // text baseline below the row top
	lineDrop  = 15 // bar centerline below the row top
	labelGap  = 10 // space between an hour bar and its temperature
	dayTrim   = 10 // day bars stop short of the high label, never before their start
	lowOffset = 25 // day low label sits left of the bar start

	classCondition = "condition"
	classFreezing  = "freezing"
	classDayRange  = "day_range"
)

// Renderer encodes a composed view as a standalone SVG document.
type Renderer struct {
	css string
}

// NewRenderer returns a Renderer that inlines the default stylesheet.
func NewRenderer() *Renderer {
	return &Renderer{css: stylesheet}
}

// Render writes the view as an SVG document to w.
func (r *Renderer) Render(w io.Writer, view domain.View) error {
	doc := document{
		Xmlns:   svgNamespace,
		Width:   view.Width,
		Height:  view.Height,
		ViewBox: fmt.Sprintf("0 0 %g %g", view.Width, view.Height),
		Style:   style{CSS: r.css},
	}
	for _, row := range view.Today {
		doc.Elements = append(doc.Elements, hourRow(row)...)
	}
	for _, row := range view.Week {
		doc.Elements = append(doc.Elements, dayRow(row)...)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write svg header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode svg: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode svg: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func hourRow(row domain.DrawRow) []any {
	return []any{
		rect{Y: row.Y, Width: "100%", Height: row.Height, Class: string(row.Bucket)},
		text{X: labelX, Y: row.Y + textDrop, Content: row.Label},
		text{X: glyphX, Y: row.Y + textDrop, Class: classCondition, Content: row.Glyph},
		line{X1: row.LineStart, X2: row.LineEnd, Y1: row.Y + lineDrop, Y2: row.Y + lineDrop},
		text{X: row.LineEnd + labelGap, Y: row.Y + textDrop, Class: freezingClass(row.IsFreezing), Content: row.NumericLabel},
	}
}

func dayRow(row domain.DrawRow) []any {
	return []any{
		text{X: labelX, Y: row.Y + textDrop, Content: row.Label},
		text{X: glyphX, Y: row.Y + textDrop, Class: classCondition, Content: row.Glyph},
		line{X1: row.LineStart, X2: max(row.LineStart, row.LineEnd-dayTrim), Y1: row.Y + lineDrop, Y2: row.Y + lineDrop, Class: classDayRange},
		text{X: row.LineStart - lowOffset, Y: row.Y + textDrop, Class: freezingClass(row.LowFreezing), Content: row.LowLabel},
		text{X: row.LineEnd, Y: row.Y + textDrop, Class: freezingClass(row.IsFreezing), Content: row.NumericLabel},
	}
}

func freezingClass(freezing bool) string {
	if freezing {
		return classFreezing
	}
	return ""
}

// SVG element types.

type document struct {
	XMLName  xml.Name `xml:"svg"`
	Xmlns    string   `xml:"xmlns,attr"`
	Width    float64  `xml:"width,attr"`
	Height   float64  `xml:"height,attr"`
	ViewBox  string   `xml:"viewBox,attr"`
	Style    style    `xml:"style"`
	Elements []any
}

type style struct {
	CSS string `xml:",cdata"`
}

type rect struct {
	XMLName xml.Name `xml:"rect"`
	Y       float64  `xml:"y,attr"`
	Width   string   `xml:"width,attr"`
	Height  float64  `xml:"height,attr"`
	Class   string   `xml:"class,attr,omitempty"`
}

type text struct {
	XMLName xml.Name `xml:"text"`
	X       float64  `xml:"x,attr"`
	Y       float64  `xml:"y,attr"`
	Class   string   `xml:"class,attr,omitempty"`
	Content string   `xml:",chardata"`
}

type line struct {
	XMLName xml.Name `xml:"line"`
	X1      float64  `xml:"x1,attr"`
	X2      float64  `xml:"x2,attr"`
	Y1      float64  `xml:"y1,attr"`
	Y2      float64  `xml:"y2,attr"`
	Class   string   `xml:"class,attr,omitempty"`
}
