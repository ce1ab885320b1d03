package domain

import "fmt"

// ComposeToday builds one hour row per sample in the first layout.HourRows
// samples. Bars are scaled against the range of that window only.
func ComposeToday(samples []Sample, layout Layout) ([]DrawRow, error) {
	window := samples[:min(len(samples), max(layout.HourRows, 0))]

	r, err := AnalyzeRange(window)
	if err != nil {
		return nil, fmt.Errorf("today range: %w", err)
	}

	rows := make([]DrawRow, 0, len(window))
	for i, s := range window {
		hour := s.Hour()
		bucket := PrecipitationBucket(s.PrecipitationProbability)
		rows = append(rows, DrawRow{
			Kind:         RowHour,
			Date:         s.DateKey(),
			Y:            float64(i) * layout.RowHeight,
			Height:       layout.RowHeight,
			Label:        FormatHour(hour),
			Bucket:       bucket,
			Glyph:        ConditionGlyph(bucket, IsEvening(hour)),
			LineStart:    layout.LineAnchor,
			LineEnd:      MapTemperature(s.Temperature, r, layout.Domain),
			NumericLabel: FormatTemperature(s.Temperature),
			IsFreezing:   s.Temperature < layout.FreezingBelow,
		})
	}
	return rows, nil
}

// ComposeWeek builds one summary row per calendar day. Each day's low and high
// are positioned against the range of the whole forecast so the bars are
// comparable across days. Rows stack directly beneath the hourly strip.
func ComposeWeek(samples []Sample, layout Layout) ([]DrawRow, error) {
	weekRange, err := AnalyzeRange(samples)
	if err != nil {
		return nil, fmt.Errorf("week range: %w", err)
	}

	top := float64(layout.HourRows) * layout.RowHeight
	tranches := BuildDailyTranches(samples)
	rows := make([]DrawRow, 0, len(tranches))
	for k, tr := range tranches {
		day, err := AnalyzeRange(tr.Samples)
		if err != nil {
			return nil, fmt.Errorf("day range %s: %w", tr.Date, err)
		}
		bucket := PrecipitationBucket(WorstPrecipitation(tr.Samples))
		rows = append(rows, DrawRow{
			Kind:         RowDay,
			Date:         tr.Date,
			Y:            top + float64(k)*layout.RowHeight,
			Height:       layout.RowHeight,
			Label:        weekdayLabel(tr.Samples[0]),
			Bucket:       bucket,
			Glyph:        ConditionGlyph(bucket, false),
			LineStart:    MapTemperature(day.Min, weekRange, layout.Domain),
			LineEnd:      MapTemperature(day.Max, weekRange, layout.Domain),
			NumericLabel: FormatTemperature(day.Max),
			IsFreezing:   day.Max < layout.FreezingBelow,
			LowLabel:     FormatTemperature(day.Min),
			LowFreezing:  day.Min < layout.FreezingBelow,
		})
	}
	return rows, nil
}

// ComposeView composes both strips and sizes the canvas to fit them.
func ComposeView(samples []Sample, layout Layout) (View, error) {
	if err := layout.Validate(); err != nil {
		return View{}, fmt.Errorf("invalid layout: %w", err)
	}

	today, err := ComposeToday(samples, layout)
	if err != nil {
		return View{}, err
	}
	week, err := ComposeWeek(samples, layout)
	if err != nil {
		return View{}, err
	}

	return View{
		GeneratedAt: clock.Now().UTC(),
		Width:       layout.Width,
		Height:      float64(layout.HourRows+len(week)) * layout.RowHeight,
		Today:       today,
		Week:        week,
	}, nil
}

// weekdayLabel is the three-letter English weekday of the sample's date.
func weekdayLabel(s Sample) string {
	return s.Start.Weekday().String()[:3]
}
