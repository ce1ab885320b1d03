package domain

// BuildDailyTranches partitions time-ordered samples into runs sharing the same
// date key. A tranche is closed when the key changes; the last one is emitted
// even when the day is incomplete. Concatenating the result reproduces the
// input exactly.
func BuildDailyTranches(samples []Sample) []Tranche {
	if len(samples) == 0 {
		return nil
	}

	var tranches []Tranche
	current := Tranche{Date: samples[0].DateKey()}
	for _, s := range samples {
		key := s.DateKey()
		if key != current.Date {
			tranches = append(tranches, current)
			current = Tranche{Date: key}
		}
		current.Samples = append(current.Samples, s)
	}
	return append(tranches, current)
}
