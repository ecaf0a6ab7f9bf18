package mgnrega

import "math"

// Summary compares the latest month of a series against the one before it.
// It is derived on every read and never persisted.
type Summary struct {
	LastMonth     string `json:"lastMonth"`
	LastJobs      int64  `json:"lastJobs"`
	PrevJobs      int64  `json:"prevJobs"`
	ChangePercent *int   `json:"changePercent"`
	Trend         string `json:"trend"`
}

// Summarize reduces an ascending-by-month series to its trailing trend.
// An empty series has no summary. A single point has no previous month:
// ChangePercent stays null and the trend reads "same".
//
// The denominator is clamped to 1 when the previous value is zero, which
// understates the change in that case. Consumers already round-trip that
// exact number, so it stays as is.
func Summarize(rows []MeasurementRow) *Summary {
	if len(rows) == 0 {
		return nil
	}

	last := rows[len(rows)-1]
	s := &Summary{
		LastMonth: last.Month,
		LastJobs:  last.JobsGenerated,
		Trend:     "same",
	}
	if len(rows) < 2 {
		return s
	}

	prev := rows[len(rows)-2]
	s.PrevJobs = prev.JobsGenerated

	denom := prev.JobsGenerated
	if denom == 0 {
		denom = 1
	}
	change := int(math.Round(float64(last.JobsGenerated-prev.JobsGenerated) / float64(denom) * 100))
	s.ChangePercent = &change

	switch {
	case change > 0:
		s.Trend = "up"
	case change < 0:
		s.Trend = "down"
	}
	return s
}
