package matcher

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the defined scores of a ranking. Stats is nil when no
// score is defined, so an all-NaN ranking never reports a mean of zero.
type Summary struct {
	Count     int    `json:"count"`
	Undefined int    `json:"undefined"`
	Stats     *Stats `json:"stats,omitempty"`
}

type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes statistics over candidates, skipping undefined scores.
func Summarize(candidates []Candidate) Summary {
	scores := make([]float64, 0, len(candidates))
	var s Summary
	for _, c := range candidates {
		if c.Undefined {
			s.Undefined++
			continue
		}
		scores = append(scores, c.Score)
	}

	s.Count = len(scores)
	if s.Count == 0 {
		return s
	}
	st := &Stats{
		Mean: stat.Mean(scores, nil),
		Min:  floats.Min(scores),
		Max:  floats.Max(scores),
	}
	if s.Count > 1 {
		st.StdDev = stat.StdDev(scores, nil)
	}
	s.Stats = st
	return s
}
