package matcher

import (
	"errors"

	"github.com/TFMV/SimilarityRate/pkg/similarity"
)

// Report holds every rate for one pair of strings.
type Report struct {
	Needle   string             `json:"needle"`
	Haystack string             `json:"haystack"`
	LCS      float64            `json:"-"`
	TCC      float64            `json:"-"`
	Blend    float64            `json:"-"`
	Smart    float64            `json:"-"`
	Matches  []similarity.Match `json:"matches"`
	// SmartUndefined is set when the strings share nothing and Smart is NaN.
	SmartUndefined bool `json:"smart_undefined,omitempty"`
}

// Formatted renders every rate as four-decimal text, keyed by method name.
func (r Report) Formatted() map[similarity.Method]string {
	return map[similarity.Method]string{
		similarity.MethodLCS:   similarity.Format(r.LCS),
		similarity.MethodTCC:   similarity.Format(r.TCC),
		similarity.MethodBlend: similarity.Format(r.Blend),
		similarity.MethodSmart: similarity.Format(r.Smart),
	}
}

// Compare runs all four scorers on a and b and records the substrings
// SmartRate selected.
func Compare(a, b string, bw similarity.BlendWeights, sw similarity.SmartWeights) Report {
	needle, haystack := similarity.Order(similarity.Units(a, b))

	r := Report{
		Needle:   string(needle),
		Haystack: string(haystack),
		LCS:      similarity.LcsRate(a, b),
		TCC:      similarity.TccRate(a, b),
		Blend:    similarity.BlendWeighted(a, b, bw),
	}

	var err error
	r.Smart, err = similarity.SmartRateWeighted(a, b, sw)
	r.SmartUndefined = errors.Is(err, similarity.ErrNoCommonSubstring)

	if len(needle) > 0 && len(haystack) > 0 {
		r.Matches = similarity.Select(similarity.Decompose(needle, haystack), len(needle), haystack)
	}
	return r
}
