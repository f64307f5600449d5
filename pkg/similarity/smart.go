package similarity

import (
	"errors"
	"math"
)

// ErrNoCommonSubstring is returned by SmartRate when the two strings share no
// character at all, so no match could be selected. The accompanying score is
// NaN.
var ErrNoCommonSubstring = errors.New("no common substring")

// SmartWeights controls the three terms of SmartRate.
type SmartWeights struct {
	// Char weighs the share of the haystack covered by selected matches.
	Char float64 `yaml:"char" json:"char"`
	// Fragment weighs 1 - pieces/covered, which favours few long matches
	// over many short ones.
	Fragment float64 `yaml:"fragment" json:"fragment"`
	// Longest weighs the longest selected match relative to the haystack.
	Longest float64 `yaml:"longest" json:"longest"`
}

// DefaultSmartWeights returns 0.5/0.2/0.3, which sum to 1.
func DefaultSmartWeights() SmartWeights {
	return SmartWeights{Char: 0.5, Fragment: 0.2, Longest: 0.3}
}

// Validate rejects negative or non-finite weights.
func (w SmartWeights) Validate() error {
	return validateWeights(map[string]float64{
		"char":     w.Char,
		"fragment": w.Fragment,
		"longest":  w.Longest,
	})
}

// SmartRate scores two strings with the default weights.
func SmartRate(s, t string) (float64, error) {
	return SmartRateWeighted(s, t, DefaultSmartWeights())
}

// SmartRateWeighted decomposes the shorter string into matched substrings of
// the longer one, deduplicates them and scores
//
//	covered/len*w.Char + (1 - pieces/covered)*w.Fragment + longest/len*w.Longest
//
// where len is the length of the longer string. Either string being empty
// yields 0. When nothing is shared the score is NaN and the error is
// ErrNoCommonSubstring.
func SmartRateWeighted(s, t string, w SmartWeights) (float64, error) {
	if s == "" || t == "" {
		return 0, nil
	}
	needle, haystack := Order(Units(s, t))

	selected := Select(Decompose(needle, haystack), len(needle), haystack)
	if len(selected) == 0 {
		return math.NaN(), ErrNoCommonSubstring
	}

	covered := 0
	for _, m := range selected {
		covered += m.Length
	}
	pieces := float64(len(selected))
	longest := float64(selected[0].Length)
	n := float64(len(haystack))

	score := float64(covered)/n*w.Char +
		(1-pieces/float64(covered))*w.Fragment +
		longest/n*w.Longest
	return score, nil
}
