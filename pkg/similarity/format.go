package similarity

import "strconv"

// Format renders a score in fixed point with exactly four decimals, e.g.
// "0.6667". NaN renders as "NaN".
func Format(score float64) string {
	return strconv.FormatFloat(score, 'f', 4, 64)
}
