package similarity

// TccRate scores two strings by their common characters. Every needle rune that
// can be paired with a not yet used haystack rune counts twice, and the count is
// divided by the combined length of both strings.
//
// Either string being empty yields 0.
func TccRate(s, t string) float64 {
	if s == "" || t == "" {
		return 0
	}
	needle, haystack := Order(Units(s, t))
	return float64(commonChars(needle, haystack)) / float64(len(needle)+len(haystack))
}

// commonChars returns twice the number of needle runes matched one-for-one
// against haystack runes. Each haystack instance is consumed at most once.
func commonChars(needle, haystack []rune) int {
	available := make(map[rune]int, len(haystack))
	for _, r := range haystack {
		available[r]++
	}

	n := 0
	for i := len(needle) - 1; i >= 0; i-- {
		if available[needle[i]] > 0 {
			available[needle[i]]--
			n += 2
		}
	}
	return n
}
