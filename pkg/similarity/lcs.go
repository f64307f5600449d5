package similarity

// LcsRate scores two strings by their longest common substring, normalised over
// the combined length of both: 2*longest / (len(s)+len(t)).
//
// Either string being empty yields 0.
func LcsRate(s, t string) float64 {
	if s == "" || t == "" {
		return 0
	}
	needle, haystack := Order(Units(s, t))
	longest := longestCommonRun(needle, haystack)
	return float64(2*longest) / float64(len(needle)+len(haystack))
}

// longestCommonRun returns the length of the longest contiguous run of needle
// that also occurs contiguously in haystack.
func longestCommonRun(needle, haystack []rune) int {
	longest := 0
	for i := range needle {
		if !containsRune(haystack, needle[i]) {
			continue
		}
		// The first hit scanning down from the full tail is the longest run at i.
		for j := len(needle); j > i; j-- {
			if containsRun(haystack, needle[i:j]) {
				if j-i > longest {
					longest = j - i
				}
				break
			}
		}
	}
	return longest
}
