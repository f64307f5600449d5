// Package similarity scores how alike two strings are, in [0, 1], with four
// heuristics: longest common substring (LcsRate), common characters (TccRate),
// a weighted mix of both (Blend) and a substring decomposition score
// (SmartRate). Strings are compared rune by rune, without case folding or
// normalisation. A pair holding invalid UTF-8 is compared byte by byte.
package similarity

import "unicode/utf8"

// Units splits s and t into the units they are compared by. When both are
// valid UTF-8 a unit is a rune. Otherwise both are split into bytes, each byte
// carried as the rune of the same value, so distinct invalid bytes never
// collapse into utf8.RuneError.
func Units(s, t string) (su, tu []rune) {
	if utf8.ValidString(s) && utf8.ValidString(t) {
		return []rune(s), []rune(t)
	}
	return byteUnits(s), byteUnits(t)
}

func byteUnits(s string) []rune {
	units := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		units[i] = rune(s[i])
	}
	return units
}

// Order designates the needle and the haystack for a comparison. The needle is
// the shorter sequence; on equal lengths s stays the needle.
func Order(s, t []rune) (needle, haystack []rune) {
	if len(t) < len(s) {
		return t, s
	}
	return s, t
}

// indexOf returns the first index of sub in hay, or -1.
func indexOf(hay, sub []rune) int {
	if len(sub) == 0 {
		return 0
	}
	for i := 0; i+len(sub) <= len(hay); i++ {
		if hasPrefixAt(hay, sub, i) {
			return i
		}
	}
	return -1
}

func hasPrefixAt(hay, sub []rune, at int) bool {
	for k, r := range sub {
		if hay[at+k] != r {
			return false
		}
	}
	return true
}

func containsRun(hay, sub []rune) bool {
	return indexOf(hay, sub) >= 0
}

func containsRune(hay []rune, r rune) bool {
	for _, h := range hay {
		if h == r {
			return true
		}
	}
	return false
}
