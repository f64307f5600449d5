package similarity

// Select deduplicates decomposed matches against the haystack. Buckets are
// walked from needleLen down to 1 and each bucket in discovery order. A match
// is kept only if it still has an occurrence made of unconsumed haystack runes;
// the first such occurrence is then marked consumed. Shorter matches already
// covered by a longer pick are dropped this way.
//
// The result is ordered by descending length, ties by discovery order, and its
// total length never exceeds len(haystack).
func Select(b Buckets, needleLen int, haystack []rune) []Match {
	consumed := make([]bool, len(haystack))

	var selected []Match
	for length := needleLen; length > 0; length-- {
		for _, m := range b[length] {
			at := firstFree([]rune(m.Text), haystack, consumed)
			if at < 0 {
				continue
			}
			for k := at; k < at+m.Length; k++ {
				consumed[k] = true
			}
			selected = append(selected, m)
		}
	}

	return selected
}

// firstFree returns the first index of sub in hay whose span is entirely
// unconsumed, or -1.
func firstFree(sub, hay []rune, consumed []bool) int {
	for i := 0; i+len(sub) <= len(hay); i++ {
		if spanFree(consumed, i, len(sub)) && hasPrefixAt(hay, sub, i) {
			return i
		}
	}
	return -1
}

func spanFree(consumed []bool, at, n int) bool {
	for k := at; k < at+n; k++ {
		if consumed[k] {
			return false
		}
	}
	return true
}
