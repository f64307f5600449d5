package similarity

// Match is a contiguous run of the needle that occurs contiguously in the
// haystack.
type Match struct {
	Text   string `json:"text"`
	Offset int    `json:"offset"` // needle offset where decomposition found it
	Length int    `json:"length"` // in units
}

// Buckets groups matches by length. Each bucket keeps discovery order.
type Buckets map[int][]Match

func (b Buckets) add(m Match) {
	b[m.Length] = append(b[m.Length], m)
}

// Len returns the number of matches across all buckets.
func (b Buckets) Len() int {
	n := 0
	for _, ms := range b {
		n += len(ms)
	}
	return n
}

// Decompose greedily partitions the needle, left to right, into maximal runs
// that each occur somewhere in the haystack. Runes absent from the haystack are
// skipped. The pass never backtracks and never revisits a needle index, so the
// recorded matches do not overlap in the needle.
func Decompose(needle, haystack []rune) Buckets {
	buckets := make(Buckets)

	i := 0
	for i < len(needle) {
		if !containsRune(haystack, needle[i]) {
			i++
			continue
		}

		// needle[i:end] is known to occur in the haystack.
		end := i + 1
		for end < len(needle) && containsRun(haystack, needle[i:end+1]) {
			end++
		}

		buckets.add(Match{
			Text:   string(needle[i:end]),
			Offset: i,
			Length: end - i,
		})
		i = end
	}

	return buckets
}
