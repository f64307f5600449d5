package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pairs = []struct{ a, b string }{
	{"common chars", "longest common string"},
	{"aabb", "ab"},
	{"kitten", "sitting"},
	{"abcdef", "defabc"},
	{"night", "nacht"},
	{"123 main st", "123 main street"},
	{"ünïcødé", "unicode"},
	{"a", "aaaaaaa"},
	{"same", "same"},
}

func TestOrder(t *testing.T) {
	tests := []struct {
		name             string
		s, t             string
		needle, haystack string
	}{
		{"shorter first", "ab", "abc", "ab", "abc"},
		{"shorter second", "abc", "ab", "ab", "abc"},
		{"equal keeps first", "xy", "ab", "xy", "ab"},
		{"empty", "", "a", "", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			needle, haystack := Order([]rune(tt.s), []rune(tt.t))
			assert.Equal(t, tt.needle, string(needle))
			assert.Equal(t, tt.haystack, string(haystack))
		})
	}
}

// bruteLongest checks every substring of a against b.
func bruteLongest(a, b []rune) int {
	best := 0
	for i := range a {
		for j := i + 1; j <= len(a); j++ {
			if containsRun(b, a[i:j]) && j-i > best {
				best = j - i
			}
		}
	}
	return best
}

func TestLcsRate(t *testing.T) {
	tests := []struct {
		name string
		s, t string
		want string
	}{
		{"known value", "common chars", "longest common string", "0.4242"},
		{"identity", "hello", "hello", "1.0000"},
		{"nothing shared", "xyz", "abc", "0.0000"},
		{"single char", "a", "ba", "0.6667"},
		{"distinct invalid bytes", "\xff", "\xfe", "0.0000"},
		{"latin-1 accents differ", "caf\xe9", "caf\xe8", "0.7500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(LcsRate(tt.s, tt.t)))
		})
	}
}

func TestLcsRate_MatchesBruteForce(t *testing.T) {
	for _, p := range pairs {
		needle, haystack := Order([]rune(p.a), []rune(p.b))
		want := float64(2*bruteLongest(needle, haystack)) / float64(len(needle)+len(haystack))
		assert.Equal(t, Format(want), Format(LcsRate(p.a, p.b)), "%q vs %q", p.a, p.b)
	}
}

func TestTccRate(t *testing.T) {
	tests := []struct {
		name string
		s, t string
		want string
	}{
		{"duplicates consumed once", "aabb", "ab", "0.6667"},
		{"known value", "common chars", "longest common string", "0.5455"},
		{"identity", "abc", "abc", "1.0000"},
		{"repeated needle char", "aaa", "abcdef", "0.2222"},
		{"nothing shared", "xyz", "abc", "0.0000"},
		{"distinct invalid bytes", "\xff\xfe", "\xc0\xc1", "0.0000"},
		{"shared invalid byte", "a\xff", "\xffb", "0.5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(TccRate(tt.s, tt.t)))
		})
	}
}

func TestEmptyInputsScoreZero(t *testing.T) {
	for _, x := range []string{"", "x", "longer text"} {
		assert.Zero(t, LcsRate("", x))
		assert.Zero(t, LcsRate(x, ""))
		assert.Zero(t, TccRate("", x))
		assert.Zero(t, TccRate(x, ""))
		assert.Zero(t, Blend("", x))

		score, err := SmartRate(x, "")
		require.NoError(t, err)
		assert.Zero(t, score)
	}
}

func TestSymmetry(t *testing.T) {
	for _, p := range pairs {
		assert.Equal(t, LcsRate(p.a, p.b), LcsRate(p.b, p.a), "lcs %q %q", p.a, p.b)
		assert.Equal(t, TccRate(p.a, p.b), TccRate(p.b, p.a), "tcc %q %q", p.a, p.b)
	}
}

func TestIdentity(t *testing.T) {
	for _, s := range []string{"a", "hello world", "aaaa", "ünïcødé"} {
		assert.Equal(t, "1.0000", Format(LcsRate(s, s)))
		assert.Equal(t, "1.0000", Format(TccRate(s, s)))
	}
}

func TestBounds(t *testing.T) {
	for _, p := range pairs {
		for name, v := range map[string]float64{
			"lcs":   LcsRate(p.a, p.b),
			"tcc":   TccRate(p.a, p.b),
			"blend": Blend(p.a, p.b),
		} {
			assert.GreaterOrEqual(t, v, 0.0, "%s %q %q", name, p.a, p.b)
			assert.LessOrEqual(t, v, 1.0, "%s %q %q", name, p.a, p.b)
		}

		smart, err := SmartRate(p.a, p.b)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, smart, 0.0, "smart %q %q", p.a, p.b)
		assert.LessOrEqual(t, smart, 1.0, "smart %q %q", p.a, p.b)
	}
}

func TestBlend(t *testing.T) {
	assert.Equal(t, "0.4848", Format(Blend("common chars", "longest common string")))

	for _, p := range pairs {
		assert.Equal(t, TccRate(p.a, p.b), BlendWeighted(p.a, p.b, BlendWeights{Char: 1}))
		assert.Equal(t, LcsRate(p.a, p.b), BlendWeighted(p.a, p.b, BlendWeights{Substring: 1}))
	}
}

func TestBlend_WeightsUnchecked(t *testing.T) {
	got := BlendWeighted("aabb", "ab", BlendWeights{Char: 2, Substring: -1})
	want := 2*TccRate("aabb", "ab") - LcsRate("aabb", "ab")
	assert.InDelta(t, want, got, 1e-12)
}

func TestDecompose(t *testing.T) {
	needle, haystack := Order([]rune("common chars"), []rune("longest common string"))
	got := Decompose(needle, haystack)

	assert.Equal(t, Buckets{
		7: {{Text: "common ", Offset: 0, Length: 7}},
		1: {
			{Text: "c", Offset: 7, Length: 1},
			{Text: "r", Offset: 10, Length: 1},
			{Text: "s", Offset: 11, Length: 1},
		},
	}, got)
	assert.Equal(t, 4, got.Len())
}

func TestDecompose_Cases(t *testing.T) {
	tests := []struct {
		name             string
		needle, haystack string
		want             []string
	}{
		{"whole needle", "abc", "xabcx", []string{"abc"}},
		{"two pieces", "defabc", "abcdef", []string{"def", "abc"}},
		{"last index alone", "abz", "abxz", []string{"ab", "z"}},
		{"skips absent runes", "a-b-c", "abc", []string{"a", "b", "c"}},
		{"nothing shared", "xyz", "abc", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := Decompose([]rune(tt.needle), []rune(tt.haystack))

			var got []string
			for _, m := range inDiscoveryOrder(buckets) {
				got = append(got, m.Text)
				assert.True(t, containsRun([]rune(tt.haystack), []rune(m.Text)), "%q not in haystack", m.Text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func inDiscoveryOrder(b Buckets) []Match {
	var all []Match
	for _, ms := range b {
		all = append(all, ms...)
	}
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j].Offset < all[j-1].Offset; j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}
	return all
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name             string
		needle, haystack string
		want             []string
	}{
		{"shorter covered by longer", "abcb", "abcxyz", []string{"abc"}},
		{"longest first", "common chars", "longest common string", []string{"common ", "r", "s"}},
		{"disjoint occurrences", "abab", "ab-ab", []string{"ab", "ab"}},
		{"repeats bounded by haystack", "aaaa", "a-a-a", []string{"a", "a", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			needle, haystack := Order([]rune(tt.needle), []rune(tt.haystack))
			selected := Select(Decompose(needle, haystack), len(needle), haystack)

			var got []string
			total := 0
			for _, m := range selected {
				got = append(got, m.Text)
				total += m.Length
			}
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, total, len(haystack))
		})
	}
}

func TestSmartRate(t *testing.T) {
	tests := []struct {
		name string
		s, t string
		want string
	}{
		{"known value", "common chars", "longest common string", "0.4476"},
		{"identity", "abcdef", "abcdef", "0.9667"},
		{"two pieces", "defabc", "abcdef", "0.7833"},
		{"covered shorter match", "abcb", "abcxyz", "0.5333"},
		{"repeated run", "aa", "aaa", "0.6333"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SmartRate(tt.s, tt.t)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Format(got))
		})
	}
}

func TestSmartRate_FragmentationLowersScore(t *testing.T) {
	whole, err := SmartRateWeighted("abcdef", "abcdef", SmartWeights{Fragment: 1})
	require.NoError(t, err)
	split, err := SmartRateWeighted("defabc", "abcdef", SmartWeights{Fragment: 1})
	require.NoError(t, err)

	assert.Greater(t, whole, split)
}

func TestSmartRate_NoCommonSubstring(t *testing.T) {
	score, err := SmartRate("xyz", "abc")
	require.ErrorIs(t, err, ErrNoCommonSubstring)
	assert.True(t, math.IsNaN(score))
	assert.Equal(t, "NaN", Format(score))
}

func TestSmartRate_InvalidUTF8(t *testing.T) {
	score, err := SmartRate("\xff", "\x80")
	require.ErrorIs(t, err, ErrNoCommonSubstring)
	assert.True(t, math.IsNaN(score))

	score, err = SmartRate("\xff\xfe", "\xff\xfe")
	require.NoError(t, err)
	assert.Equal(t, "0.9000", Format(score))
}

func TestUnits(t *testing.T) {
	s, u := Units("héllo", "hello")
	assert.Equal(t, []rune("héllo"), s)
	assert.Equal(t, []rune("hello"), u)

	// One invalid string switches both to bytes.
	s, u = Units("é", "\xe9")
	assert.Equal(t, []rune{0xc3, 0xa9}, s)
	assert.Equal(t, []rune{0xe9}, u)
}

func TestWeightsValidate(t *testing.T) {
	assert.NoError(t, DefaultBlendWeights().Validate())
	assert.NoError(t, DefaultSmartWeights().Validate())
	assert.NoError(t, BlendWeights{Char: 3}.Validate())

	assert.ErrorIs(t, BlendWeights{Char: -0.1}.Validate(), ErrInvalidWeights)
	assert.ErrorIs(t, SmartWeights{Longest: math.Inf(1)}.Validate(), ErrInvalidWeights)
	assert.ErrorIs(t, SmartWeights{Fragment: math.NaN()}.Validate(), ErrInvalidWeights)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.6667", Format(2.0/3))
	assert.Equal(t, "0.0000", Format(0))
	assert.Equal(t, "1.0000", Format(1))
	assert.Equal(t, "NaN", Format(math.NaN()))
}

func TestParseMethod(t *testing.T) {
	for _, m := range Methods {
		got, err := ParseMethod(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMethod(" Blend ")
	require.NoError(t, err)
	assert.Equal(t, MethodBlend, got)

	got, err = ParseMethod("")
	require.NoError(t, err)
	assert.Equal(t, MethodSmart, got)

	_, err = ParseMethod("jaro")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestMethodScore(t *testing.T) {
	bw, sw := DefaultBlendWeights(), DefaultSmartWeights()
	a, b := "common chars", "longest common string"

	for m, want := range map[Method]string{
		MethodLCS:   "0.4242",
		MethodTCC:   "0.5455",
		MethodBlend: "0.4848",
		MethodSmart: "0.4476",
	} {
		got, err := m.Score(a, b, bw, sw)
		require.NoError(t, err, m)
		assert.Equal(t, want, Format(got), m)
	}

	_, err := Method("nope").Score(a, b, bw, sw)
	assert.ErrorIs(t, err, ErrUnknownMethod)
}
