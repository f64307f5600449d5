package tfidf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNGrams(t *testing.T) {
	assert.Equal(t, []string{"ab", "bc", "cd"}, NGrams("A-b c!d", 2))
	assert.Equal(t, []string{"üb", "be"}, NGrams("Übe", 2))
	assert.Nil(t, NGrams("a", 2))
	assert.Nil(t, NGrams("abc", 0))
}

func TestWords(t *testing.T) {
	got := Words("Acme Widgets, Inc.")
	assert.Contains(t, got, "acme")
	assert.Contains(t, got, "widgets")
	assert.NotContains(t, got, ",")
}

func TestVectorizer_FitTransform(t *testing.T) {
	v := NewVectorizer(strings.Fields)
	vecs := v.FitTransform([]string{"a b", "a c"})

	require.Len(t, vecs, 2)
	assert.Equal(t, 3, v.VocabularySize())

	// "a" occurs in every document, so it is weighted below "b" and "c".
	a, b := vecs[0][0], vecs[0][1]
	assert.Greater(t, b, a)
	assert.Greater(t, a, 0.0)
}

func TestVectorizer_UnknownTermsIgnored(t *testing.T) {
	v := NewVectorizer(strings.Fields)
	v.Fit([]string{"alpha beta"})

	vecs := v.Transform([]string{"gamma delta"})
	assert.Equal(t, []float64{0, 0}, vecs[0])
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 2}, []float64{2, 4}), 1e-12)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-12)
	assert.Zero(t, Cosine([]float64{0, 0}, []float64{1, 1}))
}

func TestDefaultTokenizer_RanksTypos(t *testing.T) {
	docs := []string{"jonathan smith", "jon smyth", "maria garcia"}
	v := NewVectorizer(nil)
	v.Fit(docs)

	vecs := v.Transform(append([]string{"jonathon smith"}, docs...))
	query := vecs[0]

	assert.Greater(t, Cosine(query, vecs[1]), Cosine(query, vecs[3]))
	assert.Greater(t, Cosine(query, vecs[2]), Cosine(query, vecs[3]))
}
