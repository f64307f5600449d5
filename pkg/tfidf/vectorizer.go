package tfidf

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Tokenizer splits a document into terms.
type Tokenizer func(doc string) []string

type Vectorizer struct {
	tokenize   Tokenizer
	vocabulary map[string]int
	idf        []float64
}

// NewVectorizer returns a Vectorizer using tokenize, or DefaultTokenizer when
// tokenize is nil.
func NewVectorizer(tokenize Tokenizer) *Vectorizer {
	if tokenize == nil {
		tokenize = DefaultTokenizer
	}
	return &Vectorizer{
		tokenize:   tokenize,
		vocabulary: make(map[string]int),
	}
}

// Fit learns the vocabulary and smoothed inverse document frequencies of docs.
func (v *Vectorizer) Fit(docs []string) {
	docCount := len(docs)
	termDocCount := make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range v.tokenize(doc) {
			if _, exists := v.vocabulary[term]; !exists {
				v.vocabulary[term] = len(v.vocabulary)
			}
			if !seen[term] {
				termDocCount[term]++
				seen[term] = true
			}
		}
	}

	v.idf = make([]float64, len(v.vocabulary))
	for term, count := range termDocCount {
		v.idf[v.vocabulary[term]] = math.Log(float64(1+docCount)/float64(1+count)) + 1
	}
}

// Transform maps docs onto the fitted vocabulary. Terms never seen by Fit are
// ignored.
func (v *Vectorizer) Transform(docs []string) [][]float64 {
	tfIdfVectors := make([][]float64, len(docs))

	for i, doc := range docs {
		tfIdf := make([]float64, len(v.vocabulary))
		for _, term := range v.tokenize(doc) {
			if j, ok := v.vocabulary[term]; ok {
				tfIdf[j]++
			}
		}
		for j := range tfIdf {
			tfIdf[j] *= v.idf[j]
		}
		tfIdfVectors[i] = tfIdf
	}

	return tfIdfVectors
}

func (v *Vectorizer) FitTransform(docs []string) [][]float64 {
	v.Fit(docs)
	return v.Transform(docs)
}

// VocabularySize returns the number of distinct terms learnt by Fit.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

// Cosine returns the cosine similarity of two vectors of equal length, or 0
// when either has no magnitude.
func Cosine(a, b []float64) float64 {
	magA, magB := floats.Norm(a, 2), floats.Norm(b, 2)
	if magA == 0 || magB == 0 {
		return 0
	}
	return floats.Dot(a, b) / (magA * magB)
}
