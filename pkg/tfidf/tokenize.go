package tfidf

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// DefaultTokenizer returns the lower-cased word tokens of doc followed by its
// character bigrams, so that single-word strings with typos still share terms.
func DefaultTokenizer(doc string) []string {
	terms := Words(doc)
	for _, g := range NGrams(doc, 2) {
		terms = append(terms, "#"+g)
	}
	return terms
}

// Words tokenizes doc with prose, keeping tokens that contain a letter or a
// digit. If prose rejects the input the text is split on whitespace.
func Words(doc string) []string {
	var raw []string
	parsed, err := prose.NewDocument(doc,
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		raw = strings.Fields(doc)
	} else {
		for _, tok := range parsed.Tokens() {
			raw = append(raw, tok.Text)
		}
	}

	words := make([]string, 0, len(raw))
	for _, w := range raw {
		if strings.IndexFunc(w, isWordRune) >= 0 {
			words = append(words, strings.ToLower(w))
		}
	}
	return words
}

// NGrams returns the rune n-grams of doc after dropping everything but letters
// and digits and lower-casing.
func NGrams(doc string, n int) []string {
	normalized := []rune(normalizeString(doc))
	if n <= 0 || len(normalized) < n {
		return nil
	}
	grams := make([]string, 0, len(normalized)-n+1)
	for i := 0; i <= len(normalized)-n; i++ {
		grams = append(grams, string(normalized[i:i+n]))
	}
	return grams
}

func normalizeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isWordRune(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
