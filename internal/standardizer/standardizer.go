// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package standardizer

import (
	"strings"
	"unicode"
)

// DefaultAbbreviations maps long word forms to the short forms they are
// compared as.
var DefaultAbbreviations = map[string]string{
	"avenue":       "ave",
	"boulevard":    "blvd",
	"parkway":      "pkwy",
	"circle":       "cir",
	"court":        "ct",
	"center":       "ctr",
	"drive":        "dr",
	"highway":      "hwy",
	"lane":         "ln",
	"place":        "pl",
	"road":         "rd",
	"street":       "st",
	"terrace":      "ter",
	"northwest":    "nw",
	"southeast":    "se",
	"southwest":    "sw",
	"northeast":    "ne",
	"suite":        "ste",
	"apartment":    "apt",
	"floor":        "fl",
	"north":        "n",
	"south":        "s",
	"east":         "e",
	"west":         "w",
	"company":      "co",
	"corporation":  "corp",
	"incorporated": "inc",
	"limited":      "ltd",
}

// Standardizer normalises free text before it is scored.
type Standardizer struct {
	abbreviations map[string]string
}

// New returns a Standardizer using the given abbreviation table. A nil table
// disables abbreviation.
func New(abbreviations map[string]string) *Standardizer {
	return &Standardizer{abbreviations: abbreviations}
}

// Default returns a Standardizer using DefaultAbbreviations.
func Default() *Standardizer {
	return New(DefaultAbbreviations)
}

// Standardize lower-cases s, drops punctuation and symbols, collapses
// whitespace and abbreviates known words.
func (s *Standardizer) Standardize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	text = strings.Map(func(r rune) rune {
		if r == '#' || r == '-' {
			return r
		}
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return r
	}, text)

	words := strings.Fields(text)
	for i := range words {
		// unit numbers lose their '#' prefix
		if i > 0 && (words[i-1] == "unit" || words[i-1] == "ste" || words[i-1] == "apt" || words[i-1] == "fl") {
			words[i] = strings.TrimPrefix(words[i], "#")
		}
		if abbr, ok := s.abbreviations[words[i]]; ok {
			words[i] = abbr
		}
	}

	return strings.Join(words, " ")
}

// Standardize applies the default Standardizer.
func Standardize(text string) string {
	return Default().Standardize(text)
}
