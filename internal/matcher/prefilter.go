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

package matcher

import (
	"sort"

	"github.com/TFMV/SimilarityRate/pkg/tfidf"
)

// prefilter keeps the size candidates closest to query by TF-IDF cosine,
// preserving input order among them.
func prefilter(query string, pool []Candidate, size int) []Candidate {
	docs := make([]string, len(pool))
	for i, c := range pool {
		docs[i] = c.Compared
	}

	v := tfidf.NewVectorizer(nil)
	v.Fit(docs)
	vecs := v.Transform(append([]string{query}, docs...))

	for i := range pool {
		pool[i].Prefilter = tfidf.Cosine(vecs[0], vecs[i+1])
	}

	byCosine := make([]Candidate, len(pool))
	copy(byCosine, pool)
	sort.SliceStable(byCosine, func(i, j int) bool {
		return byCosine[i].Prefilter > byCosine[j].Prefilter
	})
	kept := byCosine[:size]

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Index < kept[j].Index
	})
	return kept
}
