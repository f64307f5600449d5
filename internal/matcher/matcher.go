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
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/TFMV/SimilarityRate/internal/standardizer"
	"github.com/TFMV/SimilarityRate/pkg/similarity"
	"github.com/TFMV/SimilarityRate/pkg/utils"
)

// Options configures a Matcher.
type Options struct {
	Method       similarity.Method
	BlendWeights similarity.BlendWeights
	SmartWeights similarity.SmartWeights
	// TopN truncates the ranking; 0 keeps every candidate.
	TopN    int
	Workers int
	// Normalize runs query and candidates through the standardizer first.
	Normalize bool
	// PrefilterSize keeps only this many candidates, by TF-IDF cosine to the
	// query, before scoring. 0 disables the prefilter.
	PrefilterSize int
	// MinScore drops candidates scoring below it, and undefined ones, when > 0.
	MinScore float64
}

// DefaultOptions scores with SmartRate and default weights on four workers.
func DefaultOptions() Options {
	return Options{
		Method:       similarity.MethodSmart,
		BlendWeights: similarity.DefaultBlendWeights(),
		SmartWeights: similarity.DefaultSmartWeights(),
		Workers:      4,
	}
}

// Candidate is one ranked comparison result.
type Candidate struct {
	Index    int    `json:"index"`
	Value    string `json:"value"`
	Compared string `json:"compared,omitempty"`
	// Score is NaN when Undefined is set; Formatted carries the same value
	// as four-decimal text.
	Score     float64 `json:"-"`
	Formatted string  `json:"score"`
	Undefined bool    `json:"undefined,omitempty"`
	Prefilter float64 `json:"prefilter,omitempty"`
	Rank      int     `json:"rank"`
}

type Matcher struct {
	opts         Options
	standardizer *standardizer.Standardizer
	log          *utils.Logger
}

// New validates opts and returns a Matcher.
func New(opts Options) (*Matcher, error) {
	if opts.Method == "" {
		opts.Method = similarity.MethodSmart
	}
	if _, err := similarity.ParseMethod(string(opts.Method)); err != nil {
		return nil, err
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.TopN < 0 {
		return nil, fmt.Errorf("top n must not be negative, got %d", opts.TopN)
	}
	if opts.PrefilterSize < 0 {
		return nil, fmt.Errorf("prefilter size must not be negative, got %d", opts.PrefilterSize)
	}

	return &Matcher{
		opts:         opts,
		standardizer: standardizer.Default(),
		log:          utils.NewLogger("matcher"),
	}, nil
}

// Options returns the options the Matcher runs with.
func (m *Matcher) Options() Options {
	return m.opts
}

// Rank scores every candidate against query and returns them best first.
// Undefined scores sort after every defined one; equal scores keep input order.
func (m *Matcher) Rank(ctx context.Context, query string, candidates []string) ([]Candidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	query = m.prepare(query)
	pool := make([]Candidate, len(candidates))
	for i, value := range candidates {
		pool[i] = Candidate{Index: i, Value: value, Compared: m.prepare(value)}
	}

	if m.opts.PrefilterSize > 0 && len(pool) > m.opts.PrefilterSize {
		pool = prefilter(query, pool, m.opts.PrefilterSize)
	}

	if err := m.scoreAll(ctx, query, pool); err != nil {
		return nil, fmt.Errorf("unable to score candidates: %w", err)
	}

	if m.opts.MinScore > 0 {
		kept := pool[:0]
		for _, c := range pool {
			if !c.Undefined && c.Score >= m.opts.MinScore {
				kept = append(kept, c)
			}
		}
		pool = kept
	}

	sort.SliceStable(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		if a.Undefined != b.Undefined {
			return !a.Undefined
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Index < b.Index
	})

	if m.opts.TopN > 0 && len(pool) > m.opts.TopN {
		pool = pool[:m.opts.TopN]
	}
	for i := range pool {
		pool[i].Rank = i + 1
	}

	m.log.Debug("ranked candidates",
		"method", m.opts.Method,
		"candidates", len(candidates),
		"returned", len(pool),
	)
	return pool, nil
}

func (m *Matcher) prepare(s string) string {
	if !m.opts.Normalize {
		return s
	}
	return m.standardizer.Standardize(s)
}

func (m *Matcher) score(query string, c *Candidate) {
	score, err := m.opts.Method.Score(query, c.Compared, m.opts.BlendWeights, m.opts.SmartWeights)
	if errors.Is(err, similarity.ErrNoCommonSubstring) {
		c.Undefined = true
		score = math.NaN()
	}
	c.Score = score
	c.Formatted = similarity.Format(score)
}
