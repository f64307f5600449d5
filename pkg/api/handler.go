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

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TFMV/SimilarityRate/internal/matcher"
	"github.com/TFMV/SimilarityRate/pkg/config"
	"github.com/TFMV/SimilarityRate/pkg/similarity"
	"github.com/TFMV/SimilarityRate/pkg/utils"
)

// ErrNoStore is reported when a request needs reference strings and no
// database is configured.
var ErrNoStore = errors.New("no reference store configured; pass candidates in the request")

// ReferenceStore is the persistence the match endpoint can use.
type ReferenceStore interface {
	LoadReferences(ctx context.Context) ([]string, error)
	CreateRun(ctx context.Context, description string) (int, error)
	SaveMatches(ctx context.Context, runID int, query string, candidates []matcher.Candidate) error
}

type WeightsRequest struct {
	Blend *similarity.BlendWeights `json:"blend,omitempty"`
	Smart *similarity.SmartWeights `json:"smart,omitempty"`
}

// resolve overlays the request weights on the configured ones.
func (w *WeightsRequest) resolve(cfg config.Weights) (similarity.BlendWeights, similarity.SmartWeights, error) {
	bw, sw := cfg.Blend, cfg.Smart
	if w == nil {
		return bw, sw, nil
	}
	if w.Blend != nil {
		if err := w.Blend.Validate(); err != nil {
			return bw, sw, err
		}
		bw = *w.Blend
	}
	if w.Smart != nil {
		if err := w.Smart.Validate(); err != nil {
			return bw, sw, err
		}
		sw = *w.Smart
	}
	return bw, sw, nil
}

type SimilarityRequest struct {
	A       string          `json:"a"`
	B       string          `json:"b"`
	Weights *WeightsRequest `json:"weights,omitempty"`
}

type SimilarityResponse struct {
	Needle         string                       `json:"needle"`
	Haystack       string                       `json:"haystack"`
	Scores         map[similarity.Method]string `json:"scores"`
	SmartUndefined bool                         `json:"smart_undefined,omitempty"`
	Matches        []similarity.Match           `json:"matches"`
}

type MatchRequest struct {
	Query      string          `json:"query" binding:"required"`
	Candidates []string        `json:"candidates,omitempty"`
	Method     string          `json:"method,omitempty"`
	TopN       *int            `json:"top_n,omitempty"`
	Normalize  *bool           `json:"normalize,omitempty"`
	MinScore   *float64        `json:"min_score,omitempty"`
	Save       bool            `json:"save,omitempty"`
	Weights    *WeightsRequest `json:"weights,omitempty"`
}

type MatchResponse struct {
	Method  similarity.Method   `json:"method"`
	RunID   int                 `json:"run_id,omitempty"`
	Matches []matcher.Candidate `json:"matches"`
	Summary matcher.Summary     `json:"summary"`
}

// SimilarityHandler scores one pair with every method.
func SimilarityHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SimilarityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.SendError(c, http.StatusBadRequest, utils.CodeBadRequest, err)
			return
		}

		bw, sw, err := req.Weights.resolve(cfg.Weights)
		if err != nil {
			utils.SendError(c, http.StatusBadRequest, utils.CodeValidationError, err)
			return
		}

		report := matcher.Compare(req.A, req.B, bw, sw)
		c.JSON(http.StatusOK, SimilarityResponse{
			Needle:         report.Needle,
			Haystack:       report.Haystack,
			Scores:         report.Formatted(),
			SmartUndefined: report.SmartUndefined,
			Matches:        report.Matches,
		})
	}
}

// MatchHandler ranks candidates against a query. Without candidates in the
// request the reference strings of the store are used.
func MatchHandler(cfg *config.Config, store ReferenceStore) gin.HandlerFunc {
	log := utils.NewLogger("api")

	return func(c *gin.Context) {
		var req MatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.SendError(c, http.StatusBadRequest, utils.CodeBadRequest, err)
			return
		}

		opts, err := matchOptions(cfg, &req)
		if err != nil {
			utils.SendError(c, http.StatusBadRequest, utils.CodeValidationError, err)
			return
		}
		m, err := matcher.New(opts)
		if err != nil {
			utils.SendError(c, http.StatusBadRequest, utils.CodeValidationError, err)
			return
		}

		ctx := c.Request.Context()
		candidates := req.Candidates
		if len(candidates) == 0 || req.Save {
			if store == nil {
				utils.SendError(c, http.StatusServiceUnavailable, utils.CodeServiceUnavailable, ErrNoStore)
				return
			}
		}
		if len(candidates) == 0 {
			candidates, err = store.LoadReferences(ctx)
			if err != nil {
				log.ErrorErr(err, "failed to load references")
				utils.SendError(c, http.StatusInternalServerError, utils.CodeServerError, err)
				return
			}
		}

		ranked, err := m.Rank(ctx, req.Query, candidates)
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, utils.CodeServerError, err)
			return
		}
		if ranked == nil {
			ranked = []matcher.Candidate{}
		}

		resp := MatchResponse{
			Method:  opts.Method,
			Matches: ranked,
			Summary: matcher.Summarize(ranked),
		}

		if req.Save {
			runID, err := store.CreateRun(ctx, "match: "+req.Query)
			if err == nil {
				err = store.SaveMatches(ctx, runID, req.Query, ranked)
			}
			if err != nil {
				log.ErrorErr(err, "failed to save matches")
				utils.SendError(c, http.StatusInternalServerError, utils.CodeServerError, err)
				return
			}
			resp.RunID = runID
			utils.FromContext(ctx).Debug("saved match run", "run_id", runID, "matches", len(ranked))
		}

		c.JSON(http.StatusOK, resp)
	}
}

func matchOptions(cfg *config.Config, req *MatchRequest) (matcher.Options, error) {
	name := cfg.Matcher.Method
	if req.Method != "" {
		name = req.Method
	}
	method, err := similarity.ParseMethod(name)
	if err != nil {
		return matcher.Options{}, err
	}

	bw, sw, err := req.Weights.resolve(cfg.Weights)
	if err != nil {
		return matcher.Options{}, err
	}

	opts := matcher.Options{
		Method:        method,
		BlendWeights:  bw,
		SmartWeights:  sw,
		TopN:          cfg.Matcher.TopN,
		Workers:       cfg.Matcher.Workers,
		Normalize:     cfg.Matcher.Normalize,
		PrefilterSize: cfg.Matcher.PrefilterSize,
		MinScore:      cfg.Matcher.MinScore,
	}
	if req.TopN != nil {
		opts.TopN = *req.TopN
	}
	if req.Normalize != nil {
		opts.Normalize = *req.Normalize
	}
	if req.MinScore != nil {
		opts.MinScore = *req.MinScore
	}
	return opts, nil
}

func HealthCheckHandler(store ReferenceStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		zuluTime := time.Now().UTC().Format(time.RFC3339)
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"zuluTime": zuluTime,
			"database": store != nil,
		})
	}
}
