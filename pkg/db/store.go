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

package db

import (
	"context"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TFMV/SimilarityRate/internal/matcher"
)

const resultsTable = "match_results"

// Store keeps the reference strings queries are ranked against, and the
// results of each ranking run.
type Store struct {
	pool  *pgxpool.Pool
	table string
}

func NewStore(pool *pgxpool.Pool, table string) *Store {
	return &Store{pool: pool, table: table}
}

func (s *Store) ident() string {
	return pgx.Identifier{s.table}.Sanitize()
}

// EnsureSchema creates the tables the store uses when they are missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id SERIAL PRIMARY KEY,
			value TEXT NOT NULL
		)`, s.ident()),
		`CREATE TABLE IF NOT EXISTS runs (
			run_id SERIAL PRIMARY KEY,
			description TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS match_results (
			run_id INTEGER NOT NULL REFERENCES runs (run_id),
			query TEXT NOT NULL,
			value TEXT NOT NULL,
			rank INTEGER NOT NULL,
			score DOUBLE PRECISION
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("unable to create schema: %w", err)
		}
	}
	return nil
}

// LoadReferences returns every reference string in insertion order.
func (s *Store) LoadReferences(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, fmt.Sprintf("SELECT value FROM %s ORDER BY id", s.ident()))
	if err != nil {
		return nil, fmt.Errorf("unable to query references: %w", err)
	}

	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("unable to scan references: %w", err)
	}
	return values, nil
}

// InsertReferences bulk-loads values with COPY.
func (s *Store) InsertReferences(ctx context.Context, values []string) (int64, error) {
	n, err := s.pool.CopyFrom(ctx,
		pgx.Identifier{s.table},
		[]string{"value"},
		pgx.CopyFromSlice(len(values), func(i int) ([]any, error) {
			return []any{values[i]}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("unable to copy references: %w", err)
	}
	return n, nil
}

func (s *Store) CreateRun(ctx context.Context, description string) (int, error) {
	var runID int
	err := s.pool.QueryRow(ctx,
		"INSERT INTO runs (description) VALUES ($1) RETURNING run_id",
		description,
	).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("unable to create run: %w", err)
	}
	return runID, nil
}

// SaveMatches records a ranking under runID.
func (s *Store) SaveMatches(ctx context.Context, runID int, query string, candidates []matcher.Candidate) error {
	rows := matchRows(runID, query, candidates)
	_, err := s.pool.CopyFrom(ctx,
		pgx.Identifier{resultsTable},
		[]string{"run_id", "query", "value", "rank", "score"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("unable to copy match results: %w", err)
	}
	return nil
}

// matchRows lays candidates out for COPY. Undefined scores are stored as NULL.
func matchRows(runID int, query string, candidates []matcher.Candidate) [][]any {
	rows := make([][]any, len(candidates))
	for i, c := range candidates {
		var score any
		if !c.Undefined && !math.IsNaN(c.Score) {
			score = c.Score
		}
		rows[i] = []any{runID, query, c.Value, c.Rank, score}
	}
	return rows
}
