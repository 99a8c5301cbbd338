// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pdiddy/pdfslice/pkg/types"
)

// RunRecord is a stored batch run.
type RunRecord struct {
	ID                  string    `json:"id" yaml:"id"`
	StartedAt           time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt          time.Time `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
	types.ExtractConfig `yaml:",inline"`
	types.BatchSummary  `yaml:",inline"`
}

// Finished reports whether the run was closed out.
func (r RunRecord) Finished() bool {
	return !r.FinishedAt.IsZero()
}

// Runs returns the most recent runs, newest first. A non-positive limit uses
// the store default.
func (s *Store) Runs(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = s.maxRuns
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, input_dir, output_dir, page_count, skip_first, succeeded, failed
		 FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var (
			r        RunRecord
			started  string
			finished sql.NullString
		)
		if err := rows.Scan(&r.ID, &started, &finished, &r.InputDir, &r.OutputDir,
			&r.PageCount, &r.SkipFirst, &r.Succeeded, &r.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, _ = time.Parse(timeFormat, started)
		if finished.Valid {
			r.FinishedAt, _ = time.Parse(timeFormat, finished.String)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the per-file results of a run in processing order.
func (s *Store) Results(ctx context.Context, runID string) ([]types.ExtractionResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source_path, destination_path, outcome, pages_written, message
		 FROM results WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var results []types.ExtractionResult
	for rows.Next() {
		var (
			r       types.ExtractionResult
			outcome string
			msg     sql.NullString
		)
		if err := rows.Scan(&r.SourcePath, &r.DestinationPath, &outcome, &r.PagesWritten, &msg); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.Outcome = types.Outcome(outcome)
		r.Message = msg.String
		results = append(results, r)
	}
	return results, rows.Err()
}
