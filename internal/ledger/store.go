// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger keeps an optional SQLite history of batch runs and their
// per-file results, and exports it as YAML or JSON.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/pdiddy/pdfslice/pkg/types"
)

const (
	defaultMaxRuns = 20

	// timeFormat has a fixed width so stored timestamps sort lexically.
	timeFormat = "2006-01-02T15:04:05.000000000Z07:00"
)

// Store manages the ledger database.
type Store struct {
	db      *sql.DB
	maxRuns int
}

// Open opens or creates the ledger database at cfg.Path, creating parent
// directories and the schema as needed.
func Open(cfg types.LedgerConfig) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening ledger: %w", err)
	}

	maxRuns := cfg.MaxRuns
	if maxRuns <= 0 {
		maxRuns = defaultMaxRuns
	}

	s := &Store{db: db, maxRuns: maxRuns}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			finished_at TEXT,
			input_dir TEXT NOT NULL,
			output_dir TEXT NOT NULL,
			page_count INTEGER NOT NULL,
			skip_first INTEGER NOT NULL,
			succeeded INTEGER NOT NULL DEFAULT 0,
			failed INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			source_path TEXT NOT NULL,
			destination_path TEXT NOT NULL,
			outcome TEXT NOT NULL,
			pages_written INTEGER NOT NULL,
			message TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_run_id ON results(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Run records the results of one batch run. It implements batch.Observer.
type Run struct {
	ID    string
	ctx   context.Context
	store *Store
}

// BeginRun inserts a new run for cfg and returns a Run that appends results
// to it.
func (s *Store) BeginRun(ctx context.Context, cfg types.ExtractConfig) (*Run, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, input_dir, output_dir, page_count, skip_first)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, now(), cfg.InputDir, cfg.ResolvedOutputDir(), cfg.PageCount, cfg.SkipFirst,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting run: %w", err)
	}
	return &Run{ID: id, ctx: ctx, store: s}, nil
}

// Observe appends res to the run. Insert failures are logged and do not
// affect the batch.
func (r *Run) Observe(res types.ExtractionResult) {
	_, err := r.store.db.ExecContext(r.ctx,
		`INSERT INTO results (run_id, source_path, destination_path, outcome, pages_written, message)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, res.SourcePath, res.DestinationPath, string(res.Outcome), res.PagesWritten, res.Message,
	)
	if err != nil {
		log.Warn().Err(err).Str("run", r.ID).Str("source", res.SourcePath).Msg("ledger insert failed")
	}
}

// Finish stores the final counts of the run. It uses a fresh context so an
// interrupted run is still closed out.
func (r *Run) Finish(summary types.BatchSummary) error {
	_, err := r.store.db.ExecContext(context.Background(),
		`UPDATE runs SET finished_at = ?, succeeded = ?, failed = ? WHERE id = ?`,
		now(), summary.Succeeded, summary.Failed, r.ID,
	)
	if err != nil {
		return fmt.Errorf("finishing run %s: %w", r.ID, err)
	}
	return nil
}

func now() string {
	return time.Now().UTC().Format(timeFormat)
}
