// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfslice/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.LedgerConfig{Path: filepath.Join(t.TempDir(), "state", "ledger.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func recordRun(t *testing.T, s *Store, cfg types.ExtractConfig, results ...types.ExtractionResult) *Run {
	t.Helper()
	run, err := s.BeginRun(context.Background(), cfg)
	require.NoError(t, err)

	var summary types.BatchSummary
	for _, r := range results {
		run.Observe(r)
		summary.Record(r)
	}
	require.NoError(t, run.Finish(summary))
	return run
}

func TestRunLifecycle(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	cfg := types.ExtractConfig{InputDir: "/in", PageCount: 3, SkipFirst: true}

	req := types.ExtractionRequest{SourcePath: "/in/a.pdf", DestinationPath: "/in/extracted/a_pages_2_to_4.pdf"}
	bad := types.ExtractionRequest{SourcePath: "/in/b.pdf", DestinationPath: "/in/extracted/b_pages_2_to_4.pdf"}
	run := recordRun(t, s, cfg,
		types.Success(req, 3),
		types.Failure(bad, errors.New("parsing PDF: no xref")),
	)

	runs, err := s.Runs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, run.ID, got.ID)
	assert.True(t, got.Finished())
	assert.Equal(t, "/in", got.InputDir)
	assert.Equal(t, filepath.Join("/in", "extracted"), got.OutputDir)
	assert.Equal(t, 3, got.PageCount)
	assert.True(t, got.SkipFirst)
	assert.Equal(t, 1, got.Succeeded)
	assert.Equal(t, 1, got.Failed)

	results, err := s.Results(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, types.Success(req, 3), results[0])
	assert.Equal(t, types.OutcomeFailure, results[1].Outcome)
	assert.Equal(t, "parsing PDF: no xref", results[1].Message)
}

func TestRuns_NewestFirstAndLimit(t *testing.T) {
	s := testStore(t)
	var ids []string
	for i := 1; i <= 3; i++ {
		run := recordRun(t, s, types.ExtractConfig{InputDir: "/in", PageCount: i})
		ids = append(ids, run.ID)
	}

	runs, err := s.Runs(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, ids[2], runs[0].ID)
	assert.Equal(t, ids[1], runs[1].ID)
}

func TestUnfinishedRun(t *testing.T) {
	s := testStore(t)
	_, err := s.BeginRun(context.Background(), types.ExtractConfig{InputDir: "/in", PageCount: 1})
	require.NoError(t, err)

	runs, err := s.Runs(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.False(t, runs[0].Finished())
}

func TestExport(t *testing.T) {
	s := testStore(t)
	req := types.ExtractionRequest{SourcePath: "/in/a.pdf", DestinationPath: "/out/a_first_2_pages.pdf"}
	run := recordRun(t, s, types.ExtractConfig{InputDir: "/in", OutputDir: "/out", PageCount: 2}, types.Success(req, 2))

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Export(context.Background(), &buf, "yaml", 0))

		var entries []ExportRun
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, run.ID, entries[0].ID)
		assert.Equal(t, "/out", entries[0].OutputDir)
		require.Len(t, entries[0].Results, 1)
		assert.Equal(t, 2, entries[0].Results[0].PagesWritten)
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Export(context.Background(), &buf, "json", 0))

		var entries []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, run.ID, entries[0]["id"])
		assert.Equal(t, "/in", entries[0]["input_dir"])
		assert.EqualValues(t, 1, entries[0]["succeeded"])
	})

	t.Run("unsupported", func(t *testing.T) {
		err := s.Export(context.Background(), &bytes.Buffer{}, "csv", 0)
		assert.ErrorContains(t, err, "unsupported format")
	})
}
