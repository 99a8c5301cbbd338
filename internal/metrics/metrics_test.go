// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfslice/pkg/types"
)

func TestRecorder_Observe(t *testing.T) {
	r := New()
	r.Observe(types.ExtractionResult{Outcome: types.OutcomeSuccess, PagesWritten: 3})
	r.Observe(types.ExtractionResult{Outcome: types.OutcomeSuccess, PagesWritten: 1})
	r.Observe(types.ExtractionResult{Outcome: types.OutcomeFailure, Message: "bad"})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.files.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.files.WithLabelValues("failure")))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.pages))
}

func TestRecorder_WriteFile(t *testing.T) {
	r := New()
	r.Observe(types.ExtractionResult{Outcome: types.OutcomeSuccess, PagesWritten: 2})
	r.Finish()

	path := filepath.Join(t.TempDir(), "pdfslice.prom")
	require.NoError(t, r.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `pdfslice_files_total{outcome="success"} 1`)
	assert.Contains(t, text, `pdfslice_files_total{outcome="failure"} 0`)
	assert.Contains(t, text, "pdfslice_pages_written_total 2")
	assert.Contains(t, text, "pdfslice_last_run_timestamp_seconds")
}
