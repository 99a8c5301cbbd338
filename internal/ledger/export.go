// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfslice/pkg/types"
)

// ExportRun is a run together with its per-file results.
type ExportRun struct {
	RunRecord `yaml:",inline"`
	Results   []types.ExtractionResult `json:"results" yaml:"results"`
}

// Export writes the most recent runs (up to limit) with their results to w
// as "yaml" or "json".
func (s *Store) Export(ctx context.Context, w io.Writer, format string, limit int) error {
	runs, err := s.Runs(ctx, limit)
	if err != nil {
		return err
	}

	entries := make([]ExportRun, len(runs))
	for i, r := range runs {
		results, err := s.Results(ctx, r.ID)
		if err != nil {
			return err
		}
		entries[i] = ExportRun{RunRecord: r, Results: results}
	}

	switch format {
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}
