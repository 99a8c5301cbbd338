// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs the page-slice extraction over every PDF in a directory
// tree, writes one excerpt per file into a flat output directory, and reports
// per-file outcomes and a final summary.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/pdiddy/pdfslice/pkg/types"
)

// ErrInputDir is returned when the input directory is missing or is not a
// directory.
var ErrInputDir = errors.New("input directory does not exist")

// Extractor produces one excerpt. Implementations report every failure
// through the returned result.
type Extractor interface {
	Extract(req types.ExtractionRequest) types.ExtractionResult
}

// Observer receives each result after it has been reported. Observers must
// not affect the outcome of the batch.
type Observer interface {
	Observe(r types.ExtractionResult)
}

// Driver walks an input tree and extracts a slice from every PDF found.
type Driver struct {
	extractor Extractor
	observers []Observer
	w         io.Writer
}

// NewDriver returns a Driver that extracts with e, prints progress to w and
// forwards every result to the observers in order.
func NewDriver(e Extractor, w io.Writer, observers ...Observer) *Driver {
	return &Driver{extractor: e, observers: observers, w: w}
}

// Run processes every PDF under cfg.InputDir. A missing input directory or
// an output directory that cannot be created is returned as an error before
// any file is touched. Per-file failures are counted in the summary and do
// not stop the batch. If ctx is cancelled, Run stops before the next file and
// returns the summary so far with ctx.Err().
func (d *Driver) Run(ctx context.Context, cfg types.ExtractConfig) (types.BatchSummary, error) {
	var summary types.BatchSummary

	if err := CheckInputDir(cfg.InputDir); err != nil {
		return summary, err
	}

	outDir := cfg.ResolvedOutputDir()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return summary, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	files, err := Discover(cfg.InputDir, outDir)
	if err != nil {
		return summary, fmt.Errorf("scanning %s: %w", cfg.InputDir, err)
	}

	if len(files) == 0 {
		fmt.Fprintf(d.w, "No PDF files found in '%s'\n", cfg.InputDir)
		return summary, nil
	}

	fmt.Fprintf(d.w, "Found %d PDF files\n", len(files))
	if cfg.SkipFirst {
		fmt.Fprintf(d.w, "Extracting pages 2-%d from each (skipping first page)...\n", cfg.PageCount+1)
	} else {
		fmt.Fprintf(d.w, "Extracting first %d pages from each...\n", cfg.PageCount)
	}
	fmt.Fprintf(d.w, "Output directory: %s\n\n", outDir)

	written := make(map[string]string, len(files))
	for _, src := range files {
		select {
		case <-ctx.Done():
			fmt.Fprintf(d.w, "\nInterrupted: %d successful, %d errors\n", summary.Succeeded, summary.Failed)
			return summary, ctx.Err()
		default:
		}

		name := OutputName(BaseName(src), cfg.PageCount, cfg.SkipFirst)
		dst := filepath.Join(outDir, name)
		if prev, ok := written[dst]; ok {
			log.Warn().Str("output", name).Str("previous", prev).Str("source", src).
				Msg("output name collision, overwriting earlier excerpt")
		}
		written[dst] = src

		res := d.extractor.Extract(types.ExtractionRequest{
			SourcePath:      src,
			DestinationPath: dst,
			PageCount:       cfg.PageCount,
			SkipFirst:       cfg.SkipFirst,
		})
		d.report(res)
		summary.Record(res)
		for _, o := range d.observers {
			o.Observe(res)
		}
	}

	fmt.Fprintf(d.w, "\nComplete: %d successful, %d errors\n", summary.Succeeded, summary.Failed)
	return summary, nil
}

// CheckInputDir returns an error wrapping ErrInputDir unless dir is an
// existing directory.
func CheckInputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: '%s'", ErrInputDir, dir)
	}
	return nil
}

func (d *Driver) report(r types.ExtractionResult) {
	src := filepath.Base(r.SourcePath)
	if r.OK() {
		fmt.Fprintf(d.w, "✓ %s -> %s (%d pages)\n", src, filepath.Base(r.DestinationPath), r.PagesWritten)
		return
	}
	fmt.Fprintf(d.w, "✗ %s - Error: %s\n", src, r.Message)
}
