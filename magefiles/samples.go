//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/pdfslice/internal/pdftest"
)

const samplesDir = "testdata/samples"

// sampleDocs maps sample paths (relative to samplesDir) to page counts.
var sampleDocs = map[string]int{
	"report.pdf":              10,
	"cover.pdf":               1,
	"memos/q1.pdf":            4,
	"memos/q2.pdf":            2,
	"archive/2025/annual.pdf": 12,
}

// Samples writes a small tree of generated PDFs into testdata/samples.
func Samples() error {
	for name, pages := range sampleDocs {
		path := filepath.Join(samplesDir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := pdftest.Write(path, pages); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("  %s (%d pages)\n", path, pages)
	}
	return nil
}

// Demo builds the binary and extracts three pages from every sample.
func Demo() error {
	mg.Deps(Build, Samples)
	return sh.RunV(filepath.Join(binDir, binName), samplesDir, "3")
}
