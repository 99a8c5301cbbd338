// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest generates small PDF documents for tests and sample data.
// Page i (1-based) of a generated document is PageWidth(i) points wide, so a
// slice can be checked for both length and order by reading page widths back.
package pdftest

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const (
	baseWidth  = 200
	widthStep  = 10
	pageHeight = 600
)

func init() {
	api.DisableConfigDir()
}

// PageWidth returns the width in points of page i (1-based) of a generated
// document.
func PageWidth(i int) float64 {
	return float64(baseWidth + widthStep*i)
}

// Write creates a PDF with the given number of pages at path. Each page shows
// its number. gofpdf cannot emit a document without pages, so pages must be
// at least 1.
func Write(path string, pages int) error {
	if pages < 1 {
		return fmt.Errorf("pdftest: page count must be at least 1, got %d", pages)
	}
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetFont("Helvetica", "", 24)
	for i := 1; i <= pages; i++ {
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: PageWidth(i), Ht: pageHeight})
		pdf.Cell(100, 30, fmt.Sprintf("Page %d", i))
	}
	return pdf.OutputFileAndClose(path)
}

// MustWrite writes a generated PDF named name into dir and returns its path.
func MustWrite(t testing.TB, dir, name string, pages int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := Write(path, pages); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

// MustWriteCorrupt writes a file that carries a PDF header but cannot be
// parsed.
func MustWriteCorrupt(t testing.TB, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("%PDF-1.4\nthis is not a pdf body\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(t testing.TB, path string) int {
	t.Helper()
	n, err := api.PageCountFile(path)
	if err != nil {
		t.Fatalf("counting pages of %s: %v", path, err)
	}
	return n
}

// SourcePages maps each page of the PDF at path back to its 1-based page
// number in the generated source, using the page widths.
func SourcePages(t testing.TB, path string) []int {
	t.Helper()
	dims, err := api.PageDimsFile(path)
	if err != nil {
		t.Fatalf("reading page dimensions of %s: %v", path, err)
	}
	pages := make([]int, len(dims))
	for i, d := range dims {
		pages[i] = int(math.Round((d.Width - baseWidth) / widthStep))
	}
	return pages
}
