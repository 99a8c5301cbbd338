// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slice copies a contiguous run of leading pages from one PDF into a
// new PDF. Parsing and writing are delegated to pdfcpu; this package owns the
// page arithmetic and turns every failure into an ExtractionResult.
package slice

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog/log"

	"github.com/pdiddy/pdfslice/pkg/types"
)

const pdfMIME = "application/pdf"

var disableConfigDir sync.Once

// Extractor produces page slices with pdfcpu.
type Extractor struct{}

// NewExtractor returns an Extractor. pdfcpu is configured to use its
// built-in defaults instead of creating a configuration directory under the
// user's home.
func NewExtractor() *Extractor {
	disableConfigDir.Do(api.DisableConfigDir)
	return &Extractor{}
}

// Extract reads req.SourcePath, copies the computed page range into a new
// document and writes it to req.DestinationPath. It never returns a Go error:
// unreadable, non-PDF, malformed or encrypted sources and write failures are
// reported as a failed ExtractionResult.
func (e *Extractor) Extract(req types.ExtractionRequest) types.ExtractionResult {
	n, err := e.extract(req)
	if err != nil {
		log.Debug().Err(err).Str("source", req.SourcePath).Msg("extraction failed")
		return types.Failure(req, err)
	}
	return types.Success(req, n)
}

func (e *Extractor) extract(req types.ExtractionRequest) (int, error) {
	data, err := os.ReadFile(req.SourcePath)
	if err != nil {
		return 0, fmt.Errorf("reading source: %w", err)
	}

	if mt := mimetype.Detect(data); !mt.Is(pdfMIME) {
		return 0, fmt.Errorf("not a PDF (detected %s)", mt.String())
	}

	pageCount, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("parsing PDF: %w", err)
	}

	r := ComputeRange(pageCount, req.PageCount, req.SkipFirst)
	log.Debug().
		Str("source", req.SourcePath).
		Int("page_count", pageCount).
		Int("start", r.Start).
		Int("end", r.End).
		Msg("computed page range")

	err = writeFileAtomic(req.DestinationPath, func(w io.Writer) error {
		if r.Empty() {
			return writeEmptyDocument(w)
		}
		return api.Trim(bytes.NewReader(data), w, []string{r.Selection()}, model.NewDefaultConfiguration())
	})
	if err != nil {
		return 0, fmt.Errorf("writing %s: %w", filepath.Base(req.DestinationPath), err)
	}
	return r.Len(), nil
}

// writeFileAtomic streams write into a temp file next to path and renames it
// over path once complete. On error the temp file is removed and path is left
// untouched.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".pdfslice-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
