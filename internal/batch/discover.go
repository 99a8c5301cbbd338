// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// pdfExt is the extension of the files a batch picks up, matched without
// regard to case.
const pdfExt = ".pdf"

// IsPDFName reports whether name carries the PDF extension.
func IsPDFName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), pdfExt)
}

// Discover walks root recursively and returns every non-directory entry with
// a PDF extension, in lexical walk order. The directory exclude, if it lies
// inside root, is not descended into. Unreadable subdirectories are skipped
// with a warning; an unreadable root is an error.
func Discover(root, exclude string) ([]string, error) {
	excludeAbs := ""
	if exclude != "" {
		if abs, err := filepath.Abs(exclude); err == nil {
			excludeAbs = abs
		}
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")
			return nil
		}
		if d.IsDir() {
			if path != root && excludeAbs != "" && sameDir(path, excludeAbs) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsPDFName(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func sameDir(path, abs string) bool {
	p, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return p == abs
}
