// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// BaseName returns the file name of path without its extension, in Unicode
// NFC form so that names read from NFD file systems map to the same output.
func BaseName(path string) string {
	name := filepath.Base(path)
	return norm.NFC.String(strings.TrimSuffix(name, filepath.Ext(name)))
}

// OutputName derives the excerpt file name for a source base name.
//
//	normal:     {base}_first_{n}_pages.pdf
//	skip-first: {base}_pages_2_to_{n+1}.pdf
func OutputName(base string, n int, skipFirst bool) string {
	if skipFirst {
		return fmt.Sprintf("%s_pages_2_to_%d.pdf", base, n+1)
	}
	return fmt.Sprintf("%s_first_%d_pages.pdf", base, n)
}
