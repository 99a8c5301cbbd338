// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slice

import "fmt"

// PageRange is a zero-based, half-open range of page indices [Start, End).
type PageRange struct {
	Start int
	End   int
}

// Len returns the number of pages in the range.
func (r PageRange) Len() int {
	return r.End - r.Start
}

// Empty reports whether the range selects no pages.
func (r PageRange) Empty() bool {
	return r.Len() <= 0
}

// Selection returns the range as a 1-based inclusive pdfcpu page selection,
// e.g. "2-4". It returns "" for an empty range.
func (r PageRange) Selection() string {
	if r.Empty() {
		return ""
	}
	return fmt.Sprintf("%d-%d", r.Start+1, r.End)
}

// ComputeRange returns the pages to copy from a document with pageCount
// pages when requested pages are asked for. With skipFirst the range starts
// at index 1. The result never extends past the document and never has a
// negative length.
func ComputeRange(pageCount, requested int, skipFirst bool) PageRange {
	start := 0
	if skipFirst {
		start = 1
	}
	if requested <= 0 || start >= pageCount {
		return PageRange{Start: start, End: start}
	}
	end := min(start+requested, pageCount)
	return PageRange{Start: start, End: end}
}
