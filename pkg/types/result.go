// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Outcome tags an ExtractionResult as a success or a failure.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// ExtractionRequest describes one slice to produce.
type ExtractionRequest struct {
	// SourcePath is the PDF to read.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// DestinationPath is the file to write. An existing file is replaced.
	DestinationPath string `json:"destination_path" yaml:"destination_path"`

	// PageCount is the number of pages requested. Non-positive values
	// produce an empty document.
	PageCount int `json:"page_count" yaml:"page_count"`

	// SkipFirst starts the slice at the second page.
	SkipFirst bool `json:"skip_first" yaml:"skip_first"`
}

// ExtractionResult is the outcome of one ExtractionRequest. A success carries
// PagesWritten; a failure carries Message and never leaves a partial file at
// DestinationPath.
type ExtractionResult struct {
	Outcome         Outcome `json:"outcome" yaml:"outcome"`
	SourcePath      string  `json:"source_path" yaml:"source_path"`
	DestinationPath string  `json:"destination_path" yaml:"destination_path"`
	PagesWritten    int     `json:"pages_written" yaml:"pages_written"`
	Message         string  `json:"message,omitempty" yaml:"message,omitempty"`
}

// Success builds a successful result for req.
func Success(req ExtractionRequest, pagesWritten int) ExtractionResult {
	return ExtractionResult{
		Outcome:         OutcomeSuccess,
		SourcePath:      req.SourcePath,
		DestinationPath: req.DestinationPath,
		PagesWritten:    pagesWritten,
	}
}

// Failure builds a failed result for req carrying err's message.
func Failure(req ExtractionRequest, err error) ExtractionResult {
	return ExtractionResult{
		Outcome:         OutcomeFailure,
		SourcePath:      req.SourcePath,
		DestinationPath: req.DestinationPath,
		Message:         err.Error(),
	}
}

// OK reports whether the extraction succeeded.
func (r ExtractionResult) OK() bool {
	return r.Outcome == OutcomeSuccess
}

// BatchSummary counts the outcomes of a batch run.
type BatchSummary struct {
	Succeeded int `json:"succeeded" yaml:"succeeded"`
	Failed    int `json:"failed" yaml:"failed"`
}

// Record adds r to the summary.
func (s *BatchSummary) Record(r ExtractionResult) {
	if r.OK() {
		s.Succeeded++
		return
	}
	s.Failed++
}

// Total returns the number of files processed.
func (s BatchSummary) Total() int {
	return s.Succeeded + s.Failed
}

// HasFailures reports whether any file failed.
func (s BatchSummary) HasFailures() bool {
	return s.Failed > 0
}
