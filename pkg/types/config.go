// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "path/filepath"

const (
	// DefaultOutputSubdir is the output directory name used under the input
	// directory when no output directory is given.
	DefaultOutputSubdir = "extracted"

	// AdvisedMinPages and AdvisedMaxPages bound the page counts the tool is
	// meant for. Values outside the range only produce a warning.
	AdvisedMinPages = 1
	AdvisedMaxPages = 5
)

// ExtractConfig holds the settings of one batch run. It is built once by the
// CLI and passed by value into the batch driver.
type ExtractConfig struct {
	// InputDir is the directory tree searched for PDF files.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// PageCount is the number of pages to copy from each document.
	PageCount int `json:"page_count" yaml:"page_count"`

	// OutputDir receives one excerpt per input file. Nested input
	// directories are flattened into it.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// SkipFirst starts every slice at the second page.
	SkipFirst bool `json:"skip_first" yaml:"skip_first"`
}

// ResolvedOutputDir returns OutputDir, or InputDir/extracted when it is empty.
func (c ExtractConfig) ResolvedOutputDir() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return filepath.Join(c.InputDir, DefaultOutputSubdir)
}

// PageCountAdvised reports whether PageCount lies in the advised range.
func (c ExtractConfig) PageCountAdvised() bool {
	return c.PageCount >= AdvisedMinPages && c.PageCount <= AdvisedMaxPages
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	// Level is a zerolog level name (debug, info, warn, error).
	Level string `json:"level" yaml:"level"`

	// File, when set, additionally writes JSON logs to a rotating file.
	File string `json:"file,omitempty" yaml:"file,omitempty"`

	// MaxSizeMB is the rotation threshold for File (default 10).
	MaxSizeMB int `json:"max_size_mb" yaml:"max_size_mb"`

	// MaxBackups is the number of rotated files kept (default 3).
	MaxBackups int `json:"max_backups" yaml:"max_backups"`
}

// LedgerConfig holds settings for the optional run history database.
type LedgerConfig struct {
	// Path is the SQLite database file. Empty disables the ledger.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// MaxRuns limits how many runs the history command lists (default 20).
	MaxRuns int `json:"max_runs" yaml:"max_runs"`
}

// Enabled reports whether a ledger path is configured.
func (c LedgerConfig) Enabled() bool {
	return c.Path != ""
}
