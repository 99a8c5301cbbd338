// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the pdfslice packages:
// run configuration, extraction requests and results, and batch summaries.
package types
