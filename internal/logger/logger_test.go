// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdfslice/pkg/types"
)

func TestInit_LevelFiltersConsole(t *testing.T) {
	var console bytes.Buffer
	require.NoError(t, Init(types.LogConfig{Level: "warn"}, &console))
	t.Cleanup(Close)

	log.Info().Msg("hidden")
	log.Warn().Msg("visible")

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "visible")
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	var console bytes.Buffer
	require.NoError(t, Init(types.LogConfig{Level: "chatty"}, &console))
	t.Cleanup(Close)

	log.Debug().Msg("debug line")
	log.Info().Msg("info line")

	assert.NotContains(t, console.String(), "debug line")
	assert.Contains(t, console.String(), "info line")
}

func TestInit_WritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pdfslice.log")
	require.NoError(t, Init(types.LogConfig{Level: "debug", File: path}, &bytes.Buffer{}))

	log.Debug().Str("source", "a.pdf").Msg("computed page range")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"source":"a.pdf"`)
	assert.Contains(t, string(data), `"message":"computed page range"`)
}
