// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger configures the zerolog global logger. Diagnostics go to
// stderr through a console writer and, optionally, to a rotating JSON log
// file. Progress lines meant for the user are not logged; commands print
// them to stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/pdiddy/pdfslice/pkg/types"
)

const (
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3
)

// closer is the rotating file writer of the last Init, if any.
var closer io.Closer

// Init replaces the global logger according to cfg. An unknown level falls
// back to info. Console output goes to console (normally os.Stderr).
func Init(cfg types.LogConfig, console io.Writer) error {
	Close()

	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: console, TimeFormat: time.Kitchen},
	}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		maxSize := cfg.MaxSizeMB
		if maxSize <= 0 {
			maxSize = defaultMaxSizeMB
		}
		maxBackups := cfg.MaxBackups
		if maxBackups <= 0 {
			maxBackups = defaultMaxBackups
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
		}
		closer = lj
		writers = append(writers, lj)
	}

	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(io.MultiWriter(writers...)).Level(lvl).With().Timestamp().Logger()
	return nil
}

// Close releases the log file opened by Init.
func Close() {
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
}
