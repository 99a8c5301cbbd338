// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfslice/internal/batch"
	"github.com/pdiddy/pdfslice/internal/ledger"
	"github.com/pdiddy/pdfslice/internal/metrics"
	"github.com/pdiddy/pdfslice/internal/slice"
	"github.com/pdiddy/pdfslice/pkg/types"
)

// extractConfig builds the run configuration from the positional arguments.
// The page count must be a positive integer.
func extractConfig(args []string, skipFirst bool) (types.ExtractConfig, error) {
	pages, err := strconv.Atoi(args[1])
	if err != nil {
		return types.ExtractConfig{}, fmt.Errorf("invalid page count %q: must be an integer", args[1])
	}
	if pages < 1 {
		return types.ExtractConfig{}, fmt.Errorf("invalid page count %d: must be at least 1", pages)
	}

	cfg := types.ExtractConfig{
		InputDir:  args[0],
		PageCount: pages,
		SkipFirst: skipFirst,
	}
	if len(args) > 2 {
		cfg.OutputDir = args[2]
	}
	return cfg, nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := extractConfig(args, viper.GetBool("skip_first"))
	if err != nil {
		return err
	}
	if err := batch.CheckInputDir(cfg.InputDir); err != nil {
		return err
	}
	if !cfg.PageCountAdvised() {
		log.Warn().Int("pages", cfg.PageCount).
			Msgf("page count should be between %d and %d", types.AdvisedMinPages, types.AdvisedMaxPages)
	}

	var observers []batch.Observer

	var rec *metrics.Recorder
	metricsFile := viper.GetString("metrics_file")
	if metricsFile != "" {
		rec = metrics.New()
		observers = append(observers, rec)
	}

	var run *ledger.Run
	if lc := ledgerConfig(); lc.Enabled() {
		store, err := ledger.Open(lc)
		if err != nil {
			return err
		}
		defer store.Close()

		run, err = store.BeginRun(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		observers = append(observers, run)
		log.Debug().Str("run", run.ID).Str("ledger", lc.Path).Msg("recording run")
	}

	driver := batch.NewDriver(slice.NewExtractor(), cmd.OutOrStdout(), observers...)
	summary, runErr := driver.Run(cmd.Context(), cfg)

	if run != nil {
		if err := run.Finish(summary); err != nil {
			log.Warn().Err(err).Msg("ledger update failed")
		}
	}
	if rec != nil {
		rec.Finish()
		if err := rec.WriteFile(metricsFile); err != nil {
			log.Warn().Err(err).Str("path", metricsFile).Msg("writing metrics failed")
		}
	}

	return runErr
}

func ledgerConfig() types.LedgerConfig {
	return types.LedgerConfig{
		Path:    viper.GetString("ledger.path"),
		MaxRuns: viper.GetInt("ledger.max_runs"),
	}
}
