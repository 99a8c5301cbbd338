// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfslice CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfslice/internal/logger"
	"github.com/pdiddy/pdfslice/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd extracts excerpts when given arguments; subcommands inspect the
// run ledger.
var rootCmd = &cobra.Command{
	Use:   "pdfslice <input-dir> <pages> [output-dir]",
	Short: "Extract the leading pages of every PDF in a directory tree",
	Long: `pdfslice finds every PDF under input-dir (recursively) and writes, for
each one, a new PDF holding its first <pages> pages. With --skip-first the
excerpt starts at page 2 instead.

Excerpts are written flat into output-dir (default: input-dir/extracted) as
NAME_first_N_pages.pdf, or NAME_pages_2_to_N+1.pdf with --skip-first.
Files that cannot be read are reported and counted; they do not stop the run.`,
	Example: `  pdfslice ./pdfs 3
  pdfslice ./pdfs 5 ./previews --skip-first`,
	Args:              cobra.RangeArgs(2, 3),
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./pdfslice.yaml or ~/.config/pdfslice/pdfslice.yaml)")
	pf.String("log-level", "info", "diagnostic log level: debug, info, warn, error")
	pf.String("log-file", "", "also write JSON logs to this rotating file")
	pf.String("ledger", "", "record runs in this SQLite database")

	rootCmd.Flags().Bool("skip-first", false, "start each excerpt at the second page")
	rootCmd.Flags().String("metrics-file", "", "write Prometheus metrics for the run to this file")

	mustBind("log.level", pf.Lookup("log-level"))
	mustBind("log.file", pf.Lookup("log-file"))
	mustBind("ledger.path", pf.Lookup("ledger"))
	mustBind("skip_first", rootCmd.Flags().Lookup("skip-first"))
	mustBind("metrics_file", rootCmd.Flags().Lookup("metrics-file"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfslice")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfslice"))
		}
	}

	viper.SetEnvPrefix("PDFSLICE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	return logger.Init(types.LogConfig{
		Level:      viper.GetString("log.level"),
		File:       viper.GetString("log.file"),
		MaxSizeMB:  viper.GetInt("log.max_size_mb"),
		MaxBackups: viper.GetInt("log.max_backups"),
	}, cmd.ErrOrStderr())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logger.Close()
	if err != nil {
		os.Exit(1)
	}
}
