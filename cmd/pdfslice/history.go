// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfslice/internal/ledger"
)

var errNoLedger = errors.New("no ledger configured: pass --ledger or set ledger.path in pdfslice.yaml")

// --- history subcommand ---

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent runs recorded in the ledger",
	Long: `History lists the most recent batch runs stored in the ledger database,
newest first, with their settings and success/error counts.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.Runs(cmd.Context(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistory(cmd.OutOrStdout(), runs, jsonOutput)
}

func formatHistory(w io.Writer, runs []ledger.RunRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-36s  %-20s  %-5s  %-4s  %-7s  %-6s  %s\n",
		"Run", "Started", "Pages", "Skip", "Success", "Errors", "Input")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, r := range runs {
		skip := "no"
		if r.SkipFirst {
			skip = "yes"
		}
		errs := fmt.Sprintf("%d", r.Failed)
		if !r.Finished() {
			errs = "?"
		}
		fmt.Fprintf(w, "%-36s  %-20s  %-5d  %-4s  %-7d  %-6s  %s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.PageCount, skip, r.Succeeded, errs, r.InputDir)
	}

	fmt.Fprintf(w, "\n%d runs\n", len(runs))
	return nil
}

// --- export subcommand ---

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export ledger runs and per-file results as YAML or JSON",
	Long: `Export writes the most recent runs, each with its per-file results, to
stdout or to the file given with --out.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openLedger()
	if err != nil {
		return err
	}
	defer store.Close()

	var w io.Writer = cmd.OutOrStdout()
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := store.Export(cmd.Context(), w, format, limit); err != nil {
		return err
	}
	if out != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
	}
	return nil
}

// --- shared helpers ---

func openLedger() (*ledger.Store, error) {
	lc := ledgerConfig()
	if !lc.Enabled() {
		return nil, errNoLedger
	}
	return ledger.Open(lc)
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum number of runs to list (default 20)")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")

	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("out", "", "write the export to this file instead of stdout")
	exportCmd.Flags().Int("limit", 0, "maximum number of runs to export (default 20)")

	rootCmd.AddCommand(historyCmd, exportCmd)
}
