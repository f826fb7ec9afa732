// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pdiddy/protein-annotate/internal/enrich"
	"github.com/pdiddy/protein-annotate/internal/report"
	"github.com/pdiddy/protein-annotate/pkg/types"
)

// previewRowLimit keeps auto previews from flooding the terminal.
const previewRowLimit = 50

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Annotate every identifier in the input spreadsheet",
	Long: `Run reads the identifier column from the input spreadsheet, looks each
identifier up in UniProtKB one at a time, and writes a CSV with the columns
index, uniprot_id, type (recommended name) and activity (function text).

The output file is overwritten on every run. A lookup that fails puts its
error message in both the type and activity columns.`,
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.String("input", defaultInput, "spreadsheet with the identifier column (.xlsx, .csv, .tsv)")
	f.String("column", defaultColumn, "header label of the identifier column")
	f.String("sheet", "", "workbook sheet to read (default: first sheet)")
	f.String("output", defaultOutput, "destination file, overwritten on each run")
	f.StringSlice("header", types.DefaultHeader, "output header labels (4, comma-separated)")
	f.String("format", string(types.FormatCSV), "output format: csv, json or yaml")
	f.Int("start", 0, "skip this many identifiers before processing")
	f.Int("limit", 0, "process at most this many identifiers (0 = all)")
	f.Bool("strict", false, "exit non-zero if any lookup failed")
	f.String("preview", "auto", "print a results table: auto (terminal only), always or never")

	mustBind("input.path", f.Lookup("input"))
	mustBind("input.column", f.Lookup("column"))
	mustBind("input.sheet", f.Lookup("sheet"))
	mustBind("output.path", f.Lookup("output"))
	mustBind("output.header", f.Lookup("header"))
	mustBind("output.format", f.Lookup("format"))
	mustBind("range.start", f.Lookup("start"))
	mustBind("range.limit", f.Lookup("limit"))

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := runConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}
	preview, _ := cmd.Flags().GetString("preview")
	if preview != "auto" && preview != "always" && preview != "never" {
		return fmt.Errorf("unsupported preview mode %q: use auto, always or never", preview)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := enrich.Run(ctx, newFetcher(cfg.HTTP, cfg.URLTemplate), cfg, os.Stdout)
	if err != nil {
		return err
	}

	if shouldPreview(preview, os.Stdout, len(summary.Rows)) {
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout, report.RenderTable(cfg.Output.Header, summary.Rows, 0))
	}

	strict, _ := cmd.Flags().GetBool("strict")
	if strict && summary.HasFailures() {
		return fmt.Errorf("%d identifier(s) failed lookup", summary.Failed)
	}
	return nil
}

func shouldPreview(mode string, w io.Writer, rows int) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return rows > 0 && rows <= previewRowLimit && isTerminal(w)
	}
}
