// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/protein-annotate/internal/enrich"
	"github.com/pdiddy/protein-annotate/internal/report"
	"github.com/pdiddy/protein-annotate/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [identifiers...]",
	Short: "Look up identifiers given on the command line",
	Long: `Lookup fetches the named UniProt accessions and prints the results
without reading a spreadsheet or writing a file. Useful for checking a
handful of identifiers before a full run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().String("format", "table", "output format: table, csv, json or yaml")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	fetcher := newFetcher(httpConfig(), runConfig().URLTemplate)
	summary, results, err := enrich.FetchAll(context.Background(), fetcher, args, io.Discard)
	if err != nil {
		return err
	}
	rows := report.Rows(args, results)

	if err := printRows(os.Stdout, format, rows); err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d of %d lookup(s) failed", summary.Failed, summary.Total())
	}
	return nil
}

func printRows(w io.Writer, format string, rows []types.OutputRow) error {
	switch format {
	case "table", "":
		fmt.Fprintln(w, report.RenderTable(types.DefaultHeader, rows, 0))
		return nil
	case string(types.FormatCSV):
		return report.EncodeCSV(w, types.DefaultHeader, rows)
	case string(types.FormatJSON):
		return report.EncodeJSON(w, rows)
	case string(types.FormatYAML):
		return report.EncodeYAML(w, rows)
	default:
		return fmt.Errorf("unsupported format %q: use table, csv, json or yaml", format)
	}
}
