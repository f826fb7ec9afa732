// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/protein-annotate/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Display a results CSV as a table",
	Long: `Show reads a CSV written by run and prints it as a table. Without an
argument it reads the configured output path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("output.path")
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			path = defaultOutput
		}

		header, rows, err := report.ReadCSV(path)
		if err != nil {
			return err
		}
		width, _ := cmd.Flags().GetInt("width")
		fmt.Fprintln(os.Stdout, report.RenderTable(header, rows, width))
		fmt.Fprintf(os.Stdout, "\n%d rows\n", len(rows))
		return nil
	},
}

func init() {
	showCmd.Flags().Int("width", 0, "maximum width of the name and activity columns (0 = default)")

	rootCmd.AddCommand(showCmd)
}
