// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders lookup results as a flat table and writes it out.
// CSV is the primary format; JSON and YAML carry the same rows for
// downstream tooling.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/protein-annotate/pkg/types"
)

// Rows pairs each identifier with its result, numbering rows from zero in
// input order. ids and results must have the same length.
func Rows(ids []string, results []types.LookupResult) []types.OutputRow {
	rows := make([]types.OutputRow, len(ids))
	for i, id := range ids {
		name, activity := results[i].Columns()
		rows[i] = types.OutputRow{
			Index:      i,
			Identifier: id,
			Name:       name,
			Activity:   activity,
			Failed:     !results[i].OK(),
		}
	}
	return rows
}

// Write creates (or truncates) path and writes rows in the given format.
// An empty format means CSV; an empty header means types.DefaultHeader.
func Write(path string, format types.OutputFormat, header []string, rows []types.OutputRow) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output %s: %w", path, cerr)
		}
	}()

	switch format {
	case "", types.FormatCSV:
		return EncodeCSV(f, header, rows)
	case types.FormatJSON:
		return EncodeJSON(f, rows)
	case types.FormatYAML:
		return EncodeYAML(f, rows)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// WriteCSV writes header and rows to path as comma-separated UTF-8 text,
// discarding any previous contents.
func WriteCSV(path string, header []string, rows []types.OutputRow) error {
	return Write(path, types.FormatCSV, header, rows)
}

// EncodeCSV writes the header row followed by one record per row.
func EncodeCSV(w io.Writer, header []string, rows []types.OutputRow) error {
	if len(header) == 0 {
		header = types.DefaultHeader
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(Record(r)); err != nil {
			return fmt.Errorf("writing row %d: %w", r.Index, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// Record returns the four CSV cells for r.
func Record(r types.OutputRow) []string {
	return []string{strconv.Itoa(r.Index), r.Identifier, r.Name, r.Activity}
}

// EncodeJSON writes rows as an indented JSON array.
func EncodeJSON(w io.Writer, rows []types.OutputRow) error {
	if rows == nil {
		rows = []types.OutputRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// EncodeYAML writes rows as a YAML sequence.
func EncodeYAML(w io.Writer, rows []types.OutputRow) error {
	if rows == nil {
		rows = []types.OutputRow{}
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return nil
}
