// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package idload reads the column of accession identifiers that drives a run.
// Workbooks (.xlsx and friends) and delimited text (.csv, .tsv) are supported;
// the first row is always the header.
package idload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrMissingColumn is returned when the header row lacks the requested column.
var ErrMissingColumn = errors.New("missing required column")

// Options tunes how a source file is read.
type Options struct {
	// Sheet selects a workbook sheet by name. Empty means the first sheet.
	Sheet string
}

// Load returns the values of column from the tabular file at path, in file
// order. Values are whitespace-trimmed but otherwise passed through; empty
// cells stay in the list so positions line up with the source.
func Load(path, column string, opts Options) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening input %s: %w", path, err)
	}

	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		rows, err = readWorkbook(path, opts.Sheet)
	case ".csv":
		rows, err = readDelimited(path, ',')
	case ".tsv", ".tab":
		rows, err = readDelimited(path, '\t')
	default:
		return nil, fmt.Errorf("unsupported input format %q: use .xlsx, .csv or .tsv", ext)
	}
	if err != nil {
		return nil, err
	}
	return columnValues(rows, column)
}

// columnValues locates column in the header row and collects the cells
// beneath it.
func columnValues(rows [][]string, column string) ([]string, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w %q: input has no header row", ErrMissingColumn, column)
	}
	idx := findColumn(rows[0], column)
	if idx < 0 {
		return nil, fmt.Errorf("%w %q (have %s)", ErrMissingColumn, column, strings.Join(rows[0], ", "))
	}

	values := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if idx >= len(row) {
			values = append(values, "")
			continue
		}
		values = append(values, strings.TrimSpace(row[idx]))
	}
	return values, nil
}

// findColumn prefers an exact (trimmed) match and falls back to a
// case-insensitive one.
func findColumn(header []string, column string) int {
	want := strings.TrimSpace(column)
	for i, h := range header {
		if cleanHeader(h) == want {
			return i
		}
	}
	for i, h := range header {
		if strings.EqualFold(cleanHeader(h), want) {
			return i
		}
	}
	return -1
}

// cleanHeader strips whitespace and a UTF-8 byte order mark.
func cleanHeader(h string) string {
	return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
}

func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("workbook %s has no sheet %q", path, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readDelimited(path string, comma rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.Comma = comma
	cr.FieldsPerRecord = -1

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}
