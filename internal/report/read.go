// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/pdiddy/protein-annotate/pkg/types"
)

// ReadCSV loads a file previously produced by WriteCSV and returns its
// header and rows. The Failed flag is not stored in CSV and is left false.
func ReadCSV(path string) ([]string, []types.OutputRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = 4

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("reading %s: file is empty", path)
	}

	rows := make([]types.OutputRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		idx, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: invalid index %q", i+2, rec[0])
		}
		rows = append(rows, types.OutputRow{
			Index:      idx,
			Identifier: rec[1],
			Name:       rec[2],
			Activity:   rec[3],
		})
	}
	return records[0], rows, nil
}
