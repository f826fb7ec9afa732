// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pdiddy/protein-annotate/pkg/types"
)

// defaultCellWidth caps the activity column in terminal previews.
const defaultCellWidth = 60

// RenderTable formats rows for a terminal. Cells wider than width are
// wrapped; width <= 0 uses a default.
func RenderTable(header []string, rows []types.OutputRow, width int) string {
	if len(header) == 0 {
		header = types.DefaultHeader
	}
	if width <= 0 {
		width = defaultCellWidth
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	hdr := make(table.Row, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	tw.AppendHeader(hdr)

	for _, r := range rows {
		tw.AppendRow(table.Row{strconv.Itoa(r.Index), r.Identifier, r.Name, r.Activity})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, WidthMax: width},
		{Number: 4, WidthMax: width},
	})
	return tw.Render()
}
