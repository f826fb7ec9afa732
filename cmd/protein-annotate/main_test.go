// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/protein-annotate/internal/report"
	"github.com/pdiddy/protein-annotate/pkg/types"
)

func TestRunConfigDefaults(t *testing.T) {
	cfg := runConfig()
	assert.Equal(t, defaultInput, cfg.Input.Path)
	assert.Equal(t, defaultColumn, cfg.Input.Column)
	assert.Equal(t, defaultOutput, cfg.Output.Path)
	assert.Equal(t, types.DefaultHeader, cfg.Output.Header)
	assert.Equal(t, types.FormatCSV, cfg.Output.Format)
	assert.Equal(t, defaultTimeout, cfg.HTTP.Timeout)
	assert.Equal(t, defaultUserAgent, cfg.HTTP.UserAgent)
	assert.Equal(t, types.Range{}, cfg.Range)
	assert.NoError(t, cfg.Validate())
}

func TestShouldPreview(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, shouldPreview("always", &buf, 0))
	assert.False(t, shouldPreview("never", &buf, 3))
	assert.False(t, shouldPreview("auto", &buf, 3), "a buffer is not a terminal")
}

func TestPrintRows(t *testing.T) {
	rows := report.Rows([]string{"P1"}, []types.LookupResult{types.Found("One", "First.")})

	tests := []struct {
		format string
		want   string
	}{
		{"csv", "index,uniprot_id,type,activity\n0,P1,One,First.\n"},
		{"json", `"uniprot_id": "P1"`},
		{"yaml", "uniprot_id: P1"},
		{"table", "First."},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, printRows(&buf, tt.format, rows))
			assert.Contains(t, buf.String(), tt.want)
		})
	}

	assert.Error(t, printRows(&bytes.Buffer{}, "xml", rows))
}
