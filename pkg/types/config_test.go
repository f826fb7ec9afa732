// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeApply(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	tests := []struct {
		name string
		r    Range
		want []string
	}{
		{"zero value keeps all", Range{}, []string{"a", "b", "c", "d"}},
		{"limit only", Range{Limit: 2}, []string{"a", "b"}},
		{"start only", Range{Start: 1}, []string{"b", "c", "d"}},
		{"start and limit", Range{Start: 1, Limit: 2}, []string{"b", "c"}},
		{"limit past end", Range{Start: 2, Limit: 15}, []string{"c", "d"}},
		{"start past end", Range{Start: 9}, []string{}},
		{"huge limit", Range{Start: 1, Limit: math.MaxInt}, []string{"b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Apply(ids))
		})
	}
}

func TestRangeValidate(t *testing.T) {
	assert.NoError(t, Range{Start: 0, Limit: 15}.Validate())
	assert.Error(t, Range{Start: -1}.Validate())
	assert.Error(t, Range{Limit: -3}.Validate())
	assert.NoError(t, Range{Start: 1, Limit: math.MaxInt}.Validate())
}

func TestRunConfigValidate(t *testing.T) {
	valid := RunConfig{
		Input:  InputConfig{Path: "ids.xlsx", Column: "UniProt"},
		Output: OutputConfig{Path: "out.csv", Header: DefaultHeader, Format: FormatCSV},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*RunConfig)
		errMsg string
	}{
		{"no input", func(c *RunConfig) { c.Input.Path = "" }, "input path"},
		{"no column", func(c *RunConfig) { c.Input.Column = "" }, "input column"},
		{"no output", func(c *RunConfig) { c.Output.Path = "" }, "output path"},
		{"short header", func(c *RunConfig) { c.Output.Header = []string{"a", "b"} }, "4 labels"},
		{"bad format", func(c *RunConfig) { c.Output.Format = "xml" }, "unsupported output format"},
		{"bad range", func(c *RunConfig) { c.Range.Start = -1 }, "range start"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestLookupResultColumns(t *testing.T) {
	ok := Found("Hemoglobin subunit alpha", "Involved in oxygen transport.")
	assert.True(t, ok.OK())
	name, activity := ok.Columns()
	assert.Equal(t, "Hemoglobin subunit alpha", name)
	assert.Equal(t, "Involved in oxygen transport.", activity)

	bad := Failed("HTTP Error: 404 Client Error: Not Found for url: x")
	assert.False(t, bad.OK())
	name, activity = bad.Columns()
	assert.Equal(t, bad.Err, name)
	assert.Equal(t, bad.Err, activity)
}
