// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the transport default.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "protein-annotate/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// InputConfig names the spreadsheet and the column holding identifiers.
type InputConfig struct {
	// Path is the spreadsheet file (.xlsx, .csv or .tsv).
	Path string `json:"path" yaml:"path"`

	// Column is the header label of the identifier column (e.g. "UniProt").
	Column string `json:"column" yaml:"column"`

	// Sheet selects a workbook sheet. Empty means the first sheet.
	// Ignored for delimited text inputs.
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`
}

// OutputFormat selects the result file format.
type OutputFormat string

const (
	FormatCSV  OutputFormat = "csv"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// OutputConfig holds settings for the result file.
type OutputConfig struct {
	// Path is the destination file. It is truncated on every run.
	Path string `json:"path" yaml:"path"`

	// Header lists the four column labels written as the first CSV row.
	Header []string `json:"header" yaml:"header"`

	// Format selects csv (default), json or yaml.
	Format OutputFormat `json:"format" yaml:"format"`
}

// Range restricts processing to a window of the identifier list.
type Range struct {
	// Start is the zero-based position of the first identifier to process.
	Start int `json:"start" yaml:"start"`

	// Limit caps the number of identifiers processed. Zero means no cap.
	Limit int `json:"limit" yaml:"limit"`
}

// Validate rejects negative bounds.
func (r Range) Validate() error {
	if r.Start < 0 {
		return fmt.Errorf("range start must be >= 0, got %d", r.Start)
	}
	if r.Limit < 0 {
		return fmt.Errorf("range limit must be >= 0, got %d", r.Limit)
	}
	return nil
}

// Apply returns the sub-slice of ids selected by r. Bounds past the end
// of ids are clamped, so the result may be empty.
func (r Range) Apply(ids []string) []string {
	if r.Start >= len(ids) {
		return []string{}
	}
	end := len(ids)
	if r.Limit > 0 && r.Limit < end-r.Start {
		end = r.Start + r.Limit
	}
	return ids[r.Start:end]
}

// RunConfig groups everything a single enrichment run needs. It is built
// once at startup and passed down explicitly.
type RunConfig struct {
	Input  InputConfig  `json:"input" yaml:"input"`
	Output OutputConfig `json:"output" yaml:"output"`
	Range  Range        `json:"range" yaml:"range"`
	HTTP   HTTPConfig   `json:"http" yaml:"http"`

	// URLTemplate is the per-entry endpoint with an {id} placeholder.
	// Empty selects the public UniProtKB REST endpoint.
	URLTemplate string `json:"url_template,omitempty" yaml:"url_template,omitempty"`
}

// DefaultHeader is the output header used when none is configured.
var DefaultHeader = []string{"index", "uniprot_id", "type", "activity"}

// Validate checks that the required paths and labels are present.
func (c RunConfig) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input path is required")
	}
	if c.Input.Column == "" {
		return fmt.Errorf("input column is required")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output path is required")
	}
	if len(c.Output.Header) != 0 && len(c.Output.Header) != 4 {
		return fmt.Errorf("output header needs 4 labels, got %d", len(c.Output.Header))
	}
	switch c.Output.Format {
	case "", FormatCSV, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported output format %q: use csv, json or yaml", c.Output.Format)
	}
	return c.Range.Validate()
}
