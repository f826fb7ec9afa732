// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich drives one annotation run: load identifiers, look each one
// up in turn, and write the result table.
package enrich

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/protein-annotate/internal/idload"
	"github.com/pdiddy/protein-annotate/internal/report"
	"github.com/pdiddy/protein-annotate/pkg/types"
)

// Fetcher looks up a single identifier. *uniprot.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, id string) types.LookupResult
}

// Summary holds the outcome of a run.
type Summary struct {
	Succeeded int
	Failed    int
	Rows      []types.OutputRow
}

// Total returns the number of identifiers processed.
func (s Summary) Total() int {
	return s.Succeeded + s.Failed
}

// HasFailures reports whether any lookup failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Run loads identifiers per cfg.Input, restricts them to cfg.Range, fetches
// them one at a time and writes cfg.Output. Progress lines go to w.
//
// Load and write failures abort the run. Lookup failures are recorded in
// their row and the run continues. If ctx is cancelled at any point during
// the lookups, Run stops and returns ctx.Err() without writing output.
func Run(ctx context.Context, f Fetcher, cfg types.RunConfig, w io.Writer) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	all, err := idload.Load(cfg.Input.Path, cfg.Input.Column, idload.Options{Sheet: cfg.Input.Sheet})
	if err != nil {
		return Summary{}, fmt.Errorf("loading identifiers: %w", err)
	}
	ids := cfg.Range.Apply(all)
	fmt.Fprintf(w, "loaded %d identifier(s) from %s, processing %d\n", len(all), cfg.Input.Path, len(ids))

	summary, results, err := FetchAll(ctx, f, ids, w)
	if err != nil {
		return summary, err
	}

	summary.Rows = report.Rows(ids, results)
	if err := report.Write(cfg.Output.Path, cfg.Output.Format, cfg.Output.Header, summary.Rows); err != nil {
		return summary, fmt.Errorf("writing results: %w", err)
	}

	fmt.Fprintf(w, "\nRun summary: %d succeeded, %d failed (total: %d)\n",
		summary.Succeeded, summary.Failed, summary.Total())
	fmt.Fprintf(w, "Results have been saved to %s\n", cfg.Output.Path)
	return summary, nil
}

// FetchAll looks up ids sequentially, in order, printing one status line
// per identifier. The returned results line up with ids.
func FetchAll(ctx context.Context, f Fetcher, ids []string, w io.Writer) (Summary, []types.LookupResult, error) {
	var summary Summary
	results := make([]types.LookupResult, 0, len(ids))
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return summary, results, err
		}
		res := f.Fetch(ctx, id)
		results = append(results, res)
		if res.OK() {
			summary.Succeeded++
			fmt.Fprintf(w, "ok:      [%d] %s: %s\n", i, id, res.Name)
			continue
		}
		summary.Failed++
		fmt.Fprintf(w, "failed:  [%d] %s (%s)\n", i, id, res.Err)
	}
	if err := ctx.Err(); err != nil {
		return summary, results, err
	}
	return summary, results, nil
}
