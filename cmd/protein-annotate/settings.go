// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/protein-annotate/internal/httputil"
	"github.com/pdiddy/protein-annotate/internal/uniprot"
	"github.com/pdiddy/protein-annotate/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "protein-annotate/0.1"
	defaultInput     = "ANNOTATED_Affibody_HCP_LIST.xlsx"
	defaultColumn    = "UniProt"
	defaultOutput    = "protein_descriptions_output.csv"
)

// mustBind ties a viper key to a flag so flags, env vars and the config
// file resolve through one lookup.
func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding %s: %v", key, err))
	}
}

// runConfig assembles the run configuration from viper.
func runConfig() types.RunConfig {
	header := viper.GetStringSlice("output.header")
	if len(header) == 0 {
		header = types.DefaultHeader
	}
	return types.RunConfig{
		Input: types.InputConfig{
			Path:   viper.GetString("input.path"),
			Column: viper.GetString("input.column"),
			Sheet:  viper.GetString("input.sheet"),
		},
		Output: types.OutputConfig{
			Path:   viper.GetString("output.path"),
			Header: header,
			Format: types.OutputFormat(viper.GetString("output.format")),
		},
		Range: types.Range{
			Start: viper.GetInt("range.start"),
			Limit: viper.GetInt("range.limit"),
		},
		HTTP:        httpConfig(),
		URLTemplate: viper.GetString("url_template"),
	}
}

func httpConfig() types.HTTPConfig {
	return types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}
}

// newFetcher builds the one UniProt client used for the whole command.
func newFetcher(cfg types.HTTPConfig, urlTemplate string) *uniprot.Client {
	return uniprot.NewClient(httputil.NewClient(cfg.Timeout), cfg, urlTemplate)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
