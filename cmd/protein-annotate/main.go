// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the protein-annotate CLI.
// It reads UniProt accessions from a spreadsheet column, looks each one up
// in UniProtKB and writes name and function annotations to a CSV file.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "PROTEIN_ANNOTATE"

// rootCmd is the base command for the protein-annotate CLI.
var rootCmd = &cobra.Command{
	Use:   "protein-annotate",
	Short: "Annotate UniProt accessions with protein names and functions",
	Long: `protein-annotate enriches a list of UniProt accession identifiers with
the recommended protein name and the first FUNCTION annotation from the
UniProtKB REST API.

Identifiers are read from one column of a spreadsheet (.xlsx, .csv or .tsv),
looked up one at a time, and written to a CSV file with one row per
identifier. Lookups that fail are recorded in their row and the run carries on.

Settings come from flags, PROTEIN_ANNOTATE_* environment variables, or a
protein-annotate.yaml config file.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./protein-annotate.yaml or ~/.config/protein-annotate/config.yaml)")
	rootCmd.PersistentFlags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	rootCmd.PersistentFlags().String("user-agent", defaultUserAgent, "User-Agent header sent to UniProt")
	rootCmd.PersistentFlags().String("url-template", "", "per-entry endpoint with an {id} placeholder (default: UniProtKB REST)")

	mustBind("http.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	mustBind("http.user_agent", rootCmd.PersistentFlags().Lookup("user-agent"))
	mustBind("url_template", rootCmd.PersistentFlags().Lookup("url-template"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("protein-annotate")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "protein-annotate"))
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: could not read config %s: %v\n", cfgFile, err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
