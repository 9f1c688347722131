// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the depth-enricher CLI, which
// adds resolved brand and specification columns to tabular product
// datasets.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/depth-enricher/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the depth-enricher CLI.
var rootCmd = &cobra.Command{
	Use:   "depth-enricher",
	Short: "Derive brand and spec columns from product-name text",
	Long: `depth-enricher enriches tabular product records with two normalized
columns: a brand identifier and a specification string. Both are derived
from the free-text product-name fields by a fixed battery of
pattern-extraction rules with a deterministic merge policy, so running
the tool on its own output is a no-op.

The enrich subcommand processes a CSV dataset; extract runs the rule
battery over a single text for debugging.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./depth-enricher.yaml or ~/.config/depth-enricher/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("depth-enricher")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "depth-enricher"))
		}
	}

	viper.SetEnvPrefix("DEPTH_ENRICHER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// enrichConfig assembles the pipeline configuration from the config
// file and environment, with defaults for anything unset.
func enrichConfig() types.EnrichConfig {
	cfg := types.EnrichConfig{
		Delimiter:   viper.GetString("delimiter"),
		BrandMarker: viper.GetString("brand_marker"),
		Columns: types.ColumnsConfig{
			NameRaw:   viper.GetString("columns.name_raw"),
			NameClean: viper.GetString("columns.name_clean"),
			CAS:       viper.GetString("columns.cas"),
			Spec:      viper.GetString("columns.spec"),
			Brand:     viper.GetString("columns.brand"),
			OutBrand:  viper.GetString("columns.out_brand"),
			OutSpec:   viper.GetString("columns.out_spec"),
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
