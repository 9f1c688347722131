// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/depth-enricher/internal/dataset"
	"github.com/pdiddy/depth-enricher/internal/enrich"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Add resolved brand and spec columns to a CSV dataset",
	Long: `Enrich reads a product CSV, resolves the brand (copying the existing
value or applying the marker-symbol rule) and rebuilds the spec column
by merging freshly extracted tokens into the existing one. The primary
output is a slim CSV with the name columns, the identifier passthrough,
and the two resolved columns; --output-full keeps every input column.

Missing input columns are not errors: their values read as empty and
the output columns are still produced.`,
	RunE: runEnrich,
}

func runEnrich(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	fullPath, _ := cmd.Flags().GetString("output-full")
	sqlitePath, _ := cmd.Flags().GetString("sqlite")
	reportPath, _ := cmd.Flags().GetString("report")

	cfg := enrichConfig()
	pipeline := enrich.New(cfg)

	tbl, err := dataset.ReadCSV(inputPath)
	if err != nil {
		return err
	}
	tbl.DropUnnamed()

	sum := pipeline.EnrichTable(tbl, os.Stdout)

	slim := tbl.Project(pipeline.SlimColumns())
	if err := dataset.WriteCSV(outputPath, slim); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", outputPath)

	if fullPath != "" {
		if err := dataset.WriteCSV(fullPath, tbl); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", fullPath)
	}

	if sqlitePath != "" {
		if err := dataset.WriteSQLite(sqlitePath, slim, cfg.Columns.OutBrand); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", sqlitePath)
	}

	if reportPath != "" {
		if err := enrich.WriteReport(reportPath, sum); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", reportPath)
	}

	return nil
}

func init() {
	enrichCmd.Flags().String("input", "", "path to the input CSV (required)")
	enrichCmd.Flags().String("output", "", "path to the slim output CSV (required)")
	enrichCmd.Flags().String("output-full", "", "optional path for the full output CSV with all columns")
	enrichCmd.Flags().String("sqlite", "", "optional path for a SQLite export of the slim table")
	enrichCmd.Flags().String("report", "", "optional path for a YAML or JSON run report")
	enrichCmd.MarkFlagRequired("input")
	enrichCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(enrichCmd)
}
