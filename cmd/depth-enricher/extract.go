// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/depth-enricher/internal/enrich"
)

var extractCmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Run the extraction rules over a single text",
	Long: `Extract applies the full rule battery (and the brand marker rule) to
one piece of free text and prints the tokens each category produces.
Useful for checking why a particular token did or did not appear in an
enriched spec.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	cfg := enrichConfig()
	pipeline := enrich.New(cfg)
	results := pipeline.ExtractAll(text)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		if len(r.Tokens) == 0 {
			fmt.Printf("%-20s -\n", r.Category)
			continue
		}
		fmt.Printf("%-20s %s\n", r.Category, strings.Join(r.Tokens, "  "))
	}
	if brand, ok := enrich.ResolveBrand(text, cfg.BrandMarker); ok {
		fmt.Printf("%-20s %s\n", "brand", brand)
	}
	return nil
}

func init() {
	extractCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(extractCmd)
}
