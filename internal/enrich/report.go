// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// WriteReport writes the run summary to path, as JSON when the
// extension is .json and YAML otherwise.
func WriteReport(path string, sum Summary) error {
	var (
		data []byte
		err  error
	)
	if filepath.Ext(path) == ".json" {
		data, err = json.MarshalIndent(sum, "", "  ")
	} else {
		data, err = yaml.Marshal(sum)
	}
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
