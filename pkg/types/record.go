// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Record is the unit of work for the enrichment pipeline. All fields
// are free text; an empty string means the value is absent. Records
// carry no cross-row state: the pipeline computes Brand and Spec from
// the other fields alone.
type Record struct {
	// NameRaw is the original product name, possibly with parenthetical
	// annotations.
	NameRaw string `json:"name_raw" yaml:"name_raw"`

	// NameClean is the cleaned variant of the name.
	NameClean string `json:"name_clean" yaml:"name_clean"`

	// CAS is an identifier passed through to the output unchanged.
	CAS string `json:"cas,omitempty" yaml:"cas,omitempty"`

	// ExistingSpec is a pre-existing delimiter-joined specification.
	ExistingSpec string `json:"existing_spec,omitempty" yaml:"existing_spec,omitempty"`

	// ExistingBrand is a pre-existing brand.
	ExistingBrand string `json:"existing_brand,omitempty" yaml:"existing_brand,omitempty"`

	// Brand is the resolved brand, written by the pipeline.
	Brand string `json:"brand,omitempty" yaml:"brand,omitempty"`

	// Spec is the resolved delimiter-joined spec, written by the pipeline.
	Spec string `json:"spec,omitempty" yaml:"spec,omitempty"`
}
