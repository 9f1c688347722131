// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared record and configuration types used
// across the enrichment pipeline.
package types

// ColumnsConfig maps the semantic fields of a record onto the column
// names of the input and output tables.
type ColumnsConfig struct {
	// NameRaw is the column holding the original product name, which may
	// contain parenthetical annotations (default "pdt_name").
	NameRaw string `json:"name_raw" yaml:"name_raw"`

	// NameClean is the column holding the cleaned product name
	// (default "pdt_name_clean").
	NameClean string `json:"name_clean" yaml:"name_clean"`

	// CAS is an identifier column passed through unchanged
	// (default "pdt_cas").
	CAS string `json:"cas" yaml:"cas"`

	// Spec is the column holding a pre-existing delimiter-joined
	// specification string (default "pdt_spec").
	Spec string `json:"spec" yaml:"spec"`

	// Brand is the column holding a pre-existing brand
	// (default "brand_name").
	Brand string `json:"brand" yaml:"brand"`

	// OutBrand is the resolved brand output column (default "브랜드명").
	OutBrand string `json:"out_brand" yaml:"out_brand"`

	// OutSpec is the resolved spec output column (default "규격/스펙").
	OutSpec string `json:"out_spec" yaml:"out_spec"`
}

// EnrichConfig holds settings for the enrichment stage.
type EnrichConfig struct {
	Columns ColumnsConfig `json:"columns" yaml:"columns"`

	// Delimiter joins tokens in the spec field (default "/").
	Delimiter string `json:"delimiter" yaml:"delimiter"`

	// BrandMarker is the trademark-style symbol that anchors the brand
	// fallback rule (default "®").
	BrandMarker string `json:"brand_marker" yaml:"brand_marker"`
}

// DefaultColumns returns the column mapping used by the original dataset.
func DefaultColumns() ColumnsConfig {
	return ColumnsConfig{
		NameRaw:   "pdt_name",
		NameClean: "pdt_name_clean",
		CAS:       "pdt_cas",
		Spec:      "pdt_spec",
		Brand:     "brand_name",
		OutBrand:  "브랜드명",
		OutSpec:   "규격/스펙",
	}
}

// DefaultEnrichConfig returns an EnrichConfig with all defaults applied.
func DefaultEnrichConfig() EnrichConfig {
	return EnrichConfig{
		Columns:     DefaultColumns(),
		Delimiter:   "/",
		BrandMarker: "®",
	}
}

// ApplyDefaults fills any zero-valued fields with their defaults so a
// partially-specified config file still yields a usable configuration.
func (c *EnrichConfig) ApplyDefaults() {
	d := DefaultEnrichConfig()
	if c.Delimiter == "" {
		c.Delimiter = d.Delimiter
	}
	if c.BrandMarker == "" {
		c.BrandMarker = d.BrandMarker
	}
	if c.Columns.NameRaw == "" {
		c.Columns.NameRaw = d.Columns.NameRaw
	}
	if c.Columns.NameClean == "" {
		c.Columns.NameClean = d.Columns.NameClean
	}
	if c.Columns.CAS == "" {
		c.Columns.CAS = d.Columns.CAS
	}
	if c.Columns.Spec == "" {
		c.Columns.Spec = d.Columns.Spec
	}
	if c.Columns.Brand == "" {
		c.Columns.Brand = d.Columns.Brand
	}
	if c.Columns.OutBrand == "" {
		c.Columns.OutBrand = d.Columns.OutBrand
	}
	if c.Columns.OutSpec == "" {
		c.Columns.OutSpec = d.Columns.OutSpec
	}
}
