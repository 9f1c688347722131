// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/depth-enricher/internal/dataset"
	"github.com/pdiddy/depth-enricher/internal/rules"
	"github.com/pdiddy/depth-enricher/pkg/types"
)

// Pipeline applies the pattern library and merge policy to records.
// It is immutable after construction and safe to share.
type Pipeline struct {
	cfg   types.EnrichConfig
	rules []rules.Rule
}

// New builds a Pipeline, filling unset config fields with defaults.
func New(cfg types.EnrichConfig) *Pipeline {
	cfg.ApplyDefaults()
	return &Pipeline{
		cfg:   cfg,
		rules: rules.Ordered(),
	}
}

// Summary holds counters from one enrichment run.
type Summary struct {
	Rows          int            `json:"rows" yaml:"rows"`
	BrandCopied   int            `json:"brand_copied" yaml:"brand_copied"`
	BrandResolved int            `json:"brand_resolved" yaml:"brand_resolved"`
	SpecsWritten  int            `json:"specs_written" yaml:"specs_written"`
	TokensAdded   map[string]int `json:"tokens_added" yaml:"tokens_added"`
}

// newSummary returns a Summary with the per-category map initialized
// for every rule category, so reports list zero counts explicitly.
func newSummary() Summary {
	s := Summary{TokensAdded: make(map[string]int)}
	for _, r := range rules.Ordered() {
		s.TokensAdded[string(r.Category)] = 0
	}
	return s
}

// EnrichRecord computes Brand and Spec for one record in place. It
// never fails: absent or unparseable inputs simply produce no tokens.
// Running it again on its own output changes nothing.
func (p *Pipeline) EnrichRecord(rec *types.Record) {
	p.enrich(rec, nil)
}

// enrich is EnrichRecord with optional summary accounting.
func (p *Pipeline) enrich(rec *types.Record, sum *Summary) {
	// Brand: copy the existing value, else fall back to the marker rule
	// on the cleaned name.
	rec.Brand = strings.TrimSpace(rec.ExistingBrand)
	if rec.Brand != "" {
		if sum != nil {
			sum.BrandCopied++
		}
	} else if b, ok := ResolveBrand(rec.NameClean, p.cfg.BrandMarker); ok {
		rec.Brand = b
		if sum != nil {
			sum.BrandResolved++
		}
	}

	// Spec: start from the existing tokens with stale unit quantities
	// purged, then merge each category over both name fields.
	spec := strings.Join(ScrubStaleUnits(splitTokens(rec.ExistingSpec, p.cfg.Delimiter)), p.cfg.Delimiter)

	for _, r := range p.rules {
		var tokens []string
		if !r.RawOnly {
			tokens = r.Extract(rec.NameClean)
		}
		tokens = append(tokens, r.Extract(rec.NameRaw)...)

		merged := MergeTokens(spec, tokens, p.cfg.Delimiter)
		if sum != nil {
			sum.TokensAdded[string(r.Category)] += countTokens(merged, p.cfg.Delimiter) - countTokens(spec, p.cfg.Delimiter)
		}
		spec = merged
	}

	rec.Spec = spec
}

// splitTokens splits a delimiter-joined spec into trimmed, non-blank
// tokens. Returns nil for an absent spec.
func splitTokens(spec, delim string) []string {
	if strings.TrimSpace(spec) == "" {
		return nil
	}
	parts := strings.Split(spec, delim)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func countTokens(spec, delim string) int {
	if spec == "" {
		return 0
	}
	return strings.Count(spec, delim) + 1
}

// EnrichTable runs the pipeline over every row of a table, writing the
// resolved brand and spec into the configured output columns. Missing
// input columns read as empty values; the output columns are created
// when absent. Progress goes to w.
func (p *Pipeline) EnrichTable(tbl *dataset.Table, w io.Writer) Summary {
	cols := p.cfg.Columns
	outBrand := tbl.EnsureColumn(cols.OutBrand)
	outSpec := tbl.EnsureColumn(cols.OutSpec)

	sum := newSummary()
	for i := range tbl.Rows {
		rec := types.Record{
			NameRaw:       tbl.Get(i, cols.NameRaw),
			NameClean:     tbl.Get(i, cols.NameClean),
			CAS:           tbl.Get(i, cols.CAS),
			ExistingSpec:  tbl.Get(i, cols.Spec),
			ExistingBrand: tbl.Get(i, cols.Brand),
		}
		p.enrich(&rec, &sum)
		sum.Rows++
		if rec.Spec != "" {
			sum.SpecsWritten++
		}

		tbl.Set(i, outBrand, rec.Brand)
		tbl.Set(i, outSpec, rec.Spec)
	}

	fmt.Fprintf(w, "enriched %d rows (brand copied %d, resolved %d; specs %d)\n",
		sum.Rows, sum.BrandCopied, sum.BrandResolved, sum.SpecsWritten)
	return sum
}

// SlimColumns returns the reduced output column set: names, identifier
// passthrough, and the two resolved columns.
func (p *Pipeline) SlimColumns() []string {
	c := p.cfg.Columns
	return []string{c.NameRaw, c.NameClean, c.CAS, c.OutBrand, c.OutSpec}
}

// ExtractAll runs every rule of the library over a single text and
// returns the per-category tokens in merge order. Debug aid for the
// extract command; the raw-only restriction does not apply here.
func (p *Pipeline) ExtractAll(text string) []CategoryTokens {
	out := make([]CategoryTokens, 0, len(p.rules))
	for _, r := range p.rules {
		out = append(out, CategoryTokens{
			Category: string(r.Category),
			Tokens:   r.Extract(text),
		})
	}
	return out
}

// CategoryTokens is one category's extraction result.
type CategoryTokens struct {
	Category string   `json:"category" yaml:"category"`
	Tokens   []string `json:"tokens" yaml:"tokens"`
}
