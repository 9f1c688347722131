// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/depth-enricher/internal/dataset"
	"github.com/pdiddy/depth-enricher/pkg/types"
)

func testPipeline() *Pipeline {
	return New(types.DefaultEnrichConfig())
}

func TestScrubStaleUnits(t *testing.T) {
	got := ScrubStaleUnits([]string{"5m", "clt-p407c", "1.5m", "a4", "10리터", "500ML", " 12mm ", "5mx5m"})
	assert.Equal(t, []string{"clt-p407c", "a4", "5mx5m"}, got)
}

func TestEnrichRecordBrand(t *testing.T) {
	p := testPipeline()

	rec := types.Record{ExistingBrand: "모나미", NameClean: "ACME® 볼펜"}
	p.EnrichRecord(&rec)
	assert.Equal(t, "모나미", rec.Brand, "existing brand wins")

	rec = types.Record{NameClean: "ACME®볼펜"}
	p.EnrichRecord(&rec)
	assert.Equal(t, "ACME", rec.Brand, "marker rule fills missing brand")

	rec = types.Record{ExistingBrand: "  ", NameClean: "Global ACME ® 볼펜"}
	p.EnrichRecord(&rec)
	assert.Equal(t, "ACME", rec.Brand, "blank existing brand triggers resolver")

	rec = types.Record{NameRaw: "ACME® 볼펜"}
	p.EnrichRecord(&rec)
	assert.Empty(t, rec.Brand, "marker rule reads the clean name only")
}

func TestEnrichRecordSpec(t *testing.T) {
	p := testPipeline()

	rec := types.Record{
		NameRaw:   "접착테이프 150mm x 150mm 1.5m (특가)",
		NameClean: "접착테이프 150mm x 150mm 1.5m",
	}
	p.EnrichRecord(&rec)
	assert.Equal(t, "150mmx150mm/1.5m/150mm/(특가)", rec.Spec)
}

func TestEnrichRecordMergeOrder(t *testing.T) {
	p := testPipeline()

	// One source text hitting every category: dimensions, units, paper,
	// quantity combos, hyphen codes, alnum codes, then parentheses.
	rec := types.Record{
		NameRaw:   "clt-p407c 용지a4 100mmx200mm 250매x10권 1.5m (리필)",
		NameClean: "clt-p407c 용지a4 100mmx200mm 250매x10권 1.5m",
	}
	p.EnrichRecord(&rec)
	assert.Equal(t, "100mmx200mm/1.5m/a4/250매x10권/clt-p407c/p407c/(리필)", rec.Spec)
}

func TestEnrichRecordScrubsStaleUnit(t *testing.T) {
	p := testPipeline()

	rec := types.Record{
		ExistingSpec: "5m/a4",
		NameClean:    "로프 1.5m",
	}
	p.EnrichRecord(&rec)
	assert.Equal(t, "a4/1.5m", rec.Spec)
	assert.NotContains(t, rec.Spec, "5m/", "stale integer token must not survive")
}

func TestEnrichRecordIdempotent(t *testing.T) {
	p := testPipeline()

	records := []types.Record{
		{NameRaw: "접착테이프 150mm x 150mm (특가)", NameClean: "접착테이프 150mm x 150mm"},
		{NameRaw: "복사지 250매x10권 a4", NameClean: "복사지 250매x10권 a4", ExistingSpec: "a4"},
		{NameRaw: "삼성 clt-p407c 토너", NameClean: "삼성 clt-p407c 토너", ExistingBrand: "삼성"},
		{NameRaw: "로프 1.5m no.A123", NameClean: "로프 1.5m no.A123", ExistingSpec: "5m"},
	}
	for _, rec := range records {
		first := rec
		p.EnrichRecord(&first)

		second := first
		second.ExistingSpec = first.Spec
		second.ExistingBrand = first.Brand
		p.EnrichRecord(&second)

		assert.Equal(t, first.Spec, second.Spec, "spec for %q", rec.NameRaw)
		assert.Equal(t, first.Brand, second.Brand, "brand for %q", rec.NameRaw)
	}
}

func TestEnrichRecordCaseInsensitiveUniqueness(t *testing.T) {
	p := testPipeline()

	rec := types.Record{
		ExistingSpec: "CLT-P407C",
		NameRaw:      "정품 clt-p407c (리필)",
		NameClean:    "정품 clt-p407c",
	}
	p.EnrichRecord(&rec)

	seen := map[string]bool{}
	for _, tok := range splitTokens(rec.Spec, "/") {
		low := strings.ToLower(tok)
		require.False(t, seen[low], "duplicate token %q in %q", tok, rec.Spec)
		seen[low] = true
	}
}

func TestEnrichRecordNoValueInputs(t *testing.T) {
	p := testPipeline()

	rec := types.Record{}
	p.EnrichRecord(&rec)
	assert.Empty(t, rec.Brand)
	assert.Empty(t, rec.Spec)
}

func TestEnrichTable(t *testing.T) {
	p := testPipeline()

	tbl := dataset.NewTable([]string{"pdt_name", "pdt_name_clean", "pdt_cas", "pdt_spec", "brand_name"})
	tbl.Rows = [][]string{
		{"접착테이프 150mm x 150mm (특가)", "접착테이프 150mm x 150mm", "77-99-1", "", ""},
		{"ACME®볼펜 1.5m", "ACME®볼펜 1.5m", "", "5m", ""},
		{"모나미 매직", "모나미 매직", "", "", "모나미"},
	}

	var buf bytes.Buffer
	sum := p.EnrichTable(tbl, &buf)

	assert.Equal(t, 3, sum.Rows)
	assert.Equal(t, 1, sum.BrandCopied)
	assert.Equal(t, 1, sum.BrandResolved)
	assert.Equal(t, 2, sum.SpecsWritten)
	assert.Contains(t, buf.String(), "enriched 3 rows")

	assert.Equal(t, "", tbl.Get(0, "브랜드명"))
	assert.Equal(t, "150mmx150mm/150mm/(특가)", tbl.Get(0, "규격/스펙"))
	assert.Equal(t, "ACME", tbl.Get(1, "브랜드명"))
	assert.Equal(t, "1.5m", tbl.Get(1, "규격/스펙"))
	assert.Equal(t, "모나미", tbl.Get(2, "브랜드명"))
	assert.Equal(t, "", tbl.Get(2, "규격/스펙"))

	assert.Equal(t, 2, sum.TokensAdded["units"])
	assert.Equal(t, 1, sum.TokensAdded["composed_dimensions"])
}

func TestEnrichTableMissingColumns(t *testing.T) {
	p := testPipeline()

	tbl := dataset.NewTable([]string{"pdt_name"})
	tbl.Rows = [][]string{{"복사지 a4 (묶음)"}}

	var buf bytes.Buffer
	sum := p.EnrichTable(tbl, &buf)

	require.Equal(t, 1, sum.Rows)
	assert.Equal(t, "a4/(묶음)", tbl.Get(0, "규격/스펙"))
	assert.Equal(t, "", tbl.Get(0, "브랜드명"))
}

func TestSlimColumns(t *testing.T) {
	p := testPipeline()
	assert.Equal(t,
		[]string{"pdt_name", "pdt_name_clean", "pdt_cas", "브랜드명", "규격/스펙"},
		p.SlimColumns())
}

func TestExtractAll(t *testing.T) {
	p := testPipeline()

	results := p.ExtractAll("clt-p407c 용지a4 (리필)")
	byCategory := map[string][]string{}
	for _, r := range results {
		byCategory[r.Category] = r.Tokens
	}
	assert.Equal(t, []string{"a4"}, byCategory["paper_sizes"])
	assert.Equal(t, []string{"clt-p407c"}, byCategory["hyphen_codes"])
	assert.Equal(t, []string{"p407c"}, byCategory["alnum_codes"])
	assert.Equal(t, []string{"(리필)"}, byCategory["parentheses"])
	assert.Empty(t, byCategory["units"])
}
