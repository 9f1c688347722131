// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"regexp"
	"strings"
)

// unitPattern is one standalone-quantity matcher. Patterns carry no \b
// anchors; Unicode word boundaries are enforced by boundedWord so that
// Hangul glued to a number blocks the match, which Go's ASCII-only \b
// would get wrong.
type unitPattern struct {
	re *regexp.Regexp

	// guarded marks integer-only patterns that must not fire on the
	// trailing digits of a decimal quantity (1.5m must not yield 5m).
	guarded bool
}

// unitPatterns lists the unit matchers in application order: decimal
// forms of m/cm/mm first, then their guarded integer forms, then the
// units whose single pattern already covers decimals.
var unitPatterns = []unitPattern{
	{re: regexp.MustCompile(`(?i)\d+\.\d+\s?m`)},
	{re: regexp.MustCompile(`(?i)\d+\.\d+\s?cm`)},
	{re: regexp.MustCompile(`(?i)\d+\.\d+\s?mm`)},
	{re: regexp.MustCompile(`(?i)\d+\s?m`), guarded: true},
	{re: regexp.MustCompile(`(?i)\d+\s?cm`), guarded: true},
	{re: regexp.MustCompile(`(?i)\d+\s?mm`), guarded: true},
	{re: regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s?g`)},
	{re: regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s?ml`)},
	{re: regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s?l`)},
	{re: regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s?리터`)},
}

// ExtractUnits matches standalone quantities with units m, cm, mm, g,
// ml, l, and 리터. Tokens are lowercased with internal whitespace
// removed. Returns nil for empty input.
func ExtractUnits(text string) []string {
	if text == "" {
		return nil
	}
	s := strings.ReplaceAll(text, "×", "x")

	var tokens []string
	seen := make(map[string]bool)
	for _, p := range unitPatterns {
		guarded := p.guarded
		for _, loc := range scan(p.re, s, func(start, end int) bool {
			if !boundedWord(s, start, end) {
				return false
			}
			return !guarded || !afterDecimalPoint(s, start)
		}) {
			tokens = appendUnique(tokens, seen, compact(s[loc[0]:loc[1]]))
		}
	}
	return tokens
}
