// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"regexp"
	"strings"
)

// Composed-dimension matchers, in application order: unit on both sides,
// the meter-by-millimeter form, and the generic form where only the
// right operand carries a unit. The separator is matched as a literal x
// because × is normalized away before matching.
var composedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s?(?:mm|cm|m)\s?x\s?\d+(?:\.\d+)?\s?(?:mm|cm|m)`),
	regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s?m\s?x\s?\d+(?:\.\d+)?\s?mm`),
	regexp.MustCompile(`(?i)\d+(?:\.\d+)?\s?x\s?\d+(?:\.\d+)?\s?(?:mm|cm|m)`),
}

// ExtractComposedDimensions matches two-operand multiplicative dimension
// expressions such as "150mm x 150mm" and normalizes them to a compact
// lowercase form ("150mmx150mm"). Returns nil for empty input.
func ExtractComposedDimensions(text string) []string {
	if text == "" {
		return nil
	}
	s := strings.ReplaceAll(text, "×", "x")

	var tokens []string
	seen := make(map[string]bool)
	for _, re := range composedPatterns {
		for _, loc := range scan(re, s, func(start, end int) bool {
			return boundedWord(s, start, end)
		}) {
			tokens = appendUnique(tokens, seen, compact(s[loc[0]:loc[1]]))
		}
	}
	return tokens
}
