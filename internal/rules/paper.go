// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"regexp"
	"strings"
)

// paperRe matches ISO and US paper designators. Boundaries are checked
// separately against ASCII alphanumerics only, so a designator glued
// directly after Hangul ("컬러레이저용지a4") still matches.
var paperRe = regexp.MustCompile(`(?i)a[0-5]|b[0-5]|letter|legal`)

// ExtractPaperSizes matches paper-size designators a0-a5, b0-b5,
// letter, and legal. Tokens are lowercased. Returns nil for empty input.
func ExtractPaperSizes(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	seen := make(map[string]bool)
	for _, loc := range scan(paperRe, text, func(start, end int) bool {
		return boundedASCII(text, start, end)
	}) {
		tokens = appendUnique(tokens, seen, strings.ToLower(text[loc[0]:loc[1]]))
	}
	return tokens
}
