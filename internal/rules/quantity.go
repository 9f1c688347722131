// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import "regexp"

// qtyRe matches two counted-unit expressions joined by x or ×, with
// counted units from the Korean packaging set (sheets, volumes,
// bundles, rolls, packs, boxes). The second unit word is optional.
var qtyRe = regexp.MustCompile(`\d+\s?(?:매|권|묶음|롤|팩|박스)\s?[x×X]\s?\d+\s?(?:매|권|묶음|롤|팩|박스)?`)

// ExtractQuantityCombos matches quantity combinations such as
// "250매x10권", normalizing the separator to x and stripping internal
// spaces. Returns nil for empty input.
func ExtractQuantityCombos(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	seen := make(map[string]bool)
	for _, loc := range scan(qtyRe, text, func(start, end int) bool {
		return boundedWord(text, start, end)
	}) {
		tok := compact(text[loc[0]:loc[1]])
		tokens = appendUnique(tokens, seen, replaceTimes(tok))
	}
	return tokens
}

// replaceTimes normalizes the × separator to a plain x.
func replaceTimes(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '×' {
			r = 'x'
		}
		out = append(out, r)
	}
	return string(out)
}
