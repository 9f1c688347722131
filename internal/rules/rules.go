// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rules implements the pattern library that derives normalized
// specification tokens from free-text product names. Each extractor is a
// pure function from text to an ordered, de-duplicated token list; the
// library itself is immutable process-wide state compiled at init.
package rules

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Category identifies one extractor of the pattern library. Categories
// are merged into the spec field in the order returned by Ordered.
type Category string

const (
	Dimensions     Category = "composed_dimensions"
	Units          Category = "units"
	PaperSizes     Category = "paper_sizes"
	QuantityCombos Category = "quantity_combos"
	HyphenCodes    Category = "hyphen_codes"
	AlnumCodes     Category = "alnum_codes"
	Parentheses    Category = "parentheses"
)

// Rule pairs a category with its extractor. RawOnly marks rules that
// read the original name field exclusively, never the cleaned one.
type Rule struct {
	Category Category
	Extract  func(text string) []string
	RawOnly  bool
}

// Ordered returns the fixed rule battery in merge order. The hyphen and
// compact code rules deliberately overlap; de-duplication downstream is
// the only arbitration between them.
func Ordered() []Rule {
	return []Rule{
		{Category: Dimensions, Extract: ExtractComposedDimensions},
		{Category: Units, Extract: ExtractUnits},
		{Category: PaperSizes, Extract: ExtractPaperSizes},
		{Category: QuantityCombos, Extract: ExtractQuantityCombos},
		{Category: HyphenCodes, Extract: ExtractHyphenCodes},
		{Category: AlnumCodes, Extract: ExtractAlnumCodes},
		{Category: Parentheses, Extract: ExtractParentheticals, RawOnly: true},
	}
}

// scan finds successive matches of re in s, keeping only those accept
// allows. A rejected candidate advances the scan by one rune instead of
// consuming its span, so an overlapping later match is still found —
// the way a boundary assertion inside the pattern would behave.
func scan(re *regexp.Regexp, s string, accept func(start, end int) bool) [][2]int {
	var out [][2]int
	off := 0
	for off <= len(s) {
		loc := re.FindStringIndex(s[off:])
		if loc == nil {
			break
		}
		start, end := off+loc[0], off+loc[1]
		if accept(start, end) {
			out = append(out, [2]int{start, end})
			off = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		off = start + size
	}
	return out
}

// isWordRune reports whether r is a word character in the Unicode sense
// (letter, digit, or underscore). Hangul counts, so a unit glued to
// Korean text is not boundary-separated from it.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// boundedWord reports whether the match s[start:end] sits on Unicode
// word boundaries: the adjacent runes on both sides, where present,
// must not be word characters.
func boundedWord(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

// isASCIIAlnum reports whether b is an ASCII letter or digit.
func isASCIIAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// boundedASCII reports whether the match s[start:end] is bounded by
// characters outside [A-Za-z0-9] (or by the text edges). Only the
// Latin/digit side of the boundary is checked, so a designator glued
// directly after Hangul still matches.
func boundedASCII(s string, start, end int) bool {
	if start > 0 && isASCIIAlnum(s[start-1]) {
		return false
	}
	if end < len(s) && isASCIIAlnum(s[end]) {
		return false
	}
	return true
}

// afterDecimalPoint reports whether the match starting at start is
// immediately preceded by '.', i.e. it is the integer tail of a decimal
// quantity.
func afterDecimalPoint(s string, start int) bool {
	return start > 0 && s[start-1] == '.'
}

// afterNoPrefix reports whether the match starting at start is
// immediately preceded by the literal "no." (case-insensitive), which
// marks reference-number prose rather than a product code.
func afterNoPrefix(s string, start int) bool {
	if start < 3 {
		return false
	}
	p := s[start-3 : start]
	return (p[0] == 'n' || p[0] == 'N') && (p[1] == 'o' || p[1] == 'O') && p[2] == '.'
}

// compact lowercases s and removes all internal whitespace.
func compact(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// appendUnique appends token to list unless its lowercased form is
// already in seen. The original casing is preserved in the list.
func appendUnique(list []string, seen map[string]bool, token string) []string {
	key := strings.ToLower(token)
	if seen[key] {
		return list
	}
	seen[key] = true
	return append(list, token)
}
