// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import "regexp"

// Product-code matchers. The hyphen rule is the narrow one; the compact
// rule is the broad last resort and necessarily re-matches sub-tokens of
// hyphenated codes. Both keep the original casing.
var (
	// hyCodeRe matches alphanumeric segments joined by hyphens or
	// underscores, e.g. "clt-p407c" or "x1_y2_z3".
	hyCodeRe = regexp.MustCompile(`[A-Za-z0-9]+(?:[-_]+[A-Za-z0-9]+)+`)

	// alnumCodeRe matches bare alphanumeric runs of length >= 3.
	alnumCodeRe = regexp.MustCompile(`[A-Za-z0-9]{3,}`)
)

// hasLetterAndDigit reports whether s contains at least one ASCII
// letter and at least one ASCII digit.
func hasLetterAndDigit(s string) bool {
	var letter, digit bool
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= '0' && b <= '9':
			digit = true
		case b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z':
			letter = true
		}
	}
	return letter && digit
}

// extractCodes runs one code matcher with the shared guards: Unicode
// word boundaries, the whole-token letter-and-digit requirement, and
// the "no." prefix exclusion.
func extractCodes(re *regexp.Regexp, text string) []string {
	var tokens []string
	seen := make(map[string]bool)
	for _, loc := range scan(re, text, func(start, end int) bool {
		if !boundedWord(text, start, end) || afterNoPrefix(text, start) {
			return false
		}
		return hasLetterAndDigit(text[start:end])
	}) {
		tokens = appendUnique(tokens, seen, text[loc[0]:loc[1]])
	}
	return tokens
}

// ExtractHyphenCodes matches hyphen/underscore-joined product codes
// containing at least one letter and one digit, excluding tokens
// prefixed with "no.". Returns nil for empty input.
func ExtractHyphenCodes(text string) []string {
	if text == "" {
		return nil
	}
	return extractCodes(hyCodeRe, text)
}

// ExtractAlnumCodes matches compact alphanumeric codes of length >= 3
// containing at least one letter and one digit, with the same "no."
// exclusion. Returns nil for empty input.
func ExtractAlnumCodes(text string) []string {
	if text == "" {
		return nil
	}
	return extractCodes(alnumCodeRe, text)
}
