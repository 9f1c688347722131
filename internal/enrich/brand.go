// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// brandLetterRe requires at least one Latin or Hangul letter in a
// brand candidate, filtering out bare numbers and symbol runs.
var brandLetterRe = regexp.MustCompile(`[가-힣A-Za-z]`)

// ResolveBrand derives a brand from the marker-symbol convention: the
// contiguous non-space token immediately before the first marker
// occurrence, or the whole prefix when it has no internal space. The
// candidate is accepted only if it is at least two runes long and
// contains a Latin or Hangul letter. The boolean result reports whether
// a brand was produced.
func ResolveBrand(text, marker string) (string, bool) {
	if text == "" || marker == "" {
		return "", false
	}
	idx := strings.Index(text, marker)
	if idx < 0 {
		return "", false
	}

	prefix := strings.TrimSpace(text[:idx])
	if prefix == "" {
		return "", false
	}

	token := prefix
	if strings.Contains(prefix, " ") {
		fields := strings.Fields(prefix)
		token = fields[len(fields)-1]
	}

	if utf8.RuneCountInString(token) < 2 || !brandLetterRe.MatchString(token) {
		return "", false
	}
	return token, true
}
