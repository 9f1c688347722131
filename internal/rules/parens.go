// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import "regexp"

// parenRe matches single-level, non-nested parenthetical spans.
var parenRe = regexp.MustCompile(`\([^()]*\)`)

// ExtractParentheticals returns (...) spans verbatim, case preserved.
// The pipeline feeds it the raw name only; cleaned names have their
// parentheticals stripped upstream. Returns nil for empty input.
func ExtractParentheticals(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	seen := make(map[string]bool)
	for _, m := range parenRe.FindAllString(text, -1) {
		tokens = appendUnique(tokens, seen, m)
	}
	return tokens
}
