// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich derives the brand and specification fields of a
// product record by running the pattern library over its name fields
// and merging the results into the existing spec under a fixed category
// order.
package enrich

import "strings"

// MergeTokens merges tokens into an existing delimiter-joined spec
// string. The existing string is split into a base list (blank segments
// dropped, segments trimmed); each new token is appended, trimmed and
// in its original case, unless its lowercased form is already present.
// Insertion order is preserved, so merging already-merged output is a
// no-op. Returns "" when the resulting list is empty.
func MergeTokens(existing string, tokens []string, delim string) string {
	var base []string
	var norm map[string]bool
	if strings.TrimSpace(existing) != "" {
		parts := strings.Split(existing, delim)
		base = make([]string, 0, len(parts))
		norm = make(map[string]bool, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			base = append(base, p)
			norm[strings.ToLower(p)] = true
		}
	} else {
		norm = make(map[string]bool)
	}

	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if norm[key] {
			continue
		}
		base = append(base, t)
		norm[key] = true
	}

	if len(base) == 0 {
		return ""
	}
	return strings.Join(base, delim)
}
