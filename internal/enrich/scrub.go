// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"regexp"
	"strings"
)

// staleUnitRe matches a token that is exactly a bare unit quantity.
// Earlier runs could store the integer tail of a decimal quantity
// (5m from 1.5m); those stored tokens must be purged before units are
// re-extracted, or the bad value is re-merged forever.
var staleUnitRe = regexp.MustCompile(`(?i)^\d+(?:\.\d+)?(?:mm|cm|m|g|ml|l|리터)$`)

// ScrubStaleUnits returns tokens with bare unit-quantity tokens
// removed. Comparison is on the trimmed token; surviving tokens keep
// their original form and order.
func ScrubStaleUnits(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if staleUnitRe.MatchString(strings.TrimSpace(t)) {
			continue
		}
		out = append(out, t)
	}
	return out
}
