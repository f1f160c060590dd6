// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keywords

import "github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"

// Plan expands the ranked keywords into the fan-out query groupings issued
// to search providers. Backends AND multi-term queries, so combined and
// single-term sets are issued separately to widen recall:
//
//  1. all keywords (if any),
//  2. the first 3 (if at least 3),
//  3. the first 5 (if at least 5),
//  4. each of the first 3 individually.
func Plan(ranked []types.Keyword) [][]string {
	terms := make([]string, len(ranked))
	for i, kw := range ranked {
		terms[i] = kw.Text
	}

	var sets [][]string
	if len(terms) >= 1 {
		sets = append(sets, append([]string(nil), terms...))
	}
	if len(terms) >= 3 {
		sets = append(sets, append([]string(nil), terms[:3]...))
	}
	if len(terms) >= 5 {
		sets = append(sets, append([]string(nil), terms[:5]...))
	}
	for i := 0; i < len(terms) && i < 3; i++ {
		sets = append(sets, []string{terms[i]})
	}
	return sets
}
