// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "strings"

// Relevance scoring weights, shared across providers: a query term found in
// the title counts 3, in the abstract or snippet 2, in a high-value
// structured field (subject tag, field of study) 4. Each provider normalizes
// with its own constants; only the [0,1] bound and intra-provider ordering
// are relied upon.
const (
	titleWeight      = 3.0
	abstractWeight   = 2.0
	structuredWeight = 4.0
)

// termHits accumulates the weighted hits of terms against one record's
// title, abstract, and structured tags. Case-insensitive literal matching.
func termHits(terms []string, title, abstract string, tags []string) float64 {
	lowerTitle := strings.ToLower(title)
	lowerAbstract := strings.ToLower(abstract)

	var hits float64
	for _, term := range terms {
		t := strings.ToLower(term)
		if t == "" {
			continue
		}
		if strings.Contains(lowerTitle, t) {
			hits += titleWeight
		}
		if strings.Contains(lowerAbstract, t) {
			hits += abstractWeight
		}
		for _, tag := range tags {
			if strings.Contains(strings.ToLower(tag), t) {
				hits += structuredWeight
				break
			}
		}
	}
	return hits
}

// rankDecay is a small bonus for position in an ordered result list: the
// first item gets the full bonus, the last none. Monotone in rank only, so
// adding term matches can never lower a score.
func rankDecay(index, total int, bonus float64) float64 {
	if total <= 1 {
		return bonus
	}
	return bonus * (1.0 - float64(index)/float64(total-1))
}

// normalize divides hits by the provider's theoretical maximum and clamps to
// [0,1]. Deterministic and monotonically non-decreasing in match count.
func normalize(hits, max float64) float64 {
	if max <= 0 {
		return 0
	}
	score := hits / max
	if score > 1.0 {
		return 1.0
	}
	if score < 0 {
		return 0
	}
	return score
}
