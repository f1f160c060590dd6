// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keywords

import (
	"regexp"
	"sort"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

// DefaultTopK is the number of ranked keywords kept when the caller does not
// override it.
const DefaultTopK = 10

// mainDocumentWeight multiplies occurrence counts in the main document.
const mainDocumentWeight = 1.5

// Rank scores each candidate across the document set and returns the top K
// keywords sorted by descending score. The sort is stable: candidates tied on
// score keep their first-discovered order. K <= 0 selects DefaultTopK.
func Rank(docs []types.Document, candidates []string, k int) []types.Keyword {
	if k <= 0 {
		k = DefaultTopK
	}

	ranked := make([]types.Keyword, 0, len(candidates))
	for _, c := range candidates {
		// QuoteMeta keeps keywords containing metacharacters (e.g. "c++")
		// from corrupting the occurrence count.
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(c))
		if err != nil {
			continue
		}

		var score float64
		for _, d := range docs {
			n := len(re.FindAllStringIndex(d.Content, -1))
			if n == 0 {
				continue
			}
			score += float64(n) * typeWeight(d.Type)
		}
		if score > 0 {
			ranked = append(ranked, types.Keyword{Text: c, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

func typeWeight(t types.DocumentType) float64 {
	if t == types.DocumentMain {
		return mainDocumentWeight
	}
	return 1.0
}
