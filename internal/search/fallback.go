// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"sort"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

// FallbackProvider serves a curated static record set when no live provider
// is usable. It performs no I/O and cannot fail, which makes it the
// terminator of every provider chain.
type FallbackProvider struct{}

// Name returns the provider identifier.
func (p *FallbackProvider) Name() string { return SourceOffline }

// IsConfigured always reports true.
func (p *FallbackProvider) IsConfigured() bool { return true }

// Search scores the curated set against the keyword set with literal
// substring matching, drops zero-score items, and returns the top matches
// sorted by descending relevance.
func (p *FallbackProvider) Search(_ context.Context, keywordSet []string, opts Options) ([]types.PaperRecord, error) {
	max := float64(len(keywordSet)) * (titleWeight + abstractWeight + structuredWeight)

	var records []types.PaperRecord
	for _, paper := range fallbackPapers {
		hits := termHits(keywordSet, paper.Title, paper.Abstract, paper.Keywords)
		if hits == 0 {
			continue
		}
		r := paper
		r.RelevanceScore = normalize(hits, max)
		records = append(records, r)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].RelevanceScore > records[j].RelevanceScore
	})

	if limit := capResults(opts); len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
