package search

import (
	"context"
	"testing"
)

func TestFallbackSearchRanksByRelevance(t *testing.T) {
	p := &FallbackProvider{}

	records, err := p.Search(context.Background(), []string{"machine learning"}, Options{})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(records) == 0 {
		t.Fatal("Search() returned no records for a curated term")
	}

	// Title + abstract + keyword tag all match: the full 9/9 score.
	if got := records[0].Title; got != "A Few Useful Things to Know About Machine Learning" {
		t.Errorf("top record = %q, want the full-match paper", got)
	}
	if records[0].RelevanceScore != 1.0 {
		t.Errorf("top relevance = %v, want 1.0", records[0].RelevanceScore)
	}

	for i, r := range records {
		if r.RelevanceScore <= 0 || r.RelevanceScore > 1.0 {
			t.Errorf("record %d relevance %v outside (0,1]", i, r.RelevanceScore)
		}
		if i > 0 && r.RelevanceScore > records[i-1].RelevanceScore {
			t.Errorf("records not sorted descending at %d", i)
		}
		if r.Provider != SourceOffline {
			t.Errorf("record %d provider = %q, want %q", i, r.Provider, SourceOffline)
		}
	}
}

func TestFallbackSearchDropsZeroScores(t *testing.T) {
	p := &FallbackProvider{}

	records, err := p.Search(context.Background(), []string{"zzzz-no-such-term"}, Options{})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Search() returned %d records for an unmatched term, want 0", len(records))
	}
}

func TestFallbackSearchHonorsMaxResults(t *testing.T) {
	p := &FallbackProvider{}

	records, err := p.Search(context.Background(), []string{"survey"}, Options{MaxResults: 2})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(records) > 2 {
		t.Errorf("Search() returned %d records, want at most 2", len(records))
	}
}

func TestFallbackSearchDoesNotMutateCuratedSet(t *testing.T) {
	p := &FallbackProvider{}

	if _, err := p.Search(context.Background(), []string{"blockchain"}, Options{}); err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	for _, paper := range fallbackPapers {
		if paper.RelevanceScore != 0 {
			t.Fatalf("curated record %q relevance mutated to %v", paper.Title, paper.RelevanceScore)
		}
	}
}
