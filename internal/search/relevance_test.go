package search

import "testing"

func TestTermHitsWeights(t *testing.T) {
	tests := []struct {
		name     string
		terms    []string
		title    string
		abstract string
		tags     []string
		want     float64
	}{
		{"title only", []string{"graph"}, "Graph Theory", "", nil, 3},
		{"abstract only", []string{"graph"}, "Networks", "a graph model", nil, 2},
		{"structured only", []string{"graph"}, "Networks", "", []string{"graph theory"}, 4},
		{"all fields", []string{"graph"}, "Graph Theory", "a graph model", []string{"graph theory"}, 9},
		{"tag counted once per term", []string{"graph"}, "", "", []string{"graph", "graphs"}, 4},
		{"two terms accumulate", []string{"graph", "model"}, "Graph Model", "", nil, 6},
		{"case insensitive", []string{"GRAPH"}, "graph theory", "", nil, 3},
		{"empty term ignored", []string{""}, "anything", "anything", []string{"anything"}, 0},
		{"no match", []string{"quantum"}, "Graph Theory", "a graph model", []string{"graphs"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := termHits(tt.terms, tt.title, tt.abstract, tt.tags); got != tt.want {
				t.Errorf("termHits() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRankDecay(t *testing.T) {
	if got := rankDecay(0, 10, 1.0); got != 1.0 {
		t.Errorf("first item decay = %v, want full bonus", got)
	}
	if got := rankDecay(9, 10, 1.0); got != 0 {
		t.Errorf("last item decay = %v, want 0", got)
	}
	if got := rankDecay(0, 1, 2.0); got != 2.0 {
		t.Errorf("single-item decay = %v, want full bonus", got)
	}
	prev := rankDecay(0, 5, 1.0)
	for i := 1; i < 5; i++ {
		cur := rankDecay(i, 5, 1.0)
		if cur > prev {
			t.Errorf("decay not monotone at index %d: %v > %v", i, cur, prev)
		}
		prev = cur
	}
}

func TestNormalizeBounds(t *testing.T) {
	tests := []struct {
		hits, max, want float64
	}{
		{4.5, 9, 0.5},
		{12, 9, 1.0}, // clamp
		{0, 9, 0},
		{5, 0, 0}, // degenerate max
		{-1, 9, 0},
	}
	for _, tt := range tests {
		if got := normalize(tt.hits, tt.max); got != tt.want {
			t.Errorf("normalize(%v, %v) = %v, want %v", tt.hits, tt.max, got, tt.want)
		}
	}
}
