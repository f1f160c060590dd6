// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries literature providers over a uniform contract,
// drives the provider fallback chain, deduplicates results across fan-out
// keyword sets, and ranks the survivors.
// See docs/ARCHITECTURE.md § Search.
package search

import (
	"context"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

// Provider names double as the requested-source identifiers.
const (
	SourceSemanticScholar = "semantic_scholar"
	SourceCrossref        = "crossref"
	SourceOffline         = "offline"
)

// Options holds the per-call settings shared by every provider.
type Options struct {
	// MaxResults caps one provider call (default 10).
	MaxResults int

	// YearFrom/YearTo bound publication years; zero means unbounded.
	YearFrom int
	YearTo   int

	// ContentType filters the publication type where supported.
	ContentType string
}

// Provider is a literature-search backend. Implementations may fail with
// transport, auth, or rate-limit errors; the orchestrator treats every
// failure uniformly as "unavailable, continue fallback".
type Provider interface {
	Name() string

	// IsConfigured reports whether the provider has the credentials it
	// needs. Unconfigured providers are skipped without a network call.
	IsConfigured() bool

	Search(ctx context.Context, keywordSet []string, opts Options) ([]types.PaperRecord, error)
}

func capResults(opts Options) int {
	if opts.MaxResults <= 0 {
		return 10
	}
	return opts.MaxResults
}
