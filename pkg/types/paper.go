// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperRecord represents one piece of external literature returned by a
// search provider. The identity key for deduplication is ExternalID when
// present, otherwise the case-normalized title.
type PaperRecord struct {
	// Title is the paper title as returned by the provider.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in provider order.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the publication year (0 when unknown).
	Year int `json:"year" yaml:"year"`

	// Venue is the journal, conference, or repository name.
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`

	// URL points at the paper landing page.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Abstract is the paper abstract or snippet.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Keywords are provider-supplied subject tags.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// RelevanceScore is a value between 0.0 and 1.0 indicating relevance to
	// the originating query. Comparable within one provider only.
	RelevanceScore float64 `json:"relevance_score" yaml:"relevance_score"`

	// ExternalID is the canonical identifier from the provider (paper ID or
	// DOI). May be empty.
	ExternalID string `json:"external_id,omitempty" yaml:"external_id,omitempty"`

	// Provider identifies which backend produced this record
	// (e.g. "semantic_scholar", "crossref", "offline").
	Provider string `json:"provider" yaml:"provider"`
}
