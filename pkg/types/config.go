// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "integrated-manager/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// KeywordConfig holds settings for keyword extraction and ranking.
type KeywordConfig struct {
	// TopK is the number of ranked keywords kept for search planning (default 10).
	TopK int `json:"top_k" yaml:"top_k"`
}

// SearchConfig holds settings for the literature-search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Source selects the provider chain entry point: "semantic_scholar"
	// (default), "crossref", or "offline".
	Source string `json:"source" yaml:"source"`

	// MaxResultsPerCall caps each provider call (default 10).
	MaxResultsPerCall int `json:"max_results_per_call" yaml:"max_results_per_call"`

	// YearFrom/YearTo bound publication years; zero means unbounded.
	YearFrom int `json:"year_from,omitempty" yaml:"year_from,omitempty"`
	YearTo   int `json:"year_to,omitempty" yaml:"year_to,omitempty"`

	// ContentType filters the publication type where the provider supports
	// it (e.g. "journal-article" for Crossref).
	ContentType string `json:"content_type,omitempty" yaml:"content_type,omitempty"`

	// InterCallDelay is the fixed delay between consecutive provider calls
	// (default 1s). Sequencing is deliberate; there is no parallel fan-out.
	InterCallDelay time.Duration `json:"inter_call_delay" yaml:"inter_call_delay"`

	// SemanticScholarAPIKey is the primary-index credential. Blank means the
	// primary index is unconfigured and the offline fallback is used.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`

	// CrossrefMailto is sent as the polite-pool contact for Crossref.
	CrossrefMailto string `json:"crossref_mailto,omitempty" yaml:"crossref_mailto,omitempty"`
}

// OrganizeConfig holds settings for the document-organization stage.
type OrganizeConfig struct {
	// DocumentsDir is the container directory holding project documents.
	DocumentsDir string `json:"documents_dir" yaml:"documents_dir"`

	// ArtifactsDir receives the per-category and report artifacts. Empty
	// means DocumentsDir.
	ArtifactsDir string `json:"artifacts_dir,omitempty" yaml:"artifacts_dir,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Keywords KeywordConfig  `json:"keywords" yaml:"keywords"`
	Search   SearchConfig   `json:"search" yaml:"search"`
	Organize OrganizeConfig `json:"organize" yaml:"organize"`
}
