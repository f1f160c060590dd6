// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the integrated-manager
// pipeline: project documents, classification results, and retrieved paper
// records. See docs/ARCHITECTURE.md § Data Structures.
package types

import "time"

// DocumentType marks the role a project document plays when keyword
// occurrences are weighted. The main document counts more than the rest.
type DocumentType string

const (
	DocumentMain       DocumentType = "main"
	DocumentSuggestion DocumentType = "suggestion"
	DocumentGeneric    DocumentType = "generic"
)

// Document is an immutable snapshot of one project text document for the
// duration of a run.
type Document struct {
	// ID is the document-store identifier (file path for the filesystem store).
	ID string `json:"id" yaml:"id"`

	// FileName is the document name including extension.
	FileName string `json:"file_name" yaml:"file_name"`

	// Content is the full document text. Unreadable documents carry a
	// placeholder string instead of aborting the batch.
	Content string `json:"content" yaml:"content"`

	// Type is derived from the file name: main, suggestion, or generic.
	Type DocumentType `json:"type" yaml:"type"`

	// ModifiedTime is the last modification time reported by the store.
	ModifiedTime time.Time `json:"modified_time" yaml:"modified_time"`
}

// Keyword is one ranked subject-matter keyword. Ephemeral, recomputed per run.
type Keyword struct {
	// Text is the lowercased, normalized keyword.
	Text string `json:"text" yaml:"text"`

	// Score is the weighted occurrence total across the document set.
	Score float64 `json:"score" yaml:"score"`
}
