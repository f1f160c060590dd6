// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Category is one of the four fixed research-planning roles a document can
// serve. A document may hold several categories at once.
type Category string

const (
	CategoryMain    Category = "Main"
	CategoryTopic   Category = "Topic"
	CategoryForTech Category = "ForTech"
	CategoryForAca  Category = "ForAca"
)

// AllCategories lists the categories in canonical order. The order doubles
// as the deterministic tie-break when scores are equal.
var AllCategories = []Category{CategoryMain, CategoryTopic, CategoryForTech, CategoryForAca}

// CategoryScore holds the confidence and the ordered evidence strings that
// justified including a category.
type CategoryScore struct {
	// Confidence is in [0,1].
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Reasons lists the evidence in the order it was collected.
	Reasons []string `json:"reasons" yaml:"reasons"`
}

// ClassificationResult maps each included category to its score for one
// document. Never empty: every document receives at least one category.
type ClassificationResult struct {
	// DocumentID identifies the classified document.
	DocumentID string `json:"document_id" yaml:"document_id"`

	// FileName is carried for report rendering.
	FileName string `json:"file_name" yaml:"file_name"`

	// Categories holds the included categories and their evidence.
	Categories map[Category]CategoryScore `json:"categories" yaml:"categories"`
}

// Has reports whether the result includes category c.
func (r ClassificationResult) Has(c Category) bool {
	_, ok := r.Categories[c]
	return ok
}
