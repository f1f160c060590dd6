// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify scores a project document against the four fixed
// research-planning categories and applies the multi-label inclusion rules.
// The design is deliberately recall-biased: overlapping low thresholds let a
// document serve more than one planning role at once.
// See docs/ARCHITECTURE.md § Classification.
package classify

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

const (
	// inclusionThreshold is the primary cut: categories scoring above it are
	// included outright.
	inclusionThreshold = 0.2

	// secondaryThreshold re-admits one of the two highest-scoring categories
	// that missed the primary cut.
	secondaryThreshold = 0.1

	// minConfidence floors the confidence of force-included categories.
	minConfidence = 0.15
)

// scored pairs a category with its raw evidence score.
type scored struct {
	category types.Category
	score    float64
	reasons  []string
}

// Classify scores doc against every category and returns the multi-label
// result. The mapping is never empty.
func Classify(doc types.Document) types.ClassificationResult {
	ranked := scoreAll(doc)

	result := types.ClassificationResult{
		DocumentID: doc.ID,
		FileName:   doc.FileName,
		Categories: make(map[types.Category]types.CategoryScore),
	}

	// Step 1: include everything above the primary threshold.
	for _, s := range ranked {
		if s.score > inclusionThreshold {
			result.Categories[s.category] = types.CategoryScore{
				Confidence: s.score,
				Reasons:    s.reasons,
			}
		}
	}

	// Step 2: if nothing passed, force-include the single best category.
	if len(result.Categories) == 0 {
		best := ranked[0]
		result.Categories[best.category] = types.CategoryScore{
			Confidence: floor(best.score),
			Reasons:    append(best.reasons, "highest-scoring category selected as fallback"),
		}
	}

	// Step 3: inspect the two highest-scoring categories; re-admit any not
	// yet included whose score clears the secondary threshold.
	for _, s := range ranked[:2] {
		if result.Has(s.category) || s.score <= secondaryThreshold {
			continue
		}
		result.Categories[s.category] = types.CategoryScore{
			Confidence: floor(s.score),
			Reasons:    append(s.reasons, "runner-up category included for overlap"),
		}
	}

	return result
}

// scoreAll computes the independent per-category scores, sorted descending.
// Ties keep the canonical category order.
func scoreAll(doc types.Document) []scored {
	ranked := make([]scored, 0, len(profiles))
	for _, p := range profiles {
		s, reasons := scoreAgainst(doc, p)
		ranked = append(ranked, scored{category: p.category, score: s, reasons: reasons})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}

// scoreAgainst accumulates the weighted evidence for one category and clamps
// the total to 1.0.
func scoreAgainst(doc types.Document, p profile) (float64, []string) {
	var score float64
	var reasons []string

	base := strings.ToLower(strings.TrimSuffix(doc.FileName, filepath.Ext(doc.FileName)))
	if base == p.marker {
		score += p.exactBonus
		reasons = append(reasons, fmt.Sprintf("filename %q matches marker %q", doc.FileName, p.marker))
	} else {
		for _, alias := range p.aliases {
			if strings.Contains(base, alias) {
				score += p.partialBonus
				reasons = append(reasons, fmt.Sprintf("filename %q contains %q", doc.FileName, alias))
				break
			}
		}
	}

	if n := countTerms(doc.Content, p.terms); n >= 1 {
		switch {
		case n >= 5:
			score += p.tierHigh
		case n >= 3:
			score += p.tierMid
		default:
			score += p.tierLow
		}
		reasons = append(reasons, termEvidence(p.category, n))
	}

	if bonus, evidence := p.structure(doc.Content); bonus > 0 {
		score += bonus
		reasons = append(reasons, evidence)
	}

	if score > 1.0 {
		score = 1.0
	}
	return score, reasons
}

func floor(score float64) float64 {
	if score < minConfidence {
		return minConfidence
	}
	return score
}
