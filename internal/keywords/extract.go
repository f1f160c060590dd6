// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keywords extracts, ranks, and groups subject-matter keywords from
// a set of project documents. See docs/ARCHITECTURE.md § Keywords.
package keywords

import (
	"strings"
	"unicode/utf8"
)

// Extract returns the normalized keyword candidates found in text: every
// catalog match (the matched literal, lowercased) plus every special term.
// Candidates are deduplicated; insertion order is preserved so downstream
// ranking has a stable tie-break. Empty text yields an empty candidate list.
func Extract(text string) []string {
	seen := make(map[string]bool)
	var candidates []string

	add := func(c string) {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || seen[c] {
			return
		}
		seen[c] = true
		candidates = append(candidates, c)
	}

	for _, re := range technicalTerms {
		for _, m := range re.FindAllString(text, -1) {
			add(m)
		}
	}
	for _, re := range researchTerms {
		for _, m := range re.FindAllString(text, -1) {
			add(m)
		}
	}

	for _, m := range specialTermPattern.FindAllString(text, -1) {
		n := utf8.RuneCountInString(m)
		if n < specialTermMinLen || n > specialTermMaxLen {
			continue
		}
		add(m)
	}

	return candidates
}

// ExtractAll unions the candidates of every document, preserving
// first-discovered order across the whole set.
func ExtractAll(texts []string) []string {
	seen := make(map[string]bool)
	var union []string
	for _, text := range texts {
		for _, c := range Extract(text) {
			if seen[c] {
				continue
			}
			seen[c] = true
			union = append(union, c)
		}
	}
	return union
}
