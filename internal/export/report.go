// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

const dateFmt = "2006-01-02"

// CategoryArtifactName returns the artifact name for one category,
// e.g. "Main_2026-08-30.md".
func CategoryArtifactName(c types.Category, now time.Time) string {
	return fmt.Sprintf("%s_%s.md", c, now.Format(dateFmt))
}

// ReportArtifactName returns the summary-report artifact name,
// e.g. "Organization_Report_2026-08-30.md".
func ReportArtifactName(now time.Time) string {
	return fmt.Sprintf("Organization_Report_%s.md", now.Format(dateFmt))
}

// WorkbookArtifactName returns the tabular artifact name for a research run.
func WorkbookArtifactName(now time.Time) string {
	return fmt.Sprintf("Research_%s.db", now.Format(dateFmt))
}

// ResearchReportArtifactName returns the research-run report artifact name.
func ResearchReportArtifactName(now time.Time) string {
	return fmt.Sprintf("Research_Report_%s.md", now.Format(dateFmt))
}

// RenderCategoryArtifact renders the document list for one category with the
// classification evidence.
func RenderCategoryArtifact(c types.Category, results []types.ClassificationResult, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s — %s\n\n", c, now.Format(dateFmt))

	count := 0
	for _, r := range results {
		score, ok := r.Categories[c]
		if !ok {
			continue
		}
		count++
		fmt.Fprintf(&b, "## %s (confidence %.2f)\n", r.FileName, score.Confidence)
		for _, reason := range score.Reasons {
			fmt.Fprintf(&b, "- %s\n", reason)
		}
		b.WriteString("\n")
	}

	if count == 0 {
		b.WriteString("No documents classified into this category.\n")
	}
	return b.String()
}

// RenderOrganizationReport renders the cross-category summary report.
func RenderOrganizationReport(results []types.ClassificationResult, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Organization Report — %s\n\n", now.Format(dateFmt))
	fmt.Fprintf(&b, "Documents classified: %d\n\n", len(results))

	counts := make(map[types.Category]int)
	for _, r := range results {
		for c := range r.Categories {
			counts[c]++
		}
	}
	b.WriteString("## Category counts\n\n")
	for _, c := range types.AllCategories {
		fmt.Fprintf(&b, "- %s: %d\n", c, counts[c])
	}

	b.WriteString("\n## Per document\n\n")
	for _, r := range results {
		cats := make([]string, 0, len(r.Categories))
		for _, c := range types.AllCategories {
			if score, ok := r.Categories[c]; ok {
				cats = append(cats, fmt.Sprintf("%s (%.2f)", c, score.Confidence))
			}
		}
		fmt.Fprintf(&b, "- %s: %s\n", r.FileName, strings.Join(cats, ", "))
	}
	return b.String()
}

// RenderResearchReport renders the research-run summary: keywords, provider,
// ranked results, and the year histogram.
func RenderResearchReport(keywords []types.Keyword, records []types.PaperRecord, provider string, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Research Report — %s\n\n", now.Format(dateFmt))
	fmt.Fprintf(&b, "Provider: %s\n\n", provider)

	b.WriteString("## Keywords\n\n")
	for i, kw := range keywords {
		fmt.Fprintf(&b, "%d. %s (%.1f)\n", i+1, kw.Text, kw.Score)
	}

	b.WriteString("\n## Results\n\n")
	if len(records) == 0 {
		b.WriteString("No results found.\n")
	}
	for i, r := range records {
		fmt.Fprintf(&b, "%d. %s", i+1, r.Title)
		if len(r.Authors) > 0 {
			fmt.Fprintf(&b, " — %s", formatAuthors(r.Authors))
		}
		if r.Year > 0 {
			fmt.Fprintf(&b, " (%d)", r.Year)
		}
		fmt.Fprintf(&b, " [%.2f]\n", r.RelevanceScore)
	}

	hist := YearHistogram(records)
	if len(hist) > 0 {
		b.WriteString("\n## Year histogram\n\n")
		for _, y := range Years(hist) {
			fmt.Fprintf(&b, "- %d: %d\n", y, hist[y])
		}
	}
	return b.String()
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return authors[0]
	default:
		return authors[0] + " et al."
	}
}
