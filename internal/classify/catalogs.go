// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

// profile holds the immutable evidence table for one category: filename
// markers, the associated content terms, the tier magnitudes, and the
// structural shape detector.
type profile struct {
	category types.Category

	// marker is the canonical filename (without extension, lowercased) that
	// earns the exact-match bonus. aliases earn the substring bonus.
	marker  string
	aliases []string

	exactBonus   float64
	partialBonus float64

	// terms are matched case-insensitively as substrings of the content.
	// The tier bonus depends on how many distinct terms appear:
	// >=5 tierHigh, >=3 tierMid, >=1 tierLow.
	terms    []string
	tierHigh float64
	tierMid  float64
	tierLow  float64

	// structure inspects the textual shape and returns a bonus plus an
	// evidence string when the shape is present.
	structure func(content string) (float64, string)
}

var profiles = []profile{
	{
		category:     types.CategoryMain,
		marker:       "main",
		aliases:      []string{"main"},
		exactBonus:   0.5,
		partialBonus: 0.3,
		terms: []string{
			"개요", "overview", "목표", "goal", "목적", "purpose",
			"계획", "plan", "일정", "schedule", "milestone",
			"예산", "budget", "범위", "scope", "요약", "summary", "비전", "vision",
		},
		tierHigh:  0.3,
		tierMid:   0.25,
		tierLow:   0.1,
		structure: mainStructure,
	},
	{
		category:     types.CategoryTopic,
		marker:       "topic",
		aliases:      []string{"topic", "idea"},
		exactBonus:   0.5,
		partialBonus: 0.25,
		terms: []string{
			"주제", "topic", "아이디어", "idea", "brainstorm",
			"후보", "candidate", "테마", "theme", "제안", "proposal",
			"방향", "direction", "대안", "alternative", "option",
		},
		tierHigh:  0.3,
		tierMid:   0.2,
		tierLow:   0.1,
		structure: topicStructure,
	},
	{
		category:     types.CategoryForTech,
		marker:       "fortech",
		aliases:      []string{"fortech", "tech"},
		exactBonus:   0.5,
		partialBonus: 0.25,
		terms: []string{
			"구현", "implementation", "아키텍처", "architecture", "api",
			"프레임워크", "framework", "라이브러리", "library", "코드", "code",
			"배포", "deploy", "서버", "server", "데이터베이스", "database",
			"알고리즘", "algorithm", "stack",
		},
		tierHigh:  0.35,
		tierMid:   0.2,
		tierLow:   0.1,
		structure: forTechStructure,
	},
	{
		category:     types.CategoryForAca,
		marker:       "foraca",
		aliases:      []string{"foraca", "aca", "academic"},
		exactBonus:   0.5,
		partialBonus: 0.25,
		terms: []string{
			"논문", "paper", "저널", "journal", "학회", "conference",
			"인용", "citation", "초록", "abstract", "참고문헌", "references",
			"가설", "hypothesis", "실험", "experiment", "방법론", "methodology",
			"학위", "thesis",
		},
		tierHigh:  0.3,
		tierMid:   0.2,
		tierLow:   0.12,
		structure: forAcaStructure,
	},
}

var (
	topHeadingPattern  = regexp.MustCompile(`(?m)^#\s`)
	subHeadingPattern  = regexp.MustCompile(`(?m)^##\s`)
	listMarkerPattern  = regexp.MustCompile(`(?m)^\s*(?:[-*]|\d+\.)\s`)
	codeKeywordPattern = regexp.MustCompile(`(?i)\b(?:func|function|class|import|def|return)\b`)
	citationPattern    = regexp.MustCompile(`\[\d+\]|et al\.|doi:|10\.\d{4,}/`)
)

// mainStructure rewards hierarchical headings: 0.1 per heading level present.
func mainStructure(content string) (float64, string) {
	bonus := 0.0
	if topHeadingPattern.MatchString(content) {
		bonus += 0.1
	}
	if subHeadingPattern.MatchString(content) {
		bonus += 0.1
	}
	if bonus == 0 {
		return 0, ""
	}
	return bonus, "hierarchical heading structure"
}

// topicStructure rewards repeated list markers (3 or more lines).
func topicStructure(content string) (float64, string) {
	if len(listMarkerPattern.FindAllStringIndex(content, -1)) >= 3 {
		return 0.15, "repeated list markers"
	}
	return 0, ""
}

// forTechStructure rewards code fences or code keywords.
func forTechStructure(content string) (float64, string) {
	if strings.Contains(content, "```") || codeKeywordPattern.MatchString(content) {
		return 0.2, "code fences or code keywords"
	}
	return 0, ""
}

// forAcaStructure rewards abstract/citation markers.
func forAcaStructure(content string) (float64, string) {
	lower := strings.ToLower(content)
	if strings.Contains(lower, "abstract") || strings.Contains(lower, "초록") ||
		citationPattern.MatchString(content) {
		return 0.2, "abstract or citation markers"
	}
	return 0, ""
}

// countTerms returns how many distinct catalog terms appear in the content.
func countTerms(content string, terms []string) int {
	lower := strings.ToLower(content)
	count := 0
	for _, t := range terms {
		if strings.Contains(lower, t) {
			count++
		}
	}
	return count
}

func termEvidence(category types.Category, count int) string {
	return fmt.Sprintf("content mentions %d %s-associated terms", count, category)
}
