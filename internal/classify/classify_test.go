package classify

import (
	"testing"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

func TestClassifyMainDocument(t *testing.T) {
	doc := types.Document{
		ID:       "doc-1",
		FileName: "Main.md",
		Type:     types.DocumentMain,
		Content:  "# 개요\n\n## 목표\n\n계획 및 일정 정리",
	}

	result := Classify(doc)

	score, ok := result.Categories[types.CategoryMain]
	if !ok {
		t.Fatalf("Main not included, got %v", result.Categories)
	}
	// exact filename 0.5 + four terms 0.25 + both heading levels 0.2
	if score.Confidence < 0.94 || score.Confidence > 0.96 {
		t.Errorf("Main confidence = %.2f, want 0.95", score.Confidence)
	}
	if len(score.Reasons) == 0 {
		t.Error("included category carries no evidence")
	}
}

func TestClassifyMultiLabelOverlap(t *testing.T) {
	doc := types.Document{
		ID:       "doc-2",
		FileName: "notes.md",
		Content:  "- idea one\n- theme two\n- proposal three\napi server database\n",
	}

	result := Classify(doc)

	if _, ok := result.Categories[types.CategoryTopic]; !ok {
		t.Fatalf("Topic not included, got %v", result.Categories)
	}
	// ForTech scores exactly 0.2: below the primary cut but re-admitted as a
	// runner-up above 0.1.
	score, ok := result.Categories[types.CategoryForTech]
	if !ok {
		t.Fatalf("ForTech not re-admitted, got %v", result.Categories)
	}
	if score.Confidence < 0.19 || score.Confidence > 0.21 {
		t.Errorf("ForTech confidence = %.2f, want 0.20", score.Confidence)
	}
	if len(result.Categories) != 2 {
		t.Errorf("got %d categories, want 2: %v", len(result.Categories), result.Categories)
	}
}

func TestClassifyFallbackNeverEmpty(t *testing.T) {
	doc := types.Document{
		ID:       "doc-3",
		FileName: "zzz.md",
		Content:  "zzz zzz zzz",
	}

	result := Classify(doc)

	if len(result.Categories) != 1 {
		t.Fatalf("got %d categories, want exactly the forced best: %v",
			len(result.Categories), result.Categories)
	}
	score, ok := result.Categories[types.CategoryMain]
	if !ok {
		t.Fatalf("forced category is not the canonical-order best, got %v", result.Categories)
	}
	if score.Confidence != 0.15 {
		t.Errorf("forced confidence = %.2f, want the 0.15 floor", score.Confidence)
	}
}

func TestClassifyClampsConfidence(t *testing.T) {
	doc := types.Document{
		ID:       "doc-4",
		FileName: "ForTech.md",
		Content:  "```\napi framework library server database\n```",
	}

	result := Classify(doc)

	score, ok := result.Categories[types.CategoryForTech]
	if !ok {
		t.Fatalf("ForTech not included, got %v", result.Categories)
	}
	if score.Confidence != 1.0 {
		t.Errorf("ForTech confidence = %.2f, want clamped 1.0", score.Confidence)
	}
}

func TestClassifyAcademicEvidence(t *testing.T) {
	doc := types.Document{
		ID:       "doc-5",
		FileName: "survey.md",
		Content:  "This paper reviews experiment methodology. See Smith et al. [1].",
	}

	result := Classify(doc)

	score, ok := result.Categories[types.CategoryForAca]
	if !ok {
		t.Fatalf("ForAca not included, got %v", result.Categories)
	}
	// three terms 0.2 + citation markers 0.2
	if score.Confidence < 0.39 || score.Confidence > 0.41 {
		t.Errorf("ForAca confidence = %.2f, want 0.40", score.Confidence)
	}
}

func TestClassifyEveryResultNonEmpty(t *testing.T) {
	docs := []types.Document{
		{FileName: "a.md", Content: ""},
		{FileName: "b.txt", Content: "unrelated prose about weather"},
		{FileName: "Topic.md", Content: "테마 후보"},
	}
	for _, doc := range docs {
		if result := Classify(doc); len(result.Categories) == 0 {
			t.Errorf("Classify(%s) returned empty category set", doc.FileName)
		}
	}
}
