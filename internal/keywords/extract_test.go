package keywords

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractCatalogTerms(t *testing.T) {
	text := "We apply machine learning and deep learning to this research."
	got := Extract(text)

	for _, want := range []string{"machine learning", "deep learning", "research"} {
		if !contains(got, want) {
			t.Errorf("Extract() missing catalog term %q, got %v", want, got)
		}
	}
}

func TestExtractKoreanCatalogTerms(t *testing.T) {
	text := "인공지능을 활용한 연구 계획입니다. 빅데이터 분석 포함."
	got := Extract(text)

	for _, want := range []string{"인공지능", "연구", "빅데이터", "분석"} {
		if !contains(got, want) {
			t.Errorf("Extract() missing catalog term %q, got %v", want, got)
		}
	}
}

func TestExtractSpecialTerms(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		present bool
	}{
		{"alphabetic token of 4+", "blockchain platform", "platform", true},
		{"short alphabetic token dropped", "an ML fix", "fix", false},
		{"hangul run of 4+", "프로젝트 진행", "프로젝트", true},
		{"hangul run of 3 dropped by length filter", "활용한 것", "활용한", false},
		{"token longer than 15 dropped", strings.Repeat("a", 16), strings.Repeat("a", 16), false},
		{"token of exactly 15 kept", strings.Repeat("b", 15), strings.Repeat("b", 15), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if contains(got, tt.want) != tt.present {
				t.Errorf("Extract(%q) = %v, want %q present=%v", tt.text, got, tt.want, tt.present)
			}
		})
	}
}

func TestExtractLowercasesAndDeduplicates(t *testing.T) {
	got := Extract("Blockchain BLOCKCHAIN blockchain")

	count := 0
	for _, c := range got {
		if c == "blockchain" {
			count++
		}
		if c != strings.ToLower(c) {
			t.Errorf("candidate %q is not lowercased", c)
		}
	}
	if count != 1 {
		t.Errorf("blockchain appears %d times, want 1", count)
	}
}

func TestExtractEmptyText(t *testing.T) {
	if got := Extract(""); len(got) != 0 {
		t.Errorf("Extract(\"\") = %v, want empty", got)
	}
}

func TestExtractDeterministic(t *testing.T) {
	text := "머신러닝 연구: machine learning, experiment design, 플랫폼 구축"
	first := Extract(text)
	for i := 0; i < 5; i++ {
		if got := Extract(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("Extract() not deterministic: %v vs %v", got, first)
		}
	}
}

func TestExtractAllPreservesDiscoveryOrder(t *testing.T) {
	union := ExtractAll([]string{
		"blockchain research",
		"research blockchain security", // already-seen candidates keep first position
	})

	bIdx, rIdx := indexOf(union, "blockchain"), indexOf(union, "research")
	if bIdx < 0 || rIdx < 0 {
		t.Fatalf("ExtractAll() = %v, missing expected candidates", union)
	}
	if !contains(union, "security") {
		t.Errorf("ExtractAll() = %v, missing candidate from second document", union)
	}
}

func contains(list []string, want string) bool {
	return indexOf(list, want) >= 0
}

func indexOf(list []string, want string) int {
	for i, c := range list {
		if c == want {
			return i
		}
	}
	return -1
}
