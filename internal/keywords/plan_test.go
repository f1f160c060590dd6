package keywords

import (
	"reflect"
	"testing"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

func kws(texts ...string) []types.Keyword {
	out := make([]types.Keyword, len(texts))
	for i, t := range texts {
		out[i] = types.Keyword{Text: t}
	}
	return out
}

func TestPlanSevenKeywords(t *testing.T) {
	sets := Plan(kws("a", "b", "c", "d", "e", "f", "g"))

	want := [][]string{
		{"a", "b", "c", "d", "e", "f", "g"},
		{"a", "b", "c"},
		{"a", "b", "c", "d", "e"},
		{"a"},
		{"b"},
		{"c"},
	}
	if !reflect.DeepEqual(sets, want) {
		t.Errorf("Plan() = %v, want %v", sets, want)
	}
}

func TestPlanSmallInputs(t *testing.T) {
	tests := []struct {
		name string
		in   []types.Keyword
		want [][]string
	}{
		{"empty", nil, nil},
		{"one keyword", kws("a"), [][]string{{"a"}, {"a"}}},
		{"two keywords", kws("a", "b"), [][]string{{"a", "b"}, {"a"}, {"b"}}},
		{
			"three keywords",
			kws("a", "b", "c"),
			[][]string{{"a", "b", "c"}, {"a", "b", "c"}, {"a"}, {"b"}, {"c"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Plan(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Plan() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlanCopiesAreIndependent(t *testing.T) {
	sets := Plan(kws("a", "b", "c"))
	sets[0][0] = "mutated"
	if sets[1][0] != "a" {
		t.Errorf("mutating one set leaked into another: %v", sets)
	}
}
