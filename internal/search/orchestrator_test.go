package search

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

// mockProvider is a scriptable Provider for orchestrator tests.
type mockProvider struct {
	name       string
	configured bool
	calls      int
	search     func(call int, set []string) ([]types.PaperRecord, error)
}

func (m *mockProvider) Name() string       { return m.name }
func (m *mockProvider) IsConfigured() bool { return m.configured }

func (m *mockProvider) Search(_ context.Context, set []string, _ Options) ([]types.PaperRecord, error) {
	call := m.calls
	m.calls++
	return m.search(call, set)
}

func record(title, id string, score float64) types.PaperRecord {
	return types.PaperRecord{Title: title, ExternalID: id, RelevanceScore: score}
}

func TestRunDeduplicatesAcrossSets(t *testing.T) {
	primary := &mockProvider{
		name:       SourceSemanticScholar,
		configured: true,
		search: func(call int, set []string) ([]types.PaperRecord, error) {
			return []types.PaperRecord{
				record("Shared Paper", "doi:1", 0.9),
				record("Unique Title, First Set!", "", 0.5),
				{Title: fmt.Sprintf("distinct %d", call), RelevanceScore: 0.3},
			}, nil
		},
	}
	o := &Orchestrator{Primary: primary, Offline: &FallbackProvider{}}

	out, err := o.Run(context.Background(), [][]string{{"a"}, {"unique title first set"}}, "", Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if out.Provider != SourceSemanticScholar {
		t.Errorf("Provider = %q, want %q", out.Provider, SourceSemanticScholar)
	}
	// Second set repeats the external ID and the normalized title.
	if out.DupsRemoved != 2 {
		t.Errorf("DupsRemoved = %d, want 2", out.DupsRemoved)
	}
	if len(out.Records) != 4 {
		t.Errorf("len(Records) = %d, want 4: %v", len(out.Records), out.Records)
	}
	for i := 1; i < len(out.Records); i++ {
		if out.Records[i].RelevanceScore > out.Records[i-1].RelevanceScore {
			t.Errorf("records not sorted by descending relevance at %d", i)
		}
	}
}

func TestRunSkipsUnconfiguredPrimary(t *testing.T) {
	primary := &mockProvider{
		name:       SourceSemanticScholar,
		configured: false,
		search: func(int, []string) ([]types.PaperRecord, error) {
			return nil, errors.New("should never be called")
		},
	}
	var log bytes.Buffer
	o := &Orchestrator{Primary: primary, Offline: &FallbackProvider{}, Log: &log}

	out, err := o.Run(context.Background(), [][]string{{"machine learning"}}, "", Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if primary.calls != 0 {
		t.Errorf("unconfigured primary was called %d times", primary.calls)
	}
	if out.Provider != SourceOffline {
		t.Errorf("Provider = %q, want %q", out.Provider, SourceOffline)
	}
	if len(out.Records) == 0 || len(out.Records) > offlineResultCap {
		t.Errorf("len(Records) = %d, want 1..%d", len(out.Records), offlineResultCap)
	}
	for _, r := range out.Records {
		if r.RelevanceScore <= 0 {
			t.Errorf("offline record %q has non-positive relevance", r.Title)
		}
	}
}

func TestRunFallsBackWhenAllSetsFail(t *testing.T) {
	primary := &mockProvider{
		name:       SourceSemanticScholar,
		configured: true,
		search: func(int, []string) ([]types.PaperRecord, error) {
			return nil, errors.New("http 500")
		},
	}
	o := &Orchestrator{Primary: primary, Offline: &FallbackProvider{}}

	out, err := o.Run(context.Background(), [][]string{{"deep learning"}, {"survey"}}, "", Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if out.Provider != SourceOffline {
		t.Errorf("Provider = %q, want %q", out.Provider, SourceOffline)
	}
	if primary.calls != 2 {
		t.Errorf("primary called %d times, want once per keyword set", primary.calls)
	}
}

func TestRunPartialFailureKeepsResults(t *testing.T) {
	primary := &mockProvider{
		name:       SourceSemanticScholar,
		configured: true,
		search: func(call int, _ []string) ([]types.PaperRecord, error) {
			if call == 0 {
				return nil, errors.New("timeout")
			}
			return []types.PaperRecord{record("Survivor", "doi:s", 0.7)}, nil
		},
	}
	o := &Orchestrator{Primary: primary, Offline: &FallbackProvider{}}

	out, err := o.Run(context.Background(), [][]string{{"a"}, {"b"}}, "", Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if out.Provider != SourceSemanticScholar {
		t.Errorf("Provider = %q, want primary despite the partial failure", out.Provider)
	}
	if len(out.SetErrors) != 1 {
		t.Errorf("SetErrors = %v, want exactly one entry", out.SetErrors)
	}
	if len(out.Records) != 1 || out.Records[0].Title != "Survivor" {
		t.Errorf("Records = %v, want the surviving set's record", out.Records)
	}
}

func TestRunPanicResolvesToOffline(t *testing.T) {
	primary := &mockProvider{
		name:       SourceSemanticScholar,
		configured: true,
		search: func(int, []string) ([]types.PaperRecord, error) {
			panic("malformed response")
		},
	}
	var log bytes.Buffer
	o := &Orchestrator{Primary: primary, Offline: &FallbackProvider{}, Log: &log}

	out, err := o.Run(context.Background(), [][]string{{"blockchain"}}, "", Options{})
	if err != nil {
		t.Fatalf("Run() error after panic recovery: %v", err)
	}
	if out.Provider != SourceOffline {
		t.Errorf("Provider = %q, want %q", out.Provider, SourceOffline)
	}
	if len(out.Records) == 0 {
		t.Error("panic recovery returned no offline records")
	}
}

func TestRunCrossrefSourceTriesSecondaryFirst(t *testing.T) {
	primary := &mockProvider{
		name:       SourceSemanticScholar,
		configured: true,
		search: func(int, []string) ([]types.PaperRecord, error) {
			return []types.PaperRecord{record("From Primary", "doi:p", 0.9)}, nil
		},
	}
	secondary := &mockProvider{
		name:       SourceCrossref,
		configured: true,
		search: func(int, []string) ([]types.PaperRecord, error) {
			return []types.PaperRecord{record("From Secondary", "doi:c", 0.8)}, nil
		},
	}
	o := &Orchestrator{Primary: primary, Secondary: secondary, Offline: &FallbackProvider{}}

	out, err := o.Run(context.Background(), [][]string{{"a"}}, SourceCrossref, Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if out.Provider != SourceCrossref {
		t.Errorf("Provider = %q, want %q", out.Provider, SourceCrossref)
	}
	if primary.calls != 0 {
		t.Errorf("primary called %d times, want 0 when secondary answers", primary.calls)
	}
}

func TestRunCapsLiveResults(t *testing.T) {
	primary := &mockProvider{
		name:       SourceSemanticScholar,
		configured: true,
		search: func(int, []string) ([]types.PaperRecord, error) {
			records := make([]types.PaperRecord, 25)
			for i := range records {
				records[i] = record(fmt.Sprintf("paper %d", i), fmt.Sprintf("doi:%d", i), float64(i)/25)
			}
			return records, nil
		},
	}
	o := &Orchestrator{Primary: primary, Offline: &FallbackProvider{}}

	out, err := o.Run(context.Background(), [][]string{{"a"}}, "", Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(out.Records) != liveResultCap {
		t.Errorf("len(Records) = %d, want capped at %d", len(out.Records), liveResultCap)
	}
}

func TestRunCapsOfflineResults(t *testing.T) {
	offline := &mockProvider{
		name:       SourceOffline,
		configured: true,
		search: func(int, []string) ([]types.PaperRecord, error) {
			records := make([]types.PaperRecord, 20)
			for i := range records {
				records[i] = record(fmt.Sprintf("paper %d", i), fmt.Sprintf("id:%d", i), 0.5)
			}
			return records, nil
		},
	}
	o := &Orchestrator{Offline: offline}

	out, err := o.Run(context.Background(), [][]string{{"a"}}, SourceOffline, Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(out.Records) != offlineResultCap {
		t.Errorf("len(Records) = %d, want capped at %d", len(out.Records), offlineResultCap)
	}
}

func TestRunEmptyKeywordSets(t *testing.T) {
	o := &Orchestrator{Offline: &FallbackProvider{}}
	if _, err := o.Run(context.Background(), nil, "", Options{}); err == nil {
		t.Error("Run() with no keyword sets succeeded, want error")
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Deep Learning!", "deep learning"},
		{"  BERT:  Pre-training   ", "bert pretraining"},
		{"attention is all you need", "attention is all you need"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTitle(tt.in); got != tt.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
