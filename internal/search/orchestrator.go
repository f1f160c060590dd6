// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/time/rate"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

// Result caps. The offline-only flow is capped tighter than a live run.
const (
	liveResultCap    = 20
	offlineResultCap = 15
)

// Orchestrator drives the provider fallback chain over each fan-out keyword
// set, deduplicates across sets, ranks, and caps. Execution is strictly
// sequential; the limiter enforces the fixed inter-call delay.
type Orchestrator struct {
	// Primary is the credentialed index (Semantic Scholar).
	Primary Provider

	// Secondary is the keyless index (Crossref).
	Secondary Provider

	// Offline terminates every chain and must never fail.
	Offline Provider

	// Limiter paces provider calls. Nil means no delay.
	Limiter *rate.Limiter

	// Log receives warning lines for per-set failures. Nil means discard.
	Log io.Writer
}

// Output holds one orchestration run's results and statistics.
type Output struct {
	// Records is the final deduplicated, ranked, capped list.
	Records []types.PaperRecord

	// Provider names the backend that produced the data.
	Provider string

	// SetErrors lists per-keyword-set failures (informational only).
	SetErrors []string

	// DupsRemoved counts records dropped by identity dedup.
	DupsRemoved int
}

// session is the per-run dedup state, discarded after the final ranking.
type session struct {
	seen        map[string]bool
	accumulated []types.PaperRecord
	dups        int
}

// Run executes the fan-out search. The requested source selects the chain
// entry point; unusable providers fall through until the offline provider,
// which always answers. A panic anywhere in orchestration also resolves to
// the offline provider.
func (o *Orchestrator) Run(ctx context.Context, keywordSets [][]string, source string, opts Options) (out Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			o.logf("warning: orchestration panic recovered: %v\n", r)
			out, err = o.offlineOnly(ctx, keywordSets, opts)
		}
	}()

	if len(keywordSets) == 0 {
		return Output{}, fmt.Errorf("no keyword sets: nothing to search")
	}

	for _, p := range o.chain(source) {
		if !p.IsConfigured() {
			o.logf("skipping %s: not configured\n", p.Name())
			continue
		}

		s := &session{seen: make(map[string]bool)}
		setErrors := o.runProvider(ctx, p, s, keywordSets, opts)

		// The provider is unavailable only when every set failed; partial
		// failures keep the accumulated results.
		if len(setErrors) == len(keywordSets) {
			o.logf("provider %s unavailable, continuing fallback\n", p.Name())
			continue
		}

		limit := liveResultCap
		if p.Name() == SourceOffline {
			limit = offlineResultCap
		}
		return Output{
			Records:     finalize(s.accumulated, limit),
			Provider:    p.Name(),
			SetErrors:   setErrors,
			DupsRemoved: s.dups,
		}, nil
	}

	return o.offlineOnly(ctx, keywordSets, opts)
}

// runProvider issues every keyword set against one provider sequentially,
// deduplicating into the session. A failed set is logged and skipped.
func (o *Orchestrator) runProvider(ctx context.Context, p Provider, s *session, keywordSets [][]string, opts Options) []string {
	var setErrors []string
	for _, set := range keywordSets {
		if o.Limiter != nil && p.Name() != SourceOffline {
			if err := o.Limiter.Wait(ctx); err != nil {
				setErrors = append(setErrors, fmt.Sprintf("%v: %v", set, err))
				continue
			}
		}

		records, err := p.Search(ctx, set, opts)
		if err != nil {
			msg := fmt.Sprintf("%s %v: %v", p.Name(), set, err)
			setErrors = append(setErrors, msg)
			o.logf("warning: %s\n", msg)
			continue
		}

		for _, r := range records {
			key := identityKey(r)
			if s.seen[key] {
				s.dups++
				continue
			}
			s.seen[key] = true
			s.accumulated = append(s.accumulated, r)
		}
	}
	return setErrors
}

// chain returns the ordered providers for the requested source. Adding a
// provider means appending to the relevant list.
func (o *Orchestrator) chain(source string) []Provider {
	switch source {
	case SourceCrossref:
		return []Provider{o.Secondary, o.Primary, o.Offline}
	case SourceOffline:
		return []Provider{o.Offline}
	default:
		return []Provider{o.Primary, o.Offline}
	}
}

// offlineOnly runs the keyword sets against the offline provider alone.
func (o *Orchestrator) offlineOnly(ctx context.Context, keywordSets [][]string, opts Options) (Output, error) {
	s := &session{seen: make(map[string]bool)}
	setErrors := o.runProvider(ctx, o.Offline, s, keywordSets, opts)
	return Output{
		Records:     finalize(s.accumulated, offlineResultCap),
		Provider:    SourceOffline,
		SetErrors:   setErrors,
		DupsRemoved: s.dups,
	}, nil
}

// finalize sorts descending by relevance and truncates to the cap. The sort
// is stable so records tied on score keep accumulation order.
func finalize(records []types.PaperRecord, limit int) []types.PaperRecord {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].RelevanceScore > records[j].RelevanceScore
	})
	if len(records) > limit {
		records = records[:limit]
	}
	return records
}

// identityKey returns the dedup key: external ID when present, otherwise the
// normalized title.
func identityKey(r types.PaperRecord) string {
	if r.ExternalID != "" {
		return "id:" + r.ExternalID
	}
	return "title:" + NormalizeTitle(r.Title)
}

// NormalizeTitle returns a lowercased, punctuation-stripped version of the
// title for identity comparison.
func NormalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func (o *Orchestrator) logf(format string, args ...any) {
	if o.Log != nil {
		fmt.Fprintf(o.Log, format, args...)
	}
}
