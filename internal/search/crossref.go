// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/internal/httputil"
	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

// crossrefAPIBase is the Crossref works endpoint. Declared as a var so tests
// can substitute an httptest server.
var crossrefAPIBase = "https://api.crossref.org/works"

// crossrefRankBonus differs from the Semantic Scholar constant; only the
// [0,1] bound and intra-provider ordering matter.
const crossrefRankBonus = 2.0

// CrossrefProvider queries the Crossref works API. It is the secondary index
// and needs no credential; a mailto contact joins the polite pool.
type CrossrefProvider struct {
	Client    *http.Client
	Mailto    string
	UserAgent string
}

// Name returns the provider identifier.
func (p *CrossrefProvider) Name() string { return SourceCrossref }

// IsConfigured always reports true: Crossref accepts anonymous queries.
func (p *CrossrefProvider) IsConfigured() bool { return true }

// Search queries the works API and scores each item against the keyword set.
func (p *CrossrefProvider) Search(ctx context.Context, keywordSet []string, opts Options) ([]types.PaperRecord, error) {
	q := strings.TrimSpace(strings.Join(keywordSet, " "))
	if q == "" {
		return nil, fmt.Errorf("empty Crossref query")
	}

	params := url.Values{
		"query": {q},
		"rows":  {fmt.Sprintf("%d", capResults(opts))},
	}
	var filters []string
	if opts.YearFrom > 0 {
		filters = append(filters, fmt.Sprintf("from-pub-date:%d-01-01", opts.YearFrom))
	}
	if opts.YearTo > 0 {
		filters = append(filters, fmt.Sprintf("until-pub-date:%d-12-31", opts.YearTo))
	}
	if opts.ContentType != "" {
		filters = append(filters, "type:"+opts.ContentType)
	}
	if len(filters) > 0 {
		params.Set("filter", strings.Join(filters, ","))
	}
	if p.Mailto != "" {
		params.Set("mailto", p.Mailto)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, crossrefAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", p.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, p.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Crossref API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Crossref API returned HTTP %d", resp.StatusCode)
	}

	var cr crossrefResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("parsing Crossref response: %w", err)
	}

	max := float64(len(keywordSet))*(titleWeight+abstractWeight+structuredWeight) + crossrefRankBonus
	total := len(cr.Message.Items)

	var records []types.PaperRecord
	for i, item := range cr.Message.Items {
		r := types.PaperRecord{
			Title:      firstOf(item.Title),
			Abstract:   stripJATS(item.Abstract),
			Venue:      firstOf(item.ContainerTitle),
			URL:        item.URL,
			Keywords:   item.Subject,
			ExternalID: item.DOI,
			Provider:   SourceCrossref,
		}
		for _, a := range item.Author {
			name := strings.TrimSpace(a.Given + " " + a.Family)
			if name != "" {
				r.Authors = append(r.Authors, name)
			}
		}
		if len(item.Issued.DateParts) > 0 && len(item.Issued.DateParts[0]) > 0 {
			r.Year = item.Issued.DateParts[0][0]
		}

		hits := termHits(keywordSet, r.Title, r.Abstract, r.Keywords)
		hits += rankDecay(i, total, crossrefRankBonus)
		r.RelevanceScore = normalize(hits, max)

		records = append(records, r)
	}
	return records, nil
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// stripJATS removes the JATS XML tags Crossref embeds in abstracts.
func stripJATS(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Crossref API JSON structures.
type crossrefResponse struct {
	Message crossrefMessage `json:"message"`
}

type crossrefMessage struct {
	Items []crossrefItem `json:"items"`
}

type crossrefItem struct {
	DOI            string          `json:"DOI"`
	Title          []string        `json:"title"`
	ContainerTitle []string        `json:"container-title"`
	Abstract       string          `json:"abstract"`
	URL            string          `json:"URL"`
	Subject        []string        `json:"subject"`
	Author         []crossrefName  `json:"author"`
	Issued         crossrefIssued  `json:"issued"`
	Type           string          `json:"type"`
}

type crossrefName struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

type crossrefIssued struct {
	DateParts [][]int `json:"date-parts"`
}
