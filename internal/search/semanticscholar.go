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

// semanticAPIBase is the Semantic Scholar paper search endpoint. Declared
// as a var so tests can substitute an httptest server.
var semanticAPIBase = "https://api.semanticscholar.org/graph/v1/paper/search"

const semanticFields = "title,abstract,authors,externalIds,year,venue,url,fieldsOfStudy"

// semanticRankBonus is added to the per-term maximum when normalizing, so a
// top-ranked full match still lands at 1.0 after clamping.
const semanticRankBonus = 1.0

// SemanticScholarProvider queries the Semantic Scholar Graph API. It is the
// primary index and requires an API key.
type SemanticScholarProvider struct {
	Client    *http.Client
	APIKey    string
	UserAgent string
}

// Name returns the provider identifier.
func (p *SemanticScholarProvider) Name() string { return SourceSemanticScholar }

// IsConfigured reports whether an API key is present.
func (p *SemanticScholarProvider) IsConfigured() bool { return p.APIKey != "" }

// Search queries the API with the keyword set ANDed into one query string.
func (p *SemanticScholarProvider) Search(ctx context.Context, keywordSet []string, opts Options) ([]types.PaperRecord, error) {
	q := strings.TrimSpace(strings.Join(keywordSet, " "))
	if q == "" {
		return nil, fmt.Errorf("empty Semantic Scholar query")
	}

	params := url.Values{
		"query":  {q},
		"limit":  {fmt.Sprintf("%d", capResults(opts))},
		"fields": {semanticFields},
	}
	if yr := yearRange(opts.YearFrom, opts.YearTo); yr != "" {
		params.Set("year", yr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, semanticAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", p.UserAgent)
	req.Header.Set("x-api-key", p.APIKey)

	resp, err := httputil.DoWithRetry(ctx, p.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Semantic Scholar API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Semantic Scholar API returned HTTP %d", resp.StatusCode)
	}

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}

	max := float64(len(keywordSet))*(titleWeight+abstractWeight+structuredWeight) + semanticRankBonus
	total := len(sr.Data)

	var records []types.PaperRecord
	for i, paper := range sr.Data {
		r := types.PaperRecord{
			Title:    paper.Title,
			Abstract: paper.Abstract,
			Year:     paper.Year,
			Venue:    paper.Venue,
			URL:      paper.URL,
			Keywords: paper.FieldsOfStudy,
			Provider: SourceSemanticScholar,
		}
		for _, a := range paper.Authors {
			r.Authors = append(r.Authors, a.Name)
		}
		switch {
		case paper.ExternalIDs.DOI != "":
			r.ExternalID = paper.ExternalIDs.DOI
		default:
			r.ExternalID = paper.PaperID
		}

		hits := termHits(keywordSet, r.Title, r.Abstract, r.Keywords)
		hits += rankDecay(i, total, semanticRankBonus)
		r.RelevanceScore = normalize(hits, max)

		records = append(records, r)
	}
	return records, nil
}

// yearRange renders the Semantic Scholar year filter (e.g. "2020-2023").
func yearRange(from, to int) string {
	switch {
	case from > 0 && to > 0:
		return fmt.Sprintf("%d-%d", from, to)
	case from > 0:
		return fmt.Sprintf("%d-", from)
	case to > 0:
		return fmt.Sprintf("-%d", to)
	default:
		return ""
	}
}

// Semantic Scholar API JSON structures.
type semanticResponse struct {
	Total int             `json:"total"`
	Data  []semanticPaper `json:"data"`
}

type semanticPaper struct {
	PaperID       string              `json:"paperId"`
	Title         string              `json:"title"`
	Abstract      string              `json:"abstract"`
	Year          int                 `json:"year"`
	Venue         string              `json:"venue"`
	URL           string              `json:"url"`
	FieldsOfStudy []string            `json:"fieldsOfStudy"`
	Authors       []semanticAuthor    `json:"authors"`
	ExternalIDs   semanticExternalIDs `json:"externalIds"`
}

type semanticAuthor struct {
	AuthorID string `json:"authorId"`
	Name     string `json:"name"`
}

type semanticExternalIDs struct {
	DOI      string `json:"DOI"`
	ArXiv    string `json:"ArXiv"`
	CorpusID int    `json:"CorpusId"`
}
