// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package organize is the run engine: it reads the document container,
// drives classification or keyword search over it, and writes the
// deliverable artifacts. One run executes at a time; a single-permit run
// slot rejects concurrent invocations.
// See docs/ARCHITECTURE.md § Engine.
package organize

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/internal/classify"
	"github.com/Ryunosuke8/Integrated-Manager-sub001/internal/docstore"
	"github.com/Ryunosuke8/Integrated-Manager-sub001/internal/export"
	"github.com/Ryunosuke8/Integrated-Manager-sub001/internal/keywords"
	"github.com/Ryunosuke8/Integrated-Manager-sub001/internal/search"
	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

// Engine wires the document store, the search orchestrator, and the run
// slot. Zero-value fields fall back to safe defaults where possible.
type Engine struct {
	store   docstore.Store
	orch    *search.Orchestrator
	monitor Monitor
	log     io.Writer
	slot    *semaphore.Weighted

	// now is swappable for deterministic artifact names in tests.
	now func() time.Time
}

// NewEngine builds an engine around the given collaborators. A nil monitor
// falls back to a no-op; a nil log discards.
func NewEngine(store docstore.Store, orch *search.Orchestrator, monitor Monitor, log io.Writer) *Engine {
	if monitor == nil {
		monitor = noopMonitor{}
	}
	if log == nil {
		log = io.Discard
	}
	return &Engine{
		store:   store,
		orch:    orch,
		monitor: monitor,
		log:     log,
		slot:    semaphore.NewWeighted(1),
		now:     time.Now,
	}
}

// acquireSlot takes the single run permit or rejects the invocation.
func (e *Engine) acquireSlot() error {
	if !e.slot.TryAcquire(1) {
		return ErrRunInProgress
	}
	return nil
}

// OrganizeSummary reports what an organization run produced.
type OrganizeSummary struct {
	Results   []types.ClassificationResult
	Artifacts []string
}

// Organize classifies every document in the container and writes one
// artifact per selected category plus the summary report. Unselected
// categories produce nothing. The artifact is the deliverable: a failed
// write aborts the run.
func (e *Engine) Organize(ctx context.Context, containerID string, selected []types.Category) (OrganizeSummary, error) {
	if err := e.acquireSlot(); err != nil {
		e.monitor.Fail(err.Error())
		return OrganizeSummary{}, err
	}
	defer e.slot.Release(1)

	summary, err := e.organize(ctx, containerID, selected)
	if err != nil {
		e.monitor.Fail(err.Error())
		return OrganizeSummary{}, err
	}
	e.monitor.Finish(fmt.Sprintf("organized %d documents into %d artifacts",
		len(summary.Results), len(summary.Artifacts)))
	return summary, nil
}

func (e *Engine) organize(ctx context.Context, containerID string, selected []types.Category) (OrganizeSummary, error) {
	e.monitor.Progress("read", 10, "reading documents")
	docs, err := docstore.ReadDocuments(ctx, e.store, containerID)
	if err != nil {
		return OrganizeSummary{}, err
	}
	if len(docs) == 0 {
		return OrganizeSummary{}, ErrNoDocuments
	}

	e.monitor.Progress("classify", 40, fmt.Sprintf("classifying %d documents", len(docs)))
	results := make([]types.ClassificationResult, len(docs))
	for i, d := range docs {
		results[i] = classify.Classify(d)
	}

	e.monitor.Progress("write", 80, "writing artifacts")
	now := e.now()
	var artifacts []string
	for _, c := range selected {
		name := export.CategoryArtifactName(c, now)
		content := export.RenderCategoryArtifact(c, results, now)
		ref, err := e.store.WriteTextArtifact(ctx, containerID, name, content)
		if err != nil {
			return OrganizeSummary{}, fmt.Errorf("writing %s artifact: %w", c, err)
		}
		artifacts = append(artifacts, ref)
	}

	reportName := export.ReportArtifactName(now)
	ref, err := e.store.WriteTextArtifact(ctx, containerID, reportName,
		export.RenderOrganizationReport(results, now))
	if err != nil {
		return OrganizeSummary{}, fmt.Errorf("writing report artifact: %w", err)
	}
	artifacts = append(artifacts, ref)

	return OrganizeSummary{Results: results, Artifacts: artifacts}, nil
}

// ResearchSummary reports what a research run produced.
type ResearchSummary struct {
	Keywords    []types.Keyword
	KeywordSets [][]string
	Output      search.Output
	Artifacts   []string
}

// Research extracts and ranks keywords from the container documents, fans
// them out through the search orchestrator, and writes the tabular workbook
// plus the research report.
func (e *Engine) Research(ctx context.Context, containerID string, kwCfg types.KeywordConfig, searchCfg types.SearchConfig) (ResearchSummary, error) {
	if err := e.acquireSlot(); err != nil {
		e.monitor.Fail(err.Error())
		return ResearchSummary{}, err
	}
	defer e.slot.Release(1)

	summary, err := e.research(ctx, containerID, kwCfg, searchCfg)
	if err != nil {
		e.monitor.Fail(err.Error())
		return ResearchSummary{}, err
	}
	e.monitor.Finish(fmt.Sprintf("retrieved %d papers via %s",
		len(summary.Output.Records), summary.Output.Provider))
	return summary, nil
}

func (e *Engine) research(ctx context.Context, containerID string, kwCfg types.KeywordConfig, searchCfg types.SearchConfig) (ResearchSummary, error) {
	e.monitor.Progress("read", 10, "reading documents")
	docs, err := docstore.ReadDocuments(ctx, e.store, containerID)
	if err != nil {
		return ResearchSummary{}, err
	}
	if len(docs) == 0 {
		return ResearchSummary{}, ErrNoDocuments
	}

	e.monitor.Progress("keywords", 30, "extracting keywords")
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Content
	}
	candidates := keywords.ExtractAll(texts)
	ranked := keywords.Rank(docs, candidates, kwCfg.TopK)
	if len(ranked) == 0 {
		return ResearchSummary{}, ErrNoKeywords
	}

	sets := keywords.Plan(ranked)

	e.monitor.Progress("search", 50, fmt.Sprintf("searching %d keyword sets", len(sets)))
	out, err := e.orch.Run(ctx, sets, searchCfg.Source, search.Options{
		MaxResults:  searchCfg.MaxResultsPerCall,
		YearFrom:    searchCfg.YearFrom,
		YearTo:      searchCfg.YearTo,
		ContentType: searchCfg.ContentType,
	})
	if err != nil {
		return ResearchSummary{}, fmt.Errorf("search orchestration: %w", err)
	}

	e.monitor.Progress("write", 85, "writing artifacts")
	now := e.now()
	var artifacts []string

	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.FileName
	}
	workbookName := export.WorkbookArtifactName(now)
	workbookPath := filepath.Join(containerID, workbookName)
	if err := export.WriteWorkbook(workbookPath, out.Records, export.RunInfo{
		Keywords:        ranked,
		SourceDocuments: names,
		Provider:        out.Provider,
		TotalResults:    len(out.Records),
		DupsRemoved:     out.DupsRemoved,
	}); err != nil {
		return ResearchSummary{}, fmt.Errorf("writing workbook artifact: %w", err)
	}
	artifacts = append(artifacts, workbookPath)

	report := export.RenderResearchReport(ranked, out.Records, out.Provider, now)
	ref, err := e.store.WriteTextArtifact(ctx, containerID, export.ResearchReportArtifactName(now), report)
	if err != nil {
		return ResearchSummary{}, fmt.Errorf("writing report artifact: %w", err)
	}
	artifacts = append(artifacts, ref)

	return ResearchSummary{
		Keywords:    ranked,
		KeywordSets: sets,
		Output:      out,
		Artifacts:   artifacts,
	}, nil
}
