// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/internal/docstore"
	"github.com/Ryunosuke8/Integrated-Manager-sub001/internal/organize"
	"github.com/Ryunosuke8/Integrated-Manager-sub001/internal/search"
	"github.com/Ryunosuke8/Integrated-Manager-sub001/internal/secrets"
	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

var researchCmd = &cobra.Command{
	Use:   "research [container-dir]",
	Short: "Extract keywords and retrieve ranked literature",
	Long: `Research extracts subject-matter keywords from the container documents,
ranks them by weighted frequency, fans them out as combined and single-term
queries, and retrieves deduplicated, ranked literature from the selected
provider chain. When no live provider is usable the curated offline set
answers instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResearch,
}

func runResearch(cmd *cobra.Command, args []string) error {
	dir := containerDir(cmd, args)
	topK, _ := cmd.Flags().GetInt("top-keywords")

	engine := organize.NewEngine(&docstore.FSStore{}, newOrchestrator(cmd), newConsoleMonitor(), os.Stderr)
	summary, err := engine.Research(context.Background(), dir,
		types.KeywordConfig{TopK: topK}, searchConfigFromFlags(cmd))
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetString("save"); save != "" {
		if err := search.WriteRunFile(save, summary.Keywords, summary.KeywordSets, summary.Output); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved run to", save)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary.Output.Records)
	}

	printResults(summary.Output)
	return nil
}

func printResults(out search.Output) {
	if len(out.Records) == 0 {
		fmt.Println("No results found.")
		return
	}

	fmt.Printf("%-4s  %-60s  %-20s  %-4s  %-6s  %s\n",
		"Rank", "Title", "Authors", "Year", "Score", "Provider")
	fmt.Println(strings.Repeat("-", 110))

	for i, r := range out.Records {
		title := r.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		authors := ""
		if len(r.Authors) == 1 {
			authors = truncate(r.Authors[0], 20)
		} else if len(r.Authors) > 1 {
			authors = truncate(r.Authors[0], 14) + " et al."
		}
		year := ""
		if r.Year > 0 {
			year = fmt.Sprintf("%d", r.Year)
		}
		fmt.Printf("%-4d  %-60s  %-20s  %-4s  %-6.2f  %s\n",
			i+1, title, authors, year, r.RelevanceScore, r.Provider)
	}

	fmt.Printf("\n%d results", len(out.Records))
	if out.DupsRemoved > 0 {
		fmt.Printf(" (%d duplicates removed)", out.DupsRemoved)
	}
	fmt.Println()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// newOrchestrator builds the provider chain from flags, config, and secrets.
func newOrchestrator(cmd *cobra.Command) *search.Orchestrator {
	cfg := searchConfigFromFlags(cmd)

	client := &http.Client{Timeout: cfg.Timeout}
	return &search.Orchestrator{
		Primary: &search.SemanticScholarProvider{
			Client:    client,
			APIKey:    cfg.SemanticScholarAPIKey,
			UserAgent: cfg.UserAgent,
		},
		Secondary: &search.CrossrefProvider{
			Client:    client,
			Mailto:    cfg.CrossrefMailto,
			UserAgent: cfg.UserAgent,
		},
		Offline: &search.FallbackProvider{},
		Limiter: rate.NewLimiter(rate.Every(cfg.InterCallDelay), 1),
		Log:     os.Stderr,
	}
}

func searchConfigFromFlags(cmd *cobra.Command) types.SearchConfig {
	source, _ := cmd.Flags().GetString("source")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	yearFrom, _ := cmd.Flags().GetInt("from-year")
	yearTo, _ := cmd.Flags().GetInt("to-year")
	contentType, _ := cmd.Flags().GetString("content-type")
	apiKey, _ := cmd.Flags().GetString("api-key")
	mailto, _ := cmd.Flags().GetString("mailto")

	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "integrated-manager/" + version,
		},
		Source:                source,
		MaxResultsPerCall:     maxResults,
		YearFrom:              yearFrom,
		YearTo:                yearTo,
		ContentType:           contentType,
		InterCallDelay:        time.Second,
		SemanticScholarAPIKey: secretDefault(secrets.KeySemanticScholar, apiKey),
		CrossrefMailto:        secretDefault(secrets.KeyCrossrefMailto, mailto),
	}
}

// consoleMonitor prints progress milestones to stderr.
type consoleMonitor struct{}

func newConsoleMonitor() organize.Monitor { return consoleMonitor{} }

func (consoleMonitor) Progress(stage string, percent int, message string) {
	fmt.Fprintf(os.Stderr, "[%3d%%] %-10s %s\n", percent, stage, message)
}

func (consoleMonitor) Finish(message string) {
	fmt.Fprintf(os.Stderr, "[100%%] done       %s\n", message)
}

func (consoleMonitor) Fail(message string) {
	fmt.Fprintf(os.Stderr, "failed: %s\n", message)
}

func init() {
	researchCmd.Flags().String("dir", "documents", "container directory holding project documents")
	researchCmd.Flags().String("source", search.SourceSemanticScholar, "provider chain entry point: semantic_scholar, crossref, or offline")
	researchCmd.Flags().Int("max-results", 10, "maximum results per provider call")
	researchCmd.Flags().Int("top-keywords", 10, "number of ranked keywords to search with")
	researchCmd.Flags().Int("from-year", 0, "publication year range start")
	researchCmd.Flags().Int("to-year", 0, "publication year range end")
	researchCmd.Flags().String("content-type", "", "publication type filter (e.g. journal-article)")
	researchCmd.Flags().String("api-key", "", "Semantic Scholar API key (overrides .secrets/)")
	researchCmd.Flags().String("mailto", "", "Crossref polite-pool contact (overrides .secrets/)")
	researchCmd.Flags().String("save", "", "save the run to a YAML file")
	researchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(researchCmd)
}
