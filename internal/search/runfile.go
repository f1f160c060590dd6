// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

// RunFile is the on-disk representation of one research run: the ranked
// keywords, the fan-out sets, and the retrieved records. A saved run can be
// re-rendered later without re-querying providers.
type RunFile struct {
	Keywords    []types.Keyword     `yaml:"keywords"`
	KeywordSets [][]string          `yaml:"keyword_sets"`
	Source      string              `yaml:"source"`
	Results     []types.PaperRecord `yaml:"results"`
	Summary     RunSummary          `yaml:"summary"`
}

// RunSummary stores result statistics and a timestamp.
type RunSummary struct {
	Total             int       `yaml:"total"`
	DuplicatesRemoved int       `yaml:"duplicates_removed"`
	Provider          string    `yaml:"provider"`
	SetErrors         []string  `yaml:"set_errors,omitempty"`
	Timestamp         time.Time `yaml:"timestamp"`
}

// WriteRunFile saves the keywords, sets, and orchestration output as YAML.
func WriteRunFile(path string, keywords []types.Keyword, sets [][]string, out Output) error {
	rf := RunFile{
		Keywords:    keywords,
		KeywordSets: sets,
		Source:      out.Provider,
		Results:     out.Records,
		Summary: RunSummary{
			Total:             len(out.Records),
			DuplicatesRemoved: out.DupsRemoved,
			Provider:          out.Provider,
			SetErrors:         out.SetErrors,
			Timestamp:         time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRunFile loads a previously saved run file from disk.
func ReadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file: %w", err)
	}
	return &rf, nil
}
