// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/internal/classify"
	"github.com/Ryunosuke8/Integrated-Manager-sub001/internal/docstore"
	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <file>",
	Short: "Classify one document and print the evidence",
	Long: `Classify scores a single document against the four research-planning
categories and prints the included categories with their confidence and the
evidence that earned it.`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	doc := types.Document{
		ID:       path,
		FileName: filepath.Base(path),
		Content:  string(data),
		Type:     docstore.DetectType(filepath.Base(path)),
	}
	result := classify.Classify(doc)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("%s (%s)\n", result.FileName, doc.Type)
	for _, c := range types.AllCategories {
		score, ok := result.Categories[c]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s %.2f\n", c, score.Confidence)
		for _, reason := range score.Reasons {
			fmt.Printf("           - %s\n", reason)
		}
	}
	return nil
}

func init() {
	classifyCmd.Flags().Bool("json", false, "output the result as JSON")

	rootCmd.AddCommand(classifyCmd)
}
