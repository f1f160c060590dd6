// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/internal/docstore"
	"github.com/Ryunosuke8/Integrated-Manager-sub001/internal/organize"
	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

var organizeCmd = &cobra.Command{
	Use:   "organize [container-dir]",
	Short: "Classify documents and write per-category artifacts",
	Long: `Organize reads every text document in the container directory, classifies
each into the research-planning categories (Main, Topic, ForTech, ForAca),
and writes one artifact per selected category plus a summary report.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOrganize,
}

func runOrganize(cmd *cobra.Command, args []string) error {
	dir := containerDir(cmd, args)

	selected, err := selectedCategories(cmd)
	if err != nil {
		return err
	}

	// Classification never touches the search orchestrator.
	engine := organize.NewEngine(&docstore.FSStore{}, nil, newConsoleMonitor(), os.Stderr)
	summary, err := engine.Organize(context.Background(), dir, selected)
	if err != nil {
		return err
	}

	for _, a := range summary.Artifacts {
		fmt.Println("wrote", a)
	}
	return nil
}

// selectedCategories parses --categories into Category values. The default
// selects all four.
func selectedCategories(cmd *cobra.Command) ([]types.Category, error) {
	raw, _ := cmd.Flags().GetString("categories")
	if raw == "" {
		return append([]types.Category(nil), types.AllCategories...), nil
	}

	valid := make(map[string]types.Category)
	for _, c := range types.AllCategories {
		valid[strings.ToLower(string(c))] = c
	}

	var selected []types.Category
	for _, part := range strings.Split(raw, ",") {
		c, ok := valid[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return nil, fmt.Errorf("unknown category %q: use Main, Topic, ForTech, ForAca", part)
		}
		selected = append(selected, c)
	}
	return selected, nil
}

func containerDir(cmd *cobra.Command, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = "documents"
	}
	return dir
}

func init() {
	organizeCmd.Flags().String("dir", "documents", "container directory holding project documents")
	organizeCmd.Flags().String("categories", "", "comma-separated categories to produce artifacts for (default: all)")

	rootCmd.AddCommand(organizeCmd)
}
