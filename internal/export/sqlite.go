// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders run results into deliverable artifacts: a tabular
// SQLite workbook with three tables and the text reports written back into
// the document container. See docs/ARCHITECTURE.md § Export.
package export

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

// RunInfo carries the run metadata rows for the workbook.
type RunInfo struct {
	Keywords        []types.Keyword
	SourceDocuments []string
	Provider        string
	TotalResults    int
	DupsRemoved     int
}

// WriteWorkbook creates a SQLite artifact at path holding three tables:
// results (the ranked record list), run_info (keywords, source documents,
// summary stats), and year_histogram.
func WriteWorkbook(path string, records []types.PaperRecord, info RunInfo) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening workbook: %w", err)
	}
	defer db.Close()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS results (
			rank INTEGER PRIMARY KEY,
			title TEXT,
			authors TEXT,
			year INTEGER,
			venue TEXT,
			url TEXT,
			relevance REAL,
			external_id TEXT,
			provider TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS run_info (
			key TEXT PRIMARY KEY,
			value TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS year_histogram (
			year INTEGER PRIMARY KEY,
			count INTEGER
		)`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating workbook schema: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning workbook transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT OR REPLACE INTO results (rank, title, authors, year, venue, url, relevance, external_id, provider)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing results insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		authorsJSON, _ := json.Marshal(r.Authors)
		if _, err := stmt.Exec(i+1, r.Title, string(authorsJSON), r.Year, r.Venue,
			r.URL, r.RelevanceScore, r.ExternalID, r.Provider); err != nil {
			return fmt.Errorf("inserting result %d: %w", i+1, err)
		}
	}

	if err := insertRunInfo(tx, info); err != nil {
		return err
	}

	for year, count := range YearHistogram(records) {
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO year_histogram (year, count) VALUES (?, ?)`,
			year, count); err != nil {
			return fmt.Errorf("inserting year histogram row: %w", err)
		}
	}

	return tx.Commit()
}

func insertRunInfo(tx *sql.Tx, info RunInfo) error {
	keywordsJSON, _ := json.Marshal(info.Keywords)
	docsJSON, _ := json.Marshal(info.SourceDocuments)

	rows := [][2]string{
		{"keywords", string(keywordsJSON)},
		{"source_documents", string(docsJSON)},
		{"provider", info.Provider},
		{"total_results", fmt.Sprintf("%d", info.TotalResults)},
		{"duplicates_removed", fmt.Sprintf("%d", info.DupsRemoved)},
	}
	for _, row := range rows {
		if _, err := tx.Exec(
			`INSERT OR REPLACE INTO run_info (key, value) VALUES (?, ?)`,
			row[0], row[1]); err != nil {
			return fmt.Errorf("inserting run_info %s: %w", row[0], err)
		}
	}
	return nil
}

// YearHistogram counts records per publication year. Records without a year
// are omitted.
func YearHistogram(records []types.PaperRecord) map[int]int {
	hist := make(map[int]int)
	for _, r := range records {
		if r.Year > 0 {
			hist[r.Year]++
		}
	}
	return hist
}

// Years returns the histogram years in ascending order, for deterministic
// report rendering.
func Years(hist map[int]int) []int {
	years := make([]int, 0, len(hist))
	for y := range hist {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
