// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package recommend implements the filter-then-rank retrieval core:
// categorical filtering over a corpus snapshot followed by fuzzy lexical
// ranking of the surviving candidates.
package recommend

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/course-recommender/internal/corpus"
)

// Search runs the end-to-end pipeline: filter the snapshot, then rank the
// candidates against the query. An empty or whitespace query means "no
// search performed" and returns an empty result without ranking, as does a
// nil snapshot. limit <= 0 returns all matching candidates.
func Search(snap *corpus.Snapshot, f Filters, query string, limit int) []Result {
	if snap == nil || strings.TrimSpace(query) == "" {
		return nil
	}
	return Rank(query, Apply(snap, f), limit)
}

// FormatTable writes results as a human-readable table to w.
func FormatTable(results []Result, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-55s  %-20s  %-7s  %-20s  %s\n",
		"Rank", "Title", "Submitter", "Year", "Categories", "Score")
	fmt.Fprintln(w, strings.Repeat("-", 118))

	for i, r := range results {
		title := truncate(r.Title, 55)
		submitter := truncate(r.DisplaySubmitter(), 20)
		cats := truncate(strings.Join(r.Categories, ", "), 20)
		fmt.Fprintf(w, "%-4d  %-55s  %-20s  %-7s  %-20s  %d\n",
			i+1, title, submitter, r.DisplayYear(), cats, r.Score)
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
}

// FormatJSON writes results as indented JSON to w.
func FormatJSON(results []Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
