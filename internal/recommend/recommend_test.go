// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recommend

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSearchRanksSubstringMatchFirst(t *testing.T) {
	results := Search(testSnapshot(), Filters{}, "quantum", 5)

	if len(results) == 0 {
		t.Fatal("no results")
	}
	if results[0].ID != "2001.00001" {
		t.Errorf("top result = %s, want the quantum paper", results[0].ID)
	}
	if results[0].Score != 100 {
		t.Errorf("top score = %d, want 100 (literal substring)", results[0].Score)
	}
	if len(results) > 1 && results[1].Score >= results[0].Score {
		t.Errorf("second score %d not below top %d", results[1].Score, results[0].Score)
	}
}

func TestSearchFilterRestrictsCandidates(t *testing.T) {
	// Year 2019 leaves only the classical paper; the quantum paper must not
	// appear no matter how well it would have scored.
	results := Search(testSnapshot(), Filters{Year: "2019"}, "quantum", 5)

	for _, r := range results {
		if r.ID == "2001.00001" {
			t.Fatal("filtered-out document appeared in results")
		}
	}
	if len(results) != 1 || results[0].ID != "1901.00002" {
		t.Errorf("results = %v, want only the 2019 paper", results)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t"} {
		if got := Search(testSnapshot(), Filters{}, q, 5); len(got) != 0 {
			t.Errorf("Search with query %q = %d results, want none", q, len(got))
		}
	}
}

func TestSearchNilSnapshot(t *testing.T) {
	if got := Search(nil, Filters{}, "quantum", 5); got != nil {
		t.Errorf("Search on nil snapshot = %v, want nil", got)
	}
}

func TestSearchNoMatchingCandidates(t *testing.T) {
	results := Search(testSnapshot(), Filters{Category: "cs.LG"}, "quantum", 5)
	if len(results) != 0 {
		t.Errorf("results = %v, want empty for a filter matching nothing", results)
	}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(Search(testSnapshot(), Filters{}, "quantum", 2), &buf)

	out := buf.String()
	if !strings.Contains(out, "Quantum Computing Basics") {
		t.Errorf("table missing title:\n%s", out)
	}
	if !strings.Contains(out, "2 results") {
		t.Errorf("table missing result count:\n%s", out)
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No results found.") {
		t.Errorf("empty table output = %q", buf.String())
	}
}

func TestFormatTableShowsUnknownForMissingFields(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(Search(testSnapshot(), Filters{}, "Untitled", 5), &buf)
	if !strings.Contains(buf.String(), "Unknown") {
		t.Errorf("missing submitter/year not shown as Unknown:\n%s", buf.String())
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(Search(testSnapshot(), Filters{}, "quantum", 2), &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d results, want 2", len(decoded))
	}
	if decoded[0]["score"] != float64(100) {
		t.Errorf("score = %v, want 100", decoded[0]["score"])
	}
}
