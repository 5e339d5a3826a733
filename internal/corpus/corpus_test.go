// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/pdiddy/course-recommender/pkg/types"
)

func testDocs() []types.Document {
	return []types.Document{
		{
			ID:         "2001.00001",
			Title:      "Quantum Computing Basics",
			Abstract:   "intro to qubits",
			Categories: []string{"quant-ph"},
			Submitter:  "alice",
			UpdateDate: "2020-03-14",
		},
		{
			ID:         "1901.00002",
			Title:      "Classical Mechanics",
			Abstract:   "Newtonian dynamics",
			Categories: []string{"physics", "quant-ph"},
			Submitter:  "bob",
			UpdateDate: "2019-07-01",
		},
		{
			ID:         "1901.00003",
			Title:      "Untitled Note",
			Categories: nil,
			Submitter:  "",
			UpdateDate: "",
		},
	}
}

func TestBuildSearchableTexts(t *testing.T) {
	snap := Build(testDocs())

	if len(snap.Texts) != len(snap.Documents) {
		t.Fatalf("len(Texts) = %d, want %d", len(snap.Texts), len(snap.Documents))
	}
	if got, want := snap.Texts[0], "Quantum Computing Basics intro to qubits quant-ph"; got != want {
		t.Errorf("Texts[0] = %q, want %q", got, want)
	}
	if got, want := snap.Texts[1], "Classical Mechanics Newtonian dynamics physics quant-ph"; got != want {
		t.Errorf("Texts[1] = %q, want %q", got, want)
	}
	// Missing fields contribute empty strings, never an error.
	if got, want := snap.Texts[2], "Untitled Note  "; got != want {
		t.Errorf("Texts[2] = %q, want %q", got, want)
	}
}

func TestBuildDistinctValues(t *testing.T) {
	snap := Build(testDocs())

	if want := []string{"2019", "2020"}; !reflect.DeepEqual(snap.Years, want) {
		t.Errorf("Years = %v, want %v", snap.Years, want)
	}
	if want := []string{"alice", "bob"}; !reflect.DeepEqual(snap.Submitters, want) {
		t.Errorf("Submitters = %v, want %v", snap.Submitters, want)
	}
	if want := []string{"physics", "quant-ph"}; !reflect.DeepEqual(snap.Categories, want) {
		t.Errorf("Categories = %v, want %v", snap.Categories, want)
	}
}

func TestBuildEmptyCorpus(t *testing.T) {
	snap := Build(nil)
	if snap.Len() != 0 {
		t.Errorf("Len() = %d, want 0", snap.Len())
	}
	if len(snap.Years) != 0 || len(snap.Submitters) != 0 || len(snap.Categories) != 0 {
		t.Errorf("distinct sets not empty: %v %v %v", snap.Years, snap.Submitters, snap.Categories)
	}
}

func TestSearchableTextOrder(t *testing.T) {
	d := types.Document{Title: "t", Abstract: "a", Categories: []string{"c1", "c2"}}
	if got, want := SearchableText(d), "t a c1 c2"; got != want {
		t.Errorf("SearchableText = %q, want %q", got, want)
	}
}

// --- Cache ---

type fakeFetcher struct {
	docs []types.Document
	err  error
}

func (f *fakeFetcher) FetchAll(_ context.Context) ([]types.Document, error) {
	return f.docs, f.err
}

func TestCacheCurrentNilBeforeRebuild(t *testing.T) {
	var c Cache
	if c.Current() != nil {
		t.Error("Current() != nil before first rebuild")
	}
}

func TestCacheRebuildSwapsSnapshot(t *testing.T) {
	var c Cache
	f := &fakeFetcher{docs: testDocs()}

	first, err := c.Rebuild(context.Background(), f)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if c.Current() != first {
		t.Error("Current() does not return the rebuilt snapshot")
	}

	f.docs = f.docs[:1]
	second, err := c.Rebuild(context.Background(), f)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if second == first {
		t.Error("rebuild did not produce a fresh snapshot")
	}
	// The old snapshot is untouched: readers holding it see the old corpus.
	if first.Len() != 3 || second.Len() != 1 {
		t.Errorf("snapshot lengths = %d, %d; want 3, 1", first.Len(), second.Len())
	}
}

func TestCacheRebuildFetchFailureKeepsSnapshot(t *testing.T) {
	var c Cache
	f := &fakeFetcher{docs: testDocs()}

	snap, err := c.Rebuild(context.Background(), f)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}

	f.err = fmt.Errorf("store unavailable")
	if _, err := c.Rebuild(context.Background(), f); err == nil {
		t.Fatal("Rebuild succeeded despite fetch failure")
	}
	if c.Current() != snap {
		t.Error("failed rebuild replaced the previous snapshot")
	}
}
