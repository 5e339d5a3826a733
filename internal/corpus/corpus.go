// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus derives the in-memory retrieval structures from a document
// set: per-document searchable text and the distinct values of each
// filterable attribute.
package corpus

import (
	"sort"
	"strings"

	"github.com/pdiddy/course-recommender/pkg/types"
)

// Snapshot is the immutable, read-only view of one corpus build. Texts[i]
// is the searchable text of Documents[i]; that alignment holds for the
// lifetime of the snapshot. Safe to share across concurrent readers.
type Snapshot struct {
	// Documents in store order.
	Documents []types.Document

	// Texts holds the flattened searchable text per document:
	// title, abstract, then categories, space-joined.
	Texts []string

	// Years, Submitters, and Categories are the sorted distinct values
	// available for filtering. Absent fields contribute nothing.
	Years      []string
	Submitters []string
	Categories []string
}

// Len returns the number of documents in the snapshot.
func (s *Snapshot) Len() int { return len(s.Documents) }

// Build derives a Snapshot from a document set. Pure: the input slice is
// referenced, not copied, and must not be mutated afterwards. A changed
// document set requires a full rebuild.
func Build(docs []types.Document) *Snapshot {
	s := &Snapshot{
		Documents: docs,
		Texts:     make([]string, len(docs)),
	}

	years := make(map[string]struct{})
	submitters := make(map[string]struct{})
	categories := make(map[string]struct{})

	for i, d := range docs {
		s.Texts[i] = SearchableText(d)

		if y := d.UpdateYear(); y != "" {
			years[y] = struct{}{}
		}
		if d.Submitter != "" {
			submitters[d.Submitter] = struct{}{}
		}
		for _, c := range d.Categories {
			if c != "" {
				categories[c] = struct{}{}
			}
		}
	}

	s.Years = sortedKeys(years)
	s.Submitters = sortedKeys(submitters)
	s.Categories = sortedKeys(categories)
	return s
}

// SearchableText flattens a document into the string the ranker matches
// against. Missing fields contribute empty strings, never an error.
func SearchableText(d types.Document) string {
	return d.Title + " " + d.Abstract + " " + strings.Join(d.Categories, " ")
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
