// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recommend

import (
	"strings"

	"github.com/pdiddy/course-recommender/internal/corpus"
	"github.com/pdiddy/course-recommender/pkg/types"
)

// All is the sentinel filter value meaning "unconstrained". The zero value
// "" is treated the same way so flag defaults need no special casing.
const All = "All"

// Filters is the conjunctive predicate set applied before ranking. Each
// field is either unconstrained or a concrete value drawn from the
// snapshot's distinct-value sets; values outside those sets simply match
// zero documents.
type Filters struct {
	// Year matches documents whose update date starts with it.
	Year string `json:"year,omitempty" yaml:"year,omitempty"`

	// Submitter matches exactly.
	Submitter string `json:"submitter,omitempty" yaml:"submitter,omitempty"`

	// Category matches documents whose category list contains it.
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// IsAll reports whether no field constrains the candidate set.
func (f Filters) IsAll() bool {
	return unconstrained(f.Year) && unconstrained(f.Submitter) && unconstrained(f.Category)
}

// Match reports whether the document passes every constraint. A document
// with an absent field never satisfies a concrete constraint on that field.
func (f Filters) Match(d types.Document) bool {
	if !unconstrained(f.Year) && !strings.HasPrefix(d.UpdateDate, f.Year) {
		return false
	}
	if !unconstrained(f.Submitter) && d.Submitter != f.Submitter {
		return false
	}
	if !unconstrained(f.Category) && !contains(d.Categories, f.Category) {
		return false
	}
	return true
}

func unconstrained(v string) bool { return v == "" || v == All }

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// Candidate pairs a retained document with its searchable text and its
// index in the source snapshot, so downstream ranking stays aligned with
// store order.
type Candidate struct {
	Index int
	Doc   types.Document
	Text  string
}

// Apply filters the snapshot and returns the surviving candidates in their
// original relative order. An empty result is not an error.
func Apply(snap *corpus.Snapshot, f Filters) []Candidate {
	var out []Candidate
	for i, d := range snap.Documents {
		if f.Match(d) {
			out = append(out, Candidate{Index: i, Doc: d, Text: snap.Texts[i]})
		}
	}
	return out
}
