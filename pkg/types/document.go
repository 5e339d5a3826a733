// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// UnknownLabel is shown for documents that lack a submitter or update date.
const UnknownLabel = "Unknown"

// Document holds the metadata of one paper in the corpus. Field names and
// JSON tags follow the arXiv metadata snapshot format; only title, abstract,
// categories, submitter, and update_date participate in filtering and
// ranking — the rest are display-only.
type Document struct {
	// ID is the store-assigned identifier (e.g. "2301.07041"), unique
	// within one corpus snapshot.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title. May be empty.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract. May be empty.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Categories lists category tags in source order (e.g. "quant-ph").
	Categories []string `json:"categories" yaml:"categories"`

	// Submitter is the submitting author's label. May be empty.
	Submitter string `json:"submitter,omitempty" yaml:"submitter,omitempty"`

	// UpdateDate is the last-update date string. Only the leading 4-digit
	// year is used for filtering and display.
	UpdateDate string `json:"update_date,omitempty" yaml:"update_date,omitempty"`

	// Comments carries the submitter's free-form comments. Display only.
	Comments string `json:"comments,omitempty" yaml:"comments,omitempty"`

	// JournalRef is the journal reference, when published. Display only.
	JournalRef string `json:"journal-ref,omitempty" yaml:"journal_ref,omitempty"`

	// Authors is the author list as a single string. Display only.
	Authors string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Link points at the paper's landing page. Display only.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`
}

// UpdateYear returns the 4-digit year prefix of UpdateDate, or "" when the
// date is absent or too short.
func (d Document) UpdateYear() string {
	if len(d.UpdateDate) < 4 {
		return ""
	}
	return d.UpdateDate[:4]
}

// DisplaySubmitter returns the submitter, or UnknownLabel when absent.
func (d Document) DisplaySubmitter() string {
	if d.Submitter == "" {
		return UnknownLabel
	}
	return d.Submitter
}

// DisplayYear returns the update year, or UnknownLabel when absent.
func (d Document) DisplayYear() string {
	if y := d.UpdateYear(); y != "" {
		return y
	}
	return UnknownLabel
}
