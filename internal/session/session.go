// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds per-session UI state: the page the user is on and
// the documents they have saved. It sits outside the retrieval core; the
// core never depends on it.
package session

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/course-recommender/pkg/types"
)

// Page identifies which view of the session the user is on.
type Page string

const (
	PageHome            Page = "Home"
	PageSelectedCourses Page = "SelectedCourses"
)

// Session is the single-owner state of one interactive session. It lives
// from session start to session end and is never shared across sessions.
type Session struct {
	page       Page
	selections []types.Document
}

// New returns a session on the home page with no selections.
func New() *Session {
	return &Session{page: PageHome}
}

// Page returns the current page.
func (s *Session) Page() Page { return s.page }

// Goto switches to the given page.
func (s *Session) Goto(p Page) error {
	switch p {
	case PageHome, PageSelectedCourses:
		s.page = p
		return nil
	default:
		return fmt.Errorf("unknown page %q", p)
	}
}

// Save appends a document to the selection list unconditionally. Saving the
// same document twice appends it twice.
func (s *Session) Save(d types.Document) {
	s.selections = append(s.selections, d)
}

// Selections returns a snapshot copy of the saved documents in save order.
func (s *Session) Selections() []types.Document {
	out := make([]types.Document, len(s.selections))
	copy(out, s.selections)
	return out
}

// Len returns the number of saved documents.
func (s *Session) Len() int { return len(s.selections) }

// WriteYAML dumps the selection list to w.
func (s *Session) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(s.selections)
	if err != nil {
		return fmt.Errorf("marshaling selections: %w", err)
	}
	_, err = w.Write(data)
	return err
}
