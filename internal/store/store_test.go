// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/course-recommender/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.StoreConfig{DBPath: filepath.Join(t.TempDir(), "documents.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testDocs() []types.Document {
	return []types.Document{
		{
			ID:         "2001.00001",
			Title:      "Quantum Computing Basics",
			Abstract:   "intro to qubits",
			Categories: []string{"quant-ph"},
			Submitter:  "alice",
			UpdateDate: "2020-03-14",
			Authors:    "A. Author",
			Link:       "https://example.org/2001.00001",
		},
		{
			ID:         "1901.00002",
			Title:      "Classical Mechanics",
			Abstract:   "Newtonian dynamics",
			Categories: []string{"physics", "quant-ph"},
			Submitter:  "bob",
			UpdateDate: "2019-07-01",
			JournalRef: "J. Phys. 1 (2019)",
		},
	}
}

func TestPutAndFetchAll(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, testDocs()))

	got, err := s.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, testDocs(), got, "documents must round-trip unchanged")
}

func TestFetchAllPreservesInsertionOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	docs := testDocs()
	require.NoError(t, s.Put(ctx, docs[:1]))
	require.NoError(t, s.Put(ctx, docs[1:]))

	got, err := s.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2001.00001", got[0].ID)
	assert.Equal(t, "1901.00002", got[1].ID)

	// Same order on repeated fetches.
	again, err := s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestPutUpsertKeepsPosition(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, testDocs()))

	updated := testDocs()[0]
	updated.Title = "Quantum Computing, Revised"
	require.NoError(t, s.Put(ctx, []types.Document{updated}))

	got, err := s.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Quantum Computing, Revised", got[0].Title, "upsert must replace in place")
	assert.Equal(t, "1901.00002", got[1].ID)
}

func TestPutRejectsEmptyID(t *testing.T) {
	s := openTestStore(t)
	err := s.Put(context.Background(), []types.Document{{Title: "no id"}})
	require.Error(t, err)
}

func TestPutEmptyBatch(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put(context.Background(), nil))
}

func TestCount(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, s.Put(ctx, testDocs()))
	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestFetchAllEmptyStore(t *testing.T) {
	s := openTestStore(t)
	got, err := s.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDocumentWithMissingFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, []types.Document{{ID: "bare.00001"}}))

	got, err := s.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Title)
	assert.Empty(t, got[0].Categories)
	assert.Equal(t, types.UnknownLabel, got[0].DisplaySubmitter())
	assert.Equal(t, types.UnknownLabel, got[0].DisplayYear())
}
