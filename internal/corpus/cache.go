// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"fmt"
	"sync"

	"github.com/pdiddy/course-recommender/pkg/types"
)

// Fetcher supplies the full document set, in a stable order that stays
// consistent across calls for an unchanged store.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]types.Document, error)
}

// Cache holds the current corpus snapshot and replaces it wholesale on
// rebuild. Readers keep the snapshot pointer they obtained from Current, so
// an in-flight query never observes a partially built corpus.
type Cache struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// Rebuild fetches the document set and swaps in a freshly built snapshot.
// A fetch failure leaves the previous snapshot in place and propagates.
func (c *Cache) Rebuild(ctx context.Context, f Fetcher) (*Snapshot, error) {
	docs, err := f.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching documents: %w", err)
	}

	snap := Build(docs)
	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()
	return snap, nil
}

// Current returns the snapshot from the most recent rebuild, or nil when no
// rebuild has run yet.
func (c *Cache) Current() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}
