// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest loads arXiv-style metadata dumps into the document store.
package ingest

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pdiddy/course-recommender/internal/httputil"
	"github.com/pdiddy/course-recommender/internal/store"
	"github.com/pdiddy/course-recommender/pkg/types"
)

const defaultBatchSize = 500

// Summary holds counts from one ingestion run.
type Summary struct {
	Loaded  int
	Skipped int
	Failed  int
}

// Total returns the number of non-blank input lines processed.
func (s Summary) Total() int {
	return s.Loaded + s.Skipped + s.Failed
}

// rawDocument is the dump wire format. The snapshot published by arXiv
// carries categories as a space-separated string; exports of this tool use
// a JSON array. categoryList accepts both.
type rawDocument struct {
	ID         string       `json:"id"`
	Submitter  string       `json:"submitter"`
	Authors    string       `json:"authors"`
	Title      string       `json:"title"`
	Comments   string       `json:"comments"`
	JournalRef string       `json:"journal-ref"`
	Abstract   string       `json:"abstract"`
	Categories categoryList `json:"categories"`
	UpdateDate string       `json:"update_date"`
	Link       string       `json:"link"`
}

type categoryList []string

func (c *categoryList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = strings.Fields(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*c = list
	return nil
}

func (r rawDocument) document() types.Document {
	return types.Document{
		ID:         r.ID,
		Title:      r.Title,
		Abstract:   r.Abstract,
		Categories: r.Categories,
		Submitter:  r.Submitter,
		UpdateDate: r.UpdateDate,
		Comments:   r.Comments,
		JournalRef: r.JournalRef,
		Authors:    r.Authors,
		Link:       r.Link,
	}
}

// Ingest reads a JSON-lines metadata dump from r and upserts the documents
// into the store in batches. Lines that fail to parse or lack an id are
// counted and reported to w, never fatal; blank lines are skipped.
func Ingest(ctx context.Context, st *store.Store, r io.Reader, cfg types.IngestConfig, w io.Writer) (Summary, error) {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	var (
		summary Summary
		batch   []types.Document
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := st.Put(ctx, batch); err != nil {
			return fmt.Errorf("writing batch: %w", err)
		}
		summary.Loaded += len(batch)
		batch = batch[:0]
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var raw rawDocument
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			fmt.Fprintf(w, "failed  line %d: parse error: %v\n", line, err)
			summary.Failed++
			continue
		}
		if raw.ID == "" {
			fmt.Fprintf(w, "skipped line %d: missing id\n", line)
			summary.Skipped++
			continue
		}

		batch = append(batch, raw.document())
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return summary, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("reading dump: %w", err)
	}
	if err := flush(); err != nil {
		return summary, err
	}

	fmt.Fprintf(w, "\nloaded: %d, skipped: %d, failed: %d\n",
		summary.Loaded, summary.Skipped, summary.Failed)
	return summary, nil
}

// Load ingests a metadata dump from a local file path or an http(s) URL.
func Load(ctx context.Context, st *store.Store, source string, cfg types.IngestConfig, w io.Writer) (Summary, error) {
	var r io.ReadCloser

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		var err error
		r, err = fetch(ctx, source, cfg)
		if err != nil {
			return Summary{}, err
		}
	} else {
		f, err := os.Open(source)
		if err != nil {
			return Summary{}, fmt.Errorf("opening dump: %w", err)
		}
		r = f
	}
	defer r.Close()

	return Ingest(ctx, st, r, cfg, w)
}

// fetch downloads a dump URL, retrying on rate limiting.
func fetch(ctx context.Context, url string, cfg types.IngestConfig) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	client := &http.Client{Timeout: cfg.Timeout}
	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("fetching dump: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching dump: HTTP %d", resp.StatusCode)
	}
	return resp.Body, nil
}
