// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recommend

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/pdiddy/course-recommender/pkg/types"
)

// Result is one ranked document with its similarity score in [0, 100].
type Result struct {
	types.Document `yaml:",inline"`

	Score int `json:"score" yaml:"score"`
}

// PartialRatio scores how well query matches the best window of text,
// case-insensitive, as an integer in [0, 100]. A literal substring scores
// exactly 100; otherwise the score is the Levenshtein ratio of the query
// against its best query-length window, so additional edits between query
// and the closest passage can only lower it. The query is treated as
// literal text, never as pattern syntax. Both arguments empty-safe: an
// empty query or empty text scores 0.
func PartialRatio(query, text string) int {
	q := strings.ToLower(query)
	t := strings.ToLower(text)
	if q == "" || t == "" {
		return 0
	}
	if strings.Contains(t, q) {
		return 100
	}

	qr := []rune(q)
	tr := []rune(t)
	n := len(qr)

	// Candidate shorter than the query: one window, the whole text.
	if len(tr) <= n {
		return ratioScore(levenshtein.ComputeDistance(q, t), n)
	}

	best := 0
	for i := 0; i+n <= len(tr); i++ {
		d := levenshtein.ComputeDistance(q, string(tr[i:i+n]))
		if s := ratioScore(d, n); s > best {
			best = s
		}
	}
	return best
}

// ratioScore converts an edit distance over a window of n runes into a
// score. Integer division floors, so only distance zero reaches 100 — and
// distance zero over an equal-length window means a literal substring,
// which the fast path already handled.
func ratioScore(distance, n int) int {
	if distance >= n {
		return 0
	}
	return (n - distance) * 100 / n
}

// Rank scores every candidate against the query and returns the top limit
// results by descending score. Ties keep store order, so repeated queries
// against an unchanged corpus are reproducible. limit <= 0 returns all
// candidates sorted.
func Rank(query string, candidates []Candidate, limit int) []Result {
	if len(candidates) == 0 {
		return nil
	}

	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = Result{Document: c.Doc, Score: PartialRatio(query, c.Text)}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
