package tfidf

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/eatulrajput/campusgpt"
)

// Ensure type implements interface.
var _ campusgpt.SearchIndex = (*Index)(nil)

// Index implements campusgpt.SearchIndex over a PageService corpus.
//
// The fitted model lives in an immutable snapshot that queries read
// without locking rebuilds out; a rebuild constructs a fresh snapshot
// off to the side and swaps it in atomically. Staleness is detected by
// comparing the snapshot's row count against the store's current count.
type Index struct {
	pages campusgpt.PageService

	mu   sync.RWMutex
	snap *snapshot
}

type snapshot struct {
	vec      *Vectorizer
	postings map[int][]posting // feature index -> weight per document
	rows     []row
	count    int
}

type posting struct {
	doc    int
	weight float64
}

type row struct {
	url     string
	title   string
	content string
}

// NewIndex returns an index over pages. The first query or an explicit
// Rebuild fits the model.
func NewIndex(pages campusgpt.PageService) *Index {
	return &Index{pages: pages}
}

// Rebuild refits the model over the full corpus and swaps it in. On
// error the previous snapshot stays in service.
func (idx *Index) Rebuild(ctx context.Context) (int, error) {
	pages, err := idx.pages.ListPages(ctx)
	if err != nil {
		return 0, err
	}

	snap := &snapshot{count: len(pages)}
	if len(pages) > 0 {
		docs := make([]string, len(pages))
		snap.rows = make([]row, len(pages))
		for i, p := range pages {
			docs[i] = campusgpt.CollapseWhitespace(p.Title + " " + p.Content)
			snap.rows[i] = row{url: p.URL, title: p.Title, content: p.Content}
		}

		snap.vec = Fit(docs)
		snap.postings = make(map[int][]posting)
		for i, doc := range docs {
			for feat, w := range snap.vec.Transform(doc) {
				snap.postings[feat] = append(snap.postings[feat], posting{doc: i, weight: w})
			}
		}
	}

	idx.mu.Lock()
	idx.snap = snap
	idx.mu.Unlock()
	return len(pages), nil
}

// IndexedCount returns the number of documents in the current snapshot,
// or zero when the index has never been built.
func (idx *Index) IndexedCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if idx.snap == nil {
		return 0
	}
	return idx.snap.count
}

// Query scores the corpus against text and returns the topN best
// matches in descending score order, ties broken by insertion order.
// A blank query returns no results without touching the store.
func (idx *Index) Query(ctx context.Context, text string, topN int) ([]campusgpt.SearchResult, error) {
	if strings.TrimSpace(text) == "" {
		return []campusgpt.SearchResult{}, nil
	}
	if topN <= 0 {
		topN = campusgpt.DefaultTopN
	}

	snap, err := idx.fresh(ctx)
	if err != nil {
		return nil, err
	}
	if len(snap.rows) == 0 {
		return []campusgpt.SearchResult{}, nil
	}

	scores := make([]float64, len(snap.rows))
	for feat, qw := range snap.vec.Transform(text) {
		for _, p := range snap.postings[feat] {
			scores[p.doc] += qw * p.weight
		}
	}

	order := make([]int, len(snap.rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})
	if len(order) > topN {
		order = order[:topN]
	}

	results := make([]campusgpt.SearchResult, len(order))
	for i, doc := range order {
		r := snap.rows[doc]
		results[i] = campusgpt.SearchResult{
			URL:     r.url,
			Title:   r.title,
			Snippet: snippet(r.content),
			Score:   scores[doc],
		}
	}
	return results, nil
}

// fresh returns the current snapshot, rebuilding first if the store's
// row count no longer matches it.
func (idx *Index) fresh(ctx context.Context) (*snapshot, error) {
	count, err := idx.pages.CountPages(ctx)
	if err != nil {
		return nil, err
	}

	idx.mu.RLock()
	snap := idx.snap
	idx.mu.RUnlock()
	if snap != nil && snap.count == count {
		return snap, nil
	}

	if _, err := idx.Rebuild(ctx); err != nil {
		return nil, err
	}
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.snap, nil
}

// snippet truncates content to the search snippet budget without
// splitting a multi-byte rune.
func snippet(content string) string {
	runes := []rune(campusgpt.CollapseWhitespace(content))
	if len(runes) <= campusgpt.SnippetLength {
		return string(runes)
	}
	return string(runes[:campusgpt.SnippetLength])
}
