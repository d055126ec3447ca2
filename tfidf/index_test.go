package tfidf_test

import (
	"context"
	"strings"
	"testing"

	"github.com/eatulrajput/campusgpt"
	"github.com/eatulrajput/campusgpt/mock"
	"github.com/eatulrajput/campusgpt/tfidf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageStore(pages ...*campusgpt.Page) *mock.PageService {
	return &mock.PageService{
		ListPagesFn: func(ctx context.Context) ([]*campusgpt.Page, error) {
			return pages, nil
		},
		CountPagesFn: func(ctx context.Context) (int, error) {
			return len(pages), nil
		},
	}
}

func TestIndex_Query(t *testing.T) {
	t.Parallel()

	corpus := pageStore(
		&campusgpt.Page{URL: "https://kiit.ac.in/hostel", Title: "Hostel", Content: "hostel rooms mess timings warden"},
		&campusgpt.Page{URL: "https://kiit.ac.in/fees", Title: "Fees", Content: "tuition fees payment deadline scholarship"},
		&campusgpt.Page{URL: "https://kiit.ac.in/library", Title: "Library", Content: "library hours books journals"},
	)

	t.Run("ranks matching document first", func(t *testing.T) {
		t.Parallel()
		idx := tfidf.NewIndex(corpus)

		results, err := idx.Query(context.Background(), "hostel mess", 5)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		assert.Equal(t, "https://kiit.ac.in/hostel", results[0].URL)
		assert.Equal(t, "Hostel", results[0].Title)
		assert.Greater(t, results[0].Score, 0.0)
		for i := 1; i < len(results); i++ {
			assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
		}
	})

	t.Run("topN caps the result count", func(t *testing.T) {
		t.Parallel()
		idx := tfidf.NewIndex(corpus)

		results, err := idx.Query(context.Background(), "hostel", 1)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("non-positive topN falls back to the default", func(t *testing.T) {
		t.Parallel()
		idx := tfidf.NewIndex(corpus)

		results, err := idx.Query(context.Background(), "hostel", 0)
		require.NoError(t, err)
		assert.Len(t, results, 3) // whole corpus is smaller than DefaultTopN
	})

	t.Run("zero-score ties keep insertion order", func(t *testing.T) {
		t.Parallel()
		idx := tfidf.NewIndex(corpus)

		results, err := idx.Query(context.Background(), "unrelatedterm", 2)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "https://kiit.ac.in/hostel", results[0].URL)
		assert.Equal(t, "https://kiit.ac.in/fees", results[1].URL)
		assert.Zero(t, results[0].Score)
	})

	t.Run("blank query returns empty without touching the store", func(t *testing.T) {
		t.Parallel()
		idx := tfidf.NewIndex(&mock.PageService{
			CountPagesFn: func(ctx context.Context) (int, error) {
				t.Fatal("store must not be queried for a blank query")
				return 0, nil
			},
		})

		results, err := idx.Query(context.Background(), "   ", 5)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("empty corpus returns empty results", func(t *testing.T) {
		t.Parallel()
		idx := tfidf.NewIndex(pageStore())

		results, err := idx.Query(context.Background(), "hostel", 5)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestIndex_Snippet(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("admission criteria and cutoff details ", 60)
	idx := tfidf.NewIndex(pageStore(
		&campusgpt.Page{URL: "https://kiit.ac.in/admissions", Title: "Admissions", Content: long},
	))

	results, err := idx.Query(context.Background(), "admission", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, []rune(results[0].Snippet), campusgpt.SnippetLength)
}

func TestIndex_Rebuild(t *testing.T) {
	t.Parallel()

	t.Run("reports the indexed count", func(t *testing.T) {
		t.Parallel()
		idx := tfidf.NewIndex(pageStore(
			&campusgpt.Page{URL: "https://kiit.ac.in/a", Title: "A", Content: "alpha"},
			&campusgpt.Page{URL: "https://kiit.ac.in/b", Title: "B", Content: "beta"},
		))

		n, err := idx.Rebuild(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, 2, idx.IndexedCount())
	})

	t.Run("never built means zero count", func(t *testing.T) {
		t.Parallel()
		idx := tfidf.NewIndex(pageStore())
		assert.Zero(t, idx.IndexedCount())
	})

	t.Run("failed rebuild keeps the previous snapshot", func(t *testing.T) {
		t.Parallel()
		pages := []*campusgpt.Page{
			{URL: "https://kiit.ac.in/a", Title: "A", Content: "alpha"},
		}
		fail := false
		store := &mock.PageService{
			ListPagesFn: func(ctx context.Context) ([]*campusgpt.Page, error) {
				if fail {
					return nil, campusgpt.Errorf(campusgpt.EINTERNAL, "storage offline")
				}
				return pages, nil
			},
			CountPagesFn: func(ctx context.Context) (int, error) {
				return len(pages), nil
			},
		}
		idx := tfidf.NewIndex(store)

		_, err := idx.Rebuild(context.Background())
		require.NoError(t, err)

		fail = true
		_, err = idx.Rebuild(context.Background())
		require.Error(t, err)

		// Counts still match, so query serves from the surviving snapshot.
		results, err := idx.Query(context.Background(), "alpha", 5)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "https://kiit.ac.in/a", results[0].URL)
	})

	t.Run("query rebuilds automatically when the corpus grows", func(t *testing.T) {
		t.Parallel()
		pages := []*campusgpt.Page{
			{URL: "https://kiit.ac.in/a", Title: "A", Content: "alpha"},
		}
		store := &mock.PageService{
			ListPagesFn: func(ctx context.Context) ([]*campusgpt.Page, error) {
				return pages, nil
			},
			CountPagesFn: func(ctx context.Context) (int, error) {
				return len(pages), nil
			},
		}
		idx := tfidf.NewIndex(store)

		_, err := idx.Query(context.Background(), "alpha", 5)
		require.NoError(t, err)
		assert.Equal(t, 1, idx.IndexedCount())

		pages = append(pages, &campusgpt.Page{URL: "https://kiit.ac.in/b", Title: "B", Content: "beta"})

		results, err := idx.Query(context.Background(), "beta", 5)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "https://kiit.ac.in/b", results[0].URL)
		assert.Equal(t, 2, idx.IndexedCount())
	})
}
