// Package tfidf provides the vector-space search index for campusgpt.
// Documents and queries are represented as L2-normalized TF-IDF vectors
// so that cosine similarity reduces to a sparse dot product.
package tfidf

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// MaxFeatures caps the vocabulary size. When the corpus vocabulary is
// larger, the terms with the highest total frequency are kept.
const MaxFeatures = 50000

// Tokenize lowercases text and splits it on whitespace and punctuation,
// dropping single-character tokens and English stopwords.
func Tokenize(text string) []string {
	sep := func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c)
	}

	var tokens []string
	for _, token := range strings.FieldsFunc(strings.ToLower(text), sep) {
		if len(token) < 2 {
			continue
		}
		if _, stop := stopwords[token]; stop {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Vectorizer holds a term-weighting model fitted over one corpus.
type Vectorizer struct {
	vocabulary map[string]int // term -> feature index
	idf        []float64      // feature index -> inverse document frequency
}

// Fit learns the vocabulary and IDF weights from the corpus. The IDF is
// smoothed (every term behaves as if seen in one extra document) so that
// query-time weights never divide by zero.
func Fit(docs []string) *Vectorizer {
	type termStat struct {
		term  string
		total int
		df    int
	}

	stats := make(map[string]*termStat)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range Tokenize(doc) {
			st, ok := stats[term]
			if !ok {
				st = &termStat{term: term}
				stats[term] = st
			}
			st.total++
			if !seen[term] {
				st.df++
				seen[term] = true
			}
		}
	}

	ordered := make([]*termStat, 0, len(stats))
	for _, st := range stats {
		ordered = append(ordered, st)
	}
	// Keep the most frequent terms when over the cap; order by term as a
	// deterministic tie-break.
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].total != ordered[j].total {
			return ordered[i].total > ordered[j].total
		}
		return ordered[i].term < ordered[j].term
	})
	if len(ordered) > MaxFeatures {
		ordered = ordered[:MaxFeatures]
	}

	v := &Vectorizer{
		vocabulary: make(map[string]int, len(ordered)),
		idf:        make([]float64, len(ordered)),
	}
	n := float64(len(docs))
	for i, st := range ordered {
		v.vocabulary[st.term] = i
		v.idf[i] = math.Log((n+1)/(float64(st.df)+1)) + 1
	}
	return v
}

// Features returns the vocabulary size.
func (v *Vectorizer) Features() int {
	return len(v.vocabulary)
}

// Transform converts text into a sparse L2-normalized TF-IDF vector keyed
// by feature index. Terms outside the vocabulary are ignored; text with
// no known terms yields an empty vector.
func (v *Vectorizer) Transform(text string) map[int]float64 {
	counts := make(map[int]int)
	for _, term := range Tokenize(text) {
		if idx, ok := v.vocabulary[term]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	vec := make(map[int]float64, len(counts))
	var norm float64
	for idx, count := range counts {
		w := float64(count) * v.idf[idx]
		vec[idx] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for idx := range vec {
		vec[idx] /= norm
	}
	return vec
}
