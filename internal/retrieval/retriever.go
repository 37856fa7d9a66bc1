package retrieval

import (
	"sort"
	"strings"
)

// Retriever ranks stored chunks against a query.
type Retriever interface {
	// Rank returns up to k chunks most relevant to the query, best
	// first. Chunks with zero relevance are never returned.
	Rank(query string, k int) []string
}

// KeywordRetriever scores chunks by case-insensitive term frequency of
// the query words. It needs no external services, which keeps quiz
// preparation usable offline; swap in an embedding-backed Retriever for
// semantic matching.
type KeywordRetriever struct {
	chunks []string
	lower  []string
}

// NewKeywordRetriever indexes the given chunks.
func NewKeywordRetriever(chunks []string) *KeywordRetriever {
	lower := make([]string, len(chunks))
	for i, c := range chunks {
		lower[i] = strings.ToLower(c)
	}
	return &KeywordRetriever{chunks: chunks, lower: lower}
}

func (r *KeywordRetriever) Rank(query string, k int) []string {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 || k <= 0 {
		return nil
	}

	type scored struct {
		index int
		score int
	}
	var results []scored
	for i, c := range r.lower {
		score := 0
		for _, term := range terms {
			score += strings.Count(c, term)
		}
		if score > 0 {
			results = append(results, scored{index: i, score: score})
		}
	}

	// Stable sort keeps document order among equal scores.
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].score > results[b].score
	})

	if len(results) > k {
		results = results[:k]
	}
	out := make([]string, len(results))
	for i, res := range results {
		out[i] = r.chunks[res.index]
	}
	return out
}
