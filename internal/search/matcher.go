package search

import (
	"cmp"
	"slices"
)

// Searchable is implemented by every record kind the matcher can rank.
// SearchText returns the text projection used as match input.
type Searchable interface {
	SearchText() string
}

// Result is one ranked match: the record's position in the collection
// passed to UpdateItems, and its score.
type Result struct {
	Index int   `json:"index"`
	Score int64 `json:"score"`
}

// Matcher keeps a ranked view of which records in the current collection
// match the current pattern.
//
// The zero value is an empty matcher with an empty pattern. A Matcher must
// not be used from multiple goroutines without external synchronization.
type Matcher[T Searchable] struct {
	texts   []string // folded projections, indexed like the last UpdateItems call
	pattern string   // as given by the caller
	folded  string
	results []Result
	scorer  *scorer
}

// NewMatcher returns an empty matcher.
func NewMatcher[T Searchable]() *Matcher[T] {
	return &Matcher[T]{}
}

// UpdateItems replaces the record collection and re-ranks it against the
// current pattern. Positions reported before this call are invalidated.
// The matcher keeps only the projected text, not items.
func (m *Matcher[T]) UpdateItems(items []T) {
	s := m.ensureScorer()
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = s.fold(item.SearchText())
	}
	m.texts = texts
	m.rescore()
}

// SetPattern sets the active query and re-ranks the current collection.
// An empty pattern matches every record in collection order.
func (m *Matcher[T]) SetPattern(pattern string) {
	s := m.ensureScorer()
	m.pattern = pattern
	m.folded = s.fold(pattern)
	m.rescore()
}

// Pattern returns the active query as it was set.
func (m *Matcher[T]) Pattern() string {
	return m.pattern
}

// Len returns the size of the current collection.
func (m *Matcher[T]) Len() int {
	return len(m.texts)
}

// MatchedIndices returns the positions of matching records, best first.
// Equal scores keep collection order. The returned slice is a copy.
func (m *Matcher[T]) MatchedIndices() []int {
	out := make([]int, len(m.results))
	for i, r := range m.results {
		out[i] = r.Index
	}
	return out
}

// Results returns the ranked matches with their scores. The returned slice
// is a copy.
func (m *Matcher[T]) Results() []Result {
	return slices.Clone(m.results)
}

func (m *Matcher[T]) ensureScorer() *scorer {
	if m.scorer == nil {
		m.scorer = newScorer()
	}
	return m.scorer
}

func (m *Matcher[T]) rescore() {
	results := make([]Result, 0, len(m.texts))
	if m.folded == "" {
		for i := range m.texts {
			results = append(results, Result{Index: i})
		}
		m.results = results
		return
	}

	for i, text := range m.texts {
		if score, ok := m.scorer.score(m.folded, text); ok {
			results = append(results, Result{Index: i, Score: score})
		}
	}
	// results is built in index order, so a stable sort on score alone
	// breaks ties by position.
	slices.SortStableFunc(results, func(a, b Result) int {
		return cmp.Compare(b.Score, a.Score)
	})
	m.results = results
}
