// Package search implements incremental fuzzy matching over record collections.
package search

import (
	"math"
	"strings"
	"sync"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
	"golang.org/x/text/cases"
)

// Match tiers. A higher tier always outranks a lower one regardless of the
// fzf base score, so an exact substring never loses to a scattered match.
const (
	tierSubsequence = 0
	tierSubstring   = 1
	tierPrefix      = 2

	tierShift = 32
)

// Slab sizes match fzf's own defaults for a single matcher.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

var initAlgo sync.Once

func ensureAlgo() {
	initAlgo.Do(func() {
		algo.Init("default")
	})
}

// Score computes the match quality of pattern against text. Higher is better.
// It reports false when the case-folded pattern is not an ordered
// subsequence of the case-folded text. An empty pattern matches with score 0.
func Score(pattern, text string) (int64, bool) {
	s := newScorer()
	return s.score(s.fold(pattern), s.fold(text))
}

// scorer carries the per-matcher scratch state. It is not safe for
// concurrent use.
type scorer struct {
	caser cases.Caser
	slab  *util.Slab
}

func newScorer() *scorer {
	ensureAlgo()
	return &scorer{
		caser: cases.Fold(),
		slab:  util.MakeSlab(slab16Size, slab32Size),
	}
}

func (s *scorer) fold(text string) string {
	return s.caser.String(text)
}

// score expects both arguments already folded.
func (s *scorer) score(pattern, text string) (int64, bool) {
	if pattern == "" {
		return 0, true
	}
	if len(pattern) > len(text) {
		return 0, false
	}

	chars := util.ToChars([]byte(text))
	// Both sides are folded already; caseSensitive=true keeps fzf from
	// re-folding through its partial ASCII fast path.
	res, _ := algo.FuzzyMatchV2(true, false, true, &chars, []rune(pattern), false, s.slab)
	if res.Start < 0 {
		return 0, false
	}

	tier := tierSubsequence
	switch {
	case strings.HasPrefix(text, pattern):
		tier = tierPrefix
	case strings.Contains(text, pattern):
		tier = tierSubstring
	}

	base := int64(res.Score)
	if base < 0 {
		base = 0
	}
	if base > math.MaxInt32 {
		base = math.MaxInt32
	}
	return int64(tier)<<tierShift + base, true
}
