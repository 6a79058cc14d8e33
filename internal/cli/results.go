package cli

import (
	"github.com/radio4000/r4/internal/model"
	"github.com/radio4000/r4/internal/search"
)

// ChannelMatch is a ranked channel in search output.
type ChannelMatch struct {
	model.Channel `yaml:",inline"`
	Score         int64 `json:"score" yaml:"score"`
}

// TrackMatch is a ranked track in search output.
type TrackMatch struct {
	model.Track `yaml:",inline"`
	Score       int64 `json:"score" yaml:"score"`
}

// SearchResult is the data payload of search and browse.
type SearchResult struct {
	Query    string         `json:"query" yaml:"query"`
	Target   string         `json:"target" yaml:"target"`
	Channels []ChannelMatch `json:"channels" yaml:"channels"`
	Tracks   []TrackMatch   `json:"tracks" yaml:"tracks"`
}

// Count returns the number of ranked records.
func (r SearchResult) Count() int {
	return len(r.Channels) + len(r.Tracks)
}

// ImportResult is the data payload of import.
type ImportResult struct {
	Database       string `json:"database" yaml:"database"`
	Channels       int    `json:"channels" yaml:"channels"`
	Tracks         int    `json:"tracks" yaml:"tracks"`
	UnlinkedTracks int    `json:"unlinked_tracks" yaml:"unlinked_tracks"`
}

// rank orders items against pattern with a fresh matcher and wraps the
// first limit matches.
func rank[T search.Searchable, R any](items []T, pattern string, limit int, wrap func(T, int64) R) []R {
	m := search.NewMatcher[T]()
	m.UpdateItems(items)
	m.SetPattern(pattern)
	return collect(m, items, limit, wrap)
}

// collect wraps a matcher's current ranking. items must be the slice last
// passed to UpdateItems.
func collect[T search.Searchable, R any](m *search.Matcher[T], items []T, limit int, wrap func(T, int64) R) []R {
	results := truncate(m.Results(), limit)
	out := make([]R, 0, len(results))
	for _, r := range results {
		out = append(out, wrap(items[r.Index], r.Score))
	}
	return out
}

func channelMatch(c model.Channel, score int64) ChannelMatch {
	return ChannelMatch{Channel: c, Score: score}
}

func trackMatch(t model.Track, score int64) TrackMatch {
	return TrackMatch{Track: t, Score: score}
}
