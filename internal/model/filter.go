package model

import (
	"cmp"
	"slices"
	"strings"
)

// TrackFilter selects tracks by exact attributes. Empty fields match
// everything.
type TrackFilter struct {
	// Tag matches a track hashtag, ignoring case.
	Tag string
	// Channel matches the owning channel slug exactly.
	Channel string
}

// FilterTracks returns the tracks matching f, in their original order.
func FilterTracks(tracks []Track, f TrackFilter) []Track {
	tag := strings.ToLower(strings.TrimPrefix(f.Tag, "#"))

	out := make([]Track, 0, len(tracks))
	for _, t := range tracks {
		if f.Channel != "" && t.Slug != f.Channel {
			continue
		}
		if tag != "" && !hasTag(t.Metadata.Tags, tag) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.ToLower(t) == want {
			return true
		}
	}
	return false
}

// TagCount is the number of tracks carrying a hashtag.
type TagCount struct {
	Tag   string `json:"tag" yaml:"tag"`
	Count int    `json:"count" yaml:"count"`
}

// CountTags aggregates hashtags across tracks, most used first. Ties are
// ordered alphabetically.
func CountTags(tracks []Track) []TagCount {
	counts := make(map[string]int)
	for _, t := range tracks {
		for _, tag := range t.Metadata.Tags {
			counts[strings.ToLower(tag)]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TagCount{Tag: tag, Count: n})
	}
	slices.SortFunc(out, func(a, b TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Tag, b.Tag)
	})
	return out
}
