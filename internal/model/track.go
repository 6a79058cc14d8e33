package model

import "strings"

// Track is a single track posted to a channel.
// Slug is the slug of the owning channel.
type Track struct {
	ID          string   `json:"id" yaml:"id"`
	FirebaseID  string   `json:"firebase_id,omitempty" yaml:"firebase_id,omitempty"`
	ChannelID   string   `json:"channel_id,omitempty" yaml:"channel_id,omitempty"`
	Slug        string   `json:"slug" yaml:"slug"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url" yaml:"url"`
	DiscogsURL  string   `json:"discogs_url,omitempty" yaml:"discogs_url,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	Source      string   `json:"source" yaml:"source"`
	Metadata    Metadata `json:"metadata" yaml:"metadata"`
}

// SearchText is the text the fuzzy matcher sees for a track.
func (t Track) SearchText() string {
	return joinNonEmpty(t.Title, PlainText(t.Description), t.Slug)
}

// DisplayTitle returns the track title, or a placeholder for untitled tracks.
func (t Track) DisplayTitle() string {
	if strings.TrimSpace(t.Title) == "" {
		return "Untitled"
	}
	return t.Title
}
