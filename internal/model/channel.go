// Package model defines the channel and track records r4 works with.
package model

import "strings"

// Source records which radio4000 generation a record came from.
const (
	SourceV1 = "v1"
	SourceV2 = "v2"
)

// Channel is a radio4000 channel.
type Channel struct {
	ID          string   `json:"id" yaml:"id"`
	Slug        string   `json:"slug" yaml:"slug"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	TrackCount  int      `json:"track_count" yaml:"track_count"`
	FirebaseID  string   `json:"firebase_id,omitempty" yaml:"firebase_id,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	Source      string   `json:"source" yaml:"source"`
	Metadata    Metadata `json:"metadata" yaml:"metadata"`
}

// SearchText is the text the fuzzy matcher sees for a channel.
func (c Channel) SearchText() string {
	return joinNonEmpty(c.Name, c.Slug)
}

// DisplayName returns the channel name, or a placeholder for unnamed channels.
func (c Channel) DisplayName() string {
	if strings.TrimSpace(c.Name) == "" {
		return "Untitled"
	}
	return c.Name
}

func joinNonEmpty(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	return b.String()
}
