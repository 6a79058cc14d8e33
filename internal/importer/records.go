package importer

import (
	"slices"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/radio4000/r4/internal/logging"
	"github.com/radio4000/r4/internal/model"
	"github.com/radio4000/r4/internal/slugs"
)

// ReadChannels reads a channel export. Channels without a name or slug are
// skipped, a missing slug is derived from the name, and the first record
// wins for a repeated id or slug.
func ReadChannels(path string) ([]model.Channel, error) {
	data, err := readExport(path)
	if err != nil {
		return nil, err
	}

	log := logging.WithComponent("importer")
	var channels []model.Channel
	seen := make(map[string]struct{})
	skipped := 0

	err = eachRecord(data, func(key string, rec gjson.Result) {
		c, ok := channelFrom(key, rec)
		if !ok {
			skipped++
			return
		}
		if _, dup := seen["id:"+c.ID]; dup {
			skipped++
			return
		}
		if _, dup := seen["slug:"+c.Slug]; dup {
			skipped++
			return
		}
		seen["id:"+c.ID] = struct{}{}
		seen["slug:"+c.Slug] = struct{}{}
		if !slugs.Valid(c.Slug) {
			log.Debug("non-canonical channel slug", "slug", c.Slug)
		}
		channels = append(channels, c)
	})
	if err != nil {
		return nil, err
	}

	log.Debug("read channels", "path", path, "channels", len(channels), "skipped", skipped)
	return channels, nil
}

// ReadTracks reads a track export. Tracks without a title or url are
// skipped and the first record wins for a repeated id.
func ReadTracks(path string) ([]model.Track, error) {
	data, err := readExport(path)
	if err != nil {
		return nil, err
	}

	log := logging.WithComponent("importer")
	var tracks []model.Track
	seen := make(map[string]struct{})
	skipped := 0

	err = eachRecord(data, func(key string, rec gjson.Result) {
		t, ok := trackFrom(key, rec)
		if !ok {
			skipped++
			return
		}
		if _, dup := seen[t.ID]; dup {
			skipped++
			return
		}
		seen[t.ID] = struct{}{}
		tracks = append(tracks, t)
	})
	if err != nil {
		return nil, err
	}

	log.Debug("read tracks", "path", path, "tracks", len(tracks), "skipped", skipped)
	return tracks, nil
}

// Link fills in missing track channel slugs from their channel ids and
// drops tracks that still have no channel slug.
func Link(channels []model.Channel, tracks []model.Track) []model.Track {
	byID := make(map[string]string, len(channels)*2)
	for _, c := range channels {
		byID[c.ID] = c.Slug
		if c.FirebaseID != "" {
			byID[c.FirebaseID] = c.Slug
		}
	}

	out := make([]model.Track, 0, len(tracks))
	for _, t := range tracks {
		if t.Slug == "" {
			t.Slug = byID[t.ChannelID]
		}
		if t.Slug == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}

func channelFrom(key string, rec gjson.Result) (model.Channel, bool) {
	c := model.Channel{
		Slug:        first(rec, "slug"),
		Name:        first(rec, "name", "title"),
		Description: first(rec, "description", "body"),
		Image:       first(rec, "image"),
		URL:         first(rec, "url", "link"),
		TrackCount:  int(rec.Get("track_count").Int()),
		FirebaseID:  first(rec, "firebase_id", "firebase"),
		CreatedAt:   timestamp(rec, "created_at", "created"),
		UpdatedAt:   timestamp(rec, "updated_at", "updated"),
		Source:      first(rec, "source"),
	}
	if c.Name == "" {
		c.Name = c.Slug
	}
	if c.Slug == "" {
		c.Slug = slugs.ChannelSlug(c.Name)
	}
	if c.Slug == "" {
		return c, false
	}
	if c.FirebaseID == "" && key != "" {
		c.FirebaseID = key
	}
	c.ID = first(rec, "id")
	if c.ID == "" {
		c.ID = c.FirebaseID
	}
	if c.ID == "" {
		c.ID = c.Slug
	}
	if c.Source == "" {
		c.Source = model.SourceV1
	}
	c.Metadata = metadataFrom(rec, c.Description)
	return c, true
}

func trackFrom(key string, rec gjson.Result) (model.Track, bool) {
	t := model.Track{
		FirebaseID:  first(rec, "firebase_id"),
		ChannelID:   first(rec, "channel_id", "channel"),
		Slug:        first(rec, "slug", "channel_slug", "channelSlug"),
		Title:       first(rec, "title"),
		Description: first(rec, "description", "body"),
		URL:         first(rec, "url"),
		DiscogsURL:  first(rec, "discogs_url", "discogsUrl"),
		CreatedAt:   timestamp(rec, "created_at", "created"),
		UpdatedAt:   timestamp(rec, "updated_at", "updated"),
		Source:      first(rec, "source"),
	}
	if t.Title == "" || t.URL == "" {
		return t, false
	}
	if t.FirebaseID == "" && key != "" {
		t.FirebaseID = key
	}
	t.ID = first(rec, "id")
	if t.ID == "" {
		t.ID = t.FirebaseID
	}
	if t.ID == "" {
		return t, false
	}
	if t.Source == "" {
		t.Source = model.SourceV1
	}
	t.Metadata = metadataFrom(rec, t.Description)
	return t, true
}

// metadataFrom extracts hashtags and mentions from the description and adds
// any explicit "tags" array in the record.
func metadataFrom(rec gjson.Result, description string) model.Metadata {
	m := model.ExtractMetadata(description)
	for _, v := range rec.Get("tags").Array() {
		tag := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(v.String()), "#"))
		if tag == "" || slices.Contains(m.Tags, tag) {
			continue
		}
		m.Tags = append(m.Tags, tag)
	}
	return m
}

// timestamp reads a date field. Firebase exports store milliseconds since
// the epoch; those are converted to RFC 3339. Strings pass through.
func timestamp(rec gjson.Result, paths ...string) string {
	for _, p := range paths {
		v := rec.Get(p)
		switch v.Type {
		case gjson.Number:
			return time.UnixMilli(v.Int()).UTC().Format(time.RFC3339)
		case gjson.String:
			if s := strings.TrimSpace(v.String()); s != "" {
				return s
			}
		}
	}
	return ""
}
