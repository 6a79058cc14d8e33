package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/radio4000/r4/internal/model"
)

// ReplaceAll swaps the whole data set in a single transaction. Records with
// an id (or channel slug) already written earlier in the same call are
// skipped, so the first occurrence wins. Channel track counts are
// recomputed from the stored tracks.
func (s *Store) ReplaceAll(ctx context.Context, channels []model.Channel, tracks []model.Track) error {
	start := time.Now()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"tracks", "channels"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	chStmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO channels
			(id, slug, name, description, image, url, track_count, firebase_id,
			 created_at, updated_at, source, tags, mentions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer chStmt.Close()

	for _, c := range channels {
		tags, mentions, err := encodeMetadata(c.Metadata)
		if err != nil {
			return err
		}
		if _, err := chStmt.ExecContext(ctx, c.ID, c.Slug, c.Name, c.Description, c.Image, c.URL,
			c.TrackCount, c.FirebaseID, c.CreatedAt, c.UpdatedAt, c.Source, tags, mentions); err != nil {
			return fmt.Errorf("insert channel %s: %w", c.Slug, err)
		}
	}

	trStmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO tracks
			(id, firebase_id, channel_id, slug, title, description, url, discogs_url,
			 created_at, updated_at, source, tags, mentions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer trStmt.Close()

	for _, t := range tracks {
		tags, mentions, err := encodeMetadata(t.Metadata)
		if err != nil {
			return err
		}
		if _, err := trStmt.ExecContext(ctx, t.ID, t.FirebaseID, t.ChannelID, t.Slug, t.Title, t.Description,
			t.URL, t.DiscogsURL, t.CreatedAt, t.UpdatedAt, t.Source, tags, mentions); err != nil {
			return fmt.Errorf("insert track %s: %w", t.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE channels SET track_count = (
			SELECT COUNT(*) FROM tracks WHERE tracks.slug = channels.slug
		)`); err != nil {
		return fmt.Errorf("update track counts: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.log.Debug("replaced data set",
		"channels", len(channels),
		"tracks", len(tracks),
		"elapsed", time.Since(start))
	return nil
}

func encodeMetadata(m model.Metadata) (string, string, error) {
	tags, err := encodeList(m.Tags)
	if err != nil {
		return "", "", err
	}
	mentions, err := encodeList(m.Mentions)
	if err != nil {
		return "", "", err
	}
	return tags, mentions, nil
}

func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encode list: %w", err)
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	out := []string{}
	if raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return out, nil
}
