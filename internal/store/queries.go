package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/radio4000/r4/internal/model"
	"github.com/radio4000/r4/internal/sqlutil"
)

const channelColumns = `id, slug, name, description, image, url, track_count, firebase_id,
	created_at, updated_at, source, tags, mentions`

const trackColumns = `id, firebase_id, channel_id, slug, title, description, url, discogs_url,
	created_at, updated_at, source, tags, mentions`

// DataSet is everything in the store, in insertion order.
type DataSet struct {
	Channels []model.Channel
	Tracks   []model.Track
}

// Counts holds row counts per table.
type Counts struct {
	Channels int `json:"channels" yaml:"channels"`
	Tracks   int `json:"tracks" yaml:"tracks"`
}

// Load reads all channels and tracks. The two tables are read concurrently.
func (s *Store) Load(ctx context.Context) (*DataSet, error) {
	start := time.Now()
	var data DataSet

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		channels, err := s.Channels(ctx)
		data.Channels = channels
		return err
	})
	g.Go(func() error {
		tracks, err := s.Tracks(ctx)
		data.Tracks = tracks
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug("loaded data set",
		"channels", len(data.Channels),
		"tracks", len(data.Tracks),
		"elapsed", time.Since(start))
	return &data, nil
}

// Channels returns all channels.
func (s *Store) Channels(ctx context.Context) ([]model.Channel, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+channelColumns+" FROM channels ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("query channels: %w", err)
	}
	return sqlutil.ScanRows(rows, scanChannel[*sql.Rows])
}

// Tracks returns all tracks, or only those belonging to the given channel
// slugs when any are passed.
func (s *Store) Tracks(ctx context.Context, channelSlugs ...string) ([]model.Track, error) {
	query := "SELECT " + trackColumns + " FROM tracks"
	var args []any
	if len(channelSlugs) > 0 {
		var placeholders string
		placeholders, args = sqlutil.InClauseArgs(channelSlugs)
		query += " WHERE slug IN (" + placeholders + ")"
	}
	query += " ORDER BY rowid"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tracks: %w", err)
	}
	return sqlutil.ScanRows(rows, scanTrack[*sql.Rows])
}

// Channel returns the channel with the given slug.
func (s *Store) Channel(ctx context.Context, slug string) (model.Channel, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+channelColumns+" FROM channels WHERE slug = ?", slug)
	c, err := scanChannel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Channel{}, fmt.Errorf("%w: %s", ErrChannelNotFound, slug)
	}
	return c, err
}

// Track returns the track with the given id.
func (s *Store) Track(ctx context.Context, id string) (model.Track, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+trackColumns+" FROM tracks WHERE id = ?", id)
	t, err := scanTrack(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Track{}, fmt.Errorf("%w: %s", ErrTrackNotFound, id)
	}
	return t, err
}

// Counts returns the number of stored channels and tracks.
func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	err := s.db.QueryRowContext(ctx,
		"SELECT (SELECT COUNT(*) FROM channels), (SELECT COUNT(*) FROM tracks)").
		Scan(&c.Channels, &c.Tracks)
	return c, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanChannel[S scanner](row S) (model.Channel, error) {
	var c model.Channel
	var tags, mentions string
	if err := row.Scan(&c.ID, &c.Slug, &c.Name, &c.Description, &c.Image, &c.URL, &c.TrackCount,
		&c.FirebaseID, &c.CreatedAt, &c.UpdatedAt, &c.Source, &tags, &mentions); err != nil {
		return c, err
	}
	var err error
	if c.Metadata.Tags, err = decodeList(tags); err != nil {
		return c, err
	}
	c.Metadata.Mentions, err = decodeList(mentions)
	return c, err
}

func scanTrack[S scanner](row S) (model.Track, error) {
	var t model.Track
	var tags, mentions string
	if err := row.Scan(&t.ID, &t.FirebaseID, &t.ChannelID, &t.Slug, &t.Title, &t.Description, &t.URL,
		&t.DiscogsURL, &t.CreatedAt, &t.UpdatedAt, &t.Source, &tags, &mentions); err != nil {
		return t, err
	}
	var err error
	if t.Metadata.Tags, err = decodeList(tags); err != nil {
		return t, err
	}
	t.Metadata.Mentions, err = decodeList(mentions)
	return t, err
}
