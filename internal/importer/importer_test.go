package importer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/radio4000/r4/internal/model"
)

const channelsJSON = `[
	{"id": "c1", "slug": "ko002", "name": "Ko002", "description": "#synth radio by @oskar"},
	{"id": "c2", "title": "Detecteve Radio", "body": "no slug here", "created": 1500000000000},
	{"id": "c3", "slug": "ko002", "name": "Duplicate slug"},
	{"id": "c4", "description": "no name or slug"}
]`

const tracksJSON = `{
	"-Kabc": {"title": "Night Drive", "url": "https://youtu.be/a", "channel": "c1", "body": "late #Synth #drive"},
	"-Kdef": {"title": "Nightmare", "url": "https://youtu.be/b", "slug": "ko002", "tags": ["#Dark", "drive"]},
	"-Kghi": {"title": "", "url": "https://youtu.be/c", "slug": "ko002"},
	"-Kjkl": {"title": "No url", "slug": "ko002"},
	"-Kmno": {"title": "Orphan", "url": "https://youtu.be/d", "channel": "unknown"}
}`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadChannels(t *testing.T) {
	channels, err := ReadChannels(writeFile(t, "channels.json", []byte(channelsJSON)))
	if err != nil {
		t.Fatalf("ReadChannels: %v", err)
	}
	if len(channels) != 2 {
		t.Fatalf("expected 2 channels, got %d: %+v", len(channels), channels)
	}

	ko := channels[0]
	if ko.Slug != "ko002" || ko.Source != model.SourceV1 {
		t.Errorf("unexpected first channel: %+v", ko)
	}
	if len(ko.Metadata.Tags) != 1 || ko.Metadata.Tags[0] != "synth" {
		t.Errorf("Tags = %v", ko.Metadata.Tags)
	}
	if len(ko.Metadata.Mentions) != 1 || ko.Metadata.Mentions[0] != "oskar" {
		t.Errorf("Mentions = %v", ko.Metadata.Mentions)
	}

	det := channels[1]
	if det.Slug != "detecteve-radio" || det.Name != "Detecteve Radio" || det.Description != "no slug here" {
		t.Errorf("field fallbacks not applied: %+v", det)
	}
	if det.CreatedAt != "2017-07-14T02:40:00Z" {
		t.Errorf("CreatedAt = %q", det.CreatedAt)
	}
}

func TestReadTracksKeyedExport(t *testing.T) {
	tracks, err := ReadTracks(writeFile(t, "tracks.json", []byte(tracksJSON)))
	if err != nil {
		t.Fatalf("ReadTracks: %v", err)
	}
	if len(tracks) != 3 {
		t.Fatalf("expected 3 valid tracks, got %d: %+v", len(tracks), tracks)
	}

	first := tracks[0]
	if first.ID != "-Kabc" || first.FirebaseID != "-Kabc" {
		t.Errorf("id should fall back to the object key: %+v", first)
	}
	if first.Description != "late #Synth #drive" {
		t.Errorf("Description = %q", first.Description)
	}
	if got := first.Metadata.Tags; len(got) != 2 || got[0] != "synth" || got[1] != "drive" {
		t.Errorf("Tags = %v", got)
	}

	if got := tracks[1].Metadata.Tags; len(got) != 2 || got[0] != "dark" || got[1] != "drive" {
		t.Errorf("explicit tags not merged: %v", got)
	}
}

func TestLink(t *testing.T) {
	channels, err := ReadChannels(writeFile(t, "channels.json", []byte(channelsJSON)))
	if err != nil {
		t.Fatalf("ReadChannels: %v", err)
	}
	tracks, err := ReadTracks(writeFile(t, "tracks.json", []byte(tracksJSON)))
	if err != nil {
		t.Fatalf("ReadTracks: %v", err)
	}

	linked := Link(channels, tracks)
	if len(linked) != 2 {
		t.Fatalf("expected orphan to be dropped, got %+v", linked)
	}
	for _, tr := range linked {
		if tr.Slug != "ko002" {
			t.Errorf("track %s slug = %q, want ko002", tr.ID, tr.Slug)
		}
	}
}

func TestReadCompressedExports(t *testing.T) {
	dir := t.TempDir()

	gzPath := filepath.Join(dir, "channels.json.gz")
	f, err := os.Create(gzPath)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(channelsJSON)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	zstPath := filepath.Join(dir, "tracks.json.zst")
	if err := os.WriteFile(zstPath, enc.EncodeAll([]byte(tracksJSON), nil), 0644); err != nil {
		t.Fatal(err)
	}
	enc.Close()

	channels, err := ReadChannels(gzPath)
	if err != nil {
		t.Fatalf("ReadChannels(gz): %v", err)
	}
	if len(channels) != 2 {
		t.Fatalf("gz: expected 2 channels, got %d", len(channels))
	}

	tracks, err := ReadTracks(zstPath)
	if err != nil {
		t.Fatalf("ReadTracks(zst): %v", err)
	}
	if len(tracks) != 3 {
		t.Fatalf("zst: expected 3 tracks, got %d", len(tracks))
	}
}

func TestReadLZ4Export(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channels.json.lz4")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := lz4.NewWriter(f)
	if _, err := zw.Write([]byte(channelsJSON)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	channels, err := ReadChannels(path)
	if err != nil {
		t.Fatalf("ReadChannels(lz4): %v", err)
	}
	if len(channels) != 2 {
		t.Fatalf("lz4: expected 2 channels, got %d", len(channels))
	}
}

func TestReadErrors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := ReadChannels(writeFile(t, "channels.csv", []byte("slug,name")))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ReadTracks(writeFile(t, "tracks.json", []byte("{not json")))
		if err == nil {
			t.Fatal("expected error for invalid JSON")
		}
	})

	t.Run("scalar top level", func(t *testing.T) {
		_, err := ReadTracks(writeFile(t, "tracks.json", []byte(`"just a string"`)))
		if err == nil {
			t.Fatal("expected error for scalar export")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadTracks(filepath.Join(t.TempDir(), "nope.json"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected not-exist error, got %v", err)
		}
	})
}
