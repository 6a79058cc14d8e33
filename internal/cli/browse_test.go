package cli

import (
	"encoding/json"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/radio4000/r4/internal/model"
)

func TestBrowserReusesMatcherAcrossQueries(t *testing.T) {
	tracks := []model.Track{
		{ID: "1", Title: "Night Drive", Slug: "a"},
		{ID: "2", Title: "Nightmare", Slug: "a"},
		{ID: "3", Title: "Daylight", Slug: "b"},
	}
	b := newBrowser(nil, tracks, targetTracks)

	titles := func(r SearchResult) []string {
		var out []string
		for _, m := range r.Tracks {
			out = append(out, m.Title)
		}
		slices.Sort(out)
		return out
	}

	if got := titles(b.query("night", 0)); !slices.Equal(got, []string{"Night Drive", "Nightmare"}) {
		t.Fatalf("night: %v", got)
	}
	if got := titles(b.query("light", 0)); !slices.Equal(got, []string{"Daylight"}) {
		t.Fatalf("light: %v", got)
	}

	all := b.query("", 0)
	if len(all.Tracks) != 3 || all.Tracks[0].ID != "1" || all.Tracks[2].ID != "3" {
		t.Fatalf("empty query should list everything in order: %+v", all.Tracks)
	}
	if got := b.query("", 2); len(got.Tracks) != 2 {
		t.Fatalf("limit not applied: %+v", got.Tracks)
	}
	if len(all.Channels) != 0 {
		t.Fatalf("channels searched for a tracks target: %+v", all.Channels)
	}
}

func TestBrowseCommandReadsQueriesFromStdin(t *testing.T) {
	dir := setupCLITest(t)
	importFixture(t, dir)

	prevTarget, prevLimit, prevTTY := browseTargetFlag, browseLimit, stdinIsTerminal
	t.Cleanup(func() {
		browseTargetFlag, browseLimit, stdinIsTerminal = prevTarget, prevLimit, prevTTY
	})
	browseTargetFlag, browseLimit = "all", 0
	stdinIsTerminal = func() bool { return false }
	stdin = strings.NewReader("night\nko002\n\n")

	out := captureOutput(t, func() {
		if err := browseCmd.RunE(browseCmd, nil); err != nil {
			t.Fatalf("browse: %v", err)
		}
	})

	dec := json.NewDecoder(strings.NewReader(out))
	var results []SearchResult
	for {
		var resp envelope[SearchResult]
		if err := dec.Decode(&resp); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v; out=%s", err, out)
		}
		results = append(results, resp.Data)
	}

	if len(results) != 3 {
		t.Fatalf("expected one response per line, got %d", len(results))
	}
	if results[0].Query != "night" || len(results[0].Tracks) != 2 {
		t.Fatalf("night: %+v", results[0])
	}
	if len(results[1].Channels) != 1 || results[1].Channels[0].Slug != "ko002" {
		t.Fatalf("ko002 channels: %+v", results[1].Channels)
	}
	if len(results[2].Channels) != 2 || len(results[2].Tracks) != 3 {
		t.Fatalf("empty query should list everything: %+v", results[2])
	}
}

func TestBrowseCommandAcceptsLongQueryLines(t *testing.T) {
	dir := setupCLITest(t)
	importFixture(t, dir)

	prevTarget, prevLimit, prevTTY := browseTargetFlag, browseLimit, stdinIsTerminal
	t.Cleanup(func() {
		browseTargetFlag, browseLimit, stdinIsTerminal = prevTarget, prevLimit, prevTTY
	})
	browseTargetFlag, browseLimit = "tracks", 0
	stdinIsTerminal = func() bool { return false }
	stdin = strings.NewReader(strings.Repeat("x", 200*1024) + "\nnight\n")

	out := captureOutput(t, func() {
		if err := browseCmd.RunE(browseCmd, nil); err != nil {
			t.Fatalf("browse: %v", err)
		}
	})

	dec := json.NewDecoder(strings.NewReader(out))
	var responses []envelope[SearchResult]
	for {
		var resp envelope[SearchResult]
		if err := dec.Decode(&resp); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		responses = append(responses, resp)
	}

	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	if !responses[0].OK || len(responses[0].Data.Tracks) != 0 {
		t.Fatalf("long query: ok=%v tracks=%d", responses[0].OK, len(responses[0].Data.Tracks))
	}
	if len(responses[1].Data.Tracks) != 2 {
		t.Fatalf("session should continue after a long line: %+v", responses[1].Data)
	}
}
