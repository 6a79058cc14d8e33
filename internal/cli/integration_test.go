//go:build integration

package cli_test

import (
	"testing"

	"github.com/radio4000/r4/internal/testutil"
)

const integrationChannels = `[
	{"id": "c1", "slug": "ko002", "name": "Ko002", "description": "#synth radio"},
	{"id": "c2", "slug": "oskar", "name": "Oskar"}
]`

const integrationTracks = `[
	{"id": "t1", "title": "Night Drive", "url": "https://youtu.be/a", "channel_id": "c1", "description": "#synth"},
	{"id": "t2", "title": "Nightmare", "url": "https://youtu.be/b", "channel_id": "c1"},
	{"id": "t3", "title": "Daylight", "url": "https://youtu.be/c", "channel_id": "c2", "description": "#dub"},
	{"id": "t4", "title": "Lost Signal", "url": "https://youtu.be/d", "channel_id": "c9"}
]`

type trackMatch struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Score int64  `json:"score"`
}

func importIntegrationFixture(t *testing.T) *testutil.TestEnv {
	t.Helper()
	env := testutil.NewTestEnv(t)
	channels := env.WithFile("exports/channels.json", integrationChannels)
	tracks := env.WithFile("exports/tracks.json", integrationTracks)

	result := env.RunCLI("import", channels, tracks).MustSucceed(t)
	result.AssertHasWarning(t, "RECORDS_SKIPPED")
	env.AssertDatabaseExists()
	return env
}

// TestIntegration_ImportAndSearch imports an export and searches it.
func TestIntegration_ImportAndSearch(t *testing.T) {
	env := importIntegrationFixture(t)

	result := env.RunCLI("search", "night")
	result.MustSucceed(t)

	var data struct {
		Tracks []trackMatch `json:"tracks"`
	}
	result.DecodeData(t, &data)
	if len(data.Tracks) != 2 {
		t.Fatalf("expected 2 tracks for 'night', got %+v", data.Tracks)
	}
	for _, tr := range data.Tracks {
		if tr.ID == "t3" {
			t.Fatalf("Daylight should not match 'night'")
		}
	}
}

// TestIntegration_BrowseAnswersEveryLine feeds several queries to browse.
func TestIntegration_BrowseAnswersEveryLine(t *testing.T) {
	env := importIntegrationFixture(t)

	result := env.RunCLIWithStdin("night\ndub\n\n", "browse")
	result.MustSucceed(t)
	if len(result.Responses) != 3 {
		t.Fatalf("expected 3 responses, got %d\nRaw output: %s", len(result.Responses), result.RawJSON)
	}
	if got := result.Responses[2].Meta.Count; got != 3 {
		t.Fatalf("empty query should list all 3 tracks, got %d", got)
	}
}

// TestIntegration_Errors checks stable error codes.
func TestIntegration_Errors(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.RunCLI("stats").MustFail(t, "DATABASE_MISSING")

	env = importIntegrationFixture(t)
	env.RunCLI("channel", "view", "nobody").
		MustFail(t, "CHANNEL_NOT_FOUND").
		MustFailWithMessage(t, "r4 channel list")
	env.RunCLI("search", "x", "--target", "users").
		MustFail(t, "INVALID_INPUT").
		MustFailWithMessage(t, "users")
}
