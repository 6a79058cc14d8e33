package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/radio4000/r4/internal/config"
)

const testChannelsJSON = `[
	{"id": "c1", "slug": "ko002", "name": "Ko002", "description": "#synth radio by @oskar"},
	{"id": "c2", "title": "Detecteve Radio", "body": "no slug here"}
]`

const testTracksJSON = `{
	"-Kabc": {"title": "Night Drive", "url": "https://youtu.be/a", "channel": "c1", "body": "late #Synth #drive"},
	"-Kdef": {"title": "Nightmare", "url": "https://youtu.be/b", "slug": "ko002", "tags": ["#Dark", "drive"]},
	"-Kpqr": {"title": "Daylight", "url": "https://youtu.be/e", "channel": "c2", "body": "#dub"},
	"-Kmno": {"title": "Orphan", "url": "https://youtu.be/d", "channel": "unknown"}
}`

// setupCLITest points the CLI at a fresh temp directory with JSON output
// and restores all global state afterwards.
func setupCLITest(t *testing.T) string {
	t.Helper()

	prevStdout := stdout
	prevStdin := stdin
	prevJSON := jsonOutput
	prevFormat := outputFormat
	prevDB := resolvedDBPath
	prevCfg := cfg
	prevConfigPath := configPath
	t.Cleanup(func() {
		stdout = prevStdout
		stdin = prevStdin
		jsonOutput = prevJSON
		outputFormat = prevFormat
		resolvedDBPath = prevDB
		cfg = prevCfg
		configPath = prevConfigPath
	})

	dir := t.TempDir()
	resolvedDBPath = filepath.Join(dir, "r4.db")
	configPath = filepath.Join(dir, "config.toml")
	cfg = &config.Config{}
	jsonOutput = true
	outputFormat = formatText
	return dir
}

// captureOutput runs fn with command output redirected to a buffer.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	defer func() { stdout = prev }()
	fn()
	return buf.String()
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// importFixture imports the test exports into the temp database.
func importFixture(t *testing.T, dir string) {
	t.Helper()
	channels := writeTestFile(t, dir, "channels.json", testChannelsJSON)
	tracks := writeTestFile(t, dir, "tracks.json", testTracksJSON)
	captureOutput(t, func() {
		if err := importCmd.RunE(importCmd, []string{channels, tracks}); err != nil {
			t.Fatalf("import: %v", err)
		}
	})
}

type envelope[T any] struct {
	OK       bool       `json:"ok"`
	Data     T          `json:"data"`
	Error    *ErrorInfo `json:"error"`
	Warnings []Warning  `json:"warnings"`
	Meta     *Meta      `json:"meta"`
}

func decodeEnvelope[T any](t *testing.T, out string) envelope[T] {
	t.Helper()
	var resp envelope[T]
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("expected JSON output, got parse error: %v; out=%s", err, out)
	}
	return resp
}
