// Package testutil runs the built r4 binary against throwaway data for
// integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnv is an isolated config file, database and export directory.
type TestEnv struct {
	t          *testing.T
	Dir        string
	ConfigPath string
	DBPath     string
}

// NewTestEnv creates an empty environment under t.TempDir().
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	dir := t.TempDir()
	return &TestEnv{
		t:          t,
		Dir:        dir,
		ConfigPath: filepath.Join(dir, "config.toml"),
		DBPath:     filepath.Join(dir, "data", "r4.db"),
	}
}

// WithFile writes a file relative to the environment directory and returns
// its absolute path.
func (e *TestEnv) WithFile(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// AssertDatabaseExists fails the test if the database file was not created.
func (e *TestEnv) AssertDatabaseExists() {
	e.t.Helper()
	if _, err := os.Stat(e.DBPath); err != nil {
		e.t.Fatalf("expected database at %s: %v", e.DBPath, err)
	}
}
