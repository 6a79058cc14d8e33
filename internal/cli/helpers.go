package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/radio4000/r4/internal/store"
)

var errNoDatabase = errors.New("no local data")

const importSuggestion = "Run 'r4 import <channels.json> <tracks.json>' to create it"

// openStore opens the resolved database for reading. It does not create
// a missing file.
func openStore() (*store.Store, error) {
	if _, err := os.Stat(resolvedDBPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w at %s", errNoDatabase, resolvedDBPath)
	}
	return store.Open(resolvedDBPath)
}

// handleStoreError maps store failures to error codes.
func handleStoreError(err error) error {
	switch {
	case errors.Is(err, errNoDatabase):
		return handleError(ErrDatabaseMissing, err, importSuggestion)
	case errors.Is(err, store.ErrChannelNotFound):
		return handleError(ErrChannelNotFound, err, "Run 'r4 channel list' to see channel slugs")
	case errors.Is(err, store.ErrTrackNotFound):
		return handleError(ErrTrackNotFound, err, "Run 'r4 track list' to see track ids")
	default:
		return handleError(ErrDatabaseError, err, "")
	}
}

// loadDataSet opens the store and reads every channel and track.
func loadDataSet(ctx context.Context) (*store.DataSet, error) {
	s, err := openStore()
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Load(ctx)
}

// resolveLimit applies the configured default when no --limit was given.
func resolveLimit(flag int) (int, error) {
	if flag < 0 {
		return 0, fmt.Errorf("--limit must not be negative, got %d", flag)
	}
	if flag == 0 {
		return getConfig().DefaultLimit, nil
	}
	return flag, nil
}

// truncate caps a slice at limit; 0 means no cap.
func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
