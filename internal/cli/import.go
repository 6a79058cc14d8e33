package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/radio4000/r4/internal/importer"
	"github.com/radio4000/r4/internal/store"
	"github.com/radio4000/r4/internal/ui"
)

var importCmd = &cobra.Command{
	Use:   "import <channels-file> <tracks-file>",
	Short: "Replace local data with a radio4000 export",
	Long: `Reads channel and track exports and replaces the local data set.

Files may be plain JSON (.json), gzip (.json.gz), zstd (.json.zst) or lz4
(.json.lz4). Each file holds a JSON array of records or an object keyed by
record id.
Tracks without a title or url, and tracks whose channel is unknown, are
skipped.

Examples:
  r4 import channels.json tracks.json
  r4 import channels.json.zst tracks.json.zst --db ./r4.db`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	start := time.Now()

	var spinner *ui.Spinner
	if !isStructuredOutput() {
		spinner = ui.NewSpinner("Importing")
		spinner.Start()
	}
	result, err := importFiles(cmd, args[0], args[1])
	if spinner != nil {
		spinner.Stop()
	}
	if result == nil {
		return err
	}

	var warnings []Warning
	if result.UnlinkedTracks > 0 {
		warnings = append(warnings, Warning{
			Code:    WarnRecordsSkipped,
			Message: fmt.Sprintf("%d tracks have no known channel and were skipped", result.UnlinkedTracks),
		})
	}

	if isStructuredOutput() {
		outputSuccessWithWarnings(result, warnings, &Meta{
			Count:       result.Channels + result.Tracks,
			QueryTimeMs: time.Since(start).Milliseconds(),
		})
		return nil
	}

	fmt.Fprintln(stdout, ui.Successf("Imported %s and %s into %s",
		ui.Plural(result.Channels, "channel", "channels"),
		ui.Plural(result.Tracks, "track", "tracks"),
		result.Database))
	for _, w := range warnings {
		fmt.Fprintln(stdout, ui.Warning(w.Message))
	}
	return nil
}

// importFiles reads both exports and writes them in one transaction.
// Failures are already reported through handleError, so a nil result with
// a nil error means the error envelope was written.
func importFiles(cmd *cobra.Command, channelsPath, tracksPath string) (*ImportResult, error) {
	channels, err := importer.ReadChannels(channelsPath)
	if err != nil {
		return nil, handleImportError(err)
	}
	tracks, err := importer.ReadTracks(tracksPath)
	if err != nil {
		return nil, handleImportError(err)
	}
	linked := importer.Link(channels, tracks)

	s, err := store.Open(resolvedDBPath)
	if err != nil {
		return nil, handleStoreError(err)
	}
	defer s.Close()

	ctx := commandContext(cmd)
	if err := s.ReplaceAll(ctx, channels, linked); err != nil {
		return nil, handleStoreError(err)
	}
	counts, err := s.Counts(ctx)
	if err != nil {
		return nil, handleStoreError(err)
	}

	return &ImportResult{
		Database:       resolvedDBPath,
		Channels:       counts.Channels,
		Tracks:         counts.Tracks,
		UnlinkedTracks: len(tracks) - len(linked),
	}, nil
}

func handleImportError(err error) error {
	if errors.Is(err, importer.ErrUnsupportedFormat) {
		return handleError(ErrUnsupportedFormat, err, "Use a .json, .json.gz, .json.zst or .json.lz4 export")
	}
	return handleError(ErrFileReadError, err, "")
}

func init() {
	rootCmd.AddCommand(importCmd)
}
