package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/radio4000/r4/internal/model"
	"github.com/radio4000/r4/internal/ui"
)

var (
	trackListChannels []string
	trackListLimit    int
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "List and inspect tracks",
}

var trackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracks",
	Long: `Lists tracks in import order, optionally only from some channels.

Examples:
  r4 track list --channel oskar
  r4 track list --channel oskar,ko002 --limit 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := resolveLimit(trackListLimit)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		start := time.Now()
		s, err := openStore()
		if err != nil {
			return handleStoreError(err)
		}
		defer s.Close()

		slugs := make([]string, len(trackListChannels))
		for i, c := range trackListChannels {
			slugs[i] = trimMention(c)
		}
		tracks, err := s.Tracks(commandContext(cmd), slugs...)
		if err != nil {
			return handleStoreError(err)
		}
		tracks = truncate(tracks, limit)

		if isStructuredOutput() {
			outputSuccess(tracks, &Meta{Count: len(tracks), QueryTimeMs: time.Since(start).Milliseconds()})
			return nil
		}
		printTracks(ui.NewDisplayContext(), tracks)
		return nil
	},
}

var trackViewCmd = &cobra.Command{
	Use:   "view <id...>",
	Short: "Show track details",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleStoreError(err)
		}
		defer s.Close()

		ctx := commandContext(cmd)
		tracks := make([]model.Track, 0, len(args))
		for _, id := range args {
			t, err := s.Track(ctx, id)
			if err != nil {
				return handleStoreError(err)
			}
			tracks = append(tracks, t)
		}

		if isStructuredOutput() {
			outputSuccess(tracks, &Meta{Count: len(tracks)})
			return nil
		}
		for i, t := range tracks {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			printTrack(t)
		}
		return nil
	},
}

func init() {
	trackListCmd.Flags().StringSliceVar(&trackListChannels, "channel", nil, "Only list tracks from these channel slugs")
	trackListCmd.Flags().IntVarP(&trackListLimit, "limit", "n", 0, "Maximum tracks (0 uses default_limit)")
	trackCmd.AddCommand(trackListCmd)
	trackCmd.AddCommand(trackViewCmd)
	rootCmd.AddCommand(trackCmd)
}
