package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/radio4000/r4/internal/model"
	"github.com/radio4000/r4/internal/ui"
)

var (
	filterTag     string
	filterChannel string
	filterLimit   int
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "List tracks by tag or channel",
	Long: `Lists tracks that carry a hashtag and/or belong to a channel.

Tags compare case-insensitively and a leading # is optional. Channel slugs
must match exactly.

Examples:
  r4 filter --tag dub
  r4 filter --channel oskar --tag '#jazz'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := model.TrackFilter{
			Tag:     strings.TrimSpace(filterTag),
			Channel: strings.TrimSpace(filterChannel),
		}
		if f.Tag == "" && f.Channel == "" {
			return handleErrorMsg(ErrMissingArgument, "nothing to filter on", "Pass --tag and/or --channel")
		}
		limit, err := resolveLimit(filterLimit)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		start := time.Now()
		s, err := openStore()
		if err != nil {
			return handleStoreError(err)
		}
		defer s.Close()

		var slugs []string
		if f.Channel != "" {
			slugs = []string{f.Channel}
		}
		tracks, err := s.Tracks(commandContext(cmd), slugs...)
		if err != nil {
			return handleStoreError(err)
		}
		tracks = truncate(model.FilterTracks(tracks, f), limit)

		if isStructuredOutput() {
			outputSuccess(tracks, &Meta{Count: len(tracks), QueryTimeMs: time.Since(start).Milliseconds()})
			return nil
		}
		printTracks(ui.NewDisplayContext(), tracks)
		return nil
	},
}

func init() {
	filterCmd.Flags().StringVar(&filterTag, "tag", "", "Hashtag to match (case-insensitive)")
	filterCmd.Flags().StringVar(&filterChannel, "channel", "", "Channel slug to match")
	filterCmd.Flags().IntVarP(&filterLimit, "limit", "n", 0, "Maximum tracks (0 uses default_limit)")
	rootCmd.AddCommand(filterCmd)
}
