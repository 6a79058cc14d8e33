package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/radio4000/r4/internal/model"
	"github.com/radio4000/r4/internal/ui"
)

var channelListLimit int

var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "List and inspect channels",
}

var channelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List channels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := resolveLimit(channelListLimit)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		start := time.Now()
		s, err := openStore()
		if err != nil {
			return handleStoreError(err)
		}
		defer s.Close()

		channels, err := s.Channels(commandContext(cmd))
		if err != nil {
			return handleStoreError(err)
		}
		channels = truncate(channels, limit)

		if isStructuredOutput() {
			outputSuccess(channels, &Meta{Count: len(channels), QueryTimeMs: time.Since(start).Milliseconds()})
			return nil
		}
		printChannels(ui.NewDisplayContext(), channels)
		return nil
	},
}

var channelViewCmd = &cobra.Command{
	Use:   "view <slug...>",
	Short: "Show channel details",
	Long: `Shows one or more channels by slug. A leading @ is ignored.

Examples:
  r4 channel view oskar
  r4 channel view @oskar @ko002 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return handleStoreError(err)
		}
		defer s.Close()

		ctx := commandContext(cmd)
		channels := make([]model.Channel, 0, len(args))
		for _, arg := range args {
			c, err := s.Channel(ctx, trimMention(arg))
			if err != nil {
				return handleStoreError(err)
			}
			channels = append(channels, c)
		}

		if isStructuredOutput() {
			outputSuccess(channels, &Meta{Count: len(channels)})
			return nil
		}

		d := ui.NewDisplayContext()
		for i, c := range channels {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			printChannel(d, c)
		}
		return nil
	},
}

func trimMention(slug string) string {
	if len(slug) > 1 && slug[0] == '@' {
		return slug[1:]
	}
	return slug
}

func init() {
	channelListCmd.Flags().IntVarP(&channelListLimit, "limit", "n", 0, "Maximum channels (0 uses default_limit)")
	channelCmd.AddCommand(channelListCmd)
	channelCmd.AddCommand(channelViewCmd)
	rootCmd.AddCommand(channelCmd)
}
