package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/radio4000/r4/internal/model"
	"github.com/radio4000/r4/internal/ui"
)

var (
	tagsChannels []string
	tagsLimit    int
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List hashtags by how many tracks use them",
	Long: `Counts the hashtags found in track descriptions, most used first.

Examples:
  r4 tags --limit 20
  r4 tags --channel oskar`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, err := resolveLimit(tagsLimit)
		if err != nil {
			return handleError(ErrInvalidInput, err, "")
		}

		s, err := openStore()
		if err != nil {
			return handleStoreError(err)
		}
		defer s.Close()

		tracks, err := s.Tracks(commandContext(cmd), tagsChannels...)
		if err != nil {
			return handleStoreError(err)
		}
		counts := truncate(model.CountTags(tracks), limit)

		if isStructuredOutput() {
			outputSuccess(counts, &Meta{Count: len(counts)})
			return nil
		}

		if len(counts) == 0 {
			fmt.Fprintln(stdout, ui.Hint("No tags found."))
			return nil
		}
		table := ui.NewTable(2)
		table.AlignRight(1)
		for _, tc := range counts {
			table.AddRow("#"+tc.Tag, ui.Accent.Render(strconv.Itoa(tc.Count)))
		}
		fmt.Fprint(stdout, table.String())
		return nil
	},
}

func init() {
	tagsCmd.Flags().StringSliceVar(&tagsChannels, "channel", nil, "Only count tracks from these channel slugs")
	tagsCmd.Flags().IntVarP(&tagsLimit, "limit", "n", 0, "Maximum tags (0 uses default_limit)")
	rootCmd.AddCommand(tagsCmd)
}
