package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/radio4000/r4/internal/model"
	"github.com/radio4000/r4/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show data set statistics",
	Long: `Displays counts for the local data set.

Examples:
  r4 stats
  r4 stats --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		data, err := loadDataSet(commandContext(cmd))
		if err != nil {
			return handleStoreError(err)
		}

		stats := model.ComputeStats(data.Channels, data.Tracks)
		elapsed := time.Since(start).Milliseconds()

		if isStructuredOutput() {
			outputSuccess(stats, &Meta{QueryTimeMs: elapsed})
			return nil
		}

		fmt.Fprintln(stdout, ui.Header("radio4000 statistics"))
		table := ui.NewTable(2)
		table.AlignRight(1)
		table.AddRow(ui.Muted.Render("Channels:"), ui.Accent.Render(fmt.Sprintf("%d", stats.Channels)))
		table.AddRow(ui.Muted.Render("With tracks:"), ui.Accent.Render(fmt.Sprintf("%d", stats.ChannelsWithTracks)))
		table.AddRow(ui.Muted.Render("Tracks:"), ui.Accent.Render(fmt.Sprintf("%d", stats.Tracks)))
		table.AddRow(ui.Muted.Render("Per channel:"), ui.Accent.Render(fmt.Sprintf("%.1f", stats.TracksPerChannel)))
		fmt.Fprint(stdout, table.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
