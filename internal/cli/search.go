package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/radio4000/r4/internal/model"
	"github.com/radio4000/r4/internal/store"
	"github.com/radio4000/r4/internal/ui"
)

// searchTarget selects which record kinds a search ranks.
type searchTarget string

const (
	targetTracks   searchTarget = "tracks"
	targetChannels searchTarget = "channels"
	targetAll      searchTarget = "all"
)

func parseTarget(raw string) (searchTarget, error) {
	switch t := searchTarget(strings.ToLower(strings.TrimSpace(raw))); t {
	case "":
		return targetTracks, nil
	case targetTracks, targetChannels, targetAll:
		return t, nil
	default:
		return "", fmt.Errorf("unknown target %q", raw)
	}
}

func (t searchTarget) channels() bool { return t == targetChannels || t == targetAll }
func (t searchTarget) tracks() bool { return t == targetTracks || t == targetAll }

var (
	searchTargetFlag string
	searchLimit      int
)

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Fuzzy search tracks and channels",
	Long: `Ranks local records against a fuzzy query.

Every query character must appear in the record, in order, ignoring case.
Prefix and exact substring hits rank first, then tighter subsequences.

Tracks are matched on title, description and channel slug. Channels are
matched on name and slug.

Examples:
  r4 search night drive
  r4 search dub --target all --limit 10
  r4 search ambient --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	target, err := parseTarget(searchTargetFlag)
	if err != nil {
		return handleError(ErrInvalidInput, err, "Use --target tracks, channels or all")
	}
	limit, err := resolveLimit(searchLimit)
	if err != nil {
		return handleError(ErrInvalidInput, err, "")
	}

	start := time.Now()
	data, err := loadDataSet(commandContext(cmd))
	if err != nil {
		return handleStoreError(err)
	}

	result := searchDataSet(data, query, target, limit)
	elapsed := time.Since(start).Milliseconds()

	if isStructuredOutput() {
		outputSuccess(result, &Meta{Count: result.Count(), QueryTimeMs: elapsed})
		return nil
	}
	printSearchResult(ui.NewDisplayContext(), result, target)
	return nil
}

// searchDataSet ranks the requested record kinds with one matcher each.
func searchDataSet(data *store.DataSet, query string, target searchTarget, limit int) SearchResult {
	result := SearchResult{
		Query:    query,
		Target:   string(target),
		Channels: []ChannelMatch{},
		Tracks:   []TrackMatch{},
	}
	if target.channels() {
		result.Channels = rank(data.Channels, query, limit, channelMatch)
	}
	if target.tracks() {
		result.Tracks = rank(data.Tracks, query, limit, trackMatch)
	}
	return result
}

func printSearchResult(d *ui.DisplayContext, result SearchResult, target searchTarget) {
	if target.channels() {
		channels := make([]model.Channel, len(result.Channels))
		for i, m := range result.Channels {
			channels[i] = m.Channel
		}
		printChannels(d, channels)
	}
	if target.tracks() {
		tracks := make([]model.Track, len(result.Tracks))
		for i, m := range result.Tracks {
			tracks[i] = m.Track
		}
		printTracks(d, tracks)
	}
}

func init() {
	searchCmd.Flags().StringVarP(&searchTargetFlag, "target", "t", string(targetTracks), "Records to search: tracks, channels or all")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Maximum results per record kind (0 uses default_limit)")
	rootCmd.AddCommand(searchCmd)
}
