package cli

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/radio4000/r4/internal/model"
	"github.com/radio4000/r4/internal/search"
	"github.com/radio4000/r4/internal/ui"
)

// maxQueryBytes bounds a single browse query line.
const maxQueryBytes = 1 << 20

var (
	browseTargetFlag string
	browseLimit      int
)

// stdinIsTerminal reports whether browse should show a prompt.
var stdinIsTerminal = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Refine a fuzzy search line by line",
	Long: `Reads one query per line from stdin and prints the ranked matches after
each line. The records are loaded once and the same matcher is reused for
every query. An empty line lists everything.

Examples:
  r4 browse
  printf 'dub\nroots dub\n' | r4 browse --json`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

// browser holds one matcher per record kind over a fixed data set.
type browser struct {
	target   searchTarget
	channels []model.Channel
	tracks   []model.Track
	chMatch  *search.Matcher[model.Channel]
	trMatch  *search.Matcher[model.Track]
}

func newBrowser(channels []model.Channel, tracks []model.Track, target searchTarget) *browser {
	b := &browser{
		target:   target,
		channels: channels,
		tracks:   tracks,
		chMatch:  search.NewMatcher[model.Channel](),
		trMatch:  search.NewMatcher[model.Track](),
	}
	if target.channels() {
		b.chMatch.UpdateItems(channels)
	}
	if target.tracks() {
		b.trMatch.UpdateItems(tracks)
	}
	return b
}

// query re-ranks for pattern without rebuilding the collections.
func (b *browser) query(pattern string, limit int) SearchResult {
	result := SearchResult{
		Query:    pattern,
		Target:   string(b.target),
		Channels: []ChannelMatch{},
		Tracks:   []TrackMatch{},
	}
	if b.target.channels() {
		b.chMatch.SetPattern(pattern)
		result.Channels = collect(b.chMatch, b.channels, limit, channelMatch)
	}
	if b.target.tracks() {
		b.trMatch.SetPattern(pattern)
		result.Tracks = collect(b.trMatch, b.tracks, limit, trackMatch)
	}
	return result
}

func runBrowse(cmd *cobra.Command, args []string) error {
	target, err := parseTarget(browseTargetFlag)
	if err != nil {
		return handleError(ErrInvalidInput, err, "Use --target tracks, channels or all")
	}
	limit, err := resolveLimit(browseLimit)
	if err != nil {
		return handleError(ErrInvalidInput, err, "")
	}

	data, err := loadDataSet(commandContext(cmd))
	if err != nil {
		return handleStoreError(err)
	}

	b := newBrowser(data.Channels, data.Tracks, target)
	d := ui.NewDisplayContext()
	interactive := stdinIsTerminal() && !isStructuredOutput()

	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), maxQueryBytes)
	for {
		if interactive {
			fmt.Fprint(os.Stderr, ui.Accent.Render("> "))
		}
		if !scanner.Scan() {
			break
		}

		start := time.Now()
		result := b.query(scanner.Text(), limit)
		if isStructuredOutput() {
			outputSuccess(result, &Meta{Count: result.Count(), QueryTimeMs: time.Since(start).Milliseconds()})
			continue
		}
		printSearchResult(d, result, target)
	}
	if err := scanner.Err(); err != nil {
		return handleError(ErrInternal, fmt.Errorf("read queries: %w", err), "")
	}
	return nil
}

func init() {
	browseCmd.Flags().StringVarP(&browseTargetFlag, "target", "t", string(targetTracks), "Records to search: tracks, channels or all")
	browseCmd.Flags().IntVarP(&browseLimit, "limit", "n", 0, "Maximum results per record kind (0 uses default_limit)")
	rootCmd.AddCommand(browseCmd)
}
