package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/radio4000/r4/internal/model"
	"github.com/radio4000/r4/internal/ui"
)

const itemIndent = "  "

// printTracks writes the track listing used by search, browse, filter and
// track list.
func printTracks(d *ui.DisplayContext, tracks []model.Track) {
	fmt.Fprintf(stdout, "Found %s:\n\n", ui.Plural(len(tracks), "track", "tracks"))
	for _, t := range tracks {
		fmt.Fprintf(stdout, "%s%s\n", itemIndent, ui.Bold.Render(d.Fit(t.DisplayTitle(), len(itemIndent))))
		if desc := model.PlainText(t.Description); desc != "" {
			fmt.Fprintf(stdout, "%s%s\n", itemIndent, d.Fit(desc, len(itemIndent)))
		}
		fmt.Fprintf(stdout, "%s%s\n", itemIndent, ui.Slug(t.Slug))
		if t.URL != "" {
			fmt.Fprintf(stdout, "%s%s\n", itemIndent, ui.Muted.Render(t.URL))
		}
		fmt.Fprintln(stdout)
	}
}

// printChannels writes the channel listing used by search and channel list.
func printChannels(d *ui.DisplayContext, channels []model.Channel) {
	fmt.Fprintf(stdout, "Found %s:\n\n", ui.Plural(len(channels), "channel", "channels"))
	if len(channels) == 0 {
		return
	}

	table := ui.NewTable(3)
	table.AlignRight(2)
	for _, c := range channels {
		table.AddRow(
			ui.Slug(c.Slug),
			d.Fit(c.DisplayName(), 40),
			ui.Muted.Render(ui.Plural(c.TrackCount, "track", "tracks")),
		)
	}
	for _, line := range strings.SplitAfter(table.String(), "\n") {
		if line != "" {
			fmt.Fprint(stdout, itemIndent+line)
		}
	}
	fmt.Fprintln(stdout)
}

// printChannel writes the detailed view of one channel.
func printChannel(d *ui.DisplayContext, c model.Channel) {
	fmt.Fprintln(stdout, ui.Header(c.DisplayName()))
	fmt.Fprintf(stdout, "%s  %s\n", ui.Muted.Render("slug:   "), ui.Slug(c.Slug))
	fmt.Fprintf(stdout, "%s  %s\n", ui.Muted.Render("tracks: "), ui.Accent.Render(strconv.Itoa(c.TrackCount)))
	if c.URL != "" {
		fmt.Fprintf(stdout, "%s  %s\n", ui.Muted.Render("url:    "), c.URL)
	}
	if c.CreatedAt != "" {
		fmt.Fprintf(stdout, "%s  %s\n", ui.Muted.Render("created:"), c.CreatedAt)
	}
	if len(c.Metadata.Tags) > 0 {
		fmt.Fprintf(stdout, "%s  %s\n", ui.Muted.Render("tags:   "), hashtags(c.Metadata.Tags))
	}

	if strings.TrimSpace(c.Description) == "" {
		return
	}
	if !d.IsTTY {
		fmt.Fprintf(stdout, "\n%s\n", c.Description)
		return
	}
	rendered, err := ui.RenderMarkdown(c.Description, d.TermWidth)
	if err != nil {
		fmt.Fprintf(stdout, "\n%s\n", c.Description)
		return
	}
	fmt.Fprint(stdout, rendered)
}

// printTrack writes the detailed view of one track.
func printTrack(t model.Track) {
	fmt.Fprintln(stdout, ui.Header(t.DisplayTitle()))
	fmt.Fprintf(stdout, "%s  %s\n", ui.Muted.Render("id:     "), t.ID)
	fmt.Fprintf(stdout, "%s  %s\n", ui.Muted.Render("channel:"), ui.Slug(t.Slug))
	if t.URL != "" {
		fmt.Fprintf(stdout, "%s  %s\n", ui.Muted.Render("url:    "), t.URL)
	}
	if t.DiscogsURL != "" {
		fmt.Fprintf(stdout, "%s  %s\n", ui.Muted.Render("discogs:"), t.DiscogsURL)
	}
	if t.CreatedAt != "" {
		fmt.Fprintf(stdout, "%s  %s\n", ui.Muted.Render("created:"), t.CreatedAt)
	}
	if len(t.Metadata.Tags) > 0 {
		fmt.Fprintf(stdout, "%s  %s\n", ui.Muted.Render("tags:   "), hashtags(t.Metadata.Tags))
	}
	if len(t.Metadata.Mentions) > 0 {
		mentions := make([]string, len(t.Metadata.Mentions))
		for i, m := range t.Metadata.Mentions {
			mentions[i] = ui.Slug(m)
		}
		fmt.Fprintf(stdout, "%s  %s\n", ui.Muted.Render("mentions:"), strings.Join(mentions, " "))
	}
	if t.Description != "" {
		fmt.Fprintf(stdout, "\n%s\n", t.Description)
	}
}

func hashtags(tags []string) string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = "#" + t
	}
	return strings.Join(out, " ")
}
