// Package slugs provides the slug helpers r4 uses for channel identifiers.
//
// Slugs that come from radio4000 exports are kept verbatim; only channels
// missing one get a slug derived from their name, built on gosimple/slug.
package slugs

import (
	"strings"
	"unicode"

	goslug "github.com/gosimple/slug"
)

// ChannelSlug derives a URL-safe slug from a channel name.
func ChannelSlug(name string) string {
	slugged := goslug.Make(name)
	if slugged != "" {
		return slugged
	}

	// goslug drops scripts it cannot transliterate; keep letters and digits
	// of those instead of returning nothing.
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		case !prevDash && b.Len() > 0:
			b.WriteRune('-')
			prevDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Valid reports whether s is already in canonical slug form.
func Valid(s string) bool {
	return goslug.IsSlug(s)
}
