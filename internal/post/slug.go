package post

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a title into a filename-safe slug: lowercase, every
// maximal run of characters outside [a-z0-9] collapsed to a single hyphen,
// leading and trailing hyphens stripped. An empty or all-symbol title yields
// the empty string.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
