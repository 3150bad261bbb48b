package scaffold

import (
	"regexp"
	"strings"
)

// nonWord matches runs of anything but letters, digits and underscore.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// Slugify lowercases title and collapses every run of non-word characters
// into a single hyphen, trimming hyphens from both ends.
//
//	Slugify("Hello World")              // "hello-world"
//	Slugify("  Go 1.22: What's new?  ") // "go-1-22-what-s-new"
func Slugify(title string) string {
	s := nonWord.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}
