package models

import (
	"regexp"
	"strings"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9 -]`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
	hyphenRun      = regexp.MustCompile(`-+`)
)

// Slugify derives a URL-safe slug from a blog title: lowercase, strip
// everything outside [a-z0-9 -], turn whitespace runs into hyphens,
// collapse hyphen runs, and trim leading/trailing hyphens.
// Example: "Go: The Complete Guide" -> "go-the-complete-guide".
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugDisallowed.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

const wordsPerMinute = 200

// ReadTime estimates reading minutes for blog content, rounding up and
// never reporting less than one minute.
func ReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
