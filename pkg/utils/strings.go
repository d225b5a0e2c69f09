package utils

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars  = regexp.MustCompile("[^a-z0-9-]")
	repeatHyphens = regexp.MustCompile("-+")
)

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = repeatHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
