package utils

import (
	"regexp"
	"strings"
)

var slugNonAlnum = regexp.MustCompile("[^a-z0-9]+")

// Slugify turns a title into a URL-safe slug. Forum threads use it,
// suffixed with a short id to keep same-title threads apart.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = slugNonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
