package news

import (
	"html"
	"regexp"
	"strings"
)

var (
	boldTagRe  = regexp.MustCompile(`</?b>`)
	anyTagRe   = regexp.MustCompile(`<[^>]+>`)
	whitespace = regexp.MustCompile(`\s+`)
)

// CleanText strips the <b> emphasis tags the search API wraps around
// matched terms, removes any remaining markup, decodes HTML entities
// and collapses whitespace. It never fails; empty input yields "".
func CleanText(raw string) string {
	if raw == "" {
		return ""
	}
	s := boldTagRe.ReplaceAllString(raw, "")
	s = anyTagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
