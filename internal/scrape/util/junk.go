package util

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Known chrome strings that show up as anchor text on every ATS platform.
var junkExact = map[string]bool{
	"skip to content":                      true,
	"skip branding":                        true,
	"create alert":                         true,
	"sign in":                              true,
	"home":                                 true,
	"reset":                                true,
	"title":                                true,
	"location":                             true,
	"department":                           true,
	"view all jobs":                        true,
	"see open positions":                   true,
	"see open open positions positions":    true,
}

var navWordRe = regexp.MustCompile(`^(about|careers|locations|faq|privacy|terms|contact)$`)

// IsJunkTitle reports whether a link title is navigation chrome rather than a
// plausible posting title. The bias is to keep anything ambiguous; only titles
// matching a known-noise signature get rejected.
func IsJunkTitle(t string) bool {
	x := strings.ToLower(CleanText(t))
	if x == "" {
		return true
	}
	if junkExact[x] {
		return true
	}
	if utf8.RuneCountInString(x) < 4 {
		// stray glyphs and icon links
		return true
	}
	return navWordRe.MatchString(x)
}
