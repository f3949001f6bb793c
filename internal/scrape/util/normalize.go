package util

import "strings"

// CleanText collapses any run of whitespace (NBSP included) to a single space
// and trims the ends. Idempotent; empty in, empty out.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
