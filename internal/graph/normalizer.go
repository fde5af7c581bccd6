package graph

import (
	"regexp"
	"strings"
)

var ws = regexp.MustCompile(`\s+`)

// CanonicalName lowercases, trims and collapses inner whitespace.
func CanonicalName(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	return ws.ReplaceAllString(s, " ")
}

// CanonicalNames normalises names, dropping blanks and duplicates while
// keeping first-seen order.
func CanonicalNames(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = CanonicalName(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
