package util

import (
	"strings"
	"unicode"
)

const (
	SnippetMinWords = 25
	SnippetMaxWords = 50
)

// Snippet returns a window of at most maxWords words from text, positioned
// around the first word that matches a meaningful query term. The window is
// widened backwards to at least minWords words when the text allows it.
// Elided ends are marked with "...".
func Snippet(text, query string, minWords, maxWords int) string {
	if maxWords <= 0 {
		maxWords = SnippetMaxWords
	}
	if minWords <= 0 || minWords > maxWords {
		minWords = maxWords
	}
	words := strings.Fields(CleanText(text))
	if len(words) <= maxWords {
		return strings.Join(words, " ")
	}

	hit := firstMatch(words, MeaningfulTerms(query))
	lead := maxWords / 4
	start := hit - lead
	if start < 0 {
		start = 0
	}
	end := start + maxWords
	if end > len(words) {
		end = len(words)
	}
	if end-start < minWords {
		start = end - minWords
		if start < 0 {
			start = 0
		}
	}

	out := strings.Join(words[start:end], " ")
	if start > 0 {
		out = "..." + out
	}
	if end < len(words) {
		out += "..."
	}
	return out
}

func firstMatch(words, terms []string) int {
	if len(terms) == 0 {
		return 0
	}
	for i, w := range words {
		low := strings.ToLower(strings.Trim(w, ",.;:!?()[]{}\"'`"))
		for _, t := range terms {
			if strings.Contains(low, t) {
				return i
			}
		}
	}
	return 0
}

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "was": {}, "were": {}, "what": {}, "how": {},
	"why": {}, "which": {}, "that": {}, "this": {}, "these": {}, "those": {}, "with": {},
	"from": {}, "across": {}, "about": {}, "does": {}, "show": {}, "many": {},
}

// MeaningfulTerms lowercases a query and keeps unique words of three or more
// letters that are not stopwords.
func MeaningfulTerms(s string) []string {
	fields := strings.Fields(strings.ToLower(CleanText(s)))
	uniq := map[string]struct{}{}
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ",.;:!?()[]{}\"'`")
		if len(f) < 3 {
			continue
		}
		if _, ok := stopwords[f]; ok {
			continue
		}
		if _, ok := uniq[f]; ok {
			continue
		}
		uniq[f] = struct{}{}
		terms = append(terms, f)
	}
	return terms
}

// CleanText strips control and symbol runes and collapses whitespace.
func CleanText(s string) string {
	s = SanitizeText(s)
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsPunct(r) {
			out = append(out, r)
			continue
		}
		if unicode.IsSpace(r) {
			out = append(out, ' ')
		}
	}
	return strings.Join(strings.Fields(string(out)), " ")
}

// SanitizeText drops NUL bytes and non-printing controls other than
// newline, carriage return and tab.
func SanitizeText(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, ch := range s {
		if ch < 0x20 && ch != '\n' && ch != '\r' && ch != '\t' {
			continue
		}
		b.WriteRune(ch)
	}
	return strings.TrimSpace(b.String())
}
