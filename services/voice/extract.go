package voice

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ordinalRe    = regexp.MustCompile(`\b(\d+)(st|nd|rd|th)\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// normalize applies the shared preprocessing: lower-case, strip ordinal
// suffixes (30th -> 30), drop commas and periods, collapse whitespace, trim.
func normalize(text string) string {
	s := strings.ToLower(text)
	s = ordinalRe.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, ".", "")
	return collapseSpaces(s)
}

func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// hasWord reports whether s contains w as a whole token.
func hasWord(s, w string) bool {
	for _, tok := range strings.Fields(s) {
		if tok == w {
			return true
		}
	}
	return false
}

func hasAnyWord(s string, words ...string) bool {
	for _, w := range words {
		if hasWord(s, w) {
			return true
		}
	}
	return false
}

// cutAfterFirst returns the text after the earliest occurrence of any trigger,
// preferring the trigger that appears first in s. The second return is false
// when no trigger occurs.
func cutAfterFirst(s string, triggers ...string) (string, bool) {
	best := -1
	bestLen := 0
	for _, t := range triggers {
		if i := strings.Index(s, t); i >= 0 && (best == -1 || i < best) {
			best = i
			bestLen = len(t)
		}
	}
	if best == -1 {
		return s, false
	}
	return strings.TrimSpace(s[best+bestLen:]), true
}

// cutBeforeFirst trims s at the earliest occurrence of any stop marker.
func cutBeforeFirst(s string, stops ...string) string {
	cut := len(s)
	for _, stop := range stops {
		if i := strings.Index(s, stop); i >= 0 && i < cut {
			cut = i
		}
	}
	return strings.TrimSpace(s[:cut])
}

// stripPhrases removes every occurrence of the listed phrases, longest first
// wins by caller ordering, and collapses the leftover whitespace.
func stripPhrases(s string, phrases ...string) string {
	for _, p := range phrases {
		s = strings.ReplaceAll(s, p, " ")
	}
	return collapseSpaces(s)
}

// stripLeadingArticles drops a single leading "a", "an", "the" or "my".
func stripLeadingArticles(s string) string {
	for _, art := range []string{"a ", "an ", "the ", "my "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimSpace(strings.TrimPrefix(s, art))
		}
	}
	return s
}

// titleCase capitalizes the first letter of every word for display.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
