package placebed

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// toLower converts a string to lowercase. strings.ToLower is Unicode-aware,
// which matters here: names arrive in Hebrew, Cyrillic and accented Latin.
func toLower(s string) string {
	return strings.ToLower(s)
}

// toUpper converts a string to uppercase. See toLower.
func toUpper(s string) string {
	return strings.ToUpper(s)
}

// foldCase returns the Unicode case folding of s. A Caser keeps state, so a
// new one is built per call instead of sharing one between goroutines.
func foldCase(s string) string {
	return cases.Fold().String(s)
}

// cleanInput trims surrounding whitespace and puts s in NFC form so that
// composed and decomposed spellings hit the same dictionary key.
func cleanInput(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return norm.NFC.String(s)
}

// containsFold reports whether needle occurs in any of the haystacks,
// ignoring case. Empty haystacks never match.
func containsFold(needle string, haystacks ...string) bool {
	needle = toLower(needle)
	for _, h := range haystacks {
		if h != "" && strings.Contains(toLower(h), needle) {
			return true
		}
	}
	return false
}
