package placebed

import (
	"regexp"
	"sync"
	"unicode"
)

// Unicode blocks used by the script checks.
const (
	hebrewFirst = 0x0590
	hebrewLast  = 0x05FF
	arabicFirst = 0x0600
	arabicLast  = 0x06FF

	// latinLast is the end of Latin Extended-B. Everything from U+0000 up to
	// here counts as Latin for IsNonLatin.
	latinLast = 0x024F
)

// IsHebrew reports whether text contains at least one rune from the Hebrew
// block (U+0590–U+05FF).
func IsHebrew(text string) bool {
	return containsRange(text, hebrewFirst, hebrewLast)
}

// IsArabic reports whether text contains at least one rune from the Arabic
// block (U+0600–U+06FF).
func IsArabic(text string) bool {
	return containsRange(text, arabicFirst, arabicLast)
}

// IsNonLatin reports whether text contains a letter outside Basic Latin and
// the Latin-1/Extended-A/Extended-B blocks. Digits, spaces and punctuation
// never make a string non-Latin.
func IsNonLatin(text string) bool {
	for _, r := range text {
		if r > latinLast && unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func containsRange(text string, lo, hi rune) bool {
	for _, r := range text {
		if r >= lo && r <= hi {
			return true
		}
	}
	return false
}

// strictLatinRegex matches names made only of ASCII letters and whitespace.
var strictLatinRegex = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^[A-Za-z\s]+$`)
})

// IsStrictLatin reports whether text consists solely of ASCII letters and
// whitespace. Digits, hyphens, apostrophes and accented letters all fail.
// Statistics uses this for its Latin bucket.
func IsStrictLatin(text string) bool {
	return strictLatinRegex().MatchString(text)
}
