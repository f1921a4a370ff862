package placebed

import "testing"

func TestScriptPredicates(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		hebrew      bool
		arabic      bool
		nonLatin    bool
		strictLatin bool
	}{
		{name: "empty string", input: ""},
		{name: "plain english", input: "Tel Aviv", strictLatin: true},
		{name: "hebrew", input: "תל אביב", hebrew: true, nonLatin: true},
		{name: "hebrew with niqqud", input: "יְרוּשָׁלַיִם", hebrew: true, nonLatin: true},
		{name: "arabic", input: "القاهرة", arabic: true, nonLatin: true},
		{name: "cyrillic", input: "Москва", nonLatin: true},
		{name: "CJK", input: "東京", nonLatin: true},
		{name: "latin with diacritics", input: "Zürich"},
		{name: "latin extended-b", input: "Ǆemal"},
		{name: "apostrophe", input: "Ra'anana"},
		{name: "hyphen", input: "Tel Aviv-Yafo"},
		{name: "digits only", input: "2024"},
		{name: "mixed hebrew and latin", input: "Tel Aviv תל אביב", hebrew: true, nonLatin: true},
		{name: "whitespace only", input: "   ", strictLatin: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHebrew(tt.input); got != tt.hebrew {
				t.Errorf("IsHebrew(%q) = %v, want %v", tt.input, got, tt.hebrew)
			}
			if got := IsArabic(tt.input); got != tt.arabic {
				t.Errorf("IsArabic(%q) = %v, want %v", tt.input, got, tt.arabic)
			}
			if got := IsNonLatin(tt.input); got != tt.nonLatin {
				t.Errorf("IsNonLatin(%q) = %v, want %v", tt.input, got, tt.nonLatin)
			}
			if got := IsStrictLatin(tt.input); got != tt.strictLatin {
				t.Errorf("IsStrictLatin(%q) = %v, want %v", tt.input, got, tt.strictLatin)
			}
		})
	}
}

func TestHebrewBlockBoundaries(t *testing.T) {
	if !IsHebrew(string(rune(0x0590))) || !IsHebrew(string(rune(0x05FF))) {
		t.Error("block edges U+0590/U+05FF should count as Hebrew")
	}
	if IsHebrew(string(rune(0x0600))) {
		t.Error("U+0600 is Arabic, not Hebrew")
	}
	if !IsArabic(string(rune(0x06FF))) {
		t.Error("U+06FF should count as Arabic")
	}
}
