package placebed

import (
	"strings"
	"unicode"
)

// DictEntry is one row of the bilingual lookup tables.
type DictEntry struct {
	English     string // English name, e.g. "Tel Aviv"
	Local       string // Name in the local script, e.g. "תל אביב"
	CountryCode string // ISO 3166-1 alpha-2 code, e.g. "IL"
}

// The lookup tables below are keyed by the local-script spelling exactly as
// users usually type it. They are seed data, not a gazetteer: a miss is the
// normal case and callers fall back to the raw input.
//
// None of these maps is ever written after package initialization, so
// concurrent reads need no locking.

var cityTable = map[string]DictEntry{
	"תל אביב":     {"Tel Aviv", "תל אביב", "IL"},
	"תל אביב-יפו": {"Tel Aviv-Yafo", "תל אביב-יפו", "IL"},
	"ירושלים":     {"Jerusalem", "ירושלים", "IL"},
	"חיפה":        {"Haifa", "חיפה", "IL"},
	"באר שבע":     {"Beer Sheva", "באר שבע", "IL"},
	"אילת":        {"Eilat", "אילת", "IL"},
	"נתניה":       {"Netanya", "נתניה", "IL"},
	"הרצליה":      {"Herzliya", "הרצליה", "IL"},
	"רמת גן":      {"Ramat Gan", "רמת גן", "IL"},
	"פתח תקווה":   {"Petah Tikva", "פתח תקווה", "IL"},
	"ראשון לציון": {"Rishon LeZion", "ראשון לציון", "IL"},
	"אשדוד":       {"Ashdod", "אשדוד", "IL"},
	"חולון":       {"Holon", "חולון", "IL"},
	"רעננה":       {"Ra'anana", "רעננה", "IL"},
	"כפר סבא":     {"Kfar Saba", "כפר סבא", "IL"},
	"ניו יורק":    {"New York", "ניו יורק", "US"},
	"לוס אנג'לס":  {"Los Angeles", "לוס אנג'לס", "US"},
	"לאס וגאס":    {"Las Vegas", "לאס וגאס", "US"},
	"לונדון":      {"London", "לונדון", "GB"},
	"פריז":        {"Paris", "פריז", "FR"},
	"ברלין":       {"Berlin", "ברלין", "DE"},
	"מוסקבה":      {"Moscow", "מוסקבה", "RU"},
	"Москва":      {"Moscow", "Москва", "RU"},
	"München":     {"Munich", "München", "DE"},
	"القاهرة":     {"Cairo", "القاهرة", "EG"},
	"دبي":         {"Dubai", "دبي", "AE"},
}

var stateTable = map[string]DictEntry{
	"מחוז המרכז":         {"Central District", "מחוז המרכז", "IL"},
	"מחוז תל אביב":       {"Tel Aviv District", "מחוז תל אביב", "IL"},
	"מחוז ירושלים":       {"Jerusalem District", "מחוז ירושלים", "IL"},
	"מחוז חיפה":          {"Haifa District", "מחוז חיפה", "IL"},
	"מחוז הצפון":         {"Northern District", "מחוז הצפון", "IL"},
	"מחוז הדרום":         {"Southern District", "מחוז הדרום", "IL"},
	"יהודה ושומרון":      {"Judea and Samaria", "יהודה ושומרון", "IL"},
	"ניו יורק":           {"New York", "ניו יורק", "US"},
	"קליפורניה":          {"California", "קליפורניה", "US"},
	"נבדה":               {"Nevada", "נבדה", "US"},
	"פלורידה":            {"Florida", "פלורידה", "US"},
	"טקסס":               {"Texas", "טקסס", "US"},
	"ניו ג'רזי":          {"New Jersey", "ניו ג'רזי", "US"},
	"אנגליה":             {"England", "אנגליה", "GB"},
	"סקוטלנד":            {"Scotland", "סקוטלנד", "GB"},
	"איל-דה-פראנס":       {"Île-de-France", "איל-דה-פראנס", "FR"},
	"בוואריה":            {"Bavaria", "בוואריה", "DE"},
	"Bayern":             {"Bavaria", "Bayern", "DE"},
	"ברלין":              {"Berlin", "ברלין", "DE"},
	"אונטריו":            {"Ontario", "אונטריו", "CA"},
	"קוויבק":             {"Quebec", "קוויבק", "CA"},
	"Московская область": {"Moscow Oblast", "Московская область", "RU"},
	"إمارة دبي":          {"Emirate of Dubai", "إمارة دبي", "AE"},
	"محافظة القاهرة":     {"Cairo Governorate", "محافظة القاهرة", "EG"},
}

var countryTable = map[string]DictEntry{
	"ישראל":                    {"Israel", "ישראל", "IL"},
	"ארצות הברית":              {"United States", "ארצות הברית", "US"},
	`ארה"ב`:                    {"United States", `ארה"ב`, "US"},
	"בריטניה":                  {"United Kingdom", "בריטניה", "GB"},
	"הממלכה המאוחדת":           {"United Kingdom", "הממלכה המאוחדת", "GB"},
	"צרפת":                     {"France", "צרפת", "FR"},
	"גרמניה":                   {"Germany", "גרמניה", "DE"},
	"Deutschland":              {"Germany", "Deutschland", "DE"},
	"ספרד":                     {"Spain", "ספרד", "ES"},
	"איטליה":                   {"Italy", "איטליה", "IT"},
	"רוסיה":                    {"Russia", "רוסיה", "RU"},
	"Россия":                   {"Russia", "Россия", "RU"},
	"קנדה":                     {"Canada", "קנדה", "CA"},
	"אוסטרליה":                 {"Australia", "אוסטרליה", "AU"},
	"יוון":                     {"Greece", "יוון", "GR"},
	"קפריסין":                  {"Cyprus", "קפריסין", "CY"},
	"מצרים":                    {"Egypt", "מצרים", "EG"},
	"مصر":                      {"Egypt", "مصر", "EG"},
	"ירדן":                     {"Jordan", "ירדן", "JO"},
	"الأردن":                   {"Jordan", "الأردن", "JO"},
	"איחוד האמירויות":          {"United Arab Emirates", "איחוד האמירויות", "AE"},
	"الإمارات العربية المتحدة": {"United Arab Emirates", "الإمارات العربية المتحدة", "AE"},
	"הולנד":                    {"Netherlands", "הולנד", "NL"},
	"אוקראינה":                 {"Ukraine", "אוקראינה", "UA"},
	"Україна":                  {"Ukraine", "Україна", "UA"},
}

// countryByCode holds one representative English/local name per code. It
// covers every code that appears in the three tables above.
var countryByCode = map[string]DictEntry{
	"IL": {"Israel", "ישראל", "IL"},
	"US": {"United States", "ארצות הברית", "US"},
	"GB": {"United Kingdom", "בריטניה", "GB"},
	"FR": {"France", "צרפת", "FR"},
	"DE": {"Germany", "גרמניה", "DE"},
	"ES": {"Spain", "ספרד", "ES"},
	"IT": {"Italy", "איטליה", "IT"},
	"RU": {"Russia", "רוסיה", "RU"},
	"CA": {"Canada", "קנדה", "CA"},
	"AU": {"Australia", "אוסטרליה", "AU"},
	"GR": {"Greece", "יוון", "GR"},
	"CY": {"Cyprus", "קפריסין", "CY"},
	"EG": {"Egypt", "مصر", "EG"},
	"JO": {"Jordan", "الأردن", "JO"},
	"AE": {"United Arab Emirates", "الإمارات العربية المتحدة", "AE"},
	"NL": {"Netherlands", "הולנד", "NL"},
	"UA": {"Ukraine", "Україна", "UA"},
}

// CountryFragment maps a lower-case fragment of a country name to a code.
type CountryFragment struct {
	Fragment string
	Code     string
	// WholeWord fragments only match a complete word of the country string,
	// so "usa" does not match "Jerusalem".
	WholeWord bool
}

// countryFragments is scanned in order by the country-code heuristic; the
// first fragment found in the raw country string wins.
var countryFragments = []CountryFragment{
	{"israel", "IL", false},
	{"ישראל", "IL", false},
	{"united states", "US", false},
	{"ארצות הברית", "US", false},
	{`ארה"ב`, "US", false},
	{"usa", "US", true},
	{"u.s.", "US", true},
	{"u.s.a.", "US", true},
	{"united kingdom", "GB", false},
	{"great britain", "GB", false},
	{"england", "GB", false},
	{"בריטניה", "GB", false},
	{"france", "FR", false},
	{"צרפת", "FR", false},
	{"germany", "DE", false},
	{"deutschland", "DE", false},
	{"גרמניה", "DE", false},
	{"spain", "ES", false},
	{"italy", "IT", false},
	{"russia", "RU", false},
	{"россия", "RU", false},
	{"canada", "CA", false},
	{"australia", "AU", false},
	{"cyprus", "CY", false},
}

// LookupCity returns the dictionary entry for an exact city spelling.
func LookupCity(name string) (DictEntry, bool) {
	e, ok := cityTable[name]
	return e, ok
}

// LookupState returns the dictionary entry for an exact state/region spelling.
func LookupState(name string) (DictEntry, bool) {
	e, ok := stateTable[name]
	return e, ok
}

// LookupCountry returns the dictionary entry for an exact country spelling.
func LookupCountry(name string) (DictEntry, bool) {
	e, ok := countryTable[name]
	return e, ok
}

// CountryByCode returns the representative English/local names for an ISO
// code. Lookup is case-insensitive on the code.
func CountryByCode(code string) (DictEntry, bool) {
	e, ok := countryByCode[toUpper(code)]
	return e, ok
}

// CountryFragments returns a copy of the ordered fragment table used to
// infer country codes from free-text country names.
func CountryFragments() []CountryFragment {
	out := make([]CountryFragment, len(countryFragments))
	copy(out, countryFragments)
	return out
}

// countryCodeFromFragments returns the code of the first fragment contained
// in raw, compared case-insensitively, or "" when none matches.
func countryCodeFromFragments(raw string) string {
	if raw == "" {
		return ""
	}
	folded := foldCase(raw)
	var words []string
	for _, f := range countryFragments {
		if !f.WholeWord {
			if strings.Contains(folded, foldCase(f.Fragment)) {
				return f.Code
			}
			continue
		}
		if words == nil {
			words = countryWords(folded)
		}
		frag := strings.TrimRight(foldCase(f.Fragment), ".")
		for _, w := range words {
			if w == frag {
				return f.Code
			}
		}
	}
	return ""
}

// countryWords splits s into words for whole-word fragments. Dots stay
// inside a word so "u.s." survives; trailing dots are dropped so "U.S" and
// "usa." still match.
func countryWords(s string) []string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '.'
	})
	for i, w := range words {
		words[i] = strings.TrimRight(w, ".")
	}
	return words
}
