package placebed

// LocationRecord is the canonical bilingual form of a location. Records are
// derived data: build a new one with Normalize when the input changes
// instead of editing fields in place.
//
// Every *En/*Local pair is filled whenever the raw field was non-empty. When
// no translation is known both sides carry the raw input.
type LocationRecord struct {
	CityEn       string       `json:"city_en"`
	CityLocal    string       `json:"city_local"`
	StateEn      string       `json:"state_en"`
	StateLocal   string       `json:"state_local"`
	CountryEn    string       `json:"country_en"`
	CountryLocal string       `json:"country_local"`
	CountryCode  string       `json:"country_code"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

// IsZero reports whether the record carries no location data at all.
func (r LocationRecord) IsZero() bool {
	return r.CityEn == "" && r.CityLocal == "" &&
		r.StateEn == "" && r.StateLocal == "" &&
		r.CountryEn == "" && r.CountryLocal == "" &&
		r.CountryCode == "" && r.Coordinates == nil
}

// Equal reports whether r and o hold the same names, code and position.
// Coordinates are compared by value.
func (r LocationRecord) Equal(o LocationRecord) bool {
	a, b := r, o
	a.Coordinates, b.Coordinates = nil, nil
	if a != b {
		return false
	}
	if r.Coordinates == nil || o.Coordinates == nil {
		return r.Coordinates == o.Coordinates
	}
	return *r.Coordinates == *o.Coordinates
}

// DisplayCity returns the local city name, or the English one when the
// local name is empty.
func (r LocationRecord) DisplayCity() string { return firstNonEmpty(r.CityLocal, r.CityEn) }

// DisplayState returns the local state name, falling back to English.
func (r LocationRecord) DisplayState() string { return firstNonEmpty(r.StateLocal, r.StateEn) }

// DisplayCountry returns the local country name, falling back to English.
func (r LocationRecord) DisplayCountry() string {
	return firstNonEmpty(r.CountryLocal, r.CountryEn)
}

// RawLocation is unnormalized input: free text typed by a user or the
// pieces pulled out of a place lookup.
type RawLocation struct {
	City    string
	State   string
	Country string
	// CountryCodeHint is an ISO code supplied by a structured place lookup.
	// It outranks every inferred code.
	CountryCodeHint string
	Coordinates     *Coordinates
}

// CodeSource names the step that produced LocationRecord.CountryCode.
type CodeSource string

const (
	CodeFromHint     CodeSource = "hint"
	CodeFromCountry  CodeSource = "country"
	CodeFromCity     CodeSource = "city"
	CodeFromState    CodeSource = "state"
	CodeFromFragment CodeSource = "fragment"
	CodeUnresolved   CodeSource = "none"
)

// Resolution describes how Resolve built a record.
type Resolution struct {
	CityHit    bool       `json:"city_hit"`    // city found in the dictionary
	StateHit   bool       `json:"state_hit"`   // state found in the dictionary
	CountryHit bool       `json:"country_hit"` // country found in the dictionary
	NonLatin   bool       `json:"non_latin"`   // combined input contains non-Latin letters
	CodeSource CodeSource `json:"code_source"` // which step set CountryCode
}

// Normalize resolves a raw (city, state, country) triple into a
// LocationRecord. It never fails: unknown values pass through unchanged and
// an unresolvable country leaves CountryCode empty.
func Normalize(city, state, country string) LocationRecord {
	rec, _ := Resolve(RawLocation{City: city, State: state, Country: country})
	return rec
}

// Resolve is Normalize with the country-code hint and coordinates of in
// honoured, and with a report of which lookups hit.
//
// Inputs are trimmed and NFC-normalized to form dictionary and fragment
// lookup keys; the stored fallback is always the untouched raw string.
//
// Country code precedence: hint, country entry, city entry, state entry,
// fragment table, empty.
func Resolve(in RawLocation) (LocationRecord, Resolution) {
	city := cleanInput(in.City)
	state := cleanInput(in.State)
	country := cleanInput(in.Country)

	var rec LocationRecord
	var res Resolution
	res.NonLatin = IsNonLatin(city + " " + state + " " + country)

	cityEntry, cityHit := lookupField(city, LookupCity)
	stateEntry, stateHit := lookupField(state, LookupState)
	countryEntry, countryHit := lookupField(country, LookupCountry)
	res.CityHit, res.StateHit, res.CountryHit = cityHit, stateHit, countryHit

	rec.CityEn, rec.CityLocal = bilingual(in.City, cityEntry, cityHit)
	rec.StateEn, rec.StateLocal = bilingual(in.State, stateEntry, stateHit)
	rec.CountryEn, rec.CountryLocal = bilingual(in.Country, countryEntry, countryHit)

	switch hint := toUpper(cleanInput(in.CountryCodeHint)); {
	case isCountryCode(hint):
		rec.CountryCode, res.CodeSource = hint, CodeFromHint
	case countryHit && countryEntry.CountryCode != "":
		rec.CountryCode, res.CodeSource = countryEntry.CountryCode, CodeFromCountry
	case cityHit && cityEntry.CountryCode != "":
		rec.CountryCode, res.CodeSource = cityEntry.CountryCode, CodeFromCity
	case stateHit && stateEntry.CountryCode != "":
		rec.CountryCode, res.CodeSource = stateEntry.CountryCode, CodeFromState
	default:
		if code := countryCodeFromFragments(country); code != "" {
			rec.CountryCode, res.CodeSource = code, CodeFromFragment
		} else {
			res.CodeSource = CodeUnresolved
		}
	}

	if in.Coordinates != nil && in.Coordinates.Valid() {
		c := *in.Coordinates
		rec.Coordinates = &c
	}
	return rec, res
}

func lookupField(v string, lookup func(string) (DictEntry, bool)) (DictEntry, bool) {
	if v == "" {
		return DictEntry{}, false
	}
	return lookup(v)
}

// bilingual returns the (English, local) pair for a field. Without a
// dictionary hit both sides are the raw value exactly as given, whatever its
// script or surrounding whitespace. Cleaning only shapes the lookup key.
func bilingual(raw string, e DictEntry, hit bool) (string, string) {
	if !hit {
		return raw, raw
	}
	return firstNonEmpty(e.English, raw), firstNonEmpty(e.Local, raw)
}

// isCountryCode reports whether s looks like an ISO 3166-1 alpha-2 code.
func isCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
