package placebed

import (
	"errors"
	"fmt"
)

// validationCase defines a known normalization used to check the tables.
type validationCase struct {
	city, state, country string
	wantCityEn           string
	wantCountryCode      string
}

// knownNormalizations must keep resolving as listed. They cover each step
// of the country-code chain.
var knownNormalizations = []validationCase{
	{"תל אביב", "", "", "Tel Aviv", "IL"},
	{"ירושלים", "", "ישראל", "Jerusalem", "IL"},
	{"", "", "ישראל", "", "IL"},
	{"", "קליפורניה", "", "", "US"},
	{"Москва", "", "", "Moscow", "RU"},
	{"", "", "Republic of Israel", "", "IL"},
	{"Springfield", "", "United States of America", "Springfield", "US"},
	{"Atlantis", "", "Nowhere", "Atlantis", "none"},
	{"", "", "Jerusalem", "", "none"},
}

// ValidateDictionary checks the internal consistency of the lookup tables
// and that a set of known inputs still normalizes as expected. It returns
// every problem found, joined.
func ValidateDictionary() error {
	var errs []error

	tables := []struct {
		name string
		m    map[string]DictEntry
	}{
		{"city", cityTable},
		{"state", stateTable},
		{"country", countryTable},
	}
	for _, tbl := range tables {
		for key, e := range tbl.m {
			if e.English == "" || e.Local == "" {
				errs = append(errs, fmt.Errorf("%s %q: empty name", tbl.name, key))
			}
			if e.Local != key {
				errs = append(errs, fmt.Errorf("%s %q: local name %q differs from key", tbl.name, key, e.Local))
			}
			if !isCountryCode(e.CountryCode) {
				errs = append(errs, fmt.Errorf("%s %q: bad country code %q", tbl.name, key, e.CountryCode))
				continue
			}
			if _, ok := countryByCode[e.CountryCode]; !ok {
				errs = append(errs, fmt.Errorf("%s %q: code %s has no country names", tbl.name, key, e.CountryCode))
			}
		}
	}

	for i, f := range countryFragments {
		if f.Fragment == "" || f.Fragment != toLower(f.Fragment) {
			errs = append(errs, fmt.Errorf("fragment %d %q: must be non-empty lower case", i, f.Fragment))
		}
		if !isCountryCode(f.Code) {
			errs = append(errs, fmt.Errorf("fragment %q: bad country code %q", f.Fragment, f.Code))
		}
	}

	for _, tc := range knownNormalizations {
		rec := Normalize(tc.city, tc.state, tc.country)
		wantCode := tc.wantCountryCode
		if wantCode == "none" {
			wantCode = ""
		}
		if rec.CityEn != tc.wantCityEn {
			errs = append(errs, fmt.Errorf("normalize(%q, %q, %q) city_en = %q, want %q",
				tc.city, tc.state, tc.country, rec.CityEn, tc.wantCityEn))
		}
		if rec.CountryCode != wantCode {
			errs = append(errs, fmt.Errorf("normalize(%q, %q, %q) country_code = %q, want %q",
				tc.city, tc.state, tc.country, rec.CountryCode, wantCode))
		}
	}

	return errors.Join(errs...)
}
