package placebed

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Entity is anything that carries a location: a user profile, a club, an
// event. City/State/Country is the legacy flat triple in whatever language
// it was typed; Location is the normalized record when one exists.
type Entity struct {
	ID       string          `json:"id"`
	Name     string          `json:"name,omitempty"`
	Username string          `json:"username,omitempty"`
	City     string          `json:"city,omitempty"`
	State    string          `json:"state,omitempty"`
	Country  string          `json:"country,omitempty"`
	Location *LocationRecord `json:"location,omitempty"`
}

// record returns the normalized location, or the zero record.
func (e Entity) record() LocationRecord {
	if e.Location == nil {
		return LocationRecord{}
	}
	return *e.Location
}

// Coordinates returns the entity's position if it has a valid one.
func (e Entity) Coordinates() (Coordinates, bool) {
	if e.Location == nil || e.Location.Coordinates == nil {
		return Coordinates{}, false
	}
	c := *e.Location.Coordinates
	return c, c.Valid()
}

// cityValues returns the flat, English and local city values in that order.
func (e Entity) cityValues() []string {
	r := e.record()
	return []string{e.City, r.CityEn, r.CityLocal}
}

func (e Entity) stateValues() []string {
	r := e.record()
	return []string{e.State, r.StateEn, r.StateLocal}
}

func (e Entity) countryValues() []string {
	r := e.record()
	return []string{e.Country, r.CountryEn, r.CountryLocal}
}

// located reports whether any location field is filled.
func (e Entity) located() bool {
	for _, vals := range [][]string{e.cityValues(), e.stateValues(), e.countryValues()} {
		if firstNonEmpty(vals...) != "" {
			return true
		}
	}
	return e.record().CountryCode != ""
}

// BuildSearchString joins the entity's name fields and every location
// variant into one lower-case, space-separated string. Empty fields are
// skipped.
func BuildSearchString(e Entity) string {
	r := e.record()
	parts := make([]string, 0, 12)
	for _, v := range []string{
		e.Name, e.Username,
		e.City, e.State, e.Country,
		r.CityEn, r.CityLocal,
		r.StateEn, r.StateLocal,
		r.CountryEn, r.CountryLocal,
		r.CountryCode,
	} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return toLower(strings.Join(parts, " "))
}

// maxFuzzyDistance caps SearchFilters.FuzzyDistance.
const maxFuzzyDistance = 3

// minFuzzyRunes is the shortest filter value that fuzzy matching applies to.
// Shorter values would match almost anything within a couple of edits.
const minFuzzyRunes = 3

// SearchFilters selects entities. Every filter is optional and present
// filters combine with AND. Empty strings mean "not set". The radius filter
// is active only when Radius, CenterLat and CenterLng are all set.
type SearchFilters struct {
	Query       string   `json:"query,omitempty"`
	City        string   `json:"city,omitempty"`
	State       string   `json:"state,omitempty"`
	Country     string   `json:"country,omitempty"`
	CountryCode string   `json:"country_code,omitempty"`
	Radius      *float64 `json:"radius,omitempty"`
	CenterLat   *float64 `json:"center_lat,omitempty"`
	CenterLng   *float64 `json:"center_lng,omitempty"`

	// FuzzyDistance lets the city, state and country filters also accept a
	// value within this many edits of the filter. 0 disables it; values
	// above 3 are treated as 3.
	FuzzyDistance int `json:"fuzzy_distance,omitempty"`
}

// hasRadius reports whether all three radius parameters are present.
func (f SearchFilters) hasRadius() bool {
	return f.Radius != nil && f.CenterLat != nil && f.CenterLng != nil
}

// FilterByLocation returns the entities that pass every filter set in f, in
// input order. The input slice is never modified.
func FilterByLocation(entities []Entity, f SearchFilters) []Entity {
	fuzzy := f.FuzzyDistance
	if fuzzy > maxFuzzyDistance {
		fuzzy = maxFuzzyDistance
	}

	out := make([]Entity, 0, len(entities))
	for _, e := range entities {
		if f.Query != "" && !strings.Contains(BuildSearchString(e), toLower(f.Query)) {
			continue
		}
		if f.City != "" && !fieldMatches(f.City, fuzzy, e.cityValues()) {
			continue
		}
		if f.State != "" && !fieldMatches(f.State, fuzzy, e.stateValues()) {
			continue
		}
		if f.Country != "" && !fieldMatches(f.Country, fuzzy, e.countryValues()) {
			continue
		}
		if f.CountryCode != "" && e.record().CountryCode != f.CountryCode {
			continue
		}
		if f.hasRadius() && !withinRadius(e, *f.CenterLat, *f.CenterLng, *f.Radius) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// fieldMatches reports whether filter is a case-insensitive substring of any
// value, or, with maxDist > 0, within maxDist edits of one.
func fieldMatches(filter string, maxDist int, values []string) bool {
	if containsFold(filter, values...) {
		return true
	}
	if maxDist <= 0 || len([]rune(filter)) < minFuzzyRunes {
		return false
	}
	for _, v := range values {
		if v != "" && fuzzyMatch(filter, v, maxDist) {
			return true
		}
	}
	return false
}

// fuzzyMatch compares two strings case-insensitively by Levenshtein distance.
func fuzzyMatch(query, candidate string, maxDist int) bool {
	dist := levenshtein.ComputeDistance(toLower(query), toLower(candidate))
	return dist <= maxDist
}

// withinRadius reports whether e has coordinates no further than radiusKm
// from the center. Entities without coordinates never qualify.
func withinRadius(e Entity, lat, lng, radiusKm float64) bool {
	c, ok := e.Coordinates()
	if !ok {
		return false
	}
	return Haversine(lat, lng, c.Lat, c.Lng) <= radiusKm
}
