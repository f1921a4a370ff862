package placebed

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Field selects one of the three location fields.
type Field int

const (
	FieldCity Field = iota
	FieldState
	FieldCountry
)

// ErrUnknownField is returned by ParseField for names it does not know.
var ErrUnknownField = errors.New("unknown location field")

func (f Field) String() string {
	switch f {
	case FieldCity:
		return "city"
	case FieldState:
		return "state"
	case FieldCountry:
		return "country"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField maps "city", "state" or "country" (any case) to a Field.
func ParseField(s string) (Field, error) {
	switch toLower(s) {
	case "city":
		return FieldCity, nil
	case "state", "region":
		return FieldState, nil
	case "country":
		return FieldCountry, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
}

func (e Entity) fieldValues(f Field) []string {
	switch f {
	case FieldCity:
		return e.cityValues()
	case FieldState:
		return e.stateValues()
	case FieldCountry:
		return e.countryValues()
	}
	return nil
}

// Suggest returns the distinct non-empty values of field across entities,
// covering the flat value and both language variants, sorted ascending.
// A non-empty query keeps only values containing it, ignoring case.
func Suggest(entities []Entity, field Field, query string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, e := range entities {
		for _, v := range e.fieldValues(field) {
			if v == "" || seen[v] {
				continue
			}
			if query != "" && !containsFold(query, v) {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// CountryOption is one entry of a country picker.
type CountryOption struct {
	Code      string `json:"code"`
	NameEn    string `json:"name_en"`
	NameLocal string `json:"name_local"`
	Count     int    `json:"count"`
}

// CountryOptions groups entities by country code and counts them. Entities
// without a code are left out. Names come from the first entity seen with
// each code, falling back to the dictionary. The result is sorted by
// English name, then code.
func CountryOptions(entities []Entity) []CountryOption {
	byCode := make(map[string]*CountryOption)
	order := []string{}
	for _, e := range entities {
		r := e.record()
		if r.CountryCode == "" {
			continue
		}
		opt, ok := byCode[r.CountryCode]
		if !ok {
			opt = &CountryOption{Code: r.CountryCode}
			byCode[r.CountryCode] = opt
			order = append(order, r.CountryCode)
		}
		if opt.NameEn == "" {
			opt.NameEn = r.CountryEn
		}
		if opt.NameLocal == "" {
			opt.NameLocal = r.CountryLocal
		}
		opt.Count++
	}

	out := make([]CountryOption, 0, len(order))
	for _, code := range order {
		opt := *byCode[code]
		if d, ok := CountryByCode(code); ok {
			opt.NameEn = firstNonEmpty(opt.NameEn, d.English)
			opt.NameLocal = firstNonEmpty(opt.NameLocal, d.Local)
		}
		opt.NameEn = firstNonEmpty(opt.NameEn, code)
		opt.NameLocal = firstNonEmpty(opt.NameLocal, opt.NameEn)
		out = append(out, opt)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].NameEn != out[j].NameEn {
			return out[i].NameEn < out[j].NameEn
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// NearbyEntity is an entity paired with its distance from a query point.
type NearbyEntity struct {
	Entity
	Distance float64 `json:"distance"`
}

// Nearby returns the entities within radiusKm of the center, closest first.
// Entities at equal distance keep their input order. Entities without
// coordinates are skipped. An out-of-range center or a negative or NaN
// radius matches nothing.
func Nearby(entities []Entity, centerLat, centerLng, radiusKm float64) []NearbyEntity {
	out := []NearbyEntity{}
	if !validQuery(Coordinates{Lat: centerLat, Lng: centerLng}, radiusKm) {
		return out
	}
	for _, e := range entities {
		c, ok := e.Coordinates()
		if !ok {
			continue
		}
		d := Haversine(centerLat, centerLng, c.Lat, c.Lng)
		if d <= radiusKm {
			out = append(out, NearbyEntity{Entity: e, Distance: d})
		}
	}
	sortByDistance(out)
	return out
}

// validQuery reports whether a radius query can match anything.
func validQuery(center Coordinates, radiusKm float64) bool {
	return center.Valid() && !math.IsNaN(radiusKm) && radiusKm >= 0
}

func sortByDistance(out []NearbyEntity) {
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
}
