package placebed

import (
	"googlemaps.github.io/maps"
)

// Address component types read from place lookups.
const (
	typeLocality = "locality"
	typeAdmin1   = "administrative_area_level_1"
	typeAdmin2   = "administrative_area_level_2"
	typeCountry  = "country"
)

// ExtractPlace pulls the raw city, state and country out of place-lookup
// address components. The first component carrying a type wins. City comes
// from "locality", falling back to "administrative_area_level_2"; the
// country's short name becomes the country-code hint.
//
// Components with missing or unknown types are ignored, so a nil slice
// yields an empty RawLocation.
func ExtractPlace(components []maps.AddressComponent) RawLocation {
	var raw RawLocation
	var admin2 string
	for _, comp := range components {
		for _, t := range comp.Types {
			switch t {
			case typeLocality:
				if raw.City == "" {
					raw.City = comp.LongName
				}
			case typeAdmin2:
				if admin2 == "" {
					admin2 = comp.LongName
				}
			case typeAdmin1:
				if raw.State == "" {
					raw.State = comp.LongName
				}
			case typeCountry:
				if raw.Country == "" {
					raw.Country = comp.LongName
					raw.CountryCodeHint = comp.ShortName
				}
			}
		}
	}
	if raw.City == "" {
		raw.City = admin2
	}
	return raw
}

// FromStructuredPlace normalizes the location described by address
// components from a place lookup.
func FromStructuredPlace(components []maps.AddressComponent) LocationRecord {
	rec, _ := Resolve(ExtractPlace(components))
	return rec
}

// FromGeocodingResult is FromStructuredPlace plus the result's geometry.
func FromGeocodingResult(r maps.GeocodingResult) LocationRecord {
	raw := ExtractPlace(r.AddressComponents)
	raw.Coordinates = coordinatesFromGeometry(r.Geometry)
	rec, _ := Resolve(raw)
	return rec
}

// FromPlaceDetails is FromStructuredPlace plus the place's geometry.
func FromPlaceDetails(r maps.PlaceDetailsResult) LocationRecord {
	raw := ExtractPlace(r.AddressComponents)
	raw.Coordinates = coordinatesFromGeometry(r.Geometry)
	rec, _ := Resolve(raw)
	return rec
}

// FromManualEntry normalizes a free-typed address that has no structured
// place data behind it.
func FromManualEntry(city, state, country string) LocationRecord {
	return Normalize(city, state, country)
}

// coordinatesFromGeometry treats (0,0) as "no geometry": results without a
// location decode to the zero LatLng, and Null Island is never a real
// answer for a city lookup.
func coordinatesFromGeometry(g maps.AddressGeometry) *Coordinates {
	if g.Location.Lat == 0 && g.Location.Lng == 0 {
		return nil
	}
	c := Coordinates{Lat: g.Location.Lat, Lng: g.Location.Lng}
	if !c.Valid() {
		return nil
	}
	return &c
}
