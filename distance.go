package placebed

import (
	"math"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the mean Earth radius used for all distances.
const EarthRadiusKm = 6371.0

// defaultGeohashPrecision gives cells of roughly 1.2 km x 0.6 km.
const defaultGeohashPrecision = 6

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether c is a finite point on the globe.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// DistanceTo returns the great-circle distance from c to o in kilometers.
func (c Coordinates) DistanceTo(o Coordinates) float64 {
	return Haversine(c.Lat, c.Lng, o.Lat, o.Lng)
}

// Geohash encodes c with the given number of characters. A precision below
// one selects the default of six.
func (c Coordinates) Geohash(precision int) string {
	if precision < 1 {
		precision = defaultGeohashPrecision
	}
	return geohash.EncodeWithPrecision(c.Lat, c.Lng, precision)
}

func (c Coordinates) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lng)
}

// Haversine returns the great-circle distance in kilometers between two
// points given in degrees. s2.LatLng.Distance evaluates the haversine
// formula on the unit sphere; the angle is scaled by EarthRadiusKm.
//
// NaN or infinite input yields NaN, which fails every radius comparison.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	for _, v := range [...]float64{lat1, lng1, lat2, lng2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return math.NaN()
		}
	}
	a := s2.LatLngFromDegrees(lat1, lng1)
	b := s2.LatLngFromDegrees(lat2, lng2)
	return a.Distance(b).Radians() * EarthRadiusKm
}
