package placebed

import (
	"math"
	"strings"
	"testing"
)

func TestHaversineKnownDistances(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		wantKm, tolerance      float64
	}{
		{"London to New York", 51.5074, -0.1278, 40.7128, -74.0060, 5570, 50},
		{"Tel Aviv to Jerusalem", 32.0853, 34.7818, 31.7683, 35.2137, 54, 3},
		{"Tel Aviv to Haifa", 32.0853, 34.7818, 32.7940, 34.9896, 81, 3},
		{"quarter meridian", 0, 0, 90, 0, EarthRadiusKm * math.Pi / 2, 1e-6},
		{"antipodes", 0, 0, 0, 180, EarthRadiusKm * math.Pi, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("Haversine = %.3f km, want %.3f ± %.3f", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestHaversineSymmetryAndIdentity(t *testing.T) {
	points := []Coordinates{
		{51.5074, -0.1278},
		{40.7128, -74.0060},
		{32.0853, 34.7818},
		{-33.8688, 151.2093},
		{0, 0},
		{89.9, 179.9},
	}
	for _, a := range points {
		if d := Haversine(a.Lat, a.Lng, a.Lat, a.Lng); d != 0 {
			t.Errorf("Haversine(%v, %v) = %v, want 0", a, a, d)
		}
		for _, b := range points {
			ab := Haversine(a.Lat, a.Lng, b.Lat, b.Lng)
			ba := Haversine(b.Lat, b.Lng, a.Lat, a.Lng)
			if math.Abs(ab-ba) > 1e-9 {
				t.Errorf("asymmetric: d(%v,%v)=%v d(%v,%v)=%v", a, b, ab, b, a, ba)
			}
			if ab < 0 {
				t.Errorf("negative distance %v", ab)
			}
		}
	}
}

func TestHaversineMonotonic(t *testing.T) {
	prev := 0.0
	for lat := 1.0; lat <= 90; lat++ {
		d := Haversine(0, 0, lat, 0)
		if d <= prev {
			t.Fatalf("distance to lat %v = %v, not greater than %v", lat, d, prev)
		}
		prev = d
	}
}

func TestHaversineInvalidInput(t *testing.T) {
	if d := Haversine(math.NaN(), 0, 0, 0); !math.IsNaN(d) {
		t.Errorf("NaN input: got %v, want NaN", d)
	}
	if d := Haversine(0, math.Inf(1), 0, 0); !math.IsNaN(d) {
		t.Errorf("Inf input: got %v, want NaN", d)
	}
}

func TestCoordinatesValid(t *testing.T) {
	tests := []struct {
		c    Coordinates
		want bool
	}{
		{Coordinates{32.08, 34.78}, true},
		{Coordinates{-90, -180}, true},
		{Coordinates{90, 180}, true},
		{Coordinates{90.1, 0}, false},
		{Coordinates{0, -180.5}, false},
		{Coordinates{math.NaN(), 0}, false},
		{Coordinates{0, math.Inf(-1)}, false},
	}
	for _, tt := range tests {
		if got := tt.c.Valid(); got != tt.want {
			t.Errorf("%v.Valid() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestCoordinatesDistanceTo(t *testing.T) {
	london := Coordinates{51.5074, -0.1278}
	nyc := Coordinates{40.7128, -74.0060}
	if got, want := london.DistanceTo(nyc), Haversine(london.Lat, london.Lng, nyc.Lat, nyc.Lng); got != want {
		t.Errorf("DistanceTo = %v, want %v", got, want)
	}
}

func TestCoordinatesGeohash(t *testing.T) {
	c := Coordinates{Lat: 57.64911, Lng: 10.40744}
	if got := c.Geohash(11); got != "u4pruydqqvj" {
		t.Errorf("Geohash(11) = %q, want %q", got, "u4pruydqqvj")
	}
	def := c.Geohash(0)
	if len(def) != defaultGeohashPrecision {
		t.Errorf("Geohash(0) length = %d, want %d", len(def), defaultGeohashPrecision)
	}
	if !strings.HasPrefix("u4pruydqqvj", def) {
		t.Errorf("Geohash(0) = %q is not a prefix of the full hash", def)
	}
}
