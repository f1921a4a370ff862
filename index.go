package placebed

import (
	"math"
	"sort"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// leafLevel is the deepest S2 level; entities are indexed by their leaf cell.
const leafLevel = 30

// capSlack widens the search cap by about 6 mm so that points sitting exactly
// on the radius are not lost to rounding between the cap test and Haversine.
const capSlack = s1.Angle(1e-9)

// IndexConfig contains configuration options for an Index.
type IndexConfig struct {
	MaxCells int // Cells per covering (default: 8)
}

// IndexOption is a functional option for configuring an Index.
type IndexOption func(*IndexConfig)

// WithMaxCells sets how many S2 cells a radius query may be covered with.
// More cells hug the circle more tightly at the price of more range scans.
func WithMaxCells(n int) IndexOption {
	return func(c *IndexConfig) {
		if n > 0 {
			c.MaxCells = n
		}
	}
}

func defaultIndexConfig() *IndexConfig {
	return &IndexConfig{MaxCells: 8}
}

// indexEntry is one located entity. pos is its position in the input slice
// and breaks distance ties the same way Nearby does.
type indexEntry struct {
	cell   s2.CellID
	pos    int
	coords Coordinates
	entity Entity
}

// Index answers radius queries over a fixed set of entities without
// measuring the distance to every one of them. Entities are kept sorted by
// S2 leaf cell; a query covers its circle with a few cells and scans only the
// matching cell ranges.
//
// An Index is never modified after NewIndex returns and is safe for
// concurrent use.
type Index struct {
	entries []indexEntry
	config  *IndexConfig
}

// NewIndex builds an Index over the entities that have valid coordinates.
func NewIndex(entities []Entity, opts ...IndexOption) *Index {
	cfg := defaultIndexConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	x := &Index{config: cfg}
	for i, e := range entities {
		c, ok := e.Coordinates()
		if !ok {
			continue
		}
		x.entries = append(x.entries, indexEntry{
			cell:   s2.CellIDFromLatLng(c.latLng()),
			pos:    i,
			coords: c,
			entity: e,
		})
	}
	sort.Slice(x.entries, func(i, j int) bool {
		if x.entries[i].cell != x.entries[j].cell {
			return x.entries[i].cell < x.entries[j].cell
		}
		return x.entries[i].pos < x.entries[j].pos
	})
	return x
}

// Len returns the number of indexed entities.
func (x *Index) Len() int {
	return len(x.entries)
}

// Nearby returns the indexed entities within radiusKm of the center,
// closest first. It returns the same entities in the same order as the
// package-level Nearby called on the slice the index was built from.
func (x *Index) Nearby(centerLat, centerLng, radiusKm float64) []NearbyEntity {
	out := []NearbyEntity{}
	center := Coordinates{Lat: centerLat, Lng: centerLng}
	if !validQuery(center, radiusKm) {
		return out
	}

	type hit struct {
		pos int
		ne  NearbyEntity
	}
	var hits []hit
	for _, cell := range x.covering(center, radiusKm) {
		lo, hi := cell.RangeMin(), cell.RangeMax()
		i := sort.Search(len(x.entries), func(i int) bool { return x.entries[i].cell >= lo })
		for ; i < len(x.entries) && x.entries[i].cell <= hi; i++ {
			en := x.entries[i]
			d := center.DistanceTo(en.coords)
			if d <= radiusKm {
				hits = append(hits, hit{pos: en.pos, ne: NearbyEntity{Entity: en.entity, Distance: d}})
			}
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].ne.Distance != hits[j].ne.Distance {
			return hits[i].ne.Distance < hits[j].ne.Distance
		}
		return hits[i].pos < hits[j].pos
	})
	for _, h := range hits {
		out = append(out, h.ne)
	}
	return out
}

// covering returns a set of disjoint cells that contains the query circle.
func (x *Index) covering(center Coordinates, radiusKm float64) s2.CellUnion {
	angle := s1.Angle(radiusKm/EarthRadiusKm) + capSlack
	if angle >= math.Pi {
		return s2.CellUnion{
			s2.CellIDFromFace(0), s2.CellIDFromFace(1), s2.CellIDFromFace(2),
			s2.CellIDFromFace(3), s2.CellIDFromFace(4), s2.CellIDFromFace(5),
		}
	}
	capRegion := s2.CapFromCenterAngle(s2.PointFromLatLng(center.latLng()), angle)
	rc := &s2.RegionCoverer{MinLevel: 0, MaxLevel: leafLevel, LevelMod: 1, MaxCells: x.config.MaxCells}
	return rc.Covering(capRegion)
}
