package placebed

import (
	"sort"
	"strings"
)

// topN is the length of the top-city and top-country lists.
const topN = 10

// ValueCount is a display value and how many entities carry it.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ScriptDistribution buckets located entities by the script of their local
// location name. Each located entity lands in exactly one bucket.
type ScriptDistribution struct {
	Hebrew int `json:"hebrew"`
	Latin  int `json:"latin"`
	Other  int `json:"other"`
}

// Stats summarizes the locations of an entity collection.
type Stats struct {
	TotalCount         int                `json:"total_count"`
	LocatedCount       int                `json:"located_count"`
	TopCities          []ValueCount       `json:"top_cities"`
	TopCountries       []ValueCount       `json:"top_countries"`
	ScriptDistribution ScriptDistribution `json:"script_distribution"`
}

// Statistics computes aggregate figures over entities.
//
// Top lists count the local-preferred display value (local name, else
// English, else the flat field), most frequent first, ties in first-seen
// order.
//
// The script bucket is Hebrew when any local-language field holds Hebrew:
// the flat triple or the record's local names. Otherwise the display name (city, else country, else state) is
// Latin when it is ASCII letters and spaces only, so a name with digits or
// punctuation counts as Other.
func Statistics(entities []Entity) Stats {
	st := Stats{
		TotalCount:   len(entities),
		TopCities:    []ValueCount{},
		TopCountries: []ValueCount{},
	}
	cities := newCounter()
	countries := newCounter()

	for _, e := range entities {
		if !e.located() {
			continue
		}
		st.LocatedCount++
		r := e.record()

		city := firstNonEmpty(r.CityLocal, r.CityEn, e.City)
		country := firstNonEmpty(r.CountryLocal, r.CountryEn, e.Country)
		cities.add(city)
		countries.add(country)

		sample := firstNonEmpty(city, country, r.StateLocal, r.StateEn, e.State)
		switch {
		case IsHebrew(e.localFields()):
			st.ScriptDistribution.Hebrew++
		case IsStrictLatin(sample):
			st.ScriptDistribution.Latin++
		default:
			st.ScriptDistribution.Other++
		}
	}

	st.TopCities = cities.top(topN)
	st.TopCountries = countries.top(topN)
	return st
}

// localFields joins the fields written in the entity's own language: the
// flat triple as typed and the record's local names.
func (e Entity) localFields() string {
	r := e.record()
	return strings.Join([]string{e.City, e.State, e.Country, r.CityLocal, r.StateLocal, r.CountryLocal}, " ")
}

// counter tallies values and remembers the order they first appeared in.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(v string) {
	if v == "" {
		return
	}
	if _, ok := c.counts[v]; !ok {
		c.order = append(c.order, v)
	}
	c.counts[v]++
}

func (c *counter) top(n int) []ValueCount {
	out := make([]ValueCount, 0, len(c.order))
	for _, v := range c.order {
		out = append(out, ValueCount{Value: v, Count: c.counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
