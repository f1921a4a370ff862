package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/DavidMandiel/placebed"
)

// Metrics holds the counters the CLI records. Each Metrics owns its
// registry so tests can build as many as they like.
type Metrics struct {
	Registry          *prometheus.Registry
	Normalizations    *prometheus.CounterVec
	DictionaryLookups *prometheus.CounterVec
	Queries           *prometheus.CounterVec
}

// NewMetrics creates and registers the placebed counters.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Normalizations: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: "placebed", Name: "normalizations_total", Help: "Normalized locations by country-code source."},
			[]string{"code_source"},
		),
		DictionaryLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: "placebed", Name: "dictionary_lookups_total", Help: "Dictionary lookups by field and result."},
			[]string{"field", "result"}, // result: hit|miss
		),
		Queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: "placebed", Name: "queries_total", Help: "Commands run against an entity collection."},
			[]string{"command"},
		),
	}
	m.Registry.MustRegister(m.Normalizations, m.DictionaryLookups, m.Queries)
	return m
}

// ObserveResolution records how one location was resolved. Blank fields are
// never looked up, so they are not counted.
func (m *Metrics) ObserveResolution(raw placebed.RawLocation, res placebed.Resolution) {
	m.Normalizations.WithLabelValues(string(res.CodeSource)).Inc()
	m.observeLookup("city", raw.City, res.CityHit)
	m.observeLookup("state", raw.State, res.StateHit)
	m.observeLookup("country", raw.Country, res.CountryHit)
}

func (m *Metrics) observeLookup(field, raw string, hit bool) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.DictionaryLookups.WithLabelValues(field, result).Inc()
}

// ObserveQuery counts one run of command.
func (m *Metrics) ObserveQuery(command string) {
	m.Queries.WithLabelValues(command).Inc()
}

// WriteText writes every gathered metric family in the Prometheus text
// exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.Registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
