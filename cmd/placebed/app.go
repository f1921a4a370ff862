package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/DavidMandiel/placebed"
	"github.com/DavidMandiel/placebed/internal/config"
	"github.com/DavidMandiel/placebed/internal/observability"
)

// CLI errors.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)

const usage = `usage: placebed <command> [flags]

commands:
  normalize CITY [STATE [COUNTRY]]   normalize a location
  backfill                           add normalized locations to entities lacking one
  search                             filter entities
  suggest -field city|state|country  list distinct field values
  countries                          country options with counts
  stats                              aggregate statistics
  nearby -lat LAT -lng LNG           entities within a radius, closest first
  validate                           check the dictionary tables`

type app struct {
	cfg     config.Config
	log     zerolog.Logger
	metrics *observability.Metrics
	out     io.Writer
}

func (a *app) run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	cmd, rest := args[0], args[1:]

	var err error
	switch cmd {
	case "normalize":
		err = a.normalize(rest)
	case "backfill":
		err = a.backfill(rest)
	case "search":
		err = a.search(rest)
	case "suggest":
		err = a.suggest(rest)
	case "countries":
		err = a.countries(rest)
	case "stats":
		err = a.stats(rest)
	case "nearby":
		err = a.nearby(rest)
	case "validate":
		err = a.validate()
	case "help", "-h", "--help":
		_, err = fmt.Fprintln(a.out, usage)
		return err
	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, cmd, usage)
	}
	if err == nil {
		a.metrics.ObserveQuery(cmd)
	}
	return err
}

func (a *app) newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	file := fs.String("file", a.cfg.EntitiesFile, "entities JSON file")
	return fs, file
}

func (a *app) normalize(args []string) error {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	hint := fs.String("code", "", "ISO country code hint")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	pos := fs.Args()
	if len(pos) == 0 || len(pos) > 3 {
		return fmt.Errorf("%w: normalize CITY [STATE [COUNTRY]]", ErrUsage)
	}
	raw := placebed.RawLocation{CountryCodeHint: *hint}
	raw.City = pos[0]
	if len(pos) > 1 {
		raw.State = pos[1]
	}
	if len(pos) > 2 {
		raw.Country = pos[2]
	}

	rec, res := placebed.Resolve(raw)
	a.metrics.ObserveResolution(raw, res)
	a.log.Debug().
		Str("city", raw.City).
		Str("country_code", rec.CountryCode).
		Str("code_source", string(res.CodeSource)).
		Bool("non_latin", res.NonLatin).
		Msg("normalized")

	return a.writeJSON(struct {
		Record     placebed.LocationRecord `json:"record"`
		Resolution placebed.Resolution     `json:"resolution"`
	}{rec, res})
}

func (a *app) backfill(args []string) error {
	fs, file := a.newFlagSet("backfill")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	entities, err := loadEntities(*file)
	if err != nil {
		return err
	}
	filled := 0
	for i, e := range entities {
		if e.Location != nil || (e.City == "" && e.State == "" && e.Country == "") {
			continue
		}
		raw := placebed.RawLocation{City: e.City, State: e.State, Country: e.Country}
		rec, res := placebed.Resolve(raw)
		a.metrics.ObserveResolution(raw, res)
		entities[i].Location = &rec
		filled++
	}
	a.log.Info().Int("total", len(entities)).Int("filled", filled).Msg("backfill done")
	return a.writeJSON(entities)
}

func (a *app) search(args []string) error {
	fs, file := a.newFlagSet("search")
	var f placebed.SearchFilters
	fs.StringVar(&f.Query, "q", "", "free-text query")
	fs.StringVar(&f.City, "city", "", "city filter")
	fs.StringVar(&f.State, "state", "", "state filter")
	fs.StringVar(&f.Country, "country", "", "country filter")
	fs.StringVar(&f.CountryCode, "code", "", "exact country code")
	fs.IntVar(&f.FuzzyDistance, "fuzzy", 0, "max edit distance for field filters")
	radius := fs.Float64("radius", 0, "radius in km")
	lat := fs.Float64("lat", 0, "center latitude")
	lng := fs.Float64("lng", 0, "center longitude")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "radius":
			f.Radius = radius
		case "lat":
			f.CenterLat = lat
		case "lng":
			f.CenterLng = lng
		}
	})

	entities, err := loadEntities(*file)
	if err != nil {
		return err
	}
	result := placebed.FilterByLocation(entities, f)
	a.log.Debug().Int("in", len(entities)).Int("out", len(result)).Msg("search")
	return a.writeJSON(result)
}

func (a *app) suggest(args []string) error {
	fs, file := a.newFlagSet("suggest")
	fieldName := fs.String("field", "city", "city, state or country")
	q := fs.String("q", "", "substring the values must contain")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	field, err := placebed.ParseField(*fieldName)
	if err != nil {
		return err
	}
	entities, err := loadEntities(*file)
	if err != nil {
		return err
	}
	return a.writeJSON(placebed.Suggest(entities, field, *q))
}

func (a *app) countries(args []string) error {
	fs, file := a.newFlagSet("countries")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	entities, err := loadEntities(*file)
	if err != nil {
		return err
	}
	return a.writeJSON(placebed.CountryOptions(entities))
}

func (a *app) stats(args []string) error {
	fs, file := a.newFlagSet("stats")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	entities, err := loadEntities(*file)
	if err != nil {
		return err
	}
	return a.writeJSON(placebed.Statistics(entities))
}

func (a *app) nearby(args []string) error {
	fs, file := a.newFlagSet("nearby")
	lat := fs.Float64("lat", 0, "center latitude")
	lng := fs.Float64("lng", 0, "center longitude")
	radius := fs.Float64("radius", a.cfg.RadiusKm, "radius in km")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if !set["lat"] || !set["lng"] {
		return fmt.Errorf("%w: nearby needs -lat and -lng", ErrUsage)
	}

	entities, err := loadEntities(*file)
	if err != nil {
		return err
	}
	idx := placebed.NewIndex(entities)
	result := idx.Nearby(*lat, *lng, *radius)
	a.log.Debug().
		Int("indexed", idx.Len()).
		Float64("radius_km", *radius).
		Int("found", len(result)).
		Msg("nearby")
	return a.writeJSON(result)
}

func (a *app) validate() error {
	if err := placebed.ValidateDictionary(); err != nil {
		return fmt.Errorf("dictionary validation: %w", err)
	}
	a.log.Info().Msg("dictionary OK")
	_, err := fmt.Fprintln(a.out, "dictionary OK")
	return err
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// loadEntities reads a JSON array of entities from path.
func loadEntities(path string) ([]placebed.Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading entities: %w", err)
	}
	var entities []placebed.Entity
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("decoding entities from %s: %w", path, err)
	}
	return entities, nil
}
