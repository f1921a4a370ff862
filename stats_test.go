package placebed

import (
	"fmt"
	"reflect"
	"testing"
)

func TestStatistics(t *testing.T) {
	ta := Normalize("תל אביב", "", "ישראל")
	jlm := Normalize("ירושלים", "", "ישראל")
	nyc := Normalize("New York", "", "United States")
	all := []Entity{
		{ID: "1", Location: &ta},
		{ID: "2", Location: &ta},
		{ID: "3", Location: &jlm},
		{ID: "4", Location: &nyc},
		{ID: "5", City: "Eilat", Country: "Israel"},
		{ID: "6", City: "Haifa-2"},
		{ID: "7", Name: "nobody"},
	}

	got := Statistics(all)
	want := Stats{
		TotalCount:   7,
		LocatedCount: 6,
		TopCities: []ValueCount{
			{"תל אביב", 2},
			{"ירושלים", 1},
			{"New York", 1},
			{"Eilat", 1},
			{"Haifa-2", 1},
		},
		TopCountries: []ValueCount{
			{"ישראל", 3},
			{"United States", 1},
			{"Israel", 1},
		},
		ScriptDistribution: ScriptDistribution{Hebrew: 3, Latin: 2, Other: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Statistics() =\n%+v\nwant\n%+v", got, want)
	}

	d := got.ScriptDistribution
	if d.Hebrew+d.Latin+d.Other != got.LocatedCount {
		t.Errorf("script buckets sum to %d, want %d", d.Hebrew+d.Latin+d.Other, got.LocatedCount)
	}
}

func TestStatisticsEmpty(t *testing.T) {
	got := Statistics(nil)
	if got.TotalCount != 0 || got.LocatedCount != 0 {
		t.Errorf("Statistics(nil) counts = %d/%d, want 0/0", got.TotalCount, got.LocatedCount)
	}
	if got.TopCities == nil || got.TopCountries == nil {
		t.Error("Statistics(nil) top lists must be empty, not nil")
	}
}

func TestStatisticsScriptSample(t *testing.T) {
	tests := []struct {
		name string
		e    Entity
		want ScriptDistribution
	}{
		{"country only hebrew", Entity{Country: "ישראל"}, ScriptDistribution{Hebrew: 1}},
		{"state only latin", Entity{State: "Texas"}, ScriptDistribution{Latin: 1}},
		{"cyrillic city", Entity{City: "Москва"}, ScriptDistribution{Other: 1}},
		{"accented latin is other", Entity{City: "Zürich"}, ScriptDistribution{Other: 1}},
		{"code only", Entity{Location: &LocationRecord{CountryCode: "IL"}}, ScriptDistribution{Other: 1}},
		{
			"hebrew country beats latin city",
			Entity{Location: &LocationRecord{CityEn: "Eilat", CityLocal: "Eilat", CountryEn: "Israel", CountryLocal: "ישראל"}},
			ScriptDistribution{Hebrew: 1},
		},
		{
			"hebrew state beats latin city",
			Entity{Location: &LocationRecord{CityLocal: "Haifa", StateLocal: "מחוז חיפה"}},
			ScriptDistribution{Hebrew: 1},
		},
		{"flat hebrew country without record", Entity{City: "Eilat", Country: "ישראל"}, ScriptDistribution{Hebrew: 1}},
		{
			"flat hebrew beside latin record",
			Entity{City: "אילת", Location: &LocationRecord{CityEn: "Eilat", CityLocal: "Eilat"}},
			ScriptDistribution{Hebrew: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Statistics([]Entity{tt.e})
			if got.LocatedCount != 1 {
				t.Fatalf("LocatedCount = %d, want 1", got.LocatedCount)
			}
			if got.ScriptDistribution != tt.want {
				t.Errorf("ScriptDistribution = %+v, want %+v", got.ScriptDistribution, tt.want)
			}
		})
	}
}

func TestStatisticsTopListCapped(t *testing.T) {
	var all []Entity
	for i := 0; i < 15; i++ {
		city := fmt.Sprintf("City %c", 'A'+i)
		for j := 0; j <= i; j++ {
			all = append(all, Entity{City: city})
		}
	}
	got := Statistics(all)
	if len(got.TopCities) != topN {
		t.Fatalf("len(TopCities) = %d, want %d", len(got.TopCities), topN)
	}
	if first := got.TopCities[0]; first.Value != "City O" || first.Count != 15 {
		t.Errorf("TopCities[0] = %+v, want City O x15", first)
	}
	for i := 1; i < len(got.TopCities); i++ {
		if got.TopCities[i].Count > got.TopCities[i-1].Count {
			t.Errorf("TopCities not sorted at %d: %+v", i, got.TopCities)
		}
	}
	if len(got.TopCountries) != 0 {
		t.Errorf("TopCountries = %+v, want empty", got.TopCountries)
	}
}
