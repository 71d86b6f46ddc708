// File: /geo/continents_test.go
package geo

import (
	"testing"
)

func TestContinentOf(t *testing.T) {
	tests := []struct {
		code string
		want Continent
	}{
		{"FRA", ContinentEurope},
		{"DEU", ContinentEurope},
		{"JPN", ContinentAsia},
		{"THA", ContinentAsia},
		{"USA", ContinentAmericas},
		{"BRA", ContinentAmericas},
		{"MAR", ContinentAfrica},
		{"ZAF", ContinentAfrica},
		{"AUS", ContinentOceania},
		{"NZL", ContinentOceania},
		{"XYZ", ContinentOther},
		{"", ContinentOther},
		{"fra", ContinentOther}, // codes are upper-case alpha-3
	}

	for _, tt := range tests {
		if got := ContinentOf(tt.code); got != tt.want {
			t.Errorf("ContinentOf(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCountriesIn(t *testing.T) {
	europe := CountriesIn(ContinentEurope)

	found := map[string]bool{}
	for _, code := range europe {
		found[code] = true
		if ContinentOf(code) != ContinentEurope {
			t.Errorf("CountriesIn(europe) returned %q which maps to %q", code, ContinentOf(code))
		}
	}

	if !found["FRA"] || !found["ITA"] {
		t.Errorf("CountriesIn(europe) missing expected members, got %d codes", len(europe))
	}
	if found["JPN"] {
		t.Error("CountriesIn(europe) must not contain JPN")
	}

	if codes := CountriesIn(ContinentOther); codes != nil {
		t.Errorf("CountriesIn(other) = %v, want nil", codes)
	}
}
