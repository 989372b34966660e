package geo

import (
	"testing"

	"github.com/hpungsan/natal/internal/errors"
)

func TestLookupCity(t *testing.T) {
	tests := []struct {
		name     string
		want     string
		lat, lon float64
	}{
		{"New York", "New York", 40.7128, -74.0060},
		{"london", "London", 51.5074, -0.1278},
		{"  SYDNEY ", "Sydney", -33.8688, 151.2093},
		{"Madrid", "Madrid", 40.4168, -3.7038},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := LookupCity(tt.name)
			if err != nil {
				t.Fatalf("LookupCity(%q) error = %v", tt.name, err)
			}
			if c.Name != tt.want {
				t.Errorf("Name = %q, want %q", c.Name, tt.want)
			}
			if c.Latitude != tt.lat || c.Longitude != tt.lon {
				t.Errorf("coordinates = (%v, %v), want (%v, %v)", c.Latitude, c.Longitude, tt.lat, tt.lon)
			}
		})
	}
}

func TestLookupCity_Unknown(t *testing.T) {
	for _, name := range []string{"Atlantis", "", "New"} {
		_, err := LookupCity(name)
		if !errors.Is(err, errors.ErrNotFound) {
			t.Errorf("LookupCity(%q) error = %v, want NOT_FOUND", name, err)
		}
	}
}

func TestCities_Filter(t *testing.T) {
	if got := len(Cities("")); got != 10 {
		t.Errorf("len(Cities(\"\")) = %d, want 10", got)
	}

	us := Cities("us")
	if len(us) != 3 {
		t.Fatalf("len(Cities(us)) = %d, want 3", len(us))
	}
	for _, c := range us {
		if c.Country != "US" {
			t.Errorf("%s has country %q, want US", c.Name, c.Country)
		}
	}

	if got := Cities("ZZ"); len(got) != 0 {
		t.Errorf("Cities(ZZ) = %v, want empty", got)
	}
}

func TestCities_BelongToKnownCountries(t *testing.T) {
	for _, c := range Cities("") {
		country, ok := CountryByCode(c.Country)
		if !ok {
			t.Errorf("%s: unknown country %q", c.Name, c.Country)
			continue
		}
		if c.Timezone != country.Timezone {
			t.Errorf("%s: timezone %q, want country default %q", c.Name, c.Timezone, country.Timezone)
		}
		if c.Latitude <= -90 || c.Latitude >= 90 || c.Longitude < -180 || c.Longitude > 180 {
			t.Errorf("%s: coordinates out of range", c.Name)
		}
	}
}

func TestCountries_ReturnsCopy(t *testing.T) {
	a := Countries()
	a[0].Name = "changed"
	if Countries()[0].Name == "changed" {
		t.Error("Countries() exposed the backing table")
	}
}
