package ops

import (
	"testing"

	"github.com/hpungsan/natal/internal/errors"
)

func TestCities_All(t *testing.T) {
	out, err := Cities(CitiesInput{})
	if err != nil {
		t.Fatalf("Cities() error = %v", err)
	}
	if out.Count != 10 || len(out.Cities) != 10 {
		t.Errorf("Count = %d, len(Cities) = %d, want 10", out.Count, len(out.Cities))
	}
	if len(out.Countries) != 17 {
		t.Errorf("len(Countries) = %d, want 17", len(out.Countries))
	}
}

func TestCities_ByCountry(t *testing.T) {
	out, err := Cities(CitiesInput{Country: "us"})
	if err != nil {
		t.Fatalf("Cities() error = %v", err)
	}
	if out.Count != 3 {
		t.Errorf("Count = %d, want 3", out.Count)
	}
	if len(out.Countries) != 1 || out.Countries[0].Code != "US" {
		t.Errorf("Countries = %+v, want [US]", out.Countries)
	}
}

func TestCities_CountryWithoutCities(t *testing.T) {
	out, err := Cities(CitiesInput{Country: "EG"})
	if err != nil {
		t.Fatalf("Cities() error = %v", err)
	}
	if out.Count != 0 || out.Cities == nil {
		t.Errorf("Cities = %v, want empty non-nil list", out.Cities)
	}
}

func TestCities_UnknownCountry(t *testing.T) {
	if _, err := Cities(CitiesInput{Country: "XX"}); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}
