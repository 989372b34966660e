package ops

import (
	"strings"

	"github.com/hpungsan/natal/internal/errors"
	"github.com/hpungsan/natal/internal/geo"
)

// CitiesInput contains parameters for the Cities operation.
type CitiesInput struct {
	Country string `json:"country,omitempty"` // country code, e.g. "US"
}

// CitiesOutput contains the result of the Cities operation.
type CitiesOutput struct {
	Cities    []geo.City    `json:"cities"`
	Countries []geo.Country `json:"countries"`
	Count     int           `json:"count"`
}

// Cities lists the birth places that can be addressed by name.
func Cities(input CitiesInput) (*CitiesOutput, error) {
	country := strings.TrimSpace(input.Country)
	countries := geo.Countries()

	if country != "" {
		c, ok := geo.CountryByCode(country)
		if !ok {
			return nil, errors.NewNotFound("country", country)
		}
		countries = []geo.Country{c}
	}

	cities := geo.Cities(country)
	return &CitiesOutput{
		Cities:    cities,
		Countries: countries,
		Count:     len(cities),
	}, nil
}
