// Package geo holds the static table of birth places: countries with their
// default timezone and the cities whose coordinates are known.
package geo

import (
	"slices"
	"strings"

	"github.com/hpungsan/natal/internal/errors"
)

// Country is a birth country and the timezone label used by default for its cities.
type Country struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

// City is a named place with known coordinates.
type City struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"` // Country.Code
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

var countries = [...]Country{
	{Code: "US", Name: "United States", Timezone: "America/New_York"},
	{Code: "UK", Name: "United Kingdom", Timezone: "Europe/London"},
	{Code: "CA", Name: "Canada", Timezone: "America/Toronto"},
	{Code: "AU", Name: "Australia", Timezone: "Australia/Sydney"},
	{Code: "DE", Name: "Germany", Timezone: "Europe/Berlin"},
	{Code: "FR", Name: "France", Timezone: "Europe/Paris"},
	{Code: "JP", Name: "Japan", Timezone: "Asia/Tokyo"},
	{Code: "IN", Name: "India", Timezone: "Asia/Kolkata"},
	{Code: "BR", Name: "Brazil", Timezone: "America/Sao_Paulo"},
	{Code: "MX", Name: "Mexico", Timezone: "America/Mexico_City"},
	{Code: "MA", Name: "Morocco", Timezone: "Africa/Casablanca"},
	{Code: "EG", Name: "Egypt", Timezone: "Africa/Cairo"},
	{Code: "ZA", Name: "South Africa", Timezone: "Africa/Johannesburg"},
	{Code: "RU", Name: "Russia", Timezone: "Europe/Moscow"},
	{Code: "CN", Name: "China", Timezone: "Asia/Shanghai"},
	{Code: "IT", Name: "Italy", Timezone: "Europe/Rome"},
	{Code: "ES", Name: "Spain", Timezone: "Europe/Madrid"},
}

// Los Angeles and Chicago keep the US default zone label: the label is for
// display and no conversion is applied to birth times.
var cities = [...]City{
	{Name: "New York", Country: "US", Latitude: 40.7128, Longitude: -74.0060, Timezone: "America/New_York"},
	{Name: "London", Country: "UK", Latitude: 51.5074, Longitude: -0.1278, Timezone: "Europe/London"},
	{Name: "Paris", Country: "FR", Latitude: 48.8566, Longitude: 2.3522, Timezone: "Europe/Paris"},
	{Name: "Tokyo", Country: "JP", Latitude: 35.6762, Longitude: 139.6503, Timezone: "Asia/Tokyo"},
	{Name: "Sydney", Country: "AU", Latitude: -33.8688, Longitude: 151.2093, Timezone: "Australia/Sydney"},
	{Name: "Los Angeles", Country: "US", Latitude: 34.0522, Longitude: -118.2437, Timezone: "America/New_York"},
	{Name: "Chicago", Country: "US", Latitude: 41.8781, Longitude: -87.6298, Timezone: "America/New_York"},
	{Name: "Berlin", Country: "DE", Latitude: 52.5200, Longitude: 13.4050, Timezone: "Europe/Berlin"},
	{Name: "Rome", Country: "IT", Latitude: 41.9028, Longitude: 12.4964, Timezone: "Europe/Rome"},
	{Name: "Madrid", Country: "ES", Latitude: 40.4168, Longitude: -3.7038, Timezone: "Europe/Madrid"},
}

// Countries returns every known country in table order.
func Countries() []Country {
	return slices.Clone(countries[:])
}

// CountryByCode finds a country by its code, ignoring case.
func CountryByCode(code string) (Country, bool) {
	code = strings.TrimSpace(code)
	for _, c := range countries {
		if strings.EqualFold(c.Code, code) {
			return c, true
		}
	}
	return Country{}, false
}

// Cities lists the cities of one country, or all cities when country is empty.
// An unknown country yields an empty list.
func Cities(country string) []City {
	country = strings.TrimSpace(country)
	out := make([]City, 0, len(cities))
	for _, c := range cities {
		if country == "" || strings.EqualFold(c.Country, country) {
			out = append(out, c)
		}
	}
	return out
}

// LookupCity finds a city by name, ignoring case and surrounding space.
// Unknown names are NOT_FOUND rather than defaulting to (0, 0).
func LookupCity(name string) (City, error) {
	key := strings.TrimSpace(name)
	for _, c := range cities {
		if strings.EqualFold(c.Name, key) {
			return c, nil
		}
	}
	return City{}, errors.NewNotFound("city", name)
}
