package ops

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/hpungsan/natal/internal/astro"
	"github.com/hpungsan/natal/internal/config"
	"github.com/hpungsan/natal/internal/errors"
	"github.com/hpungsan/natal/internal/geo"
)

// Request limits and defaults
const (
	MaxBatchItems    = 50
	DefaultBirthTime = "12:00"

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Birth identifies when and where a chart is cast.
// Exactly one location mode is allowed: City, or Latitude + Longitude.
type Birth struct {
	Date      string   `json:"date"`           // YYYY-MM-DD
	Time      string   `json:"time,omitempty"` // HH:MM, default 12:00
	City      string   `json:"city,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Timezone  string   `json:"timezone,omitempty"`
}

// Location represents a validated birth location.
type Location struct {
	ByCity    bool
	City      string
	Latitude  float64
	Longitude float64
	Timezone  string // city default; empty for coordinates
}

// ValidateLocation validates location parameters and returns a resolved Location.
// Rules:
// - Must specify exactly one location mode: city OR (latitude + longitude)
// - If city provided with coordinates → ErrAmbiguousLocation
// - If neither provided → ErrInvalidRequest
// - Unknown city → ErrNotFound
func ValidateLocation(city string, latitude, longitude *float64) (*Location, error) {
	city = strings.TrimSpace(city)

	hasCity := city != ""
	hasCoords := latitude != nil || longitude != nil

	if hasCity && hasCoords {
		return nil, errors.NewAmbiguousLocation()
	}

	if !hasCity && !hasCoords {
		return nil, errors.NewInvalidRequest("must specify either city or latitude and longitude")
	}

	if hasCity {
		c, err := geo.LookupCity(city)
		if err != nil {
			return nil, err
		}
		return &Location{
			ByCity:    true,
			City:      c.Name,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
			Timezone:  c.Timezone,
		}, nil
	}

	if latitude == nil || longitude == nil {
		return nil, errors.NewInvalidRequest("latitude and longitude must be given together")
	}

	return &Location{
		Latitude:  *latitude,
		Longitude: *longitude,
	}, nil
}

// ResolveBirth turns request fields into a validated Moment.
// The returned Location carries the resolved city name, if any.
func ResolveBirth(cfg *config.Config, b Birth) (astro.Moment, *Location, error) {
	loc, err := ValidateLocation(b.City, b.Latitude, b.Longitude)
	if err != nil {
		return astro.Moment{}, nil, err
	}

	date := strings.TrimSpace(b.Date)
	if date == "" {
		return astro.Moment{}, nil, errors.NewInvalidRequest("date is required")
	}
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return astro.Moment{}, nil, errors.NewInvalidRequest(fmt.Sprintf("date %q must be YYYY-MM-DD", date))
	}

	clock := strings.TrimSpace(b.Time)
	if clock == "" {
		clock = DefaultBirthTime
	}
	tm, err := time.Parse(timeLayout, clock)
	if err != nil {
		return astro.Moment{}, nil, errors.NewInvalidRequest(fmt.Sprintf("time %q must be HH:MM", clock))
	}

	tz := strings.TrimSpace(b.Timezone)
	if tz == "" {
		tz = loc.Timezone
	}
	if tz == "" {
		tz = cfg.DefaultTimezone
	}

	m := astro.NewMoment(d.Year(), int(d.Month()), d.Day(), tm.Hour(), tm.Minute(), loc.Latitude, loc.Longitude, tz)
	if err := m.Validate(); err != nil {
		return astro.Moment{}, nil, err
	}
	return m, loc, nil
}

// includeMinor resolves a per-request override against the config default.
func includeMinor(cfg *config.Config, override *bool) bool {
	if override != nil {
		return *override
	}
	return cfg.IncludeMinorAspects
}

// normalizeBodyID maps "North Node", "north_node" and "NorthNode" to "northnode".
func normalizeBodyID(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(id)
}

// resolveBodies validates and normalizes a list of body ids.
func resolveBodies(ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	for _, raw := range ids {
		id := normalizeBodyID(raw)
		if id == "" {
			continue
		}
		if !astro.IsKnownID(id) {
			return nil, errors.NewNotFound("body", raw)
		}
		out = append(out, id)
	}
	return out, nil
}

// newID returns a ULID for a computed chart.
func newID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
