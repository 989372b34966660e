package astro

import (
	"math"
	"time"

	"github.com/hpungsan/natal/internal/errors"
)

const secondsPerDay = 86400

// epoch is J2000.0 expressed as civil fields.
var epoch = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// Moment is a birth instant plus the observer's location.
//
// The calendar fields are used exactly as given: no timezone conversion is
// applied. Timezone is an opaque label carried for display only.
type Moment struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
}

// NewMoment builds a Moment from civil fields and coordinates.
func NewMoment(year, month, day, hour, minute int, latitude, longitude float64, timezone string) Moment {
	return Moment{
		Year:      year,
		Month:     month,
		Day:       day,
		Hour:      hour,
		Minute:    minute,
		Latitude:  latitude,
		Longitude: longitude,
		Timezone:  timezone,
	}
}

// EpochMoment returns the reference epoch at the given location.
func EpochMoment(latitude, longitude float64) Moment {
	return NewMoment(epoch.Year(), int(epoch.Month()), epoch.Day(), epoch.Hour(), epoch.Minute(), latitude, longitude, "UTC")
}

// Validate rejects coordinates and calendar fields that would otherwise feed
// undefined values into the trigonometry.
//
// Latitude must lie strictly inside (-90, 90): at the poles tan(latitude)
// diverges and the ascendant is undefined.
func (m Moment) Validate() error {
	if math.IsNaN(m.Latitude) || math.IsInf(m.Latitude, 0) {
		return errors.NewInvalidInput("latitude", m.Latitude, "must be a finite number")
	}
	if m.Latitude <= -90 || m.Latitude >= 90 {
		return errors.NewInvalidInput("latitude", m.Latitude, "must be strictly between -90 and 90")
	}
	if math.IsNaN(m.Longitude) || math.IsInf(m.Longitude, 0) {
		return errors.NewInvalidInput("longitude", m.Longitude, "must be a finite number")
	}
	if m.Longitude < -180 || m.Longitude > 180 {
		return errors.NewInvalidInput("longitude", m.Longitude, "must be between -180 and 180")
	}
	if m.Month < 1 || m.Month > 12 {
		return errors.NewInvalidInput("month", float64(m.Month), "must be between 1 and 12")
	}
	if m.Day < 1 || m.Day > daysIn(m.Year, m.Month) {
		return errors.NewInvalidInput("day", float64(m.Day), "is not a day of the given month")
	}
	if m.Hour < 0 || m.Hour > 23 {
		return errors.NewInvalidInput("hour", float64(m.Hour), "must be between 0 and 23")
	}
	if m.Minute < 0 || m.Minute > 59 {
		return errors.NewInvalidInput("minute", float64(m.Minute), "must be between 0 and 59")
	}
	return nil
}

// DaysSinceEpoch returns the number of whole days between J2000.0 and the
// moment, truncated toward zero. Working in Unix seconds keeps the result
// exact for years far outside the range of time.Duration.
func (m Moment) DaysSinceEpoch() float64 {
	secs := m.civil().Unix() - epoch.Unix()
	return float64(secs / secondsPerDay)
}

// Hours returns the local civil hour with minutes as a fraction.
func (m Moment) Hours() float64 {
	return float64(m.Hour) + float64(m.Minute)/60
}

func (m Moment) civil() time.Time {
	return time.Date(m.Year, time.Month(m.Month), m.Day, m.Hour, m.Minute, 0, 0, time.UTC)
}

// daysIn returns the number of days in the month, proleptic Gregorian.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
