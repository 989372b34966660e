package astro

import "math"

// Obliquity of the ecliptic in degrees.
const Obliquity = 23.44

// Sidereal time coefficients: GMST at 0h UT on the epoch, the daily advance,
// and the sidereal rate per civil hour.
const (
	gmstAtEpoch      = 280.46061837
	gmstDailyAdvance = 360.98564736629
	siderealPerHour  = 15.04107
)

// Houses holds the angles and the twelve cusps of a chart.
type Houses struct {
	SiderealTime float64     `json:"sidereal_time"`
	Ascendant    float64     `json:"ascendant"`
	Midheaven    float64     `json:"midheaven"`
	Cusps        [12]float64 `json:"cusps"`
}

// CalculateHouses derives local sidereal time, ascendant, midheaven and the
// house cusps for m.
func CalculateHouses(m Moment) (Houses, error) {
	if err := m.Validate(); err != nil {
		return Houses{}, err
	}
	return housesFor(m), nil
}

// housesFor assumes m has been validated.
func housesFor(m Moment) Houses {
	lst := LocalSiderealTime(m)
	asc := Ascendant(lst, m.Latitude)
	// The midheaven is taken as the local sidereal time itself.
	mc := lst
	return Houses{
		SiderealTime: lst,
		Ascendant:    asc,
		Midheaven:    mc,
		Cusps:        Cusps(asc, mc),
	}
}

// LocalSiderealTime returns the local sidereal time of m in degrees.
func LocalSiderealTime(m Moment) float64 {
	gmst0 := gmstAtEpoch + gmstDailyAdvance*m.DaysSinceEpoch()
	gmst := gmst0 + siderealPerHour*m.Hours()
	return Normalize(gmst + m.Longitude)
}

// Ascendant returns the ecliptic longitude rising in the east for the given
// local sidereal time and geographic latitude, both in degrees.
func Ascendant(lst, latitude float64) float64 {
	st := degToRad(lst)
	lat := degToRad(latitude)
	obl := degToRad(Obliquity)

	y := -math.Cos(st)
	x := math.Sin(st)*math.Cos(obl) + math.Tan(lat)*math.Sin(obl)
	return Normalize(radToDeg(math.Atan2(y, x)))
}

// Cusps lays out the twelve house cusps: houses 1-9 at 30° steps from the
// ascendant, house 10 on the midheaven and houses 11-12 at 30° steps from it.
// This is an even-spacing approximation, not Placidus.
func Cusps(asc, mc float64) [12]float64 {
	var c [12]float64
	for i := 0; i < 9; i++ {
		c[i] = Normalize(asc + 30*float64(i))
	}
	c[9] = Normalize(mc)
	c[10] = Normalize(mc + 30)
	c[11] = Normalize(mc + 60)
	return c
}

// HouseFor returns the house (1-12) containing lon.
func (h Houses) HouseFor(lon float64) int {
	return HouseForLongitude(lon, h.Cusps)
}

// HouseForLongitude returns the first house i whose arc [cusp[i], cusp[i+1])
// contains lon, walking the zodiac forward and wrapping at 360°. A longitude
// exactly on a cusp belongs to the house that cusp opens. Falls back to
// house 1 when no arc matches.
func HouseForLongitude(lon float64, cusps [12]float64) int {
	lon = Normalize(lon)
	for i := 0; i < 12; i++ {
		start := cusps[i]
		end := cusps[(i+1)%12]

		if start <= end {
			if lon >= start && lon < end {
				return i + 1
			}
			continue
		}
		// Arc crosses 0°.
		if lon >= start || lon < end {
			return i + 1
		}
	}
	return 1
}
