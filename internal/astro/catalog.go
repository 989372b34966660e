// Package astro computes approximate birth charts: body longitudes, zodiac
// signs, simplified house cusps, aspects and dignities.
//
// Every function in this package is pure. Catalogs are fixed at compile time
// and handed out as copies, so charts may be computed from any number of
// goroutines without coordination.
package astro

import "slices"

// Element is the classical element of a zodiac sign.
type Element string

const (
	Fire  Element = "Fire"
	Earth Element = "Earth"
	Air   Element = "Air"
	Water Element = "Water"
)

// AspectStrength classifies an aspect type as Major or Minor.
type AspectStrength string

const (
	Major AspectStrength = "Major"
	Minor AspectStrength = "Minor"
)

// Body is a tracked celestial body with its mean orbital elements.
type Body struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Glyph          string  `json:"glyph"`
	Color          string  `json:"color"`
	MeanMotion     float64 `json:"mean_motion"`     // degrees per day
	EpochLongitude float64 `json:"epoch_longitude"` // degrees at J2000.0
	OrbitalPeriod  float64 `json:"orbital_period"`  // days

	// PerturbationAmplitude and PerturbationFrequency describe a single
	// sinusoidal correction. Both are zero for bodies without one.
	PerturbationAmplitude float64 `json:"perturbation_amplitude,omitempty"`
	PerturbationFrequency float64 `json:"perturbation_frequency,omitempty"`

	// RetrogradeFraction is the nominal share of the orbit spent retrograde.
	// Zero means the body is never flagged retrograde.
	RetrogradeFraction float64 `json:"retrograde_fraction,omitempty"`
}

// Point is a derived chart point that is not a physical body.
type Point struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
	Color string `json:"color"`
}

// Sign is one 30° sector of the zodiac.
type Sign struct {
	Name        string  `json:"name"`
	Glyph       string  `json:"glyph"`
	Element     Element `json:"element"`
	StartDegree float64 `json:"start_degree"`
	Color       string  `json:"color"`
}

// HouseMeaning describes what a house governs.
type HouseMeaning struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	Alias       string `json:"alias"`
	Description string `json:"description"`
}

// AspectType is a recognized angular relationship between two bodies.
type AspectType struct {
	Name     string         `json:"name"`
	Glyph    string         `json:"glyph"`
	Angle    float64        `json:"angle"`
	Orb      float64        `json:"orb"`
	Strength AspectStrength `json:"strength"`
	Color    string         `json:"color"`
}

// Body and point identifiers.
const (
	Sun       = "sun"
	Moon      = "moon"
	Mercury   = "mercury"
	Venus     = "venus"
	Mars      = "mars"
	Jupiter   = "jupiter"
	Saturn    = "saturn"
	Uranus    = "uranus"
	Neptune   = "neptune"
	Pluto     = "pluto"
	NorthNode = "northnode"
	SouthNode = "southnode"
	Lilith    = "lilith"
)

// Mean motions of the derived points, in degrees per day, and their
// longitudes at the reference epoch.
const (
	NorthNodeMeanMotion     = -0.0529539
	NorthNodeEpochLongitude = 125.04
	LilithMeanMotion        = 0.1114
	LilithEpochLongitude    = 181.84
)

var bodies = [...]Body{
	{ID: Sun, Name: "Sun", Glyph: "☉", Color: "#FFD700", MeanMotion: 0.9856, EpochLongitude: 280.46, OrbitalPeriod: 365.25},
	{ID: Moon, Name: "Moon", Glyph: "☽", Color: "#E6E6FA", MeanMotion: 13.1763, EpochLongitude: 218.32, OrbitalPeriod: 27.32,
		PerturbationAmplitude: 6.29, PerturbationFrequency: 13.18},
	{ID: Mercury, Name: "Mercury", Glyph: "☿", Color: "#C0C0C0", MeanMotion: 4.0923, EpochLongitude: 252.25, OrbitalPeriod: 87.97,
		PerturbationAmplitude: 23.44, PerturbationFrequency: 4.09, RetrogradeFraction: 0.19},
	{ID: Venus, Name: "Venus", Glyph: "♀", Color: "#FFC0CB", MeanMotion: 1.6021, EpochLongitude: 181.98, OrbitalPeriod: 224.70,
		PerturbationAmplitude: 0.78, PerturbationFrequency: 1.60, RetrogradeFraction: 0.07},
	{ID: Mars, Name: "Mars", Glyph: "♂", Color: "#FF4500", MeanMotion: 0.5240, EpochLongitude: 355.43, OrbitalPeriod: 686.98,
		RetrogradeFraction: 0.09},
	{ID: Jupiter, Name: "Jupiter", Glyph: "♃", Color: "#FFA500", MeanMotion: 0.0831, EpochLongitude: 34.35, OrbitalPeriod: 4332.59,
		RetrogradeFraction: 0.31},
	{ID: Saturn, Name: "Saturn", Glyph: "♄", Color: "#FAD5A5", MeanMotion: 0.0334, EpochLongitude: 50.08, OrbitalPeriod: 10759.22,
		RetrogradeFraction: 0.36},
	{ID: Uranus, Name: "Uranus", Glyph: "♅", Color: "#4FD0E7", MeanMotion: 0.0117, EpochLongitude: 314.05, OrbitalPeriod: 30688.5,
		RetrogradeFraction: 0.40},
	{ID: Neptune, Name: "Neptune", Glyph: "♆", Color: "#4169E1", MeanMotion: 0.0060, EpochLongitude: 304.35, OrbitalPeriod: 60182,
		RetrogradeFraction: 0.41},
	{ID: Pluto, Name: "Pluto", Glyph: "♇", Color: "#8B0000", MeanMotion: 0.0040, EpochLongitude: 238.96, OrbitalPeriod: 90560,
		RetrogradeFraction: 0.41},
}

var points = [...]Point{
	{ID: NorthNode, Name: "North Node", Glyph: "☊", Color: "#9370DB"},
	{ID: SouthNode, Name: "South Node", Glyph: "☋", Color: "#9370DB"},
	{ID: Lilith, Name: "Lilith", Glyph: "⚸", Color: "#8B0000"},
}

var signs = [12]Sign{
	{Name: "Aries", Glyph: "♈", Element: Fire, StartDegree: 0, Color: "#FF5757"},
	{Name: "Taurus", Glyph: "♉", Element: Earth, StartDegree: 30, Color: "#57C857"},
	{Name: "Gemini", Glyph: "♊", Element: Air, StartDegree: 60, Color: "#FFDD57"},
	{Name: "Cancer", Glyph: "♋", Element: Water, StartDegree: 90, Color: "#5E7EFF"},
	{Name: "Leo", Glyph: "♌", Element: Fire, StartDegree: 120, Color: "#FF8C57"},
	{Name: "Virgo", Glyph: "♍", Element: Earth, StartDegree: 150, Color: "#57FFCB"},
	{Name: "Libra", Glyph: "♎", Element: Air, StartDegree: 180, Color: "#FF57E2"},
	{Name: "Scorpio", Glyph: "♏", Element: Water, StartDegree: 210, Color: "#8C57FF"},
	{Name: "Sagittarius", Glyph: "♐", Element: Fire, StartDegree: 240, Color: "#FF5791"},
	{Name: "Capricorn", Glyph: "♑", Element: Earth, StartDegree: 270, Color: "#57A9FF"},
	{Name: "Aquarius", Glyph: "♒", Element: Air, StartDegree: 300, Color: "#57FFFF"},
	{Name: "Pisces", Glyph: "♓", Element: Water, StartDegree: 330, Color: "#C857FF"},
}

var houseMeanings = [12]HouseMeaning{
	{Number: 1, Name: "Ascendant", Alias: "House of Self", Description: "Identity, appearance, first impressions"},
	{Number: 2, Name: "Second House", Alias: "House of Possessions", Description: "Money, material possessions, values"},
	{Number: 3, Name: "Third House", Alias: "House of Communication", Description: "Communication, siblings, short trips"},
	{Number: 4, Name: "Fourth House", Alias: "House of Home", Description: "Home, family, roots, emotional foundation"},
	{Number: 5, Name: "Fifth House", Alias: "House of Pleasure", Description: "Creativity, romance, children, fun"},
	{Number: 6, Name: "Sixth House", Alias: "House of Health", Description: "Health, work, daily routines, service"},
	{Number: 7, Name: "Seventh House", Alias: "House of Partnership", Description: "Marriage, partnerships, open enemies"},
	{Number: 8, Name: "Eighth House", Alias: "House of Rebirth", Description: "Transformation, shared resources, death"},
	{Number: 9, Name: "Ninth House", Alias: "House of Philosophy", Description: "Higher education, philosophy, long journeys"},
	{Number: 10, Name: "Tenth House", Alias: "House of Career", Description: "Career, public reputation, authority"},
	{Number: 11, Name: "Eleventh House", Alias: "House of Friendship", Description: "Friendships, groups, hopes and dreams"},
	{Number: 12, Name: "Twelfth House", Alias: "House of Unconscious", Description: "Subconscious, karma, hidden strengths"},
}

var aspectTypes = [...]AspectType{
	{Name: "Conjunction", Glyph: "☌", Angle: 0, Orb: 8, Strength: Major, Color: "#FF0000"},
	{Name: "Opposition", Glyph: "☍", Angle: 180, Orb: 8, Strength: Major, Color: "#FF4500"},
	{Name: "Trine", Glyph: "△", Angle: 120, Orb: 8, Strength: Major, Color: "#00FF00"},
	{Name: "Square", Glyph: "□", Angle: 90, Orb: 8, Strength: Major, Color: "#FF6600"},
	{Name: "Sextile", Glyph: "⚹", Angle: 60, Orb: 6, Strength: Major, Color: "#0080FF"},
	{Name: "Quincunx", Glyph: "⚻", Angle: 150, Orb: 3, Strength: Minor, Color: "#8A2BE2"},
	{Name: "Semi-square", Glyph: "∠", Angle: 45, Orb: 2, Strength: Minor, Color: "#FF69B4"},
	{Name: "Sesquiquadrate", Glyph: "⚼", Angle: 135, Orb: 2, Strength: Minor, Color: "#FF1493"},
}

// Bodies returns the tracked bodies in catalog order.
func Bodies() []Body {
	return slices.Clone(bodies[:])
}

// Points returns the derived points in chart order.
func Points() []Point {
	return slices.Clone(points[:])
}

// Signs returns the twelve zodiac signs starting at Aries.
func Signs() []Sign {
	return slices.Clone(signs[:])
}

// HouseMeanings returns the meaning of each house, indexed by house number - 1.
func HouseMeanings() []HouseMeaning {
	return slices.Clone(houseMeanings[:])
}

// AspectTypes returns the aspect catalog. With includeMinor false only
// Major aspect types are returned.
func AspectTypes(includeMinor bool) []AspectType {
	if includeMinor {
		return slices.Clone(aspectTypes[:])
	}
	out := make([]AspectType, 0, len(aspectTypes))
	for _, at := range aspectTypes {
		if at.Strength == Major {
			out = append(out, at)
		}
	}
	return out
}

// BodyByID looks up a tracked body.
func BodyByID(id string) (Body, bool) {
	for _, b := range bodies {
		if b.ID == id {
			return b, true
		}
	}
	return Body{}, false
}

// IsKnownID reports whether id names a tracked body or a derived point.
func IsKnownID(id string) bool {
	if _, ok := BodyByID(id); ok {
		return true
	}
	for _, p := range points {
		if p.ID == id {
			return true
		}
	}
	return false
}

// DisplayName returns the human name for a body or point id, or the id itself.
func DisplayName(id string) string {
	if b, ok := BodyByID(id); ok {
		return b.Name
	}
	for _, p := range points {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

// GlyphFor returns the glyph of a body or point id, or "" if unknown.
func GlyphFor(id string) string {
	if b, ok := BodyByID(id); ok {
		return b.Glyph
	}
	for _, p := range points {
		if p.ID == id {
			return p.Glyph
		}
	}
	return ""
}

// AspectTypeByName looks up an aspect type by its display name.
func AspectTypeByName(name string) (AspectType, bool) {
	for _, at := range aspectTypes {
		if at.Name == name {
			return at, true
		}
	}
	return AspectType{}, false
}
