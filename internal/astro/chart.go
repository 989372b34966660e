package astro

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/hpungsan/natal/internal/errors"
)

// Position is the placement of one body or point in a chart.
type Position struct {
	Body       string  `json:"body"`
	Longitude  float64 `json:"longitude"` // [0, 360)
	Sign       string  `json:"sign"`
	Degree     float64 `json:"degree"` // [0, 30)
	House      int     `json:"house"`  // 1-12
	Retrograde bool    `json:"retrograde"`
}

// MoonPosition is the Moon's sign and its degree within the sign rounded to
// two decimals.
type MoonPosition struct {
	Sign   string  `json:"sign"`
	Degree float64 `json:"degree"`
}

// Chart bundles everything derived from a single Moment.
type Chart struct {
	Moment    Moment       `json:"moment"`
	Houses    Houses       `json:"houses"`
	Positions []Position   `json:"positions"`
	Aspects   []Aspect     `json:"aspects"`
	Moon      MoonPosition `json:"moon"`
	Strengths []Strength   `json:"strengths"`
}

// SignForLongitude returns the zodiac sign owning lon.
func SignForLongitude(lon float64) Sign {
	idx := int(math.Floor(Normalize(lon) / 30))
	if idx < 0 || idx >= len(signs) {
		return signs[0]
	}
	return signs[idx]
}

// Place builds the Position of a body at lon against the given cusps.
func Place(body string, lon float64, cusps [12]float64, retrograde bool) Position {
	lon = Normalize(lon)
	return Position{
		Body:       body,
		Longitude:  lon,
		Sign:       SignForLongitude(lon).Name,
		Degree:     math.Mod(lon, 30),
		House:      HouseForLongitude(lon, cusps),
		Retrograde: retrograde,
	}
}

// CalculatePositions places every catalog body followed by the north node,
// south node and Lilith.
func CalculatePositions(m Moment) ([]Position, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return positionsFor(m, housesFor(m)), nil
}

func positionsFor(m Moment, h Houses) []Position {
	days := m.DaysSinceEpoch()
	out := make([]Position, 0, len(bodies)+len(points))

	for _, b := range bodies {
		out = append(out, Place(b.ID, BodyLongitude(b, days), h.Cusps, IsRetrograde(b, days)))
	}

	// The nodes are always retrograde; Lilith never is.
	out = append(out,
		Place(NorthNode, NorthNodeLongitude(days), h.Cusps, true),
		Place(SouthNode, SouthNodeLongitude(days), h.Cusps, true),
		Place(Lilith, LilithLongitude(days), h.Cusps, false),
	)
	return out
}

// MoonSign returns the Moon's sign and degree for m.
func MoonSign(m Moment) (MoonPosition, error) {
	positions, err := CalculatePositions(m)
	if err != nil {
		return MoonPosition{}, err
	}
	return moonFrom(positions)
}

func moonFrom(positions []Position) (MoonPosition, error) {
	p, ok := FindPosition(positions, Moon)
	if !ok {
		return MoonPosition{}, errors.NewLookupFailure(Moon)
	}
	return MoonPosition{
		Sign:   p.Sign,
		Degree: decimal.NewFromFloat(p.Degree).Round(2).InexactFloat64(),
	}, nil
}

// FindPosition returns the position for body, if present.
func FindPosition(positions []Position, body string) (Position, bool) {
	for _, p := range positions {
		if p.Body == body {
			return p, true
		}
	}
	return Position{}, false
}

// Assemble computes the full chart for m. Minor aspects participate when
// includeMinor is set.
func Assemble(m Moment, includeMinor bool) (Chart, error) {
	if err := m.Validate(); err != nil {
		return Chart{}, err
	}

	h := housesFor(m)
	positions := positionsFor(m, h)
	moon, err := moonFrom(positions)
	if err != nil {
		return Chart{}, err
	}

	strengths := make([]Strength, 0, len(positions))
	for _, p := range positions {
		strengths = append(strengths, PlanetaryStrength(p))
	}

	return Chart{
		Moment:    m,
		Houses:    h,
		Positions: positions,
		Aspects:   DetectAspects(positions, includeMinor),
		Moon:      moon,
		Strengths: strengths,
	}, nil
}
