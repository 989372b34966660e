package astro

import (
	"cmp"
	"math"
	"slices"
)

// applyingShare is the fraction of an aspect's orb under which the aspect
// counts as applying.
const applyingShare = 0.8

// Aspect is one matched angular relationship between two positions.
type Aspect struct {
	Body1    string  `json:"body1"`
	Body2    string  `json:"body2"`
	Type     string  `json:"aspect"`
	Angle    float64 `json:"angle"` // separation, [0, 180]
	Orb      float64 `json:"orb"`
	Applying bool    `json:"applying"`
}

// Separation returns the shorter arc between two longitudes, in [0, 180].
// The result does not depend on argument order.
func Separation(a, b float64) float64 {
	raw := math.Abs(a - b)
	if raw > 180 {
		return 360 - raw
	}
	return raw
}

// DetectAspects scans every pair (i < j) of positions and emits one Aspect per
// aspect type whose orb is within tolerance, bound inclusive. A pair may
// match several types. The result is stably sorted by ascending orb, so
// equal orbs keep pair scan order.
func DetectAspects(positions []Position, includeMinor bool) []Aspect {
	types := AspectTypes(includeMinor)
	aspects := make([]Aspect, 0)

	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			p1, p2 := positions[i], positions[j]
			sep := Separation(p1.Longitude, p2.Longitude)

			for _, at := range types {
				orb := math.Abs(sep - at.Angle)
				if orb > at.Orb {
					continue
				}
				aspects = append(aspects, Aspect{
					Body1:    p1.Body,
					Body2:    p2.Body,
					Type:     at.Name,
					Angle:    sep,
					Orb:      orb,
					Applying: orb < at.Orb*applyingShare,
				})
			}
		}
	}

	slices.SortStableFunc(aspects, func(a, b Aspect) int {
		return cmp.Compare(a.Orb, b.Orb)
	})
	return aspects
}
