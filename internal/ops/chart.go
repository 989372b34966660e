package ops

import (
	"slices"

	"github.com/hpungsan/natal/internal/astro"
	"github.com/hpungsan/natal/internal/config"
)

// ChartInput contains parameters for the Chart operation.
type ChartInput struct {
	Birth
	IncludeMinor  *bool    `json:"include_minor,omitempty"`  // default: config include_minor_aspects
	ExcludeBodies []string `json:"exclude_bodies,omitempty"` // left out of aspect detection
}

// ChartOutput contains the result of the Chart operation.
type ChartOutput struct {
	ID           string             `json:"id"`
	City         string             `json:"city,omitempty"`
	Moment       astro.Moment       `json:"moment"`
	Houses       astro.Houses       `json:"houses"`
	Positions    []astro.Position   `json:"positions"`
	Aspects      []astro.Aspect     `json:"aspects"`
	Moon         astro.MoonPosition `json:"moon"`
	Strengths    []astro.Strength   `json:"strengths"`
	IncludeMinor bool               `json:"include_minor"`
	Excluded     []string           `json:"excluded,omitempty"`
}

// Chart casts a full birth chart.
// Excluded bodies keep their placements but take no part in aspects.
func Chart(cfg *config.Config, input ChartInput) (*ChartOutput, error) {
	m, loc, err := ResolveBirth(cfg, input.Birth)
	if err != nil {
		return nil, err
	}

	excluded, err := resolveBodies(input.ExcludeBodies)
	if err != nil {
		return nil, err
	}

	minor := includeMinor(cfg, input.IncludeMinor)
	chart, err := astro.Assemble(m, minor)
	if err != nil {
		return nil, err
	}

	if len(excluded) > 0 {
		chart.Aspects = astro.DetectAspects(withoutBodies(chart.Positions, excluded), minor)
	}

	return &ChartOutput{
		ID:           newID(),
		City:         loc.City,
		Moment:       chart.Moment,
		Houses:       chart.Houses,
		Positions:    chart.Positions,
		Aspects:      chart.Aspects,
		Moon:         chart.Moon,
		Strengths:    chart.Strengths,
		IncludeMinor: minor,
		Excluded:     excluded,
	}, nil
}

func withoutBodies(positions []astro.Position, excluded []string) []astro.Position {
	out := make([]astro.Position, 0, len(positions))
	for _, p := range positions {
		if !slices.Contains(excluded, p.Body) {
			out = append(out, p)
		}
	}
	return out
}
