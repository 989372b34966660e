package ops

import (
	"github.com/hpungsan/natal/internal/astro"
	"github.com/hpungsan/natal/internal/config"
)

// AspectsInput contains parameters for the Aspects operation.
type AspectsInput struct {
	Birth
	IncludeMinor  *bool    `json:"include_minor,omitempty"`
	ExcludeBodies []string `json:"exclude_bodies,omitempty"`
}

// AspectsOutput contains the result of the Aspects operation.
type AspectsOutput struct {
	Aspects      []astro.Aspect `json:"aspects"`
	Count        int            `json:"count"`
	IncludeMinor bool           `json:"include_minor"`
}

// Aspects lists the aspects of a birth chart, tightest orb first.
func Aspects(cfg *config.Config, input AspectsInput) (*AspectsOutput, error) {
	m, _, err := ResolveBirth(cfg, input.Birth)
	if err != nil {
		return nil, err
	}

	excluded, err := resolveBodies(input.ExcludeBodies)
	if err != nil {
		return nil, err
	}

	positions, err := astro.CalculatePositions(m)
	if err != nil {
		return nil, err
	}

	minor := includeMinor(cfg, input.IncludeMinor)
	aspects := astro.DetectAspects(withoutBodies(positions, excluded), minor)

	return &AspectsOutput{
		Aspects:      aspects,
		Count:        len(aspects),
		IncludeMinor: minor,
	}, nil
}
