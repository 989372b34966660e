package ops

import (
	"strings"

	"github.com/hpungsan/natal/internal/astro"
	"github.com/hpungsan/natal/internal/config"
	"github.com/hpungsan/natal/internal/errors"
)

// StrengthInput contains parameters for the Strength operation.
type StrengthInput struct {
	Birth
	Body string `json:"body"` // required, e.g. "venus" or "North Node"
}

// StrengthOutput contains the result of the Strength operation.
type StrengthOutput struct {
	Body        string        `json:"body"`
	Name        string        `json:"name"`
	Sign        string        `json:"sign"`
	Degree      float64       `json:"degree"`
	House       int           `json:"house"`
	Retrograde  bool          `json:"retrograde"`
	Dignity     astro.Dignity `json:"dignity"`
	Description string        `json:"description"`
}

// Strength classifies one body's dignity in its birth sign.
func Strength(cfg *config.Config, input StrengthInput) (*StrengthOutput, error) {
	if strings.TrimSpace(input.Body) == "" {
		return nil, errors.NewInvalidRequest("body is required")
	}
	body := normalizeBodyID(input.Body)
	if !astro.IsKnownID(body) {
		return nil, errors.NewNotFound("body", input.Body)
	}

	m, _, err := ResolveBirth(cfg, input.Birth)
	if err != nil {
		return nil, err
	}

	positions, err := astro.CalculatePositions(m)
	if err != nil {
		return nil, err
	}
	p, ok := astro.FindPosition(positions, body)
	if !ok {
		return nil, errors.NewLookupFailure(body)
	}

	s := astro.PlanetaryStrength(p)
	return &StrengthOutput{
		Body:        p.Body,
		Name:        astro.DisplayName(p.Body),
		Sign:        p.Sign,
		Degree:      p.Degree,
		House:       p.House,
		Retrograde:  p.Retrograde,
		Dignity:     s.Dignity,
		Description: s.Description,
	}, nil
}
