package ops

import (
	"github.com/hpungsan/natal/internal/astro"
	"github.com/hpungsan/natal/internal/config"
)

// MoonSignInput contains parameters for the MoonSign operation.
type MoonSignInput struct {
	Birth
}

// MoonSignOutput contains the result of the MoonSign operation.
type MoonSignOutput struct {
	Sign    string        `json:"sign"`
	Degree  float64       `json:"degree"` // within the sign, two decimals
	Glyph   string        `json:"glyph"`
	Element astro.Element `json:"element"`
}

// MoonSign returns the sign the Moon occupies at birth.
func MoonSign(cfg *config.Config, input MoonSignInput) (*MoonSignOutput, error) {
	m, _, err := ResolveBirth(cfg, input.Birth)
	if err != nil {
		return nil, err
	}

	moon, err := astro.MoonSign(m)
	if err != nil {
		return nil, err
	}

	out := &MoonSignOutput{Sign: moon.Sign, Degree: moon.Degree}
	for _, s := range astro.Signs() {
		if s.Name == moon.Sign {
			out.Glyph = s.Glyph
			out.Element = s.Element
			break
		}
	}
	return out, nil
}
