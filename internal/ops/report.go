package ops

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hpungsan/natal/internal/astro"
)

// Report renders a chart as a markdown document.
func Report(out *ChartOutput) string {
	var b strings.Builder
	m := out.Moment

	b.WriteString("# Birth Chart\n\n")
	fmt.Fprintf(&b, "**Born:** %04d-%02d-%02d %02d:%02d", m.Year, m.Month, m.Day, m.Hour, m.Minute)
	if m.Timezone != "" {
		fmt.Fprintf(&b, " (%s)", m.Timezone)
	}
	b.WriteString("  \n")
	place := fmt.Sprintf("%s, %s", fixed(m.Latitude, 4), fixed(m.Longitude, 4))
	if out.City != "" {
		place = fmt.Sprintf("%s (%s)", out.City, place)
	}
	fmt.Fprintf(&b, "**Place:** %s  \n", place)
	fmt.Fprintf(&b, "**Moon sign:** %s %s°  \n", out.Moon.Sign, fixed(out.Moon.Degree, 2))
	fmt.Fprintf(&b, "**Ascendant:** %s · **Midheaven:** %s\n\n",
		longitude(out.Houses.Ascendant), longitude(out.Houses.Midheaven))

	b.WriteString("## Placements\n\n")
	b.WriteString("| Body | Sign | Degree | House | Motion | Dignity |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for i, p := range out.Positions {
		motion := "direct"
		if p.Retrograde {
			motion = "retrograde"
		}
		dignity := astro.Neutral
		if i < len(out.Strengths) && out.Strengths[i].Body == p.Body {
			dignity = out.Strengths[i].Dignity
		}
		sign := astro.SignForLongitude(p.Longitude)
		fmt.Fprintf(&b, "| %s %s | %s %s | %s° | %d | %s | %s |\n",
			astro.GlyphFor(p.Body), astro.DisplayName(p.Body), sign.Glyph, p.Sign,
			fixed(p.Degree, 2), p.House, motion, dignity)
	}

	b.WriteString("\n## Aspects\n\n")
	if len(out.Aspects) == 0 {
		b.WriteString("_No aspects within orb._\n")
	} else {
		b.WriteString("| Aspect | Between | Angle | Orb | Phase |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, a := range out.Aspects {
			glyph := ""
			if at, ok := astro.AspectTypeByName(a.Type); ok {
				glyph = at.Glyph + " "
			}
			phase := "separating"
			if a.Applying {
				phase = "applying"
			}
			fmt.Fprintf(&b, "| %s%s | %s, %s | %s° | %s° | %s |\n",
				glyph, a.Type, astro.DisplayName(a.Body1), astro.DisplayName(a.Body2),
				fixed(a.Angle, 2), fixed(a.Orb, 2), phase)
		}
	}

	b.WriteString("\n## Houses\n\n")
	b.WriteString("| House | Cusp | Theme |\n")
	b.WriteString("|---|---|---|\n")
	for i, h := range astro.HouseMeanings() {
		fmt.Fprintf(&b, "| %d · %s | %s | %s |\n", h.Number, h.Alias, longitude(out.Houses.Cusps[i]), h.Description)
	}

	return b.String()
}

// longitude formats an ecliptic longitude as degrees within its sign.
func longitude(lon float64) string {
	s := astro.SignForLongitude(lon)
	return fmt.Sprintf("%s° %s", fixed(lon-s.StartDegree, 2), s.Name)
}

func fixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
