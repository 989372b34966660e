package astro

// Dignity is the qualitative strength of a body in its sign.
type Dignity string

const (
	Exalted   Dignity = "Exalted"
	Dignified Dignity = "Dignified"
	Detriment Dignity = "Detriment"
	Fall      Dignity = "Fall"
	Neutral   Dignity = "Neutral"
)

// Strength is the dignity of one placement with a short reading.
type Strength struct {
	Body        string  `json:"body"`
	Sign        string  `json:"sign"`
	Dignity     Dignity `json:"dignity"`
	Description string  `json:"description"`
}

type dignitySigns struct {
	exalted, dignified, detriment, fall string
}

// Only the seven classical bodies carry dignities.
var dignityTable = map[string]dignitySigns{
	Sun:     {exalted: "Aries", dignified: "Leo", detriment: "Aquarius", fall: "Libra"},
	Moon:    {exalted: "Taurus", dignified: "Cancer", detriment: "Capricorn", fall: "Scorpio"},
	Mercury: {exalted: "Virgo", dignified: "Gemini", detriment: "Sagittarius", fall: "Pisces"},
	Venus:   {exalted: "Pisces", dignified: "Taurus", detriment: "Scorpio", fall: "Virgo"},
	Mars:    {exalted: "Capricorn", dignified: "Aries", detriment: "Libra", fall: "Cancer"},
	Jupiter: {exalted: "Cancer", dignified: "Sagittarius", detriment: "Gemini", fall: "Capricorn"},
	Saturn:  {exalted: "Libra", dignified: "Capricorn", detriment: "Cancer", fall: "Aries"},
}

var dignityDescriptions = map[Dignity]string{
	Exalted:   "This planet is exalted, expressing its highest and most refined qualities.",
	Dignified: "This planet is in its home sign, expressing natural and comfortable energy.",
	Detriment: "This planet is in detriment, creating challenges that require conscious effort to overcome.",
	Fall:      "This planet is in fall, indicating areas where growth through difficulty is possible.",
	Neutral:   "This planet has neutral dignity in this sign, expressing balanced energy.",
}

const unrankedDescription = "This celestial body has neutral dignity in all signs."

// PlanetaryStrength classifies p by comparing its sign against the body's
// dignity table. Bodies without an entry are always Neutral.
func PlanetaryStrength(p Position) Strength {
	s := Strength{Body: p.Body, Sign: p.Sign}

	d, ok := dignityTable[p.Body]
	if !ok {
		s.Dignity = Neutral
		s.Description = unrankedDescription
		return s
	}

	switch p.Sign {
	case d.exalted:
		s.Dignity = Exalted
	case d.dignified:
		s.Dignity = Dignified
	case d.detriment:
		s.Dignity = Detriment
	case d.fall:
		s.Dignity = Fall
	default:
		s.Dignity = Neutral
	}
	s.Description = dignityDescriptions[s.Dignity]
	return s
}
