package astro

import "math"

// Normalize maps any finite angle into [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// Adding 360 to a tiny negative value can round up to exactly 360.
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// BodyLongitude returns the ecliptic longitude of b after the given number
// of days since J2000.0: mean longitude plus the body's sinusoidal
// perturbation, normalized to [0, 360).
func BodyLongitude(b Body, days float64) float64 {
	mean := b.EpochLongitude + b.MeanMotion*days
	return Normalize(mean + perturbation(b, days))
}

func perturbation(b Body, days float64) float64 {
	if b.PerturbationAmplitude == 0 {
		return 0
	}
	return b.PerturbationAmplitude * math.Sin(b.PerturbationFrequency*days*math.Pi/180)
}

// NorthNodeLongitude returns the mean lunar node, which regresses through
// the zodiac.
func NorthNodeLongitude(days float64) float64 {
	return Normalize(NorthNodeEpochLongitude + NorthNodeMeanMotion*days)
}

// SouthNodeLongitude returns the point opposite the north node.
func SouthNodeLongitude(days float64) float64 {
	return Normalize(NorthNodeLongitude(days) + 180)
}

// LilithLongitude returns the mean Black Moon Lilith.
func LilithLongitude(days float64) float64 {
	return Normalize(LilithEpochLongitude + LilithMeanMotion*days)
}

// IsRetrograde applies the orbital-cycle heuristic: a body is flagged
// retrograde while sin(2π·days/period) exceeds 1 - 2·fraction. This is a
// proxy, not a velocity check, and is a pure function of the day offset.
func IsRetrograde(b Body, days float64) bool {
	if b.RetrogradeFraction == 0 || b.OrbitalPeriod == 0 {
		return false
	}
	cycle := math.Sin(days / b.OrbitalPeriod * 2 * math.Pi)
	return cycle > 1-b.RetrogradeFraction*2
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
