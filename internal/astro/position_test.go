package astro

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"in range", 123.25, 123.25},
		{"exactly 360", 360, 0},
		{"above 360", 720.5, 0.5},
		{"negative", -30, 330},
		{"negative full turn", -360, 0},
		{"many negative turns", -3600.75, 359.25},
		{"tiny negative rounds to zero", -1e-20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBodyLongitude_AlwaysNormalized(t *testing.T) {
	for _, b := range Bodies() {
		for days := -400000.0; days <= 400000; days += 997 {
			lon := BodyLongitude(b, days)
			if lon < 0 || lon >= 360 {
				t.Fatalf("%s at day %v: longitude %v outside [0, 360)", b.ID, days, lon)
			}
		}
	}
}

func TestBodyLongitude_AtEpoch(t *testing.T) {
	for _, b := range Bodies() {
		if got := BodyLongitude(b, 0); got != b.EpochLongitude {
			t.Errorf("%s at epoch = %v, want %v", b.ID, got, b.EpochLongitude)
		}
	}
}

func TestBodyLongitude_Perturbation(t *testing.T) {
	moon, _ := BodyByID(Moon)
	days := 10.0

	mean := moon.EpochLongitude + moon.MeanMotion*days
	want := Normalize(mean + 6.29*math.Sin(13.18*days*math.Pi/180))
	if got := BodyLongitude(moon, days); got != want {
		t.Errorf("moon at day %v = %v, want %v", days, got, want)
	}

	// Mars has no perturbation term.
	mars, _ := BodyByID(Mars)
	if got, want := BodyLongitude(mars, days), Normalize(mars.EpochLongitude+mars.MeanMotion*days); got != want {
		t.Errorf("mars at day %v = %v, want %v", days, got, want)
	}
}

func TestDerivedPoints(t *testing.T) {
	if got := NorthNodeLongitude(0); got != NorthNodeEpochLongitude {
		t.Errorf("NorthNodeLongitude(0) = %v, want %v", got, NorthNodeEpochLongitude)
	}
	if got := LilithLongitude(0); got != LilithEpochLongitude {
		t.Errorf("LilithLongitude(0) = %v, want %v", got, LilithEpochLongitude)
	}

	// The node regresses: one day later it sits at a smaller longitude.
	if NorthNodeLongitude(1) >= NorthNodeLongitude(0) {
		t.Errorf("north node should move backwards, got %v then %v", NorthNodeLongitude(0), NorthNodeLongitude(1))
	}

	for _, days := range []float64{-50000, -1, 0, 1, 12345, 9e6} {
		north := NorthNodeLongitude(days)
		south := SouthNodeLongitude(days)
		if sep := Separation(north, south); math.Abs(sep-180) > 1e-9 {
			t.Errorf("day %v: node separation = %v, want 180", days, sep)
		}
		if south < 0 || south >= 360 {
			t.Errorf("day %v: south node %v outside [0, 360)", days, south)
		}
	}
}

func TestIsRetrograde(t *testing.T) {
	mercury, _ := BodyByID(Mercury)
	sun, _ := BodyByID(Sun)
	moon, _ := BodyByID(Moon)

	// A quarter period puts the cycle at its peak.
	if !IsRetrograde(mercury, mercury.OrbitalPeriod/4) {
		t.Error("mercury at quarter period should be retrograde")
	}
	if IsRetrograde(mercury, 0) {
		t.Error("mercury at epoch should not be retrograde")
	}
	if IsRetrograde(mercury, mercury.OrbitalPeriod*3/4) {
		t.Error("mercury at three-quarter period should not be retrograde")
	}

	for days := -2000.0; days < 2000; days += 0.5 {
		if IsRetrograde(sun, days) {
			t.Fatalf("sun flagged retrograde at day %v", days)
		}
		if IsRetrograde(moon, days) {
			t.Fatalf("moon flagged retrograde at day %v", days)
		}
	}
}

func TestIsRetrograde_Deterministic(t *testing.T) {
	for _, b := range Bodies() {
		for days := -5000.0; days < 5000; days += 37 {
			if IsRetrograde(b, days) != IsRetrograde(b, days) {
				t.Fatalf("%s at day %v: retrograde flag not deterministic", b.ID, days)
			}
		}
	}
}
