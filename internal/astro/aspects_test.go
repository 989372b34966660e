package astro

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// at builds a bare position for aspect tests; only body and longitude matter.
func at(body string, lon float64) Position {
	return Position{Body: body, Longitude: lon}
}

func TestSeparation(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{0, 0, 0},
		{10, 190, 180},
		{350, 10, 20},
		{10, 350, 20},
		{0, 179.5, 179.5},
		{0, 180.5, 179.5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Separation(tt.a, tt.b), "Separation(%v, %v)", tt.a, tt.b)
	}

	for a := 0.0; a < 360; a += 13.25 {
		for b := 0.0; b < 360; b += 17.5 {
			s := Separation(a, b)
			require.Equal(t, s, Separation(b, a))
			require.True(t, s >= 0 && s <= 180, "Separation(%v, %v) = %v", a, b, s)
		}
	}
}

func TestDetectAspects_Opposition(t *testing.T) {
	got := DetectAspects([]Position{at(Sun, 10), at(Moon, 190)}, true)

	want := []Aspect{{Body1: Sun, Body2: Moon, Type: "Opposition", Angle: 180, Orb: 0, Applying: true}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("aspects mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectAspects_OrbBoundIsInclusive(t *testing.T) {
	got := DetectAspects([]Position{at(Sun, 100), at(Mars, 108)}, false)
	require.Len(t, got, 1)
	assert.Equal(t, "Conjunction", got[0].Type)
	assert.Equal(t, 8.0, got[0].Orb)
	assert.False(t, got[0].Applying, "an aspect at its full orb is separating")

	got = DetectAspects([]Position{at(Sun, 100), at(Mars, 108.0001)}, false)
	assert.Empty(t, got)
}

func TestDetectAspects_Sextile(t *testing.T) {
	got := DetectAspects([]Position{at(Venus, 0), at(Jupiter, 66)}, true)
	require.Len(t, got, 1)
	assert.Equal(t, "Sextile", got[0].Type)
	assert.Equal(t, 6.0, got[0].Orb)
}

func TestDetectAspects_Applying(t *testing.T) {
	// Square orb is 8, so anything under 6.4 applies.
	got := DetectAspects([]Position{at(Sun, 0), at(Moon, 96)}, false)
	require.Len(t, got, 1)
	assert.True(t, got[0].Applying)

	got = DetectAspects([]Position{at(Sun, 0), at(Moon, 97)}, false)
	require.Len(t, got, 1)
	assert.False(t, got[0].Applying)
}

func TestDetectAspects_SortedByOrb(t *testing.T) {
	got := DetectAspects([]Position{at(Sun, 0), at(Moon, 1), at(Mars, 95)}, true)

	want := []Aspect{
		{Body1: Sun, Body2: Moon, Type: "Conjunction", Angle: 1, Orb: 1, Applying: true},
		{Body1: Moon, Body2: Mars, Type: "Square", Angle: 94, Orb: 4, Applying: true},
		{Body1: Sun, Body2: Mars, Type: "Square", Angle: 95, Orb: 5, Applying: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("aspects mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectAspects_EqualOrbsKeepScanOrder(t *testing.T) {
	got := DetectAspects([]Position{at(Sun, 0), at(Moon, 90), at(Mars, 180)}, false)

	want := []Aspect{
		{Body1: Sun, Body2: Moon, Type: "Square", Angle: 90, Applying: true},
		{Body1: Sun, Body2: Mars, Type: "Opposition", Angle: 180, Applying: true},
		{Body1: Moon, Body2: Mars, Type: "Square", Angle: 90, Applying: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("aspects mismatch (-want +got):\n%s", diff)
	}
}

func TestDetectAspects_MinorFilter(t *testing.T) {
	positions := []Position{at(Saturn, 0), at(Uranus, 150)}

	got := DetectAspects(positions, false)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = DetectAspects(positions, true)
	require.Len(t, got, 1)
	assert.Equal(t, "Quincunx", got[0].Type)
}

func TestDetectAspects_Empty(t *testing.T) {
	assert.Empty(t, DetectAspects(nil, true))
	assert.Empty(t, DetectAspects([]Position{at(Sun, 0)}, true))
}

func TestDetectAspects_ResultsWithinOrb(t *testing.T) {
	chart, err := Assemble(NewMoment(1955, 2, 24, 19, 15, 37.7749, -122.4194, ""), true)
	require.NoError(t, err)

	orbs := map[string]float64{}
	for _, typ := range AspectTypes(true) {
		orbs[typ.Name] = typ.Orb
	}

	prev := -1.0
	for _, a := range chart.Aspects {
		require.LessOrEqual(t, a.Orb, orbs[a.Type], "%s %s %s", a.Body1, a.Type, a.Body2)
		require.GreaterOrEqual(t, a.Orb, prev, "aspects must be sorted by orb")
		require.NotEqual(t, a.Body1, a.Body2)
		prev = a.Orb
	}
}

func TestAspectTypes(t *testing.T) {
	assert.Len(t, AspectTypes(true), 8)

	major := AspectTypes(false)
	assert.Len(t, major, 5)
	for _, typ := range major {
		assert.Equal(t, Major, typ.Strength, typ.Name)
	}
}
