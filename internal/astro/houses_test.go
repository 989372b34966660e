package astro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpungsan/natal/internal/errors"
)

func TestCusps_EvenSpacing(t *testing.T) {
	c := Cusps(100, 10)

	want := [12]float64{100, 130, 160, 190, 220, 250, 280, 310, 340, 10, 40, 70}
	assert.Equal(t, want, c)
}

func TestCusps_WrapAtSeam(t *testing.T) {
	c := Cusps(350, 260)

	assert.Equal(t, 350.0, c[0])
	assert.Equal(t, 20.0, c[1])
	assert.Equal(t, 170.0, c[6])
	assert.Equal(t, 260.0, c[9])
	assert.Equal(t, 320.0, c[11])
}

// monotonicCusps returns a non-degenerate cusp array where the midheaven
// lands exactly where the even spacing from the ascendant would put it.
func monotonicCusps(asc float64) [12]float64 {
	return Cusps(asc, Normalize(asc+270))
}

func TestHouseForLongitude_Partition(t *testing.T) {
	for _, asc := range []float64{0, 15, 200.5, 347} {
		cusps := monotonicCusps(asc)

		for q := 0; q < 360*4; q++ {
			lon := float64(q) / 4

			matches := 0
			owner := 0
			for i := 0; i < 12; i++ {
				if inArc(lon, cusps[i], cusps[(i+1)%12]) {
					matches++
					owner = i + 1
				}
			}
			require.Equal(t, 1, matches, "asc=%v lon=%v should fall in exactly one arc", asc, lon)
			require.Equal(t, owner, HouseForLongitude(lon, cusps), "asc=%v lon=%v", asc, lon)
		}
	}
}

func inArc(lon, start, end float64) bool {
	if start <= end {
		return lon >= start && lon < end
	}
	return lon >= start || lon < end
}

func TestHouseForLongitude_CuspBelongsToOpeningHouse(t *testing.T) {
	cusps := monotonicCusps(15) // 15, 45, ..., 345

	tests := []struct {
		name string
		lon  float64
		want int
	}{
		{"first cusp", 15, 1},
		{"second cusp", 45, 2},
		{"tenth cusp", 285, 10},
		{"twelfth cusp", 345, 12},
		{"just before first cusp", 14.999, 12},
		{"seam, after 360", 0, 12},
		{"seam, before 360", 359.5, 12},
		{"unnormalized input", 375, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HouseForLongitude(tt.lon, cusps); got != tt.want {
				t.Errorf("HouseForLongitude(%v) = %d, want %d", tt.lon, got, tt.want)
			}
		})
	}
}

func TestHouseForLongitude_DegenerateFallsBackToFirst(t *testing.T) {
	var cusps [12]float64 // every arc is empty

	for _, lon := range []float64{0, 90, 359} {
		if got := HouseForLongitude(lon, cusps); got != 1 {
			t.Errorf("HouseForLongitude(%v) = %d, want fallback 1", lon, got)
		}
	}
}

func TestLocalSiderealTime_AtEpoch(t *testing.T) {
	m := EpochMoment(0, 0)

	// 280.46061837 + 15.04107 * 12h
	assert.InDelta(t, Normalize(280.46061837+15.04107*12), LocalSiderealTime(m), 1e-9)

	east := EpochMoment(0, 30)
	assert.InDelta(t, Normalize(LocalSiderealTime(m)+30), LocalSiderealTime(east), 1e-9)
}

func TestAscendant(t *testing.T) {
	// On the equator with LST 0° the ascendant sits at 270°.
	assert.InDelta(t, 270, Ascendant(0, 0), 1e-9)
	assert.InDelta(t, 90, Ascendant(180, 0), 1e-9)

	for lst := 0.0; lst < 360; lst += 7.5 {
		for _, lat := range []float64{-89.9, -45, 0, 51.5, 89.9} {
			asc := Ascendant(lst, lat)
			if math.IsNaN(asc) || asc < 0 || asc >= 360 {
				t.Fatalf("Ascendant(%v, %v) = %v", lst, lat, asc)
			}
		}
	}
}

func TestCalculateHouses(t *testing.T) {
	m := NewMoment(1990, 6, 15, 14, 30, 40.7128, -74.0060, "America/New_York")

	h, err := CalculateHouses(m)
	require.NoError(t, err)

	assert.Equal(t, h.Ascendant, h.Cusps[0])
	assert.Equal(t, h.Midheaven, h.Cusps[9])
	assert.Equal(t, h.SiderealTime, h.Midheaven)
	assert.Equal(t, Normalize(h.Ascendant+180), h.Cusps[6])
	for i, c := range h.Cusps {
		assert.True(t, c >= 0 && c < 360, "cusp %d = %v", i, c)
	}
	assert.Equal(t, HouseForLongitude(123, h.Cusps), h.HouseFor(123))
}

func TestCalculateHouses_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
	}{
		{"north pole", 90, 0},
		{"south pole", -90, 0},
		{"latitude beyond pole", 91, 0},
		{"latitude NaN", math.NaN(), 0},
		{"longitude too far east", 0, 180.5},
		{"longitude too far west", 0, -181},
		{"longitude infinite", 0, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateHouses(NewMoment(2000, 1, 1, 12, 0, tt.lat, tt.lon, ""))
			if !errors.Is(err, errors.ErrInvalidInput) {
				t.Errorf("CalculateHouses error = %v, want INVALID_INPUT", err)
			}
		})
	}
}
