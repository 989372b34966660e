package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/natal/internal/astro"
	"github.com/hpungsan/natal/internal/config"
)

// TestFullWorkflow exercises the operations the way a caller chains them:
// cities → chart → moon sign → strength → aspects → batch → report
func TestFullWorkflow(t *testing.T) {
	cfg := config.DefaultConfig()

	// 1. Pick a city from the table
	cities, err := Cities(CitiesInput{Country: "DE"})
	require.NoError(t, err)
	require.Len(t, cities.Cities, 1)
	city := cities.Cities[0].Name
	require.Equal(t, "Berlin", city)

	birth := Birth{Date: "1989-11-09", Time: "18:57", City: city}

	// 2. Cast the chart
	chart, err := Chart(cfg, ChartInput{Birth: birth, IncludeMinor: boolPtr(true)})
	require.NoError(t, err)
	require.Equal(t, "Europe/Berlin", chart.Moment.Timezone)
	require.Len(t, chart.Positions, 13)

	// 3. Moon sign agrees with the chart
	moon, err := MoonSign(cfg, MoonSignInput{Birth: birth})
	require.NoError(t, err)
	require.Equal(t, chart.Moon.Sign, moon.Sign)
	require.Equal(t, chart.Moon.Degree, moon.Degree)

	// 4. Strength of every body agrees with the chart
	for i, p := range chart.Positions {
		s, err := Strength(cfg, StrengthInput{Birth: birth, Body: p.Body})
		require.NoError(t, err)
		require.Equal(t, p.Sign, s.Sign)
		require.Equal(t, p.House, s.House)
		require.Equal(t, chart.Strengths[i].Dignity, s.Dignity)
		require.Equal(t, astro.DisplayName(p.Body), s.Name)
	}

	// 5. Aspects agree with the chart
	aspects, err := Aspects(cfg, AspectsInput{Birth: birth, IncludeMinor: boolPtr(true)})
	require.NoError(t, err)
	require.Equal(t, chart.Aspects, aspects.Aspects)

	// 6. The same birth in a batch yields the same placements
	batch, err := Batch(context.Background(), cfg, BatchInput{
		IncludeMinor: boolPtr(true),
		Items:        []ChartInput{{Birth: birth}, {Birth: birth}},
	})
	require.NoError(t, err)
	require.Len(t, batch.Items, 2)
	require.Empty(t, batch.Errors)
	for _, item := range batch.Items {
		require.Equal(t, chart.Positions, item.Chart.Positions)
		require.Equal(t, chart.Aspects, item.Chart.Aspects)
		require.NotEqual(t, chart.ID, item.Chart.ID)
	}

	// 7. Report mentions the city and every body
	report := Report(chart)
	require.Contains(t, report, "Berlin")
	for _, p := range chart.Positions {
		require.Contains(t, report, astro.DisplayName(p.Body))
	}
}
