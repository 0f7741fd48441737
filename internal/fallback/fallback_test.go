package fallback_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mcp-demo/toolserver/internal/fallback"
)

func TestGeocodeCity(t *testing.T) {
	testCases := []struct {
		Name  string
		City  string
		Found bool
	}{
		{Name: "known city", City: "Chicago", Found: true},
		{Name: "case and whitespace insensitive", City: "  NEW YORK ", Found: true},
		{Name: "unknown city", City: "Atlantis", Found: false},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			coords, ok := fallback.GeocodeCity(tc.City)
			require.Equal(t, tc.Found, ok)
			if tc.Found {
				require.NotZero(t, coords.Lat)
			}
		})
	}
}

func TestForecast(t *testing.T) {
	start := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	for days := 1; days <= 7; days++ {
		daily := fallback.Forecast(start, days)
		require.Len(t, daily, days)
	}

	daily := fallback.Forecast(start, 3)
	require.Equal(t, "2025-03-14", daily[0].Date)
	require.Equal(t, "2025-03-16", daily[2].Date)
	require.Equal(t, 20.0, daily[0].TMax)
	require.Equal(t, 12.0, daily[2].TMin)
	require.Zero(t, daily[1].PrecipMM)

	// identical inputs yield identical outputs
	require.Equal(t, daily, fallback.Forecast(start, 3))
}

func TestPrice(t *testing.T) {
	require.Equal(t, 50000.0, fallback.Price("bitcoin"))
	require.Equal(t, 3500.0, fallback.Price("ethereum"))
	require.Equal(t, 150.0, fallback.Price("solana"))
	require.Equal(t, 1.0, fallback.Price("dogecoin"))
}
