// Package fallback holds the deterministic demo data served when live
// lookups are skipped or fail. Nothing here performs I/O; identical
// inputs always produce identical outputs.
package fallback

import (
	"strings"
	"time"
)

// Coordinates is a geographic point the demo geocoder can resolve to.
type Coordinates struct {
	Lat float64
	Lon float64
}

// cities is the small local geocode table from the demo narrative.
var cities = map[string]Coordinates{
	"chicago":  {Lat: 41.8781, Lon: -87.6298},
	"new york": {Lat: 40.7128, Lon: -74.0060},
	"london":   {Lat: 51.5074, Lon: -0.1278},
}

// GeocodeCity resolves a city name against the local table. Matching is
// case-insensitive and ignores surrounding whitespace.
func GeocodeCity(city string) (Coordinates, bool) {
	coords, ok := cities[strings.ToLower(strings.TrimSpace(city))]
	return coords, ok
}

// Day is a single synthetic forecast entry.
type Day struct {
	Date     string
	TMax     float64
	TMin     float64
	PrecipMM float64
}

// Forecast returns days of synthetic forecast entries anchored at start.
// Day i is dated start+i days (UTC) with a fixed temperature ramp and no
// precipitation.
func Forecast(start time.Time, days int) []Day {
	daily := make([]Day, 0, days)
	for i := 0; i < days; i++ {
		daily = append(daily, Day{
			Date:     start.UTC().AddDate(0, 0, i).Format("2006-01-02"),
			TMax:     20.0 + float64(i),
			TMin:     10.0 + float64(i),
			PrecipMM: 0.0,
		})
	}
	return daily
}

// prices are the fixed demo quotes, keyed by coin id.
var prices = map[string]float64{
	"bitcoin":  50000.0,
	"ethereum": 3500.0,
	"solana":   150.0,
}

// Price returns the fixed demo price for a coin id, or 1.0 for anything
// outside the table.
func Price(coinID string) float64 {
	if price, ok := prices[coinID]; ok {
		return price
	}
	return 1.0
}
