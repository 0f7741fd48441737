package tools_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcp-demo/toolserver/internal/tools"
	"github.com/mcp-demo/toolserver/internal/upstream"
)

func TestWeather_Validation(t *testing.T) {
	testCases := []struct {
		Name    string
		Body    map[string]any
		Message string
	}{
		{
			Name:    "days too small",
			Body:    map[string]any{"city": "Chicago", "days": 0},
			Message: "days must be between 1 and 7",
		},
		{
			Name:    "days too large",
			Body:    map[string]any{"city": "Chicago", "days": 8},
			Message: "days must be between 1 and 7",
		},
		{
			Name:    "unknown city",
			Body:    map[string]any{"city": "Atlantis", "days": 1},
			Message: "unknown city",
		},
		{
			Name:    "no location",
			Body:    map[string]any{"days": 1},
			Message: "provide city or lat/lon",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			weather := &stubWeather{}
			srv, _ := newTestServer(t, weather, nil)

			var body map[string]string
			res := doJSON(t, srv.Routes(), http.MethodPost, "/mcp/weather", tc.Body, nil, &body)
			require.Equal(t, http.StatusBadRequest, res.StatusCode)
			require.Equal(t, tc.Message, body["error"])
			require.False(t, weather.called, "validation errors must never reach the adapter")
		})
	}
}

func TestWeather_FallbackHeader(t *testing.T) {
	weather := &stubWeather{}
	srv, _ := newTestServer(t, weather, nil)
	routes := srv.Routes()

	for days := 1; days <= 7; days++ {
		var first, second tools.WeatherResponse
		body := map[string]any{"city": "Chicago", "days": days}
		res := doJSON(t, routes, http.MethodPost, "/mcp/weather", body, fallbackHeaders, &first)
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.Len(t, first.Daily, days)
		require.Equal(t, tools.SourceFallback, first.Source)
		require.Equal(t, "Chicago", first.Location)

		// repeated calls are identical
		doJSON(t, routes, http.MethodPost, "/mcp/weather", body, fallbackHeaders, &second)
		require.Equal(t, first, second)
	}
	require.False(t, weather.called, "fallback header must skip the adapter")
}

func TestWeather_UpstreamFailureFallsBack(t *testing.T) {
	srv, _ := newTestServer(t, &stubWeather{err: errUpstreamDown}, nil)

	var resp tools.WeatherResponse
	body := map[string]any{"city": "London", "days": 3}
	res := doJSON(t, srv.Routes(), http.MethodPost, "/mcp/weather", body, nil, &resp)
	require.Equal(t, http.StatusOK, res.StatusCode, "upstream failure degrades silently")
	require.Equal(t, tools.SourceFallback, resp.Source)
	require.Len(t, resp.Daily, 3)
}

func TestWeather_LivePath(t *testing.T) {
	weather := &stubWeather{daily: []upstream.ForecastDay{
		{Date: "2025-06-01", TMax: 24.1, TMin: 14.0, PrecipMM: 0.2},
	}}
	srv, _ := newTestServer(t, weather, nil)

	var resp tools.WeatherResponse
	body := map[string]any{"city": "new york", "days": 1}
	res := doJSON(t, srv.Routes(), http.MethodPost, "/mcp/weather", body, nil, &resp)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, tools.SourceLive, resp.Source)
	require.Equal(t, "2025-06-01", resp.Daily[0].Date)
	require.Equal(t, 24.1, resp.Daily[0].TMax)
}

func TestWeather_Coordinates(t *testing.T) {
	srv, _ := newTestServer(t, &stubWeather{err: errUpstreamDown}, nil)

	var resp tools.WeatherResponse
	body := map[string]any{"lat": 48.8566, "lon": 2.3522, "days": 1}
	res := doJSON(t, srv.Routes(), http.MethodPost, "/mcp/weather", body, nil, &resp)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "48.8566,2.3522", resp.Location)
}
