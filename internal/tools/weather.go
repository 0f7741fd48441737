package tools

import (
	"fmt"
	"net/http"

	"github.com/mcp-demo/toolserver/internal/fallback"
)

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	var req WeatherRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Days < 1 || req.Days > 7 {
		s.sendError(w, http.StatusBadRequest, "days must be between 1 and 7")
		return
	}

	var lat, lon float64
	var location string
	switch {
	case req.City != "":
		coords, ok := fallback.GeocodeCity(req.City)
		if !ok {
			s.sendError(w, http.StatusBadRequest, "unknown city")
			return
		}
		lat, lon = coords.Lat, coords.Lon
		location = req.City
	case req.Lat != nil && req.Lon != nil:
		lat, lon = *req.Lat, *req.Lon
		location = fmt.Sprintf("%v,%v", lat, lon)
	default:
		s.sendError(w, http.StatusBadRequest, "provide city or lat/lon")
		return
	}

	if fallbackRequested(r) {
		s.sendJSON(w, http.StatusOK, s.fallbackWeather(location, req.Days))
		return
	}

	upstreamDaily, err := s.weather.DailyForecast(r.Context(), lat, lon, req.Days)
	if err != nil {
		// graceful degradation: the caller only sees the source flag change
		s.logger.Debug("weather lookup failed, serving fallback", "error", err)
		s.sendJSON(w, http.StatusOK, s.fallbackWeather(location, req.Days))
		return
	}

	daily := make([]ForecastDay, 0, len(upstreamDaily))
	for _, day := range upstreamDaily {
		daily = append(daily, ForecastDay{
			Date:     day.Date,
			TMax:     day.TMax,
			TMin:     day.TMin,
			PrecipMM: day.PrecipMM,
		})
	}
	s.sendJSON(w, http.StatusOK, WeatherResponse{
		Location: location,
		Daily:    daily,
		Source:   SourceLive,
	})
}

// fallbackWeather builds the deterministic mini-forecast anchored at
// process start, so repeated calls return identical data.
func (s *Server) fallbackWeather(location string, days int) WeatherResponse {
	daily := make([]ForecastDay, 0, days)
	for _, day := range fallback.Forecast(s.start, days) {
		daily = append(daily, ForecastDay{
			Date:     day.Date,
			TMax:     day.TMax,
			TMin:     day.TMin,
			PrecipMM: day.PrecipMM,
		})
	}
	return WeatherResponse{Location: location, Daily: daily, Source: SourceFallback}
}
