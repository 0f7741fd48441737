// Package upstream reaches the third-party data sources behind the weather
// and crypto tools. Calls are best effort: a single attempt bounded by the
// configured timeout. Any failure is reported to the handler, which serves
// fallback data instead.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/mcp-demo/toolserver/internal/config"
)

// ForecastDay is one day of an upstream forecast, normalized for the handler.
type ForecastDay struct {
	Date     string
	TMax     float64
	TMin     float64
	PrecipMM float64
}

// WeatherClient fetches daily forecasts from a weather data source.
type WeatherClient interface {
	DailyForecast(ctx context.Context, lat, lon float64, days int) ([]ForecastDay, error)
}

// weatherClientImpl talks to the open-meteo forecast API
type weatherClientImpl struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

var _ WeatherClient = &weatherClientImpl{}

// NewWeatherClient creates a WeatherClient against the given base URL.
func NewWeatherClient(baseURL string, logger *slog.Logger) WeatherClient {
	return &weatherClientImpl{
		baseURL: baseURL,
		client:  &http.Client{Timeout: config.UpstreamTimeout},
		logger:  logger,
	}
}

// openMeteoResponse mirrors the slice of the open-meteo payload we consume
type openMeteoResponse struct {
	Daily struct {
		Time             []string  `json:"time"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

func (c *weatherClientImpl) DailyForecast(
	ctx context.Context,
	lat, lon float64,
	days int,
) ([]ForecastDay, error) {
	url := fmt.Sprintf(
		"%s/v1/forecast?latitude=%s&longitude=%s&daily=temperature_2m_max,temperature_2m_min,precipitation_sum&timezone=UTC&forecast_days=%d",
		c.baseURL,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64),
		days,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building forecast request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling weather source: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("weather source returned status %d", res.StatusCode)
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding weather payload: %w", err)
	}

	dates := payload.Daily.Time
	if len(dates) == 0 ||
		len(payload.Daily.Temperature2mMax) != len(dates) ||
		len(payload.Daily.Temperature2mMin) != len(dates) {
		return nil, fmt.Errorf("weather payload is missing daily series")
	}

	daily := make([]ForecastDay, 0, len(dates))
	for i := range dates {
		day := ForecastDay{
			Date: dates[i],
			TMax: payload.Daily.Temperature2mMax[i],
			TMin: payload.Daily.Temperature2mMin[i],
		}
		// precipitation_sum can be absent from the payload
		if i < len(payload.Daily.PrecipitationSum) {
			day.PrecipMM = payload.Daily.PrecipitationSum[i]
		}
		daily = append(daily, day)
	}

	c.logger.Debug("fetched live forecast", "days", len(daily), "lat", lat, "lon", lon)
	return daily, nil
}
