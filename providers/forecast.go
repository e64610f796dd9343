package providers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"cityweather.app/activity"
	"cityweather.app/cityid"
	"cityweather.app/config"
	"cityweather.app/errors"
	"cityweather.app/metrics"
	"cityweather.app/models"
)

const forecastDays = 7

// OpenMeteoForecastProvider implements ForecastProvider for the Open-Meteo
// forecast API
type OpenMeteoForecastProvider struct {
	baseURL string
	client  *http.Client
	ranker  ActivityRanker
	metrics *metrics.UpstreamMetrics
}

type forecastResponse struct {
	Current struct {
		Temperature2m      float64 `json:"temperature_2m"`
		RelativeHumidity2m float64 `json:"relative_humidity_2m"`
		Precipitation      float64 `json:"precipitation"`
		WeatherCode        int     `json:"weather_code"`
		WindSpeed10m       float64 `json:"wind_speed_10m"`
	} `json:"current"`
	Daily struct {
		Time             []string  `json:"time"`
		WeatherCode      []int     `json:"weather_code"`
		Temperature2mMax []float64 `json:"temperature_2m_max"`
		Temperature2mMin []float64 `json:"temperature_2m_min"`
		PrecipitationSum []float64 `json:"precipitation_sum"`
		WindSpeed10mMax  []float64 `json:"wind_speed_10m_max"`
	} `json:"daily"`
}

// NewForecastProvider creates a new Open-Meteo forecast provider
func NewForecastProvider(cfg *config.ForecastConfig, ranker ActivityRanker, upstreamMetrics *metrics.UpstreamMetrics) *OpenMeteoForecastProvider {
	return &OpenMeteoForecastProvider{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		ranker:  ranker,
		metrics: upstreamMetrics,
	}
}

// GetWeatherData fetches current conditions plus a 7-day daily series and
// ranks activities for each day. Coordinates are validated before any network
// request is made.
func (p *OpenMeteoForecastProvider) GetWeatherData(lat, lon float64, topActivities int) (*models.WeatherResponse, error) {
	if !cityid.ValidateCoordinate(lat, lon) {
		return nil, errors.NewInvalidCoordinatesError(
			fmt.Sprintf("invalid coordinates: %s,%s", formatCoord(lat), formatCoord(lon)))
	}

	requestURL := fmt.Sprintf(
		"%s/forecast?latitude=%s&longitude=%s"+
			"&current=temperature_2m,relative_humidity_2m,precipitation,weather_code,wind_speed_10m"+
			"&daily=weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum,wind_speed_10m_max"+
			"&timezone=auto&forecast_days=%d",
		p.baseURL, formatCoord(lat), formatCoord(lon), forecastDays)

	start := time.Now()
	resp, err := p.client.Get(requestURL)
	if err != nil {
		p.metrics.RecordRequest(false, time.Since(start))
		return nil, classifyTransportError(errors.SourceForecast, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("close forecast response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		p.metrics.RecordRequest(false, time.Since(start))
		return nil, classifyStatusError(errors.SourceForecast, resp.Status, resp.StatusCode)
	}

	var apiResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		p.metrics.RecordRequest(false, time.Since(start))
		return nil, errors.NewUpstreamError("failed to decode forecast response", err).
			WithSource(errors.SourceForecast)
	}
	p.metrics.RecordRequest(true, time.Since(start))

	forecast := make([]models.DailyForecast, 0, len(apiResp.Daily.Time))
	for i, date := range apiResp.Daily.Time {
		summary := activity.DaySummary{
			Date:          date,
			MaxTemp:       dayValue(apiResp.Daily.Temperature2mMax, i),
			MinTemp:       dayValue(apiResp.Daily.Temperature2mMin, i),
			Conditions:    CodeToCondition(dayCode(apiResp.Daily.WeatherCode, i)),
			Precipitation: dayValue(apiResp.Daily.PrecipitationSum, i),
			WindSpeed:     dayValue(apiResp.Daily.WindSpeed10mMax, i),
		}

		forecast = append(forecast, models.DailyForecast{
			Date:          summary.Date,
			MaxTemp:       summary.MaxTemp,
			MinTemp:       summary.MinTemp,
			Conditions:    summary.Conditions,
			Precipitation: summary.Precipitation,
			WindSpeed:     summary.WindSpeed,
			Activities:    p.ranker.RankForDay(summary, topActivities),
		})
	}

	return &models.WeatherResponse{
		Temperature:   apiResp.Current.Temperature2m,
		Conditions:    CodeToCondition(apiResp.Current.WeatherCode),
		Humidity:      apiResp.Current.RelativeHumidity2m,
		WindSpeed:     apiResp.Current.WindSpeed10m,
		Precipitation: apiResp.Current.Precipitation,
		Forecast:      forecast,
	}, nil
}

// GetWeatherByCityID decodes the rich city identifier and fetches weather for
// its coordinates, returning the decoded city fields alongside
func (p *OpenMeteoForecastProvider) GetWeatherByCityID(id string, topActivities int) (*models.WeatherResponse, *cityid.Decoded, error) {
	decoded, err := cityid.Decode(id)
	if err != nil {
		return nil, nil, err
	}

	weather, err := p.GetWeatherData(decoded.Latitude, decoded.Longitude, topActivities)
	if err != nil {
		return nil, nil, err
	}
	return weather, decoded, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// dayValue guards against the provider returning shorter parallel arrays
func dayValue(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}

func dayCode(codes []int, i int) int {
	if i < len(codes) {
		return codes[i]
	}
	return 0
}
