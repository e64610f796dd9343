package providers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"cityweather.app/activity"
	"cityweather.app/config"
	apperrors "cityweather.app/errors"
)

func forecastConfig(baseURL string) *config.ForecastConfig {
	return &config.ForecastConfig{BaseURL: baseURL, TimeoutSeconds: 10}
}

func newTestForecastProvider(baseURL string) *OpenMeteoForecastProvider {
	return NewForecastProvider(forecastConfig(baseURL), activity.NewDefaultScorer(), nil)
}

const forecastPayload = `{
	"current": {
		"temperature_2m": 14.2,
		"relative_humidity_2m": 71,
		"precipitation": 0.3,
		"weather_code": 2,
		"wind_speed_10m": 12.5
	},
	"daily": {
		"time": ["2026-08-29", "2026-08-30", "2026-08-31"],
		"weather_code": [0, 61, 95],
		"temperature_2m_max": [22, 18, 16],
		"temperature_2m_min": [18, 15, 12],
		"precipitation_sum": [0, 15, 4],
		"wind_speed_10m_max": [5, 10, 35]
	}
}`

func TestForecastProvider_GetWeatherData(t *testing.T) {
	t.Run("ValidResponse", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Contains(t, r.URL.String(), "/forecast")
			assert.Equal(t, "51.5074", r.URL.Query().Get("latitude"))
			assert.Equal(t, "-0.1278", r.URL.Query().Get("longitude"))
			assert.Equal(t, "7", r.URL.Query().Get("forecast_days"))
			assert.Contains(t, r.URL.Query().Get("current"), "temperature_2m")
			assert.Contains(t, r.URL.Query().Get("daily"), "precipitation_sum")

			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(forecastPayload))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := newTestForecastProvider(mockServer.URL)
		weather, err := provider.GetWeatherData(51.5074, -0.1278, 1)

		require.NoError(t, err)
		assert.Equal(t, 14.2, weather.Temperature)
		assert.Equal(t, "Partly cloudy", weather.Conditions)
		assert.Equal(t, 71.0, weather.Humidity)
		assert.Equal(t, 12.5, weather.WindSpeed)
		assert.Equal(t, 0.3, weather.Precipitation)

		require.Len(t, weather.Forecast, 3)

		// day order matches the provider's chronological series
		assert.Equal(t, "2026-08-29", weather.Forecast[0].Date)
		assert.Equal(t, "2026-08-30", weather.Forecast[1].Date)
		assert.Equal(t, "2026-08-31", weather.Forecast[2].Date)

		first := weather.Forecast[0]
		assert.Equal(t, "Clear sky", first.Conditions)
		assert.Equal(t, 22.0, first.MaxTemp)
		assert.Equal(t, 18.0, first.MinTemp)
		require.Len(t, first.Activities, 1)
		assert.Equal(t, "outdoor_sightseeing", first.Activities[0].Name)
		assert.Greater(t, first.Activities[0].SuitabilityScore, 80)

		rainy := weather.Forecast[1]
		assert.Equal(t, "Slight rain", rainy.Conditions)
		require.Len(t, rainy.Activities, 1)
		assert.Equal(t, "indoor_sightseeing", rainy.Activities[0].Name)
	})

	t.Run("TopActivitiesForwardedToScorer", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(forecastPayload))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := newTestForecastProvider(mockServer.URL)
		weather, err := provider.GetWeatherData(51.5074, -0.1278, 3)

		require.NoError(t, err)
		for _, day := range weather.Forecast {
			assert.Len(t, day.Activities, 3)
		}
	})

	t.Run("InvalidCoordinatesFailBeforeAnyNetworkCall", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("upstream must not be called for invalid coordinates")
		}))
		defer mockServer.Close()

		provider := newTestForecastProvider(mockServer.URL)

		for _, coords := range [][2]float64{{999, 999}, {-91, 0}, {0, 181}} {
			weather, err := provider.GetWeatherData(coords[0], coords[1], 1)
			assert.Nil(t, weather)
			require.Error(t, err)

			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, apperrors.InvalidCoordinatesError, appErr.Type)
		}
	})

	t.Run("RateLimitResponse", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer mockServer.Close()

		provider := newTestForecastProvider(mockServer.URL)
		_, err := provider.GetWeatherData(51.5074, -0.1278, 1)

		require.Error(t, err)
		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.RateLimitError, appErr.Type)
		assert.Equal(t, apperrors.SourceForecast, appErr.Source)
	})

	t.Run("ServerError", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer mockServer.Close()

		provider := newTestForecastProvider(mockServer.URL)
		_, err := provider.GetWeatherData(51.5074, -0.1278, 1)

		require.Error(t, err)
		assert.True(t, apperrors.IsUpstreamError(err))
	})
}

func TestForecastProvider_GetWeatherByCityID(t *testing.T) {
	t.Run("DecodesAndFetches", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "51.5074", r.URL.Query().Get("latitude"))
			_, err := w.Write([]byte(forecastPayload))
			require.NoError(t, err)
		}))
		defer mockServer.Close()

		provider := newTestForecastProvider(mockServer.URL)
		weather, decoded, err := provider.GetWeatherByCityID("51.5074,-0.1278:London:United Kingdom", 1)

		require.NoError(t, err)
		require.NotNil(t, weather)
		assert.Equal(t, "London", decoded.Name)
		assert.Equal(t, "United Kingdom", decoded.Country)
		assert.Equal(t, 51.5074, decoded.Latitude)
		assert.Equal(t, -0.1278, decoded.Longitude)
	})

	t.Run("MalformedIDFailsBeforeAnyNetworkCall", func(t *testing.T) {
		mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("upstream must not be called for a malformed city id")
		}))
		defer mockServer.Close()

		provider := newTestForecastProvider(mockServer.URL)
		_, _, err := provider.GetWeatherByCityID("invalid-format", 1)

		require.Error(t, err)
		assert.True(t, apperrors.IsInvalidCoordinatesError(err))
	})
}
