// Package service contains the aggregation pipeline stitching geocoding and
// forecast calls into the domain response. It is intentionally thin: call
// sequencing and error normalization only.
package service

import (
	stderrors "errors"
	"log/slog"

	"cityweather.app/errors"
	"cityweather.app/models"
	"cityweather.app/providers"
)

// CityWeatherService orchestrates city search and city weather lookups
type CityWeatherService struct {
	geocoding providers.GeocodingProvider
	forecast  providers.ForecastProvider
}

// NewCityWeatherService creates a new aggregation service
func NewCityWeatherService(geocoding providers.GeocodingProvider, forecast providers.ForecastProvider) *CityWeatherService {
	return &CityWeatherService{
		geocoding: geocoding,
		forecast:  forecast,
	}
}

// SearchCities resolves a free-text query to a list of cities
func (s *CityWeatherService) SearchCities(query string) ([]models.City, error) {
	slog.Info("city search received", "query", query)

	cities, err := s.geocoding.SearchCities(query)
	if err != nil {
		normalized := normalizeError(err, errors.SourceGeocoding)
		slog.Error("city search failed", "query", query, "code", normalized.Type, "error", normalized)
		return nil, normalized
	}

	slog.Info("city search completed", "query", query, "results", len(cities))
	return cities, nil
}

// GetCityWeather decodes the city identifier, fetches its forecast and
// assembles the outward-facing response. The original identifier is echoed
// back unchanged on the city record.
func (s *CityWeatherService) GetCityWeather(cityID string, topActivities int) (*models.CityWeatherResponse, error) {
	slog.Info("city weather requested", "cityId", cityID)

	weather, decoded, err := s.forecast.GetWeatherByCityID(cityID, topActivities)
	if err != nil {
		normalized := normalizeError(err, errors.SourceForecast)
		slog.Error("city weather failed", "cityId", cityID, "code", normalized.Type, "error", normalized)
		return nil, normalized
	}

	slog.Info("city weather completed", "cityId", cityID, "forecastDays", len(weather.Forecast))
	return &models.CityWeatherResponse{
		City: models.City{
			ID:        cityID,
			Name:      decoded.Name,
			Country:   decoded.Country,
			Latitude:  decoded.Latitude,
			Longitude: decoded.Longitude,
		},
		Weather: *weather,
	}, nil
}

// normalizeError passes typed errors through unchanged, tagging them with the
// collaborator they came from, and wraps anything else as internal so no raw
// failure crosses the pipeline boundary.
func normalizeError(err error, source string) *errors.AppError {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		if appErr.Source == "" {
			appErr.Source = source
		}
		return appErr
	}
	return errors.NewInternalError("unexpected failure", err).WithSource(source)
}
