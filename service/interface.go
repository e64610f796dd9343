package service

import "cityweather.app/models"

// CityWeatherServiceInterface defines the two inbound operations
type CityWeatherServiceInterface interface {
	SearchCities(query string) ([]models.City, error)
	GetCityWeather(cityID string, topActivities int) (*models.CityWeatherResponse, error)
}
