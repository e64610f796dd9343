package providers

import (
	"cityweather.app/activity"
	"cityweather.app/cityid"
	"cityweather.app/models"
)

// GeocodingProvider defines the interface for city search providers
type GeocodingProvider interface {
	SearchCities(query string) ([]models.City, error)
}

// ForecastProvider defines the interface for weather forecast providers
type ForecastProvider interface {
	GetWeatherData(lat, lon float64, topActivities int) (*models.WeatherResponse, error)
	GetWeatherByCityID(id string, topActivities int) (*models.WeatherResponse, *cityid.Decoded, error)
}

// ActivityRanker scores activities for one forecast day
type ActivityRanker interface {
	RankForDay(summary activity.DaySummary, top int) []models.ScoredActivity
}
