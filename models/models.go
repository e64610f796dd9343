// Package models defines data structures used throughout the application
package models

// City represents a resolved city with its rich identifier
type City struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ScoredActivity rates how well a day's weather suits one activity
type ScoredActivity struct {
	Name             string `json:"name"`
	SuitabilityScore int    `json:"suitabilityScore"`
	Reasoning        string `json:"reasoning"`
}

// DailyForecast represents one forecast day with its suggested activities
type DailyForecast struct {
	Date          string           `json:"date"`
	MaxTemp       float64          `json:"maxTemp"`
	MinTemp       float64          `json:"minTemp"`
	Conditions    string           `json:"conditions"`
	Precipitation float64          `json:"precipitation"`
	WindSpeed     float64          `json:"windSpeed"`
	Activities    []ScoredActivity `json:"activities"`
}

// WeatherResponse represents current conditions plus the daily forecast series
type WeatherResponse struct {
	Temperature   float64         `json:"temperature"`
	Conditions    string          `json:"conditions"`
	Humidity      float64         `json:"humidity"`
	WindSpeed     float64         `json:"windSpeed"`
	Precipitation float64         `json:"precipitation"`
	Forecast      []DailyForecast `json:"forecast"`
}

// CityWeatherResponse pairs a city with its weather for the city-weather operation
type CityWeatherResponse struct {
	City    City            `json:"city"`
	Weather WeatherResponse `json:"weather"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Source string `json:"source,omitempty"`
}
