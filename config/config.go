package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"cityweather.app/errors"
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Geocoding GeocodingConfig `split_words:"true"`
	Forecast  ForecastConfig  `split_words:"true"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// GeocodingConfig contains settings for the city-search API
type GeocodingConfig struct {
	BaseURL        string `envconfig:"GEOCODING_API_BASE_URL" default:"https://geocoding-api.open-meteo.com/v1"`
	TimeoutSeconds int    `envconfig:"GEOCODING_API_TIMEOUT_SECONDS" default:"10"`
}

// ForecastConfig contains settings for the weather-forecast API
type ForecastConfig struct {
	BaseURL        string `envconfig:"FORECAST_API_BASE_URL" default:"https://api.open-meteo.com/v1"`
	TimeoutSeconds int    `envconfig:"FORECAST_API_TIMEOUT_SECONDS" default:"10"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewInternalError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Geocoding.Validate(); err != nil {
		return err
	}
	if err := c.Forecast.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewInternalError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// Validate checks geocoding API configuration
func (g *GeocodingConfig) Validate() error {
	if err := validateBaseURL("GEOCODING_API_BASE_URL", g.BaseURL); err != nil {
		return err
	}
	if g.TimeoutSeconds < 1 {
		return errors.NewInternalError("GEOCODING_API_TIMEOUT_SECONDS must be at least 1", nil)
	}
	return nil
}

// Validate checks forecast API configuration
func (f *ForecastConfig) Validate() error {
	if err := validateBaseURL("FORECAST_API_BASE_URL", f.BaseURL); err != nil {
		return err
	}
	if f.TimeoutSeconds < 1 {
		return errors.NewInternalError("FORECAST_API_TIMEOUT_SECONDS must be at least 1", nil)
	}
	return nil
}

func validateBaseURL(name, value string) error {
	if value == "" {
		return errors.NewInternalError(fmt.Sprintf("%s cannot be empty", name), nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewInternalError(fmt.Sprintf("%s must start with http:// or https://", name), nil)
	}
	return nil
}
