package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "https://geocoding-api.open-meteo.com/v1", cfg.Geocoding.BaseURL)
		assert.Equal(t, "https://api.open-meteo.com/v1", cfg.Forecast.BaseURL)
		assert.Equal(t, 10, cfg.Geocoding.TimeoutSeconds)
		assert.Equal(t, 10, cfg.Forecast.TimeoutSeconds)
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("GEOCODING_API_BASE_URL", "http://localhost:1234/v1")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "http://localhost:1234/v1", cfg.Geocoding.BaseURL)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: 8080},
			Geocoding: GeocodingConfig{BaseURL: "https://geo.example.com", TimeoutSeconds: 10},
			Forecast:  ForecastConfig{BaseURL: "https://wx.example.com", TimeoutSeconds: 10},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("BadPort", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("BadGeocodingURL", func(t *testing.T) {
		cfg := valid()
		cfg.Geocoding.BaseURL = "ftp://geo.example.com"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEOCODING_API_BASE_URL")
	})

	t.Run("EmptyForecastURL", func(t *testing.T) {
		cfg := valid()
		cfg.Forecast.BaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("BadTimeout", func(t *testing.T) {
		cfg := valid()
		cfg.Forecast.TimeoutSeconds = 0
		assert.Error(t, cfg.Validate())
	})
}
