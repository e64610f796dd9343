package app

import (
	"fmt"
	"log/slog"

	"cityweather.app/activity"
	"cityweather.app/api"
	"cityweather.app/config"
	"cityweather.app/errors"
	"cityweather.app/metrics"
	"cityweather.app/providers"
	"cityweather.app/service"
)

// Application represents the main application with all its dependencies
type Application struct {
	config *config.Config
	server *api.Server
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) loadConfiguration() error {
	slog.Info("Loading configuration...")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("Configuration loaded successfully")
	return nil
}

func (app *Application) initializeServices() error {
	slog.Info("Initializing services...")

	scorer := activity.NewDefaultScorer()

	geocodingProvider := providers.NewGeocodingProvider(
		&app.config.Geocoding,
		metrics.NewUpstreamMetrics(errors.SourceGeocoding),
	)
	forecastProvider := providers.NewForecastProvider(
		&app.config.Forecast,
		scorer,
		metrics.NewUpstreamMetrics(errors.SourceForecast),
	)

	cityWeatherService := service.NewCityWeatherService(geocodingProvider, forecastProvider)

	app.server = api.NewServer(app.config, cityWeatherService)

	slog.Info("Services initialized successfully")
	return nil
}

// Start starts the application
func (app *Application) Start() error {
	slog.Info("Starting HTTP server", "port", app.config.Server.Port)
	return app.server.Start()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}
