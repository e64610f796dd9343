package app

import (
	"log"

	"cityweather.app/config"
)

// ConfigDisplayer handles configuration display for debugging
type ConfigDisplayer struct{}

// NewConfigDisplayer creates a new configuration displayer
func NewConfigDisplayer() *ConfigDisplayer {
	return &ConfigDisplayer{}
}

// PrintConfig prints all fields in the configuration
func (cd *ConfigDisplayer) PrintConfig(cfg *config.Config) {
	log.Println("==== APPLICATION CONFIGURATION ====")

	log.Printf("SERVER:\n")
	log.Printf("  Port: %d\n", cfg.Server.Port)

	log.Printf("\nGEOCODING API:\n")
	log.Printf("  Base URL: %s\n", cfg.Geocoding.BaseURL)
	log.Printf("  Timeout: %ds\n", cfg.Geocoding.TimeoutSeconds)

	log.Printf("\nFORECAST API:\n")
	log.Printf("  Base URL: %s\n", cfg.Forecast.BaseURL)
	log.Printf("  Timeout: %ds\n", cfg.Forecast.TimeoutSeconds)

	log.Println("===================================")
}
