// Standalone mock of the Open-Meteo geocoding and forecast APIs for local
// development. Point GEOCODING_API_BASE_URL and FORECAST_API_BASE_URL at this
// server to run the application without hitting the real provider.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

type geoResult struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Country     string  `json:"country"`
	FeatureCode string  `json:"feature_code"`
}

var geoData = map[string][]geoResult{
	"london": {
		{Name: "London", Latitude: 51.5074, Longitude: -0.1278, Country: "United Kingdom", FeatureCode: "PPLC"},
		{Name: "London", Latitude: 42.9834, Longitude: -81.233, Country: "Canada", FeatureCode: "PPL"},
	},
	"paris": {
		{Name: "Paris", Latitude: 48.8566, Longitude: 2.3522, Country: "France", FeatureCode: "PPLC"},
	},
	"berlin": {
		{Name: "Berlin", Latitude: 52.52, Longitude: 13.405, Country: "Germany", FeatureCode: "PPLC"},
	},
}

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/v1/search", func(c *gin.Context) {
		name := strings.ToLower(c.Query("name"))
		results, ok := geoData[name]
		if !ok {
			c.JSON(http.StatusOK, gin.H{"generationtime_ms": 0.4})
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": results, "generationtime_ms": 0.4})
	})

	r.GET("/v1/forecast", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"current": gin.H{
				"temperature_2m":       16.4,
				"relative_humidity_2m": 63,
				"precipitation":        0,
				"weather_code":         1,
				"wind_speed_10m":       9.7,
			},
			"daily": gin.H{
				"time":               []string{"2026-08-29", "2026-08-30", "2026-08-31", "2026-09-01", "2026-09-02", "2026-09-03", "2026-09-04"},
				"weather_code":       []int{0, 1, 61, 63, 2, 95, 3},
				"temperature_2m_max": []float64{22, 21, 18, 17, 20, 16, 19},
				"temperature_2m_min": []float64{18, 16, 15, 13, 14, 12, 13},
				"precipitation_sum":  []float64{0, 0, 15, 8, 0.4, 22, 0},
				"wind_speed_10m_max": []float64{5, 12, 10, 25, 8, 35, 14},
			},
		})
	})

	port := os.Getenv("MOCK_SERVER_PORT")
	if port == "" {
		port = "8081"
	}

	slog.Info("Starting mock Open-Meteo server", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Mock server failed", "error", err)
		os.Exit(1)
	}
}
