package providers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cityweather.app/cityid"
	"cityweather.app/config"
	"cityweather.app/errors"
	"cityweather.app/metrics"
	"cityweather.app/models"
)

const (
	minQueryLength  = 2
	searchResultCap = 10
)

// populatedPlaceCodes is the allow-list of GeoNames feature codes accepted as
// real settlements. Everything else (rivers, mountains, airports) is dropped.
var populatedPlaceCodes = map[string]bool{
	"PPLC":  true, // national capital
	"PPLA":  true, // seat of a first-order administrative division
	"PPLA2": true,
	"PPLA3": true,
	"PPLA4": true,
	"PPL":   true, // populated place
	"PPLG":  true, // seat of government
	"PPLR":  true, // religious populated place
	"PPLL":  true, // populated locality
	"PPLF":  true, // farm village
	"PPLS":  true, // populated places
	"PPLX":  true, // section of populated place
}

// OpenMeteoGeocodingProvider implements GeocodingProvider for the Open-Meteo
// geocoding API
type OpenMeteoGeocodingProvider struct {
	baseURL string
	client  *http.Client
	metrics *metrics.UpstreamMetrics
}

type geocodingResponse struct {
	Results []struct {
		Name        string  `json:"name"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		Country     string  `json:"country"`
		FeatureCode string  `json:"feature_code"`
	} `json:"results"`
	GenerationTimeMS float64 `json:"generationtime_ms"`
}

// NewGeocodingProvider creates a new Open-Meteo geocoding provider
func NewGeocodingProvider(cfg *config.GeocodingConfig, upstreamMetrics *metrics.UpstreamMetrics) *OpenMeteoGeocodingProvider {
	return &OpenMeteoGeocodingProvider{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		metrics: upstreamMetrics,
	}
}

// SearchCities resolves a free-text query to populated places. An absent or
// empty results field yields an empty slice, not an error.
func (p *OpenMeteoGeocodingProvider) SearchCities(query string) ([]models.City, error) {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < minQueryLength {
		return nil, errors.NewBadUserInputError("search query must be at least 2 characters")
	}

	requestURL := fmt.Sprintf("%s/search?name=%s&count=%d&language=en&format=json",
		p.baseURL, url.QueryEscape(trimmed), searchResultCap)

	start := time.Now()
	resp, err := p.client.Get(requestURL)
	if err != nil {
		p.metrics.RecordRequest(false, time.Since(start))
		return nil, classifyTransportError(errors.SourceGeocoding, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("close geocoding response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		p.metrics.RecordRequest(false, time.Since(start))
		return nil, classifyStatusError(errors.SourceGeocoding, resp.Status, resp.StatusCode)
	}

	var apiResp geocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		p.metrics.RecordRequest(false, time.Since(start))
		return nil, errors.NewUpstreamError("failed to decode geocoding response", err).
			WithSource(errors.SourceGeocoding)
	}
	p.metrics.RecordRequest(true, time.Since(start))

	cities := make([]models.City, 0, len(apiResp.Results))
	for _, result := range apiResp.Results {
		if !populatedPlaceCodes[result.FeatureCode] {
			continue
		}
		cities = append(cities, models.City{
			ID:        cityid.Encode(result.Latitude, result.Longitude, result.Name, result.Country),
			Name:      result.Name,
			Country:   result.Country,
			Latitude:  result.Latitude,
			Longitude: result.Longitude,
		})
	}

	slog.Debug("geocoding search completed", "query", trimmed, "results", len(cities))
	return cities, nil
}
