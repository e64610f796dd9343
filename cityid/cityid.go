// Package cityid encodes a city's coordinates, name and country into a single
// opaque identifier and decodes it back. The identifier is the only mechanism
// for cross-request city identity; there is no database lookup behind it.
package cityid

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cityweather.app/errors"
)

// Decoded holds the fields recovered from a city identifier
type Decoded struct {
	Latitude  float64
	Longitude float64
	Name      string
	Country   string
}

// Encode builds the wire identifier "<lat>,<lon>:<name>:<country>".
// Name and country are inserted verbatim; the format assumes neither
// contains a colon.
func Encode(lat, lon float64, name, country string) string {
	return fmt.Sprintf("%s,%s:%s:%s", formatCoordinate(lat), formatCoordinate(lon), name, country)
}

// Decode splits and validates a city identifier produced by Encode
func Decode(id string) (*Decoded, error) {
	parts := strings.Split(id, ":")
	if len(parts) != 3 {
		return nil, errors.NewInvalidCoordinatesError("invalid city id format")
	}

	coords := strings.Split(parts[0], ",")
	if len(coords) != 2 || coords[0] == "" || coords[1] == "" {
		return nil, errors.NewInvalidCoordinatesError("invalid city id format: missing coordinate")
	}

	lat, err := strconv.ParseFloat(coords[0], 64)
	if err != nil {
		return nil, errors.NewInvalidCoordinatesError("invalid latitude in city id")
	}

	lon, err := strconv.ParseFloat(coords[1], 64)
	if err != nil {
		return nil, errors.NewInvalidCoordinatesError("invalid longitude in city id")
	}

	if !ValidateCoordinate(lat, lon) {
		return nil, errors.NewInvalidCoordinatesError(
			fmt.Sprintf("coordinates out of range: %s,%s", coords[0], coords[1]))
	}

	return &Decoded{
		Latitude:  lat,
		Longitude: lon,
		Name:      parts[1],
		Country:   parts[2],
	}, nil
}

// ValidateCoordinate reports whether lat/lon form a valid geographic pair
func ValidateCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
