package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"cityweather.app/config"
	weathererr "cityweather.app/errors"
	"cityweather.app/models"
	"cityweather.app/service"
)

const maxTopActivities = 4

// Server represents the HTTP server and API handler
type Server struct {
	router             *gin.Engine
	config             *config.Config
	cityWeatherService service.CityWeatherServiceInterface
}

// NewServer creates and configures a new HTTP server
func NewServer(config *config.Config, cityWeatherService service.CityWeatherServiceInterface) *Server {
	router := gin.Default()
	router.Use(requestIDMiddleware())

	server := &Server{
		router:             router,
		config:             config,
		cityWeatherService: cityWeatherService,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/cities/search", s.searchCities)
		api.GET("/weather", s.getCityWeather)
		api.GET("/health", s.health)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Start begins the HTTP server
func (s *Server) Start() error {
	return s.router.Run(fmt.Sprintf(":%d", s.config.Server.Port))
}

// GetRouter returns the router for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("requestID", requestID)
		c.Next()
	}
}

func (s *Server) searchCities(c *gin.Context) {
	query := c.Query("query")

	slog.Debug("handling city search", "query", query, "requestId", c.GetString("requestID"))
	cities, err := s.cityWeatherService.SearchCities(query)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, cities)
}

func (s *Server) getCityWeather(c *gin.Context) {
	cityID := c.Query("cityId")
	if cityID == "" {
		s.handleError(c, weathererr.NewBadUserInputError("cityId parameter is required"))
		return
	}

	topActivities, err := parseTopActivities(c.Query("activities"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	slog.Debug("handling city weather", "cityId", cityID, "requestId", c.GetString("requestID"))
	response, err := s.cityWeatherService.GetCityWeather(cityID, topActivities)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseTopActivities(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, weathererr.NewBadUserInputError("activities must be a positive integer")
	}
	if n > maxTopActivities {
		n = maxTopActivities
	}
	return n, nil
}

// handleError maps typed application errors to HTTP responses. The stable
// machine code and collaborator name are always part of the body; unclassified
// failures leak nothing beyond a generic message.
func (s *Server) handleError(c *gin.Context, err error) {
	var appErr *weathererr.AppError
	var statusCode int
	var message string
	code := string(weathererr.InternalError)
	source := ""

	if errors.As(err, &appErr) {
		code = string(appErr.Type)
		source = appErr.Source
		switch appErr.Type {
		case weathererr.BadUserInputError, weathererr.InvalidCoordinatesError:
			statusCode = http.StatusBadRequest
			message = appErr.Message
		case weathererr.RateLimitError:
			statusCode = http.StatusTooManyRequests
			message = appErr.Message
		case weathererr.TimeoutError:
			statusCode = http.StatusGatewayTimeout
			message = appErr.Message
		case weathererr.UpstreamError:
			statusCode = http.StatusBadGateway
			message = appErr.Message
		default:
			statusCode = http.StatusInternalServerError
			message = "Internal server error"
		}
	} else {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, models.ErrorResponse{Error: message, Code: code, Source: source})
}
