package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"flosscast.app/internal/core/forecast"
	"flosscast.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// Response headers of the forecast endpoints
const (
	StaleHeader    = "X-Forecast-Stale"
	CacheKeyHeader = "X-Forecast-Key"
)

// CityRequest identifies a city to load the forecast for
type CityRequest struct {
	Name      string   `json:"name" binding:"required"`
	State     string   `json:"state"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude" binding:"required,lat"`
	Longitude *float64 `json:"longitude" binding:"required,lon"`
}

func (r CityRequest) toCity() forecast.City {
	return forecast.City{
		Name:      r.Name,
		State:     r.State,
		Country:   r.Country,
		Latitude:  *r.Latitude,
		Longitude: *r.Longitude,
	}
}

// ForecastsRequest represents the body of POST /api/forecasts
type ForecastsRequest struct {
	Cities []CityRequest `json:"cities" binding:"required,min=1,dive"`
	Force  bool          `json:"force"`
}

// ForecastsResponse maps city names to forecasts in cache document form
type ForecastsResponse struct {
	Forecasts map[string]json.RawMessage `json:"forecasts"`
	Stale     bool                       `json:"stale"`
}

// getForecast handles GET /api/forecast requests
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	lat, err := floatQuery(c, "lat")
	if err != nil {
		s.handleError(c, err)
		return
	}
	lon, err := floatQuery(c, "lon")
	if err != nil {
		s.handleError(c, err)
		return
	}
	force, err := boolQuery(c, "force")
	if err != nil {
		s.handleError(c, err)
		return
	}
	cacheOnly, err := boolQuery(c, "cacheOnly")
	if err != nil {
		s.handleError(c, err)
		return
	}

	key := forecast.CacheKey(lat, lon)
	slog.Debug("Getting forecast", "key", key, "force", force, "cacheOnly", cacheOnly)

	var (
		fc    *forecast.Forecast
		stale bool
	)
	if cacheOnly {
		fc, err = s.forecasts.GetForecast(c.Request.Context(), forecast.GetForecastParams{
			Dir:       s.config.CacheDir,
			Latitude:  lat,
			Longitude: lon,
			CacheOnly: true,
		})
	} else {
		city := forecast.City{Name: c.DefaultQuery("name", key), Latitude: lat, Longitude: lon}
		var update forecast.ForecastUpdate
		update, err = s.loader.LoadForecastForCity(c.Request.Context(), s.config.CacheDir, city, force)
		fc, stale = update.Forecast, update.Stale
	}
	if err != nil {
		slog.Error("Forecast use case error", "error", err, "key", key)
		s.handleError(c, err)
		return
	}

	data, err := forecast.EncodeForecast(fc)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.Header(CacheKeyHeader, key)
	c.Header(StaleHeader, strconv.FormatBool(stale))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// loadForecasts handles POST /api/forecasts requests
func (s *HTTPServerAdapter) loadForecasts(c *gin.Context) {
	var req ForecastsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("invalid request: "+err.Error()))
		return
	}

	cities := make([]forecast.City, 0, len(req.Cities))
	for _, r := range req.Cities {
		cities = append(cities, r.toCity())
	}

	update, err := s.loader.LoadForecastsForCities(c.Request.Context(), s.config.CacheDir, cities, req.Force)
	if err != nil {
		slog.Error("Forecast loader error", "error", err, "cities", len(cities))
		s.handleError(c, err)
		return
	}

	response := ForecastsResponse{
		Forecasts: make(map[string]json.RawMessage, len(update.Forecasts)),
		Stale:     update.Stale,
	}
	for name, fc := range update.Forecasts {
		data, err := forecast.EncodeForecast(fc)
		if err != nil {
			s.handleError(c, err)
			return
		}
		response.Forecasts[name] = data
	}

	c.Header(StaleHeader, strconv.FormatBool(update.Stale))
	c.JSON(http.StatusOK, response)
}

func floatQuery(c *gin.Context, name string) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, errors.NewValidationError(name + " parameter is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.NewValidationError(name + " parameter must be a number")
	}
	return v, nil
}

func boolQuery(c *gin.Context, name string) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.NewValidationError(name + " parameter must be true or false")
	}
	return v, nil
}
