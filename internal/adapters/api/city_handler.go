package api

import (
	"log/slog"
	"net/http"

	"flosscast.app/internal/core/forecast"
	"flosscast.app/pkg/errors"
	"flosscast.app/pkg/validation"
	"github.com/gin-gonic/gin"
)

// CityResponse represents a geocoding match
type CityResponse struct {
	Name        string  `json:"name"`
	State       string  `json:"state,omitempty"`
	Country     string  `json:"country,omitempty"`
	DisplayName string  `json:"displayName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Key         string  `json:"key"`
}

func newCityResponse(city forecast.City) CityResponse {
	return CityResponse{
		Name:        city.Name,
		State:       city.State,
		Country:     city.Country,
		DisplayName: city.DisplayName(),
		Latitude:    city.Latitude,
		Longitude:   city.Longitude,
		Key:         city.Key(),
	}
}

// searchCities handles GET /api/cities/search requests
func (s *HTTPServerAdapter) searchCities(c *gin.Context) {
	name, ok := validation.TrimAndValidate(c.Query("name"))
	if !ok {
		s.handleError(c, errors.NewValidationError("name parameter is required"))
		return
	}

	cities, err := s.cities.SearchCities(c.Request.Context(), name)
	if err != nil {
		slog.Error("City search error", "error", err, "name", name)
		s.handleError(c, err)
		return
	}

	response := make([]CityResponse, 0, len(cities))
	for _, city := range cities {
		response = append(response, newCityResponse(city))
	}
	c.JSON(http.StatusOK, response)
}
