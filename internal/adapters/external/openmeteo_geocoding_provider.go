package external

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"flosscast.app/internal/core/forecast"
	"flosscast.app/internal/ports"
	"flosscast.app/pkg/errors"
	"flosscast.app/pkg/jsonx"
	"flosscast.app/pkg/validation"
)

const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	defaultSearchCount  = 10
	defaultLanguage     = "en"
)

// OpenMeteoGeocodingProvider resolves city names to coordinates
type OpenMeteoGeocodingProvider struct {
	baseURL  string
	count    int
	language string
	http     openMeteoClient
	logger   ports.Logger
}

// OpenMeteoGeocodingProviderParams holds parameters for creating the geocoding provider
type OpenMeteoGeocodingProviderParams struct {
	BaseURL   string
	Count     int
	Language  string
	Timeout   time.Duration
	UserAgent string
	Logger    ports.Logger
}

func NewOpenMeteoGeocodingProvider(params OpenMeteoGeocodingProviderParams) *OpenMeteoGeocodingProvider {
	p := &OpenMeteoGeocodingProvider{
		baseURL:  params.BaseURL,
		count:    params.Count,
		language: params.Language,
		http:     newOpenMeteoClient("open-meteo geocoding", params.Timeout, params.UserAgent, params.Logger),
		logger:   params.Logger,
	}
	if p.baseURL == "" {
		p.baseURL = DefaultGeocodingURL
	}
	if p.count <= 0 {
		p.count = defaultSearchCount
	}
	if p.language == "" {
		p.language = defaultLanguage
	}
	return p
}

// SearchURL returns the request URL for query.
func (p *OpenMeteoGeocodingProvider) SearchURL(query string) string {
	values := url.Values{}
	values.Set("name", query)
	values.Set("count", fmt.Sprint(p.count))
	values.Set("language", p.language)
	values.Set("format", "json")
	return p.baseURL + "?" + values.Encode()
}

// SearchCities returns the matches for query in API order. No match is an
// empty slice, not an error.
func (p *OpenMeteoGeocodingProvider) SearchCities(ctx context.Context, query string) ([]forecast.City, error) {
	query, ok := validation.TrimAndValidate(query)
	if !ok {
		return nil, errors.NewValidationError("search query cannot be empty")
	}

	obj, err := p.http.getJSON(ctx, p.SearchURL(query))
	if err != nil {
		return nil, err
	}

	// The API leaves out "results" when nothing matches.
	if !obj.Has("results") {
		return []forecast.City{}, nil
	}
	results, err := obj.Objects("results")
	if err != nil {
		return nil, err
	}

	cities := make([]forecast.City, 0, len(results))
	for _, r := range results {
		city, err := parseCity(r)
		if err != nil {
			return nil, err
		}
		cities = append(cities, city)
	}
	return cities, nil
}

func (p *OpenMeteoGeocodingProvider) GetProviderName() string {
	return "open-meteo-geocoding"
}

func parseCity(obj *jsonx.Object) (forecast.City, error) {
	var (
		city forecast.City
		err  error
	)
	if city.Name, err = obj.String("name"); err != nil {
		return forecast.City{}, err
	}
	if city.Latitude, err = obj.Float("latitude"); err != nil {
		return forecast.City{}, err
	}
	if city.Longitude, err = obj.Float("longitude"); err != nil {
		return forecast.City{}, err
	}
	if city.State, err = obj.OptionalString("admin1"); err != nil {
		return forecast.City{}, err
	}
	if city.Country, err = obj.OptionalString("country"); err != nil {
		return forecast.City{}, err
	}
	city.Name = strings.TrimSpace(city.Name)
	return city, nil
}
