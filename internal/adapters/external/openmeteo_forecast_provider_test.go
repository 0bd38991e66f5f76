package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flosscast.app/internal/core/forecast"
	"flosscast.app/pkg/errors"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fetchTime = time.Date(2025, time.June, 2, 8, 15, 0, 0, time.UTC)

func newTestForecastProvider(t *testing.T, loc *time.Location) *OpenMeteoForecastProvider {
	t.Helper()
	provider := NewOpenMeteoForecastProvider(OpenMeteoForecastProviderParams{
		Location: loc,
		Now:      func() time.Time { return fetchTime },
		Logger:   setupLoggerMock(t),
	})
	activateHTTPMock(t, provider.http.client)
	return provider
}

func TestOpenMeteoForecastProvider_FetchForecast_Success(t *testing.T) {
	berlin := mustLoadLocation(t, "Europe/Berlin")
	provider := newTestForecastProvider(t, berlin)

	httpmock.RegisterResponder(http.MethodGet, DefaultForecastURL,
		func(req *http.Request) (*http.Response, error) {
			query := req.URL.Query()
			assert.Equal(t, "50.1", query.Get("latitude"))
			assert.Equal(t, "8.6", query.Get("longitude"))
			assert.Equal(t, "sunrise,sunset", query.Get("daily"))
			assert.Equal(t, hourlyFields, query.Get("hourly"))
			assert.Equal(t, defaultUserAgent, req.Header.Get("User-Agent"))
			return httpmock.NewStringResponse(http.StatusOK, mustJSON(t, forecastResponse(3))), nil
		})

	fc, err := provider.FetchForecast(context.Background(), 50.11, 8.64)
	require.NoError(t, err)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())

	assert.True(t, fetchTime.Equal(fc.Timestamp))
	assert.Equal(t, forecast.DefaultUnits(), fc.Units)

	require.Len(t, fc.Days, 3)

	first := fc.Days[0]
	assert.Equal(t, forecast.Date{Year: 2025, Month: time.June, Day: 2}, first.Date)
	require.Len(t, first.HourlyValues, 24)
	assert.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, berlin), first.HourlyValues[0].DateTime)
	assert.Equal(t, time.Date(2025, time.June, 2, 23, 0, 0, 0, berlin), first.HourlyValues[23].DateTime)
	assert.Equal(t, time.Date(2025, time.June, 2, 5, 47, 0, 0, berlin), first.Sunrise)
	assert.Equal(t, time.Date(2025, time.June, 2, 21, 31, 0, 0, berlin), first.Sunset)

	h := first.HourlyValues[0]
	assert.InDelta(t, 10.0, h.Temperature, 1e-9)
	assert.Equal(t, 50, h.RelativeHumidity)
	assert.Equal(t, 0, h.PrecipitationProbability)
	assert.Equal(t, 0, h.WeatherCode)

	for _, day := range fc.Days {
		assert.Len(t, day.HourlyValues, 24)
		for _, hour := range day.HourlyValues {
			assert.Equal(t, day.Date, forecast.DateOf(hour.DateTime))
		}
	}
}

func TestOpenMeteoForecastProvider_FetchForecast_SevenFullDaysInAnyZone(t *testing.T) {
	tests := []struct {
		zone        string
		sunriseHour int
		sunsetHour  int
	}{
		{"UTC", 3, 19},
		{"Europe/Berlin", 5, 21},
		{"America/New_York", 23, 15},
		{"Asia/Kolkata", 9, 1},
	}

	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			loc := mustLoadLocation(t, tt.zone)
			provider := newTestForecastProvider(t, loc)
			httpmock.RegisterResponder(http.MethodGet, DefaultForecastURL,
				httpmock.NewStringResponder(http.StatusOK, mustJSON(t, forecastResponse(7))))

			fc, err := provider.FetchForecast(context.Background(), 50.11, 8.64)
			require.NoError(t, err)

			require.Len(t, fc.Days, 7)
			for i, day := range fc.Days {
				assert.Equal(t, forecast.Date{Year: 2025, Month: time.June, Day: 2 + i}, day.Date)
				require.Len(t, day.HourlyValues, 24)
				for h, hour := range day.HourlyValues {
					assert.Equal(t, day.Date, forecast.DateOf(hour.DateTime))
					assert.Equal(t, h, hour.DateTime.Hour())
					assert.Equal(t, loc, hour.DateTime.Location())
				}
				assert.Equal(t, loc, day.Sunrise.Location())
				assert.Equal(t, tt.sunriseHour, day.Sunrise.Hour())
				assert.Equal(t, tt.sunsetHour, day.Sunset.Hour())
			}
		})
	}
}

func TestOpenMeteoForecastProvider_FetchForecast_ParseErrors(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(doc map[string]interface{})
		expectedField string
	}{
		{
			name: "HourlyLengthMismatch",
			mutate: func(doc map[string]interface{}) {
				hourly := doc["hourly"].(map[string]interface{})
				rain := hourly["rain"].([]float64)
				hourly["rain"] = rain[:len(rain)-1]
			},
			expectedField: "hourly.rain",
		},
		{
			name: "DailyLengthMismatch",
			mutate: func(doc map[string]interface{}) {
				daily := doc["daily"].(map[string]interface{})
				sunsets := daily["sunset"].([]string)
				daily["sunset"] = sunsets[:1]
			},
			expectedField: "daily",
		},
		{
			name: "MissingUnit",
			mutate: func(doc map[string]interface{}) {
				delete(doc["hourly_units"].(map[string]interface{}), "snowfall")
			},
			expectedField: "hourly_units.snowfall",
		},
		{
			name:          "MissingHourly",
			mutate:        func(doc map[string]interface{}) { delete(doc, "hourly") },
			expectedField: "hourly",
		},
		{
			name: "BadHourlyTime",
			mutate: func(doc map[string]interface{}) {
				hourly := doc["hourly"].(map[string]interface{})
				times := hourly["time"].([]string)
				times[4] = "noon"
			},
			expectedField: "hourly.time[4]",
		},
		{
			name: "BadDailyDate",
			mutate: func(doc map[string]interface{}) {
				daily := doc["daily"].(map[string]interface{})
				daily["time"].([]string)[1] = "tomorrow"
			},
			expectedField: "daily.time[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newTestForecastProvider(t, time.UTC)
			doc := forecastResponse(2)
			tt.mutate(doc)
			httpmock.RegisterResponder(http.MethodGet, DefaultForecastURL,
				httpmock.NewStringResponder(http.StatusOK, mustJSON(t, doc)))

			fc, err := provider.FetchForecast(context.Background(), 50.11, 8.64)
			assert.Nil(t, fc)
			require.Error(t, err)
			assert.True(t, errors.IsParseError(err), "unexpected error %v", err)

			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.expectedField, appErr.Field)
		})
	}
}

func TestOpenMeteoForecastProvider_FetchForecast_NetworkErrors(t *testing.T) {
	tests := []struct {
		name      string
		responder httpmock.Responder
	}{
		{"ServerError", httpmock.NewStringResponder(http.StatusInternalServerError, `{"error":true}`)},
		{"BadRequest", httpmock.NewStringResponder(http.StatusBadRequest, `{"error":true,"reason":"Latitude must be in range"}`)},
		{"TransportFailure", httpmock.NewErrorResponder(assert.AnError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newTestForecastProvider(t, time.UTC)
			httpmock.RegisterResponder(http.MethodGet, DefaultForecastURL, tt.responder)

			fc, err := provider.FetchForecast(context.Background(), 50.11, 8.64)
			assert.Nil(t, fc)
			assert.True(t, errors.IsNetworkError(err), "unexpected error %v", err)
		})
	}
}

func TestOpenMeteoForecastProvider_FetchForecast_InvalidJSON(t *testing.T) {
	provider := newTestForecastProvider(t, time.UTC)
	httpmock.RegisterResponder(http.MethodGet, DefaultForecastURL,
		httpmock.NewStringResponder(http.StatusOK, `{invalid json`))

	_, err := provider.FetchForecast(context.Background(), 50.11, 8.64)
	assert.True(t, errors.IsParseError(err))
}

func TestOpenMeteoForecastProvider_FetchForecast_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	provider := NewOpenMeteoForecastProvider(OpenMeteoForecastProviderParams{
		BaseURL: server.URL,
		Timeout: 50 * time.Millisecond,
		Logger:  setupLoggerMock(t),
	})

	_, err := provider.FetchForecast(context.Background(), 50.11, 8.64)
	require.Error(t, err)
	assert.True(t, errors.IsNetworkError(err))
	assert.True(t, errors.IsTimeoutError(err))
}

func TestOpenMeteoForecastProvider_ForecastURL(t *testing.T) {
	provider := NewOpenMeteoForecastProvider(OpenMeteoForecastProviderParams{
		BaseURL: "http://localhost/v1/forecast",
		Logger:  setupLoggerMock(t),
	})

	assert.Equal(t,
		"http://localhost/v1/forecast?latitude=-33.9&longitude=151.2&daily=sunrise,sunset&hourly="+hourlyFields,
		provider.ForecastURL(-33.87, 151.21))
	assert.Equal(t, "open-meteo", provider.GetProviderName())
}
