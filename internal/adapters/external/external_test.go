package external

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"flosscast.app/internal/mocks"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// setupLoggerMock allows any log call with up to six fields
func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)

	for n := 0; n <= 6; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		mockLogger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Error(mock.Anything, fields...).Maybe()
	}

	return mockLogger
}

// activateHTTPMock routes the requests of client through httpmock.
func activateHTTPMock(t *testing.T, client *http.Client) {
	t.Helper()
	httpmock.ActivateNonDefault(client)
	t.Cleanup(httpmock.DeactivateAndReset)
}

// forecastResponse builds an Open-Meteo forecast answer of days full GMT
// days starting 2025-06-02.
func forecastResponse(days int) map[string]interface{} {
	start := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	var (
		times       []string
		temperature []float64
		humidity    []int
		precip      []int
		weatherCode []int
		rain        []float64
		showers     []float64
		snowfall    []float64
	)
	for i := 0; i < days*24; i++ {
		times = append(times, start.Add(time.Duration(i)*time.Hour).Format(apiTimeLayout))
		temperature = append(temperature, 10+float64(i%24)*0.5)
		humidity = append(humidity, 50+i%24)
		precip = append(precip, i%24*4)
		weatherCode = append(weatherCode, []int{0, 1, 2, 3, 61}[i%5])
		rain = append(rain, float64(i%3)*0.2)
		showers = append(showers, float64(i%2)*0.1)
		snowfall = append(snowfall, 0)
	}

	var dates, sunrises, sunsets []string
	for d := 0; d < days; d++ {
		day := start.AddDate(0, 0, d)
		dates = append(dates, day.Format("2006-01-02"))
		sunrises = append(sunrises, day.Add(3*time.Hour+47*time.Minute).Format(apiTimeLayout))
		sunsets = append(sunsets, day.Add(19*time.Hour+31*time.Minute).Format(apiTimeLayout))
	}

	return map[string]interface{}{
		"latitude":  50.1,
		"longitude": 8.6,
		"timezone":  "GMT",
		"hourly_units": map[string]interface{}{
			"time":                      "iso8601",
			"temperature_2m":            "°C",
			"relative_humidity_2m":      "%",
			"precipitation_probability": "%",
			"weather_code":              "wmo code",
			"rain":                      "mm",
			"showers":                   "mm",
			"snowfall":                  "cm",
		},
		"hourly": map[string]interface{}{
			"time":                      times,
			"temperature_2m":            temperature,
			"relative_humidity_2m":      humidity,
			"precipitation_probability": precip,
			"weather_code":              weatherCode,
			"rain":                      rain,
			"showers":                   showers,
			"snowfall":                  snowfall,
		},
		"daily": map[string]interface{}{
			"time":    dates,
			"sunrise": sunrises,
			"sunset":  sunsets,
		},
	}
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func mustLoadLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("time zone %s not available: %v", name, err)
	}
	return loc
}
