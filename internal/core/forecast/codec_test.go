package forecast_test

import (
	"encoding/json"
	"testing"
	"time"

	"flosscast.app/internal/core/forecast"
	"flosscast.app/internal/core/forecast/forecasttest"
	"flosscast.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2025, time.June, 2, 10, 0, 0, 0, forecasttest.Berlin)

// encodedFixture returns a week forecast as a generic JSON tree so tests
// can break single fields.
func encodedFixture(t *testing.T) map[string]interface{} {
	t.Helper()

	data, err := forecast.EncodeForecast(forecasttest.WeekForecast(fixtureTime, forecasttest.Berlin))
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func firstDay(doc map[string]interface{}) map[string]interface{} {
	return doc["days"].([]interface{})[0].(map[string]interface{})
}

func hourOf(doc map[string]interface{}, i int) map[string]interface{} {
	return firstDay(doc)["hourlyValues"].([]interface{})[i].(map[string]interface{})
}

func TestEncodeDecodeForecast_RoundTrip(t *testing.T) {
	original := forecasttest.WeekForecast(fixtureTime, forecasttest.Berlin)

	data, err := forecast.EncodeForecast(original)
	require.NoError(t, err)

	decoded, err := forecast.DecodeForecast(data, forecasttest.Berlin)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestEncodeForecast_Schema(t *testing.T) {
	doc := encodedFixture(t)

	assert.Equal(t, "2025-06-02T10:00:00+02:00", doc["timestamp"])
	assert.Len(t, doc["days"], 7)

	units := doc["units"].(map[string]interface{})
	assert.Equal(t, "°C", units["temperature"])
	assert.Equal(t, "cm", units["snow"])

	day := firstDay(doc)
	assert.Equal(t, "2025-06-02", day["date"])
	assert.Equal(t, "2025-06-02T05:47:00+02:00", day["sunrise"])
	assert.Equal(t, "2025-06-02T20:31:00+02:00", day["sunset"])
	assert.Len(t, day["hourlyValues"], 24)

	hour := hourOf(doc, 3)
	assert.Equal(t, "2025-06-02T03:00:00+02:00", hour["dateTime"])
	for _, key := range []string{"temperature", "relativeHumidity", "precipitationProbability", "rain", "showers", "snowfall", "weatherCode"} {
		assert.Contains(t, hour, key)
	}
}

func TestEncodeForecast_Nil(t *testing.T) {
	_, err := forecast.EncodeForecast(nil)
	assert.True(t, errors.IsValidationError(err))
}

func TestDecodeForecast_OtherLocation(t *testing.T) {
	original := forecasttest.WeekForecast(fixtureTime, forecasttest.Berlin)
	data, err := forecast.EncodeForecast(original)
	require.NoError(t, err)

	decoded, err := forecast.DecodeForecast(data, time.UTC)
	require.NoError(t, err)

	assert.True(t, original.Timestamp.Equal(decoded.Timestamp))
	assert.Equal(t, time.UTC, decoded.Timestamp.Location())

	first := decoded.Days[0]
	assert.Equal(t, original.Days[0].Date, first.Date)
	assert.True(t, original.Days[0].Sunrise.Equal(first.Sunrise))
	assert.Equal(t, time.UTC, first.HourlyValues[0].DateTime.Location())
	assert.True(t, original.Days[0].HourlyValues[0].DateTime.Equal(first.HourlyValues[0].DateTime))
}

func TestDecodeForecast_Errors(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(doc map[string]interface{})
		expectedField string
	}{
		{
			name:          "MissingTimestamp",
			mutate:        func(doc map[string]interface{}) { delete(doc, "timestamp") },
			expectedField: "timestamp",
		},
		{
			name:          "BadTimestamp",
			mutate:        func(doc map[string]interface{}) { doc["timestamp"] = "yesterday" },
			expectedField: "timestamp",
		},
		{
			name: "MissingUnit",
			mutate: func(doc map[string]interface{}) {
				delete(doc["units"].(map[string]interface{}), "snow")
			},
			expectedField: "units.snow",
		},
		{
			name:          "DaysNotArray",
			mutate:        func(doc map[string]interface{}) { doc["days"] = "none" },
			expectedField: "days",
		},
		{
			name:          "BadDate",
			mutate:        func(doc map[string]interface{}) { firstDay(doc)["date"] = "June 2nd" },
			expectedField: "days[0].date",
		},
		{
			name:          "MissingSunset",
			mutate:        func(doc map[string]interface{}) { delete(firstDay(doc), "sunset") },
			expectedField: "days[0].sunset",
		},
		{
			name:          "MissingRain",
			mutate:        func(doc map[string]interface{}) { delete(hourOf(doc, 5), "rain") },
			expectedField: "days[0].hourlyValues[5].rain",
		},
		{
			name:          "TemperatureNotNumber",
			mutate:        func(doc map[string]interface{}) { hourOf(doc, 2)["temperature"] = "warm" },
			expectedField: "days[0].hourlyValues[2].temperature",
		},
		{
			name:          "HourOfOtherDay",
			mutate:        func(doc map[string]interface{}) { firstDay(doc)["date"] = "2025-06-03" },
			expectedField: "days[0].hourlyValues[0].dateTime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := encodedFixture(t)
			tt.mutate(doc)
			data, err := json.Marshal(doc)
			require.NoError(t, err)

			fc, err := forecast.DecodeForecast(data, forecasttest.Berlin)
			assert.Nil(t, fc)
			require.Error(t, err)
			assert.True(t, errors.IsParseError(err))

			var appErr *errors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.expectedField, appErr.Field)
		})
	}
}

func TestDecodeForecast_NotAnObject(t *testing.T) {
	for _, input := range []string{"", "[]", "42", "{"} {
		_, err := forecast.DecodeForecast([]byte(input), nil)
		assert.True(t, errors.IsParseError(err), "input %q", input)
	}
}
