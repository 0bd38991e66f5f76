package forecast_test

import (
	"testing"
	"time"

	"flosscast.app/internal/core/forecast"
	"flosscast.app/internal/core/forecast/forecasttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		expected  string
	}{
		{"Frankfurt", 50.11, 8.64, "50.1:8.6"},
		{"RoundsUp", 6.4541, 3.3947, "6.5:3.4"},
		{"Negative", -33.87, 151.21, "-33.9:151.2"},
		{"Zero", 0, 0, "0.0:0.0"},
		{"NegativeZero", -0.04, -0.01, "0.0:0.0"},
		{"TiesToEven", 50.25, 8.75, "50.2:8.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, forecast.CacheKey(tt.latitude, tt.longitude))
		})
	}
}

func TestCity(t *testing.T) {
	city := forecasttest.Frankfurt()
	assert.Equal(t, "50.1:8.6", city.Key())
	assert.Equal(t, "Frankfurt am Main, Hesse, Germany", city.DisplayName())

	city.State = ""
	assert.Equal(t, "Frankfurt am Main, Germany", city.DisplayName())

	assert.Equal(t, "Nowhere", forecast.City{Name: "Nowhere"}.DisplayName())
}

func TestDate(t *testing.T) {
	d, err := forecast.ParseDate("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, forecast.Date{Year: 2025, Month: time.June, Day: 2}, d)
	assert.Equal(t, "2025-06-02", d.String())

	assert.True(t, d.Before(forecast.Date{Year: 2025, Month: time.June, Day: 3}))
	assert.True(t, d.Before(forecast.Date{Year: 2026, Month: time.January, Day: 1}))
	assert.False(t, d.Before(d))

	_, err = forecast.ParseDate("02.06.2025")
	assert.Error(t, err)

	late := time.Date(2025, time.June, 2, 23, 30, 0, 0, forecasttest.Berlin)
	assert.Equal(t, d, forecast.DateOf(late))
	assert.Equal(t, forecast.Date{Year: 2025, Month: time.June, Day: 2}, forecast.DateOf(late.UTC()))
}

func TestForecast_IsStale(t *testing.T) {
	ts := time.Date(2025, time.June, 2, 10, 0, 0, 0, forecasttest.Berlin)
	fc := &forecast.Forecast{Timestamp: ts}

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{"Fresh", ts.Add(30 * time.Minute), false},
		{"ExactlyAtLimit", ts.Add(time.Hour), false},
		{"Old", ts.Add(time.Hour + time.Second), true},
		{"FutureWithinLimit", ts.Add(-30 * time.Minute), false},
		{"FarFuture", ts.Add(-2 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fc.IsStale(tt.now, forecast.DefaultStaleAfter))
		})
	}
}

func TestForecast_Queries(t *testing.T) {
	ts := time.Date(2025, time.June, 2, 10, 0, 0, 0, forecasttest.Berlin)
	fc := forecasttest.WeekForecast(ts, forecasttest.Berlin)

	t.Run("Day", func(t *testing.T) {
		day, ok := fc.Day(forecast.Date{Year: 2025, Month: time.June, Day: 4})
		require.True(t, ok)
		assert.Len(t, day.HourlyValues, 24)

		_, ok = fc.Day(forecast.Date{Year: 2025, Month: time.July, Day: 4})
		assert.False(t, ok)
	})

	t.Run("HourAt", func(t *testing.T) {
		h, ok := fc.HourAt(time.Date(2025, time.June, 3, 14, 20, 0, 0, forecasttest.Berlin))
		require.True(t, ok)
		assert.Equal(t, 14, h.DateTime.Hour())
		assert.Equal(t, 3, h.DateTime.Day())

		_, ok = fc.HourAt(time.Date(2025, time.June, 20, 14, 0, 0, 0, forecasttest.Berlin))
		assert.False(t, ok)
	})

	t.Run("TemperatureRange", func(t *testing.T) {
		low, high, ok := fc.TemperatureRange()
		require.True(t, ok)
		assert.InDelta(t, 8.5-6*0.25, low, 1e-9)
		assert.InDelta(t, 8.5+23*0.5, high, 1e-9)

		_, _, ok = forecast.EmptyForecast(ts).TemperatureRange()
		assert.False(t, ok)
	})

	t.Run("DaySummary", func(t *testing.T) {
		summary, ok := fc.DaySummary(0)
		require.True(t, ok)
		assert.Equal(t, forecast.DateOf(ts), summary.Date)
		assert.Equal(t, 0, fc.Days[0].HourlyValues[0].WeatherCode)
		assert.Equal(t, 61, summary.WeatherCode)
		assert.Equal(t, 92, summary.MaxPrecipitationProbability)
		assert.InDelta(t, 8.5, summary.MinTemperature, 1e-9)
		assert.InDelta(t, 20.0, summary.MaxTemperature, 1e-9)

		_, ok = fc.DaySummary(7)
		assert.False(t, ok)
		_, ok = fc.DaySummary(-1)
		assert.False(t, ok)
	})

	t.Run("IsNight", func(t *testing.T) {
		assert.True(t, fc.IsNight(time.Date(2025, time.June, 2, 3, 0, 0, 0, forecasttest.Berlin)))
		assert.False(t, fc.IsNight(time.Date(2025, time.June, 2, 12, 0, 0, 0, forecasttest.Berlin)))
		assert.True(t, fc.IsNight(time.Date(2025, time.June, 2, 22, 0, 0, 0, forecasttest.Berlin)))
		assert.False(t, fc.IsNight(time.Date(2025, time.August, 2, 3, 0, 0, 0, forecasttest.Berlin)))
	})
}

func TestEmptyForecast(t *testing.T) {
	now := time.Date(2025, time.June, 2, 10, 0, 0, 0, forecasttest.Berlin)
	fc := forecast.EmptyForecast(now)

	assert.True(t, fc.IsEmpty())
	assert.Equal(t, now, fc.Timestamp)
	assert.Equal(t, forecast.DefaultUnits(), fc.Units)
	assert.False(t, fc.IsStale(now, forecast.DefaultStaleAfter))
}
