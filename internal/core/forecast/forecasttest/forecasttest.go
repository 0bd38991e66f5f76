// Package forecasttest provides forecast fixtures and a controllable clock
// for tests.
package forecasttest

import (
	"sync"
	"time"

	"flosscast.app/internal/core/forecast"
)

// Berlin is the zone fixtures are built in.
var Berlin = mustLoad("Europe/Berlin")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone(name, 2*60*60)
	}
	return loc
}

// NewForecast builds a forecast of days full days of 24 hours each,
// starting at midnight of start in loc. Values vary with the hour so that
// round-trip comparisons catch mixed-up fields.
func NewForecast(timestamp time.Time, start forecast.Date, days int, loc *time.Location) *forecast.Forecast {
	first := time.Date(start.Year, start.Month, start.Day, 0, 0, 0, 0, loc)
	fc := &forecast.Forecast{
		Timestamp: timestamp.Round(0),
		Units:     forecast.DefaultUnits(),
		Days:      make([]forecast.DailyForecast, 0, days),
	}

	for d := 0; d < days; d++ {
		midnight := first.AddDate(0, 0, d)
		day := forecast.DailyForecast{
			Date:         forecast.DateOf(midnight),
			HourlyValues: make([]forecast.Hourly, 0, 24),
			Sunrise:      midnight.Add(5*time.Hour + 47*time.Minute),
			Sunset:       midnight.Add(20*time.Hour + 31*time.Minute),
		}
		for h := 0; h < 24; h++ {
			day.HourlyValues = append(day.HourlyValues, forecast.Hourly{
				DateTime:                 time.Date(midnight.Year(), midnight.Month(), midnight.Day(), h, 0, 0, 0, loc),
				Temperature:              8.5 + float64(h)*0.5 - float64(d)*0.25,
				RelativeHumidity:         60 + h,
				PrecipitationProbability: (h * 4) % 101,
				Rain:                     float64(h%3) * 0.1,
				Showers:                  float64(h%2) * 0.3,
				Snowfall:                 0,
				WeatherCode:              []int{0, 1, 2, 3, 45, 61}[h%6],
			})
		}
		fc.Days = append(fc.Days, day)
	}
	return fc
}

// WeekForecast is NewForecast for seven days starting at the date of
// timestamp in loc.
func WeekForecast(timestamp time.Time, loc *time.Location) *forecast.Forecast {
	return NewForecast(timestamp, forecast.DateOf(timestamp.In(loc)), 7, loc)
}

// Frankfurt is a city inside cache bucket "50.1:8.6".
func Frankfurt() forecast.City {
	return forecast.City{Name: "Frankfurt am Main", State: "Hesse", Country: "Germany", Latitude: 50.11, Longitude: 8.64}
}

// Lagos is a city inside cache bucket "6.5:3.4".
func Lagos() forecast.City {
	return forecast.City{Name: "Lagos", State: "Lagos", Country: "Nigeria", Latitude: 6.4541, Longitude: 3.3947}
}

// Clock is a manually advanced time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock stopped at now.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now.Round(0)}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
