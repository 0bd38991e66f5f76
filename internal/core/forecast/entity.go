package forecast

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the ISO-8601 calendar date form used on disk.
	DateLayout = "2006-01-02"
	// TimestampLayout is the ISO-8601 date-time form used on disk.
	TimestampLayout = time.RFC3339Nano
	// DefaultStaleAfter is the age after which a cached forecast is refreshed.
	DefaultStaleAfter = time.Hour
)

// Date is a calendar date without time or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses an ISO-8601 calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Hourly is one hour of forecast measurements.
type Hourly struct {
	DateTime                 time.Time
	Temperature              float64
	RelativeHumidity         int
	PrecipitationProbability int
	Rain                     float64
	Showers                  float64
	Snowfall                 float64
	WeatherCode              int
}

// DailyForecast groups the hourly values of one calendar date. Sunrise and
// Sunset are already in the local location.
type DailyForecast struct {
	Date         Date
	HourlyValues []Hourly
	Sunrise      time.Time
	Sunset       time.Time
}

// Units holds the display label of each hourly measurement.
type Units struct {
	Temperature              string
	Humidity                 string
	PrecipitationProbability string
	Rain                     string
	Showers                  string
	Snow                     string
}

// DefaultUnits returns the labels used by the forecast endpoint by default.
func DefaultUnits() Units {
	return Units{
		Temperature:              "°C",
		Humidity:                 "%",
		PrecipitationProbability: "%",
		Rain:                     "mm",
		Showers:                  "mm",
		Snow:                     "cm",
	}
}

// Forecast is a multi-day forecast. Timestamp records when it was produced
// and is the only input to freshness decisions.
type Forecast struct {
	Timestamp time.Time
	Days      []DailyForecast
	Units     Units
}

// EmptyForecast is the placeholder handed to callers when nothing could be
// loaded.
func EmptyForecast(now time.Time) *Forecast {
	return &Forecast{
		Timestamp: now,
		Days:      []DailyForecast{},
		Units:     DefaultUnits(),
	}
}

// IsEmpty reports whether f carries no days.
func (f *Forecast) IsEmpty() bool {
	return len(f.Days) == 0
}

// IsStale reports whether the absolute distance between now and the
// forecast timestamp exceeds staleAfter. A timestamp in the future counts.
func (f *Forecast) IsStale(now time.Time, staleAfter time.Duration) bool {
	age := now.Sub(f.Timestamp)
	if age < 0 {
		age = -age
	}
	return age > staleAfter
}

// Day returns the forecast of date d.
func (f *Forecast) Day(d Date) (*DailyForecast, bool) {
	for i := range f.Days {
		if f.Days[i].Date == d {
			return &f.Days[i], true
		}
	}
	return nil, false
}

// HourAt returns the hourly entry covering t. t is compared in its own
// location, so pass it in the forecast's local location.
func (f *Forecast) HourAt(t time.Time) (Hourly, bool) {
	day, ok := f.Day(DateOf(t))
	if !ok {
		return Hourly{}, false
	}
	for _, h := range day.HourlyValues {
		if h.DateTime.In(t.Location()).Hour() == t.Hour() {
			return h, true
		}
	}
	return Hourly{}, false
}

// TemperatureRange returns the lowest and highest hourly temperature of the
// whole forecast.
func (f *Forecast) TemperatureRange() (low, high float64, ok bool) {
	low, high = math.Inf(1), math.Inf(-1)
	for _, day := range f.Days {
		for _, h := range day.HourlyValues {
			low = math.Min(low, h.Temperature)
			high = math.Max(high, h.Temperature)
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return low, high, true
}

// DaySummary condenses one day for list views.
type DaySummary struct {
	Date                        Date
	WeatherCode                 int
	MaxPrecipitationProbability int
	MinTemperature              float64
	MaxTemperature              float64
}

// DaySummary summarises the i-th day. The weather code is the day's highest,
// the worst weather of the day.
func (f *Forecast) DaySummary(i int) (DaySummary, bool) {
	if i < 0 || i >= len(f.Days) || len(f.Days[i].HourlyValues) == 0 {
		return DaySummary{}, false
	}

	day := f.Days[i]
	summary := DaySummary{
		Date:           day.Date,
		MinTemperature: math.Inf(1),
		MaxTemperature: math.Inf(-1),
	}
	for _, h := range day.HourlyValues {
		summary.MinTemperature = math.Min(summary.MinTemperature, h.Temperature)
		summary.MaxTemperature = math.Max(summary.MaxTemperature, h.Temperature)
		if h.WeatherCode > summary.WeatherCode {
			summary.WeatherCode = h.WeatherCode
		}
		if h.PrecipitationProbability > summary.MaxPrecipitationProbability {
			summary.MaxPrecipitationProbability = h.PrecipitationProbability
		}
	}
	return summary, true
}

// IsNight reports whether t lies before sunrise or after sunset of its day.
// Times outside the forecast are never night.
func (f *Forecast) IsNight(t time.Time) bool {
	day, ok := f.Day(DateOf(t))
	if !ok {
		return false
	}
	return t.Before(day.Sunrise) || t.After(day.Sunset)
}

// City is a geocoding match. Name is its identity, so two places sharing a
// name are indistinguishable.
type City struct {
	Name      string
	State     string
	Country   string
	Latitude  float64
	Longitude float64
}

// Key returns the cache key of the city's coordinates.
func (c City) Key() string {
	return CacheKey(c.Latitude, c.Longitude)
}

// DisplayName joins the non-empty name parts.
func (c City) DisplayName() string {
	parts := []string{c.Name}
	for _, p := range []string{c.State, c.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// CacheKey buckets a coordinate to one decimal place, e.g. "50.1:8.6".
// Exact ties round half to even on the binary value, so 50.25 gives "50.2"
// and 8.75 gives "8.8". Values that round to zero share the "0.0" bucket
// regardless of sign.
func CacheKey(latitude, longitude float64) string {
	return keyPart(latitude) + ":" + keyPart(longitude)
}

func keyPart(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	if s == "-0.0" {
		return "0.0"
	}
	return s
}
