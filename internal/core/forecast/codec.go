package forecast

import (
	"encoding/json"
	"fmt"
	"time"

	"flosscast.app/pkg/errors"
	"flosscast.app/pkg/jsonx"
)

// On-disk shape of a cached forecast.
type forecastDocument struct {
	Timestamp string          `json:"timestamp"`
	Units     unitsDocument   `json:"units"`
	Days      []dailyDocument `json:"days"`
}

type unitsDocument struct {
	Temperature              string `json:"temperature"`
	Humidity                 string `json:"humidity"`
	PrecipitationProbability string `json:"precipitationProbability"`
	Rain                     string `json:"rain"`
	Showers                  string `json:"showers"`
	Snow                     string `json:"snow"`
}

type dailyDocument struct {
	Date         string           `json:"date"`
	HourlyValues []hourlyDocument `json:"hourlyValues"`
	Sunrise      string           `json:"sunrise"`
	Sunset       string           `json:"sunset"`
}

type hourlyDocument struct {
	DateTime                 string  `json:"dateTime"`
	Temperature              float64 `json:"temperature"`
	RelativeHumidity         int     `json:"relativeHumidity"`
	PrecipitationProbability int     `json:"precipitationProbability"`
	Rain                     float64 `json:"rain"`
	Showers                  float64 `json:"showers"`
	Snowfall                 float64 `json:"snowfall"`
	WeatherCode              int     `json:"weatherCode"`
}

func formatTime(t time.Time) string {
	return t.Format(TimestampLayout)
}

// EncodeForecast serialises f into its cache document form.
func EncodeForecast(f *Forecast) ([]byte, error) {
	if f == nil {
		return nil, errors.NewValidationError("forecast is required")
	}

	doc := forecastDocument{
		Timestamp: formatTime(f.Timestamp),
		Units: unitsDocument{
			Temperature:              f.Units.Temperature,
			Humidity:                 f.Units.Humidity,
			PrecipitationProbability: f.Units.PrecipitationProbability,
			Rain:                     f.Units.Rain,
			Showers:                  f.Units.Showers,
			Snow:                     f.Units.Snow,
		},
		Days: make([]dailyDocument, 0, len(f.Days)),
	}

	for _, day := range f.Days {
		dd := dailyDocument{
			Date:         day.Date.String(),
			HourlyValues: make([]hourlyDocument, 0, len(day.HourlyValues)),
			Sunrise:      formatTime(day.Sunrise),
			Sunset:       formatTime(day.Sunset),
		}
		for _, h := range day.HourlyValues {
			dd.HourlyValues = append(dd.HourlyValues, hourlyDocument{
				DateTime:                 formatTime(h.DateTime),
				Temperature:              h.Temperature,
				RelativeHumidity:         h.RelativeHumidity,
				PrecipitationProbability: h.PrecipitationProbability,
				Rain:                     h.Rain,
				Showers:                  h.Showers,
				Snowfall:                 h.Snowfall,
				WeatherCode:              h.WeatherCode,
			})
		}
		doc.Days = append(doc.Days, dd)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal forecast: %w", err)
	}
	return data, nil
}

// DecodeForecast parses a cache document entry. Every time value is moved
// into loc; a nil loc means time.Local. Missing or mistyped keys fail with a
// parse error naming the key path.
func DecodeForecast(data []byte, loc *time.Location) (*Forecast, error) {
	obj, err := jsonx.Parse(data)
	if err != nil {
		return nil, err
	}
	return decodeForecast(obj, loc)
}

func decodeForecast(obj *jsonx.Object, loc *time.Location) (*Forecast, error) {
	if loc == nil {
		loc = time.Local
	}

	timestamp, err := decodeTime(obj, "timestamp", loc)
	if err != nil {
		return nil, err
	}

	unitsObj, err := obj.Object("units")
	if err != nil {
		return nil, err
	}
	units, err := decodeUnits(unitsObj)
	if err != nil {
		return nil, err
	}

	dayObjs, err := obj.Objects("days")
	if err != nil {
		return nil, err
	}
	days := make([]DailyForecast, 0, len(dayObjs))
	for _, dayObj := range dayObjs {
		day, err := decodeDay(dayObj, loc)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return &Forecast{Timestamp: timestamp, Days: days, Units: units}, nil
}

func decodeTime(obj *jsonx.Object, key string, loc *time.Location) (time.Time, error) {
	t, err := obj.Time(key, TimestampLayout, nil)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

func decodeUnits(obj *jsonx.Object) (Units, error) {
	var units Units
	fields := []struct {
		key    string
		target *string
	}{
		{"temperature", &units.Temperature},
		{"humidity", &units.Humidity},
		{"precipitationProbability", &units.PrecipitationProbability},
		{"rain", &units.Rain},
		{"showers", &units.Showers},
		{"snow", &units.Snow},
	}
	for _, f := range fields {
		v, err := obj.String(f.key)
		if err != nil {
			return Units{}, err
		}
		*f.target = v
	}
	return units, nil
}

func decodeDay(obj *jsonx.Object, loc *time.Location) (DailyForecast, error) {
	rawDate, err := obj.String("date")
	if err != nil {
		return DailyForecast{}, err
	}
	date, err := ParseDate(rawDate)
	if err != nil {
		return DailyForecast{}, errors.NewParseError(obj.Path("date"), fmt.Sprintf("cannot parse %q as date", rawDate), err)
	}

	sunrise, err := decodeTime(obj, "sunrise", loc)
	if err != nil {
		return DailyForecast{}, err
	}
	sunset, err := decodeTime(obj, "sunset", loc)
	if err != nil {
		return DailyForecast{}, err
	}

	hourObjs, err := obj.Objects("hourlyValues")
	if err != nil {
		return DailyForecast{}, err
	}
	hours := make([]Hourly, 0, len(hourObjs))
	for _, hourObj := range hourObjs {
		h, err := decodeHourly(hourObj)
		if err != nil {
			return DailyForecast{}, err
		}
		// The date is checked in the offset the hour was written with.
		if DateOf(h.DateTime) != date {
			return DailyForecast{}, errors.NewParseError(hourObj.Path("dateTime"),
				fmt.Sprintf("hour %s does not belong to day %s", formatTime(h.DateTime), date), nil)
		}
		h.DateTime = h.DateTime.In(loc)
		hours = append(hours, h)
	}

	return DailyForecast{Date: date, HourlyValues: hours, Sunrise: sunrise, Sunset: sunset}, nil
}

func decodeHourly(obj *jsonx.Object) (Hourly, error) {
	var (
		h   Hourly
		err error
	)
	if h.DateTime, err = obj.Time("dateTime", TimestampLayout, nil); err != nil {
		return Hourly{}, err
	}
	if h.Temperature, err = obj.Float("temperature"); err != nil {
		return Hourly{}, err
	}
	if h.RelativeHumidity, err = obj.Int("relativeHumidity"); err != nil {
		return Hourly{}, err
	}
	if h.PrecipitationProbability, err = obj.Int("precipitationProbability"); err != nil {
		return Hourly{}, err
	}
	if h.Rain, err = obj.Float("rain"); err != nil {
		return Hourly{}, err
	}
	if h.Showers, err = obj.Float("showers"); err != nil {
		return Hourly{}, err
	}
	if h.Snowfall, err = obj.Float("snowfall"); err != nil {
		return Hourly{}, err
	}
	if h.WeatherCode, err = obj.Int("weatherCode"); err != nil {
		return Hourly{}, err
	}
	return h, nil
}
