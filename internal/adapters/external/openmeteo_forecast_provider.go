package external

import (
	"context"
	"fmt"
	"time"

	"flosscast.app/internal/core/forecast"
	"flosscast.app/internal/ports"
	"flosscast.app/pkg/errors"
	"flosscast.app/pkg/jsonx"
)

const (
	DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"
	// apiTimeLayout is the form of every time value the API returns.
	apiTimeLayout = "2006-01-02T15:04"
	hourlyFields  = "temperature_2m,relative_humidity_2m,precipitation_probability,weather_code,rain,showers,snowfall"
)

// OpenMeteoForecastProvider downloads multi-day forecasts. The API answers
// in GMT. Hourly times keep the wall clock and date the API reports, placed
// in the configured location; sunrise and sunset are converted to it once,
// here.
type OpenMeteoForecastProvider struct {
	baseURL  string
	http     openMeteoClient
	location *time.Location
	now      func() time.Time
	logger   ports.Logger
}

// OpenMeteoForecastProviderParams holds parameters for creating the forecast provider
type OpenMeteoForecastProviderParams struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// Location of the returned times. Defaults to time.Local.
	Location *time.Location
	Now      func() time.Time
	Logger   ports.Logger
}

func NewOpenMeteoForecastProvider(params OpenMeteoForecastProviderParams) *OpenMeteoForecastProvider {
	p := &OpenMeteoForecastProvider{
		baseURL:  params.BaseURL,
		http:     newOpenMeteoClient("open-meteo forecast", params.Timeout, params.UserAgent, params.Logger),
		location: params.Location,
		now:      params.Now,
		logger:   params.Logger,
	}
	if p.baseURL == "" {
		p.baseURL = DefaultForecastURL
	}
	if p.location == nil {
		p.location = time.Local
	}
	if p.now == nil {
		p.now = time.Now
	}
	return p
}

// ForecastURL returns the request URL for a coordinate. Coordinates are
// sent with one decimal, the precision of the cache key.
func (p *OpenMeteoForecastProvider) ForecastURL(latitude, longitude float64) string {
	return fmt.Sprintf("%s?latitude=%.1f&longitude=%.1f&daily=sunrise,sunset&hourly=%s",
		p.baseURL, latitude, longitude, hourlyFields)
}

func (p *OpenMeteoForecastProvider) FetchForecast(ctx context.Context, latitude, longitude float64) (*forecast.Forecast, error) {
	obj, err := p.http.getJSON(ctx, p.ForecastURL(latitude, longitude))
	if err != nil {
		return nil, err
	}
	return p.parse(obj)
}

func (p *OpenMeteoForecastProvider) GetProviderName() string {
	return "open-meteo"
}

type hourlyColumns struct {
	time                     []time.Time
	temperature              []float64
	relativeHumidity         []int
	precipitationProbability []int
	weatherCode              []int
	rain                     []float64
	showers                  []float64
	snowfall                 []float64
}

func (p *OpenMeteoForecastProvider) parse(obj *jsonx.Object) (*forecast.Forecast, error) {
	timestamp := p.now().In(p.location)

	unitsObj, err := obj.Object("hourly_units")
	if err != nil {
		return nil, err
	}
	units, err := parseUnits(unitsObj)
	if err != nil {
		return nil, err
	}

	hourlyObj, err := obj.Object("hourly")
	if err != nil {
		return nil, err
	}
	cols, err := parseHourlyColumns(hourlyObj, p.location)
	if err != nil {
		return nil, err
	}
	if err := p.checkHourlyLengths(cols); err != nil {
		return nil, err
	}

	dailyObj, err := obj.Object("daily")
	if err != nil {
		return nil, err
	}
	sun, err := p.parseDaily(dailyObj)
	if err != nil {
		return nil, err
	}

	days := p.groupByDate(cols, sun)
	p.logger.Debug("Parsed forecast response",
		ports.F("hours", len(cols.time)),
		ports.F("days", len(days)))

	return &forecast.Forecast{Timestamp: timestamp, Days: days, Units: units}, nil
}

func parseUnits(obj *jsonx.Object) (forecast.Units, error) {
	var units forecast.Units
	fields := []struct {
		key    string
		target *string
	}{
		{"temperature_2m", &units.Temperature},
		{"relative_humidity_2m", &units.Humidity},
		{"precipitation_probability", &units.PrecipitationProbability},
		{"rain", &units.Rain},
		{"showers", &units.Showers},
		{"snowfall", &units.Snow},
	}
	for _, f := range fields {
		v, err := obj.String(f.key)
		if err != nil {
			return forecast.Units{}, err
		}
		*f.target = v
	}
	return units, nil
}

func parseHourlyColumns(obj *jsonx.Object, loc *time.Location) (hourlyColumns, error) {
	var (
		cols hourlyColumns
		err  error
	)
	if cols.time, err = obj.Times("time", apiTimeLayout, loc); err != nil {
		return cols, err
	}
	if cols.temperature, err = obj.Floats("temperature_2m"); err != nil {
		return cols, err
	}
	if cols.relativeHumidity, err = obj.Ints("relative_humidity_2m"); err != nil {
		return cols, err
	}
	if cols.precipitationProbability, err = obj.Ints("precipitation_probability"); err != nil {
		return cols, err
	}
	if cols.weatherCode, err = obj.Ints("weather_code"); err != nil {
		return cols, err
	}
	if cols.rain, err = obj.Floats("rain"); err != nil {
		return cols, err
	}
	if cols.showers, err = obj.Floats("showers"); err != nil {
		return cols, err
	}
	if cols.snowfall, err = obj.Floats("snowfall"); err != nil {
		return cols, err
	}
	return cols, nil
}

// checkHourlyLengths rejects responses whose hourly arrays differ in length.
func (p *OpenMeteoForecastProvider) checkHourlyLengths(cols hourlyColumns) error {
	n := len(cols.time)
	lengths := []struct {
		key string
		len int
	}{
		{"temperature_2m", len(cols.temperature)},
		{"relative_humidity_2m", len(cols.relativeHumidity)},
		{"precipitation_probability", len(cols.precipitationProbability)},
		{"weather_code", len(cols.weatherCode)},
		{"rain", len(cols.rain)},
		{"showers", len(cols.showers)},
		{"snowfall", len(cols.snowfall)},
	}
	for _, l := range lengths {
		if l.len != n {
			p.logger.Warn("Hourly arrays differ in length",
				ports.F("key", l.key),
				ports.F("length", l.len),
				ports.F("expected", n))
			return errors.NewParseError("hourly."+l.key,
				fmt.Sprintf("array has %d values, hourly.time has %d", l.len, n), nil)
		}
	}
	return nil
}

type sunTimes struct {
	sunrise time.Time
	sunset  time.Time
}

// parseDaily maps each date of the daily block to its sunrise and sunset in
// the local location.
func (p *OpenMeteoForecastProvider) parseDaily(obj *jsonx.Object) (map[forecast.Date]sunTimes, error) {
	dates, err := obj.Strings("time")
	if err != nil {
		return nil, err
	}
	sunrises, err := obj.Times("sunrise", apiTimeLayout, time.UTC)
	if err != nil {
		return nil, err
	}
	sunsets, err := obj.Times("sunset", apiTimeLayout, time.UTC)
	if err != nil {
		return nil, err
	}
	if len(sunrises) != len(dates) || len(sunsets) != len(dates) {
		p.logger.Warn("Daily arrays differ in length",
			ports.F("dates", len(dates)),
			ports.F("sunrises", len(sunrises)),
			ports.F("sunsets", len(sunsets)))
		return nil, errors.NewParseError("daily",
			fmt.Sprintf("daily.time has %d values, sunrise %d, sunset %d", len(dates), len(sunrises), len(sunsets)), nil)
	}

	out := make(map[forecast.Date]sunTimes, len(dates))
	for i, raw := range dates {
		date, err := forecast.ParseDate(raw)
		if err != nil {
			return nil, errors.NewParseError(fmt.Sprintf("%s[%d]", obj.Path("time"), i),
				fmt.Sprintf("cannot parse %q as date", raw), err)
		}
		out[date] = sunTimes{
			sunrise: sunrises[i].In(p.location),
			sunset:  sunsets[i].In(p.location),
		}
	}
	return out, nil
}

// groupByDate builds one DailyForecast per reported calendar date in order
// of appearance, matched to the daily entry of the same date. Hours of a
// date the daily block does not cover are dropped.
func (p *OpenMeteoForecastProvider) groupByDate(cols hourlyColumns, sun map[forecast.Date]sunTimes) []forecast.DailyForecast {
	days := make([]forecast.DailyForecast, 0, len(sun))
	index := make(map[forecast.Date]int, len(sun))

	for i, t := range cols.time {
		date := forecast.DateOf(t)

		pos, ok := index[date]
		if !ok {
			st, covered := sun[date]
			if !covered {
				p.logger.Debug("Dropping hour outside the daily range",
					ports.F("date", date.String()),
					ports.F("hour", t))
				continue
			}
			pos = len(days)
			index[date] = pos
			days = append(days, forecast.DailyForecast{
				Date:         date,
				HourlyValues: make([]forecast.Hourly, 0, 24),
				Sunrise:      st.sunrise,
				Sunset:       st.sunset,
			})
		}

		days[pos].HourlyValues = append(days[pos].HourlyValues, forecast.Hourly{
			DateTime:                 t,
			Temperature:              cols.temperature[i],
			RelativeHumidity:         cols.relativeHumidity[i],
			PrecipitationProbability: cols.precipitationProbability[i],
			Rain:                     cols.rain[i],
			Showers:                  cols.showers[i],
			Snowfall:                 cols.snowfall[i],
			WeatherCode:              cols.weatherCode[i],
		})
	}
	return days
}
