package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"flosscast.app/internal/core/forecast"
	"github.com/spf13/cobra"
)

type forecastFlags struct {
	latitude  float64
	longitude float64
	name      string
	force     bool
	cacheOnly bool
	json      bool
}

func forecastCommand(get func() *services) *cobra.Command {
	var flags forecastFlags

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Show the forecast of a coordinate",
		Long: `Show the forecast of a coordinate, downloading it when the cache has
no fresh entry. With --cache-only a stale entry is shown as is.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForecast(cmd, get(), flags)
		},
	}

	cmd.Flags().Float64Var(&flags.latitude, "lat", 0, "Latitude in degrees")
	cmd.Flags().Float64Var(&flags.longitude, "lon", 0, "Longitude in degrees")
	cmd.Flags().StringVar(&flags.name, "name", "", "City name shown in logs")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Download even when the cached forecast is fresh")
	cmd.Flags().BoolVar(&flags.cacheOnly, "cache-only", false, "Never refresh a cached forecast")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Print the forecast as JSON")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

func runForecast(cmd *cobra.Command, svc *services, flags forecastFlags) error {
	key := forecast.CacheKey(flags.latitude, flags.longitude)

	var (
		fc    *forecast.Forecast
		stale bool
		err   error
	)
	if flags.cacheOnly {
		fc, err = svc.Forecasts.GetForecast(cmd.Context(), forecast.GetForecastParams{
			Dir:       svc.CacheDir,
			Latitude:  flags.latitude,
			Longitude: flags.longitude,
			CacheOnly: true,
		})
	} else {
		name := flags.name
		if name == "" {
			name = key
		}
		var update forecast.ForecastUpdate
		update, err = svc.Loader.LoadForecastForCity(cmd.Context(), svc.CacheDir,
			forecast.City{Name: name, Latitude: flags.latitude, Longitude: flags.longitude}, flags.force)
		fc, stale = update.Forecast, update.Stale
	}
	if err != nil {
		return fmt.Errorf("forecast %s: %w", key, err)
	}

	out := cmd.OutOrStdout()
	if flags.json {
		data, err := forecast.EncodeForecast(fc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	return printForecast(out, key, fc, stale, time.Now())
}

func printForecast(out io.Writer, key string, fc *forecast.Forecast, stale bool, now time.Time) error {
	fmt.Fprintf(out, "Forecast %s, updated %s\n", key, fc.Timestamp.Format(time.RFC1123))
	if stale {
		fmt.Fprintln(out, "Could not refresh, showing the last known forecast.")
	}
	if fc.IsEmpty() {
		fmt.Fprintln(out, "No forecast available.")
		return nil
	}

	if low, high, ok := fc.TemperatureRange(); ok {
		fmt.Fprintf(out, "Temperatures %.1f%s to %.1f%s\n", low, fc.Units.Temperature, high, fc.Units.Temperature)
	}
	now = now.In(fc.Timestamp.Location())
	if hour, ok := fc.HourAt(now); ok {
		period := "day"
		if fc.IsNight(now) {
			period = "night"
		}
		fmt.Fprintf(out, "Now (%s): %.1f%s, %d%s humidity, weather code %d\n",
			period, hour.Temperature, fc.Units.Temperature,
			hour.RelativeHumidity, fc.Units.Humidity, hour.WeatherCode)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCODE\tMIN\tMAX\tPRECIP\tSUNRISE\tSUNSET")
	for i, day := range fc.Days {
		summary, ok := fc.DaySummary(i)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%.1f%s\t%.1f%s\t%d%s\t%s\t%s\n",
			summary.Date,
			summary.WeatherCode,
			summary.MinTemperature, fc.Units.Temperature,
			summary.MaxTemperature, fc.Units.Temperature,
			summary.MaxPrecipitationProbability, fc.Units.PrecipitationProbability,
			day.Sunrise.Format("15:04"),
			day.Sunset.Format("15:04"))
	}
	return w.Flush()
}
