package external

import (
	"context"
	"testing"
	"time"

	"flosscast.app/internal/core/forecast"
	"flosscast.app/internal/mocks"
	"flosscast.app/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestForecastSourceLoggingDecorator(t *testing.T) {
	fc := forecast.EmptyForecast(fetchTime)

	t.Run("Success", func(t *testing.T) {
		source := mocks.NewForecastSource(t)
		logger := mocks.NewLogger(t)
		source.EXPECT().FetchForecast(mock.Anything, 50.1, 8.6).Return(fc, nil).Once()
		logger.EXPECT().Info("Forecast API request started",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()
		logger.EXPECT().Info("Forecast API request completed",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

		decorator := NewForecastSourceLoggingDecorator(source, "open-meteo", logger)
		result, err := decorator.FetchForecast(context.Background(), 50.1, 8.6)
		require.NoError(t, err)
		assert.Same(t, fc, result)
	})

	t.Run("Failure", func(t *testing.T) {
		source := mocks.NewForecastSource(t)
		logger := mocks.NewLogger(t)
		networkErr := errors.NewNetworkError("open-meteo returned status 503", nil)
		source.EXPECT().FetchForecast(mock.Anything, 50.1, 8.6).Return(nil, networkErr).Once()
		logger.EXPECT().Info("Forecast API request started",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()
		logger.EXPECT().Error("Forecast API request failed",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

		decorator := NewForecastSourceLoggingDecorator(source, "open-meteo", logger)
		result, err := decorator.FetchForecast(context.Background(), 50.1, 8.6)
		assert.Nil(t, result)
		assert.Same(t, networkErr, err)
	})
}

func TestCitySearcherLoggingDecorator(t *testing.T) {
	searcher := mocks.NewCitySearcher(t)
	logger := setupLoggerMock(t)
	cities := []forecast.City{{Name: "Lagos", Latitude: 6.45, Longitude: 3.39}}
	searcher.EXPECT().SearchCities(mock.Anything, "Lagos").Return(cities, nil).Once()
	searcher.EXPECT().SearchCities(mock.Anything, "").Return(nil, errors.NewValidationError("search query cannot be empty")).Once()

	decorator := NewCitySearcherLoggingDecorator(searcher, "open-meteo-geocoding", logger)

	result, err := decorator.SearchCities(context.Background(), "Lagos")
	require.NoError(t, err)
	assert.Equal(t, cities, result)

	_, err = decorator.SearchCities(context.Background(), "")
	assert.True(t, errors.IsValidationError(err))
}

func TestRateLimitedForecastSource(t *testing.T) {
	fc := forecast.EmptyForecast(fetchTime)

	t.Run("RecordsRequests", func(t *testing.T) {
		source := mocks.NewForecastSource(t)
		metrics := mocks.NewUpstreamMetrics(t)
		source.EXPECT().FetchForecast(mock.Anything, 50.1, 8.6).Return(fc, nil).Once()
		source.EXPECT().FetchForecast(mock.Anything, 6.5, 3.4).Return(nil, errors.NewNetworkError("down", nil)).Once()
		metrics.EXPECT().RecordRateLimitWait(EndpointForecast, mock.Anything).Twice()
		metrics.EXPECT().RecordRequest(EndpointForecast, true, mock.Anything).Once()
		metrics.EXPECT().RecordRequest(EndpointForecast, false, mock.Anything).Once()

		limited := NewRateLimitedForecastSource(source, NewUpstreamLimiter(100, 10, metrics))

		result, err := limited.FetchForecast(context.Background(), 50.1, 8.6)
		require.NoError(t, err)
		assert.Same(t, fc, result)

		_, err = limited.FetchForecast(context.Background(), 6.5, 3.4)
		assert.True(t, errors.IsNetworkError(err))
	})

	t.Run("WaitExceedsDeadline", func(t *testing.T) {
		source := mocks.NewForecastSource(t)
		metrics := mocks.NewUpstreamMetrics(t)
		source.EXPECT().FetchForecast(mock.Anything, 50.1, 8.6).Return(fc, nil).Once()
		metrics.EXPECT().RecordRateLimitWait(EndpointForecast, mock.Anything).Once()
		metrics.EXPECT().RecordRequest(EndpointForecast, true, mock.Anything).Once()
		metrics.EXPECT().RecordRequest(EndpointForecast, false, mock.Anything).Once()

		limited := NewRateLimitedForecastSource(source, NewUpstreamLimiter(0.001, 1, metrics))

		_, err := limited.FetchForecast(context.Background(), 50.1, 8.6)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err = limited.FetchForecast(ctx, 50.1, 8.6)
		assert.True(t, errors.IsNetworkError(err))
	})
}

func TestRateLimitedCitySearcher(t *testing.T) {
	searcher := mocks.NewCitySearcher(t)
	metrics := mocks.NewUpstreamMetrics(t)
	cities := []forecast.City{{Name: "Oslo", Latitude: 59.91, Longitude: 10.75}}
	searcher.EXPECT().SearchCities(mock.Anything, "Oslo").Return(cities, nil).Once()
	metrics.EXPECT().RecordRateLimitWait(EndpointGeocoding, mock.Anything).Once()
	metrics.EXPECT().RecordRequest(EndpointGeocoding, true, mock.Anything).Once()

	limited := NewRateLimitedCitySearcher(searcher, NewUpstreamLimiter(5, 1, metrics))

	result, err := limited.SearchCities(context.Background(), "Oslo")
	require.NoError(t, err)
	assert.Equal(t, cities, result)
}
