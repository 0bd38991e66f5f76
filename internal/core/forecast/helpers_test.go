package forecast_test

import (
	"sync"
	"testing"

	"flosscast.app/internal/mocks"
	"github.com/stretchr/testify/mock"
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

// metricsRecorder keeps the lookup outcomes and fallback results reported
// to a ForecastMetrics mock.
type metricsRecorder struct {
	mu        sync.Mutex
	lookups   []string
	fallbacks []bool
}

func (r *metricsRecorder) Lookups() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lookups...)
}

func (r *metricsRecorder) Fallbacks() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.fallbacks...)
}

func setupMetricsMock(t *testing.T) (*mocks.ForecastMetrics, *metricsRecorder) {
	rec := &metricsRecorder{}
	mockMetrics := mocks.NewForecastMetrics(t)

	mockMetrics.EXPECT().RecordLookup(mock.Anything).Run(func(outcome string) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.lookups = append(rec.lookups, outcome)
	}).Maybe()
	mockMetrics.EXPECT().RecordFallback(mock.Anything).Run(func(success bool) {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		rec.fallbacks = append(rec.fallbacks, success)
	}).Maybe()
	mockMetrics.EXPECT().RecordOperation(mock.Anything, mock.Anything).Maybe()
	mockMetrics.EXPECT().SetDocumentEntries(mock.Anything, mock.Anything).Maybe()

	return mockMetrics, rec
}
