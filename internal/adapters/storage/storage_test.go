package storage

import (
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
