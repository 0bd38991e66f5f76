package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *AppError
		expected string
	}{
		{
			name: "ErrorWithoutCause",
			setup: func() *AppError {
				return New(ValidationError, "test validation error")
			},
			expected: "VALIDATION_ERROR: test validation error",
		},
		{
			name: "ErrorWithCause",
			setup: func() *AppError {
				cause := fmt.Errorf("original error")
				return Wrap(StorageError, "write cache document", cause)
			},
			expected: "STORAGE_ERROR: write cache document (caused by: original error)",
		},
		{
			name: "ParseErrorWithField",
			setup: func() *AppError {
				return NewParseError("days[0].sunrise", "missing key", nil)
			},
			expected: "PARSE_ERROR: missing key [field: days[0].sunrise]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.setup()
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := NewNetworkError("forecast request failed", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Nil(t, NewNotFoundError("no entry").Unwrap())
}

func TestSpecificErrorConstructors(t *testing.T) {
	tests := []struct {
		name         string
		constructor  func() *AppError
		expectedType ErrorType
		expectedMsg  string
		hasCause     bool
	}{
		{
			name:         "NewValidationError",
			constructor:  func() *AppError { return NewValidationError("query is required") },
			expectedType: ValidationError,
			expectedMsg:  "query is required",
		},
		{
			name:         "NewNotFoundError",
			constructor:  func() *AppError { return NewNotFoundError("no cache entry") },
			expectedType: NotFoundError,
			expectedMsg:  "no cache entry",
		},
		{
			name: "NewNetworkError",
			constructor: func() *AppError {
				return NewNetworkError("upstream returned status 503", fmt.Errorf("boom"))
			},
			expectedType: NetworkError,
			expectedMsg:  "upstream returned status 503",
			hasCause:     true,
		},
		{
			name: "NewCacheCorruptError",
			constructor: func() *AppError {
				return NewCacheCorruptError("cache document is not a JSON object", fmt.Errorf("unexpected EOF"))
			},
			expectedType: CacheCorruptError,
			expectedMsg:  "cache document is not a JSON object",
			hasCause:     true,
		},
		{
			name:         "NewConsistencyError",
			constructor:  func() *AppError { return NewConsistencyError("duplicate key 50.1:8.6") },
			expectedType: ConsistencyError,
			expectedMsg:  "duplicate key 50.1:8.6",
		},
		{
			name: "NewConfigurationError",
			constructor: func() *AppError {
				return NewConfigurationError("config loading failed", fmt.Errorf("missing env var"))
			},
			expectedType: ConfigurationError,
			expectedMsg:  "config loading failed",
			hasCause:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constructor()

			assert.Equal(t, tt.expectedType, err.Type)
			assert.Equal(t, tt.expectedMsg, err.Message)
			if tt.hasCause {
				assert.NotNil(t, err.Cause)
			} else {
				assert.Nil(t, err.Cause)
			}
		})
	}
}

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ValidationError, "VALIDATION_ERROR"},
		{NotFoundError, "NOT_FOUND_ERROR"},
		{NetworkError, "NETWORK_ERROR"},
		{ParseError, "PARSE_ERROR"},
		{CacheCorruptError, "CACHE_CORRUPT_ERROR"},
		{ConsistencyError, "CONSISTENCY_ERROR"},
		{StorageError, "STORAGE_ERROR"},
		{ConfigurationError, "CONFIGURATION_ERROR"},
		{ErrorTypeUnknown, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestErrorTypeCheckers_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("get forecast: %w", NewNetworkError("request failed", nil))

	assert.True(t, IsNetworkError(wrapped))
	assert.False(t, IsParseError(wrapped))
	assert.Equal(t, NetworkError, TypeOf(wrapped))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(fmt.Errorf("plain")))

	assert.True(t, IsCacheCorruptError(NewCacheCorruptError("bad", nil)))
	assert.True(t, IsConsistencyError(NewConsistencyError("dup")))
	assert.True(t, IsStorageError(NewStorageError("disk", nil)))
	assert.True(t, IsValidationError(NewValidationError("bad lat")))
	assert.True(t, IsNotFoundError(NewNotFoundError("none")))
	assert.True(t, IsConfigurationError(NewConfigurationError("bad", nil)))
}

func TestIsTimeoutError(t *testing.T) {
	timeout := NewNetworkError("request timed out", fmt.Errorf("do request: %w", context.DeadlineExceeded))
	assert.True(t, IsTimeoutError(timeout))

	assert.False(t, IsTimeoutError(NewNetworkError("status 500", nil)))
	assert.False(t, IsTimeoutError(NewParseError("x", "bad", context.DeadlineExceeded)))
}
