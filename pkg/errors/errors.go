package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain/Business Logic Errors - errors related to input and lookups
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound

	// Infrastructure Errors - upstream API, payloads and the cache document
	ErrorTypeNetwork
	ErrorTypeParse
	ErrorTypeCacheCorrupt
	ErrorTypeConsistency
	ErrorTypeStorage

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeNetwork:
		return "NETWORK_ERROR"
	case ErrorTypeParse:
		return "PARSE_ERROR"
	case ErrorTypeCacheCorrupt:
		return "CACHE_CORRUPT_ERROR"
	case ErrorTypeConsistency:
		return "CONSISTENCY_ERROR"
	case ErrorTypeStorage:
		return "STORAGE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across the codebase
const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	NetworkError       = ErrorTypeNetwork
	ParseError         = ErrorTypeParse
	CacheCorruptError  = ErrorTypeCacheCorrupt
	ConsistencyError   = ErrorTypeConsistency
	StorageError       = ErrorTypeStorage
	ConfigurationError = ErrorTypeConfiguration
)

// AppError is the error value returned by every layer of the application.
// Field is set for parse errors and names the offending JSON key path.
type AppError struct {
	Type    ErrorType
	Message string
	Field   string
	Cause   error
}

func (e *AppError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s [field: %s]", e.Message, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), msg)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

// Infrastructure Error Constructors
func NewNetworkError(message string, cause error) *AppError {
	return Wrap(NetworkError, message, cause)
}

// NewParseError reports a malformed or schema-mismatched payload. field is
// the full key path of the value that could not be read.
func NewParseError(field, message string, cause error) *AppError {
	return &AppError{
		Type:    ParseError,
		Message: message,
		Field:   field,
		Cause:   cause,
	}
}

func NewCacheCorruptError(message string, cause error) *AppError {
	return Wrap(CacheCorruptError, message, cause)
}

func NewConsistencyError(message string) *AppError {
	return New(ConsistencyError, message)
}

func NewStorageError(message string, cause error) *AppError {
	return Wrap(StorageError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in err's chain.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// Helper functions for error type checking
func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsNetworkError(err error) bool {
	return TypeOf(err) == NetworkError
}

func IsParseError(err error) bool {
	return TypeOf(err) == ParseError
}

func IsCacheCorruptError(err error) bool {
	return TypeOf(err) == CacheCorruptError
}

func IsConsistencyError(err error) bool {
	return TypeOf(err) == ConsistencyError
}

func IsStorageError(err error) bool {
	return TypeOf(err) == StorageError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}

// IsTimeoutError reports whether err is a network error caused by a deadline.
func IsTimeoutError(err error) bool {
	if !IsNetworkError(err) {
		return false
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}
