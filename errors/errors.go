package errors

import "fmt"

// Application error types organized by category for better error handling

type ErrorType string

// User Errors - malformed input caught before any upstream call
const (
	BadUserInputError       ErrorType = "BAD_USER_INPUT"
	InvalidCoordinatesError ErrorType = "INVALID_COORDINATES"
)

// Upstream API Errors - reclassified failures of an outbound call
const (
	TimeoutError   ErrorType = "TIMEOUT"
	RateLimitError ErrorType = "RATE_LIMIT_EXCEEDED"
	UpstreamError  ErrorType = "UNKNOWN_ERROR"
)

// Internal Errors - anything not already classified above
const (
	InternalError ErrorType = "INTERNAL_SERVER_ERROR"
)

// Collaborator names attached to errors raised while talking to an upstream service
const (
	SourceGeocoding = "geocoding"
	SourceForecast  = "forecast"
)

type AppError struct {
	Type    ErrorType
	Message string
	Source  string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithSource annotates the error with the originating collaborator name
func (e *AppError) WithSource(source string) *AppError {
	e.Source = source
	return e
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

// User Error Constructors
func NewBadUserInputError(message string) *AppError {
	return New(BadUserInputError, message)
}

func NewInvalidCoordinatesError(message string) *AppError {
	return New(InvalidCoordinatesError, message)
}

// Upstream API Error Constructors
func NewTimeoutError(message string, cause error) *AppError {
	return Wrap(TimeoutError, message, cause)
}

func NewRateLimitError(message string) *AppError {
	return New(RateLimitError, message)
}

func NewUpstreamError(message string, cause error) *AppError {
	return Wrap(UpstreamError, message, cause)
}

// Internal Error Constructor
func NewInternalError(message string, cause error) *AppError {
	return Wrap(InternalError, message, cause)
}

// Helper functions for error type checking
func IsBadUserInputError(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == BadUserInputError
	}
	return false
}

func IsInvalidCoordinatesError(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == InvalidCoordinatesError
	}
	return false
}

func IsTimeoutError(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == TimeoutError
	}
	return false
}

func IsRateLimitError(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == RateLimitError
	}
	return false
}

func IsUpstreamError(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == UpstreamError
	}
	return false
}

func IsInternalError(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == InternalError
	}
	return false
}
