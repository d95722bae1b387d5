package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies a client-facing failure.
type ErrorCode string

const (
	// ErrorCodeServer means a response was received with a non-2xx status.
	ErrorCodeServer ErrorCode = "SERVER_ERROR"

	// ErrorCodeNetwork means no response was received at all, including
	// timeouts.
	ErrorCodeNetwork ErrorCode = "NETWORK_ERROR"

	// ErrorCodeRequest means the request could not be constructed locally.
	ErrorCodeRequest ErrorCode = "REQUEST_ERROR"

	// ErrorCodeValidation means a payload failed client-side checks before
	// submission.
	ErrorCodeValidation ErrorCode = "VALIDATION_ERROR"
)

// Error is the normalized failure shape every SDK operation rejects with.
// The gateway produces server/network/request errors; payload Validate
// methods produce validation errors. Resource clients add no wrapping of
// their own beyond fmt context.
type Error struct {
	Code       ErrorCode              `json:"code"                  yaml:"code"`
	Message    string                 `json:"message"               yaml:"message"`
	StatusCode int                    `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"     yaml:"details,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status: %d)", e.Code, e.Message, e.StatusCode)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewServerError builds a server error from a status code and message.
func NewServerError(statusCode int, message string) *Error {
	if message == "" {
		message = "An error occurred"
	}

	return &Error{Code: ErrorCodeServer, Message: message, StatusCode: statusCode}
}

// NewNetworkError builds the error used when no response was received.
func NewNetworkError() *Error {
	return &Error{
		Code:    ErrorCodeNetwork,
		Message: "No response from server. Please check your connection.",
	}
}

// NewRequestError builds the error used for local request construction
// failures.
func NewRequestError(message string) *Error {
	if message == "" {
		message = "Failed to make request"
	}

	return &Error{Code: ErrorCodeRequest, Message: message}
}

// NewValidationError builds a field-level validation error.
func NewValidationError(field, message string) *Error {
	return &Error{
		Code:    ErrorCodeValidation,
		Message: message,
		Details: map[string]interface{}{"field": field},
	}
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("configuration is required")
	ErrBaseURLRequired     = errors.New("base URL is required")
	ErrFetcherRequired     = errors.New("fetcher is required")
	ErrProjectionsRequired = errors.New("option label and value projections are required")
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrOTPNotRequested     = errors.New("no OTP request in progress")
	ErrOTPAlreadyRequested = errors.New("an OTP request is already in progress")
)

// IsUnauthorized reports whether err carries an HTTP 401 status.
func IsUnauthorized(err error) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsNotFound reports whether err carries an HTTP 404 status.
func IsNotFound(err error) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsNetworkError reports whether err was produced without any server
// response.
func IsNetworkError(err error) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeNetwork
	}

	return false
}

// IsValidationError reports whether err comes from client-side payload
// checks.
func IsValidationError(err error) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == ErrorCodeValidation
	}

	return false
}

// ErrorMessage extracts a user-facing message from err, falling back to the
// supplied default. Notification code uses it so every mutation failure
// surfaces something readable.
func ErrorMessage(err error, fallback string) string {
	apiErr := &Error{}
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return fallback
}
