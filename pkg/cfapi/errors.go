package cfapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a single error object in the API response envelope.
type APIError struct {
	Code    int    `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// RequestError represents a dispatch that obtained a response whose HTTP
// status does not indicate success. It carries the endpoint path and status
// code for diagnostics and is never retried.
type RequestError struct {
	Path       string     `json:"path"             yaml:"path"`
	StatusCode int        `json:"status_code"      yaml:"status_code"`
	Errors     []APIError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Error implements the error interface for RequestError.
func (e *RequestError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("request to %q failed with status %d: %s", e.Path, e.StatusCode, e.Errors[0].Error())
	}

	return fmt.Sprintf("request to %q failed with status %d", e.Path, e.StatusCode)
}

// FirstError returns the first envelope error or nil.
func (e *RequestError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// NewRequestError builds a RequestError from a response body, parsing the
// envelope's error list best-effort. A body that is not a valid envelope
// still yields a usable error carrying path and status.
func NewRequestError(path string, statusCode int, body []byte) *RequestError {
	reqErr := &RequestError{
		Path:       path,
		StatusCode: statusCode,
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil {
		reqErr.Errors = env.Errors
	}

	return reqErr
}

// Static errors for err113 compliance.
var (
	ErrTransportExhausted = errors.New("no response obtained after exhausting dispatch attempts")
	ErrCredentialInvalid  = errors.New("API token failed verification")
	ErrAPITokenRequired   = errors.New("API token is required")
	ErrConfigRequired     = errors.New("config is required")
	ErrCacheMiss          = errors.New("key not found in cache")
	ErrCacheEntryExpired  = errors.New("cache entry expired")
	ErrCacheDisabled      = errors.New("cache disabled")
	ErrZoneNotFound       = errors.New("zone not found")
	ErrRecordNotFound     = errors.New("DNS record not found")
)

// Common API error codes.
const (
	ErrorCodeInvalidToken        = 1000
	ErrorCodeInvalidTokenFmt     = 6003
	ErrorCodeAuthError           = 10000
	ErrorCodeRecordNotFound      = 81044
	ErrorCodeRecordAlreadyExists = 81057
)

// IsNotFound reports whether err is a RequestError with a 404 status.
func IsNotFound(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsAuthError reports whether err is a RequestError caused by a rejected or
// malformed credential (401 or 403).
func IsAuthError(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == http.StatusUnauthorized || reqErr.StatusCode == http.StatusForbidden
	}

	return false
}

// IsRateLimited reports whether err is a RequestError with a 429 status.
func IsRateLimited(err error) bool {
	reqErr := &RequestError{}
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}
