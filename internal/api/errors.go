package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error is a non-2xx response from the backend.
type Error struct {
	StatusCode int
	Message    string // "message" field of a JSON body, if any
	Body       string // raw body, trimmed
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	if e.Body != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

func newError(statusCode int, body []byte) *Error {
	e := &Error{
		StatusCode: statusCode,
		Body:       strings.TrimSpace(string(body)),
	}

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		e.Message = payload.Message
	}
	return e
}

// MessageOr returns the backend's JSON message carried by err, or def.
// Used by views talking to JSON endpoints.
func MessageOr(err error, def string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return def
}

// TextOr returns the raw response body carried by err, or def.
// Used by views talking to plain-text endpoints.
func TextOr(err error, def string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Body != "" {
		return apiErr.Body
	}
	return def
}

// IsUnauthorized reports whether err is a 401 or 403 from the backend.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == 401 || apiErr.StatusCode == 403
}
