package dsmeta

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes used across the application.
const (
	EINVALID      = "invalid"
	ENOTFOUND     = "not_found"
	EINTERNAL     = "internal"
	EUNAVAILABLE  = "unavailable"
	EUNAUTHORIZED = "unauthorized"
	ETOOLARGE     = "too_large"
	ERATELIMIT    = "rate_limit"
	ETIMEOUT      = "timeout"
)

// Error represents an application error with a machine-readable code and
// a human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("dsmeta error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Transient reports whether an error is worth retrying: the failure is
// tied to availability (timeout, rate limit, connection) rather than to
// the request itself. Authentication and oversized-content errors are
// terminal for their source.
func Transient(err error) bool {
	switch ErrorCode(err) {
	case ETIMEOUT, ERATELIMIT, EUNAVAILABLE:
		return true
	}
	return false
}

// ErrorHint returns a remediation hint for an error, or "" when no
// useful suggestion exists. Hints are keyed on the error code so callers
// can surface them alongside the message.
func ErrorHint(err error) string {
	switch ErrorCode(err) {
	case ETOOLARGE:
		return "The page content is too large to process. Try a higher-level URL, such as the site's main page."
	case ETIMEOUT:
		return "The extraction took too long. Verify the URL loads in a browser, then retry."
	case ERATELIMIT:
		return "The extraction service is rate limiting requests. Wait a moment and retry."
	case EUNAUTHORIZED:
		return "Authentication failed. Check that the API key is set and valid."
	case ENOTFOUND:
		return "The page was not found. If this is an API endpoint, try the site's main page instead."
	}
	return ""
}

// SourceError records the failure of a single source URL during a
// multi-source extraction. It is attached to results rather than
// propagated, so callers always receive the best available partial result.
type SourceError struct {
	URL     string `json:"url"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewSourceError builds a SourceError from an error for the given URL.
func NewSourceError(url string, err error) SourceError {
	return SourceError{
		URL:     url,
		Code:    ErrorCode(err),
		Message: ErrorMessage(err),
	}
}

// AggregateError is returned when every source in an extraction failed.
// It carries the per-URL failures for diagnostics.
type AggregateError struct {
	Failures []SourceError
}

// Error implements the error interface.
func (e *AggregateError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "all %d sources failed", len(e.Failures))
	for _, f := range e.Failures {
		fmt.Fprintf(&sb, "; %s: %s", f.URL, f.Message)
	}
	return sb.String()
}
