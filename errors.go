package fbref

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// The parser uses these as a closed classification of page-level failures:
// a blocked challenge page, a missing page, a rate-limit response, or a
// structurally invalid page all map to a distinct code so callers can react
// without string matching.
const (
	EBLOCKED     = "blocked"      // anti-automation challenge page
	EINTERNAL    = "internal"     // internal error
	EINVALID     = "invalid"      // validation or structural failure
	ENOTFOUND    = "not_found"    // entity or page does not exist
	ERATELIMITED = "rate_limited" // upstream rate limit response
	EUNAVAILABLE = "unavailable"  // service temporarily unavailable
)

// Error represents an application-specific error. Application errors carry
// a machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("fbref error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the root error, if available.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the root error, if available.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper for constructing an *Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
