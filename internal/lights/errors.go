package lights

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeIO              = "IO_ERROR"
)

// LightError represents a domain-specific error.
type LightError struct {
	Code    string
	Message string
	Cause   error
}

func (e *LightError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LightError) Unwrap() error {
	return e.Cause
}

func invalidArgument(format string, args ...any) *LightError {
	return &LightError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func ioError(message string, cause error) *LightError {
	return &LightError{Code: ErrCodeIO, Message: message, Cause: cause}
}

// IsInvalidArgument reports whether err carries the INVALID_ARGUMENT code.
func IsInvalidArgument(err error) bool {
	return hasCode(err, ErrCodeInvalidArgument)
}

// IsIO reports whether err carries the IO_ERROR code.
func IsIO(err error) bool {
	return hasCode(err, ErrCodeIO)
}

func hasCode(err error, code string) bool {
	var le *LightError
	return errors.As(err, &le) && le.Code == code
}
