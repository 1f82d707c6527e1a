package reservation

import (
	"errors"
	"fmt"
)

// Outcome codes for reservation operations.
const (
	CodeValidation  = "validationError" // malformed or missing input, rejected before any store access
	CodeConflict    = "slotConflict"    // the proposed interval lost the race at commit time
	CodeNotFound    = "notFound"        // id absent at cancel time; benign, not fatal
	CodeWrongSecret = "wrongSecret"     // secret mismatch; no state change
	CodeTransport   = "transportError"  // store unreachable or subscription failure
)

// Error is a coded reservation error. The code drives how callers respond:
// conflict forces a view resync, not-found is informational, transport is a
// degraded-availability condition with no automatic retry.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func NewValidationError(format string, args ...any) error {
	return newError(CodeValidation, format, args...)
}

func NewConflictError(format string, args ...any) error {
	return newError(CodeConflict, format, args...)
}

func NewNotFoundError(format string, args ...any) error {
	return newError(CodeNotFound, format, args...)
}

func NewWrongSecretError(format string, args ...any) error {
	return newError(CodeWrongSecret, format, args...)
}

func NewTransportError(format string, args ...any) error {
	return newError(CodeTransport, format, args...)
}

func hasCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

func IsValidation(err error) bool  { return hasCode(err, CodeValidation) }
func IsConflict(err error) bool    { return hasCode(err, CodeConflict) }
func IsNotFound(err error) bool    { return hasCode(err, CodeNotFound) }
func IsWrongSecret(err error) bool { return hasCode(err, CodeWrongSecret) }
func IsTransport(err error) bool   { return hasCode(err, CodeTransport) }
