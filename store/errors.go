package store

import (
	"errors"
	"fmt"
)

// Error codes. Every failure the engine can surface to a caller carries one of
// these; anything else escaping an operation is a programming error.
const (
	EINVALID           = "invalid"
	ENOTFOUND          = "not_found"
	EINSUFFICIENTFUNDS = "insufficient_funds"
	EOUTOFSTOCK        = "out_of_stock"
	EDUPLICATECODE     = "duplicate_code"
)

// Error is a recoverable, user-presentable failure. Failed operations leave
// all state unchanged; Message names the specific reason.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func Errorf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode returns the code of err, or "" for nil / non-engine errors.
func ErrorCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
