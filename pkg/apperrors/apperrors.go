package apperrors

import (
	"errors"
	"fmt"
)

type Code string

const (
	// CodeInvalidInput covers malformed or semantically invalid request data:
	// unknown ids, bad formats, length violations.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeAccessDenied covers callers that lack identity or permission for the
	// requested action.
	CodeAccessDenied Code = "ACCESS_DENIED"
)

type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Cause }

func New(code Code, message string) error {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) error {
	return &AppError{Code: code, Message: message, Cause: cause}
}

func InvalidInput(msg string) error {
	return New(CodeInvalidInput, msg)
}

func AccessDenied(msg string) error {
	return New(CodeAccessDenied, msg)
}

// CodeOf reports the application code of err, or false if err carries none.
func CodeOf(err error) (Code, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

func IsInvalidInput(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == CodeInvalidInput
}

func IsAccessDenied(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == CodeAccessDenied
}
