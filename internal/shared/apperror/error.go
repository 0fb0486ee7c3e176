package apperror

import (
	"errors"
	"fmt"
)

// AppError is the error every layer hands to the HTTP edge. Message is shown
// to dashboard users as is, so it is written in Russian.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    []FieldError
	Err        error
}

// FieldError describes one rejected form or JSON field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code and message,
// so copies made by WithCause still match their sentinel.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap returns nil for a nil err.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

// WithCause copies base and attaches err as the cause.
func WithCause(base *AppError, err error) *AppError {
	cp := *base
	cp.Err = err
	return &cp
}

// WithDetails copies base and attaches per-field details.
func WithDetails(base *AppError, details []FieldError) *AppError {
	cp := *base
	cp.Details = details
	return &cp
}
