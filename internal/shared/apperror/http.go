package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the error body of the JSON envelope.
type HTTPError struct {
	Status  int          `json:"-"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// ToHTTP converts any error into what clients see. Anything that is not an
// AppError becomes ErrInternal so raw causes never leak.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = ErrInternal
	}

	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return HTTPError{
		Status:  status,
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	}
}
