package company

import (
	"errors"
	"net/http"

	companyerrors "go-reestr/internal/company/errors"
	"go-reestr/internal/registryapi"
	"go-reestr/internal/shared/apperror"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, registryapi.ErrNotFound) {
		return apperror.WithCause(companyerrors.ErrCompanyNotFound, err)
	}
	if errors.Is(err, registryapi.ErrUnexpectedEnvelope) || errors.Is(err, registryapi.ErrMalformedResponse) {
		return apperror.WithCause(companyerrors.ErrUpstreamResponse, err)
	}
	if registryapi.IsTransport(err) {
		return apperror.WithCause(companyerrors.ErrUpstreamUnavailable, err)
	}

	var statusErr *registryapi.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.StatusCode {
		case http.StatusConflict:
			return apperror.WithCause(companyerrors.ErrCompanyAlreadyExists, err)
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			return apperror.WithCause(companyerrors.ErrCompanyRejected, err)
		default:
			return apperror.WithCause(companyerrors.ErrUpstreamStatus, err)
		}
	}

	return err
}
