package companyerrors

import (
	"go-reestr/internal/shared/apperror"
	"net/http"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Компания не найдена",
		http.StatusNotFound,
	)

	ErrCompanyINNMissing = apperror.New(
		apperror.CodeNotFound,
		"У компании не указан ИНН",
		http.StatusNotFound,
	)

	ErrCompanyAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Компания с таким ИНН уже существует",
		http.StatusConflict,
	)

	ErrCompanyRejected = apperror.New(
		apperror.CodeInvalidInput,
		"Реестр отклонил данные компании",
		http.StatusBadRequest,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Некорректный идентификатор компании",
		http.StatusBadRequest,
	)

	ErrINNRequired = apperror.New(
		apperror.CodeInvalidInput,
		"ИНН не указан",
		http.StatusBadRequest,
	)

	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Заполните название, ИНН и ОГРН",
		http.StatusBadRequest,
	)

	ErrUpstreamUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Сервис реестра недоступен",
		http.StatusBadGateway,
	)

	ErrUpstreamStatus = apperror.New(
		apperror.CodeUpstreamError,
		"Сервис реестра вернул ошибку",
		http.StatusBadGateway,
	)

	ErrUpstreamResponse = apperror.New(
		apperror.CodeUpstreamError,
		"Сервис реестра вернул ответ неизвестного формата",
		http.StatusBadGateway,
	)
)
