package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(CodeNotFound, "Запись не найдена", http.StatusNotFound)

	ErrInternal = New(CodeInternalError, "Внутренняя ошибка сервера", http.StatusInternalServerError)

	ErrInvalidInput = New(CodeInvalidInput, "Некорректные данные запроса", http.StatusBadRequest)

	ErrServiceUnavailable = New(CodeServiceUnavailable, "Сервис реестра недоступен", http.StatusBadGateway)
)

func RequiredField(label string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("Поле «%s» обязательно для заполнения", label), http.StatusBadRequest)
}

func InvalidField(label string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("Поле «%s» заполнено неверно", label), http.StatusBadRequest)
}

func InvalidEmail(label string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("Поле «%s» должно содержать адрес почты", label), http.StatusBadRequest)
}

func OutOfRange(label string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("Значение поля «%s» вне допустимого диапазона", label), http.StatusBadRequest)
}
