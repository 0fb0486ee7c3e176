package apperror

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var fieldLabels = map[string]string{
	"name":     "Наименование",
	"inn":      "ИНН",
	"ogrn":     "ОГРН",
	"reestr":   "В реестре",
	"email":    "Email",
	"password": "Пароль",
	"skip":     "Смещение",
	"limit":    "Лимит",
}

var titleCaser = cases.Title(language.Und)

// fieldLabel: inn -> ИНН, registration_date -> Registration Date
func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return titleCaser.String(strings.ReplaceAll(field, "_", " "))
}

func fieldError(fe validator.FieldError) *AppError {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return RequiredField(label)
	case "email":
		return InvalidEmail(label)
	case "min", "max", "gte", "lte":
		return OutOfRange(label)
	default:
		return InvalidField(label)
	}
}

// MapValidationError turns a binding failure into an AppError. The message
// names the first rejected field and Details lists all of them.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return WithCause(ErrInvalidInput, err)
	}

	details := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		details = append(details, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fieldError(fe).Message,
		})
	}
	return WithDetails(fieldError(errs[0]), details)
}
