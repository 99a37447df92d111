package errors

import (
	"errors"
	"fmt"
)

var (
	// Сессия
	ErrSessionMissing = errors.New("отсутствует токен сессии")
	ErrInvalidSession = errors.New("недействительная сессия")

	// Общие
	ErrNotFound = errors.New("запись не найдена")
)

// HttpError несёт готовый HTTP-код и пользовательское сообщение.
// Err остаётся для логов и наружу не отдаётся.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// InvalidInputError - конфликт данных, присланных клиентом (например, расхождение id в пути и в теле).
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(field string, format string, args ...interface{}) error {
	return &InvalidInputError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsUnauthorized объединяет обе причины отказа: сессии нет или она истекла.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrSessionMissing) || errors.Is(err, ErrInvalidSession)
}
