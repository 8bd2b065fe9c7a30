package service

import "errors"

var (
	ErrMissingField = errors.New("missing field")
	ErrInvalidURL   = errors.New("invalid url")
	ErrInvalidName  = errors.New("invalid name")
	ErrNameTaken    = errors.New("name taken")
	ErrNotFound     = errors.New("short link not found")
)

// IsValidation сообщает, вызвана ли ошибка некорректным вводом клиента.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidURL) ||
		errors.Is(err, ErrInvalidName)
}
