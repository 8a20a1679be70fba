package session

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrMalformedRecord   = errors.New("malformed user record")
)

// ValidationError - ошибка входных данных, обнаруженная до обращения к сети
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation сообщает, является ли err ошибкой валидации
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
