package session

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLen     = 64
	MinPasswordLen = 4
	// bcrypt обрабатывает не более 72 байт
	MaxPasswordLen = 72
)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateRegister(req RegisterRequest) error
	ValidatePassword(password string) error
	ValidateID(id string) error
}

type DefaultValidator struct{}

func NewValidator() *DefaultValidator {
	return &DefaultValidator{}
}

// ValidateRegister валидирует данные для регистрации
func (v *DefaultValidator) ValidateRegister(req RegisterRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if utf8.RuneCountInString(name) > MaxNameLen {
		return &ValidationError{Field: "name", Message: fmt.Sprintf("name must be at most %d characters", MaxNameLen)}
	}

	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return &ValidationError{Field: "email", Message: "invalid email address"}
		}
	}

	return v.ValidatePassword(req.Password)
}

// ValidatePassword валидирует пароль
func (v *DefaultValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return &ValidationError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters", MinPasswordLen)}
	}
	if len(password) > MaxPasswordLen {
		return &ValidationError{Field: "password", Message: fmt.Sprintf("password must be at most %d bytes", MaxPasswordLen)}
	}
	return nil
}

// ValidateID проверяет идентификатор записи; пустой id превратил бы GET /objects/{id} в список коллекции
func (v *DefaultValidator) ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Field: "id", Message: "id is required"}
	}
	if strings.ContainsAny(id, "/?#") {
		return &ValidationError{Field: "id", Message: "id contains invalid characters"}
	}
	return nil
}
