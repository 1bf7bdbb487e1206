package user

import (
	"errors"
	"strings"
)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateRegister(username, email, password string) error
	ValidateLogin(email, password string) error
}

// PresenceValidator проверяет только наличие полей, формат не проверяется
type PresenceValidator struct{}

// NewPresenceValidator создает новый валидатор
func NewPresenceValidator() *PresenceValidator {
	return &PresenceValidator{}
}

// ValidateRegister валидирует данные для регистрации
func (v *PresenceValidator) ValidateRegister(username, email, password string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("username is required")
	}

	return v.ValidateLogin(email, password)
}

// ValidateLogin валидирует данные для входа
func (v *PresenceValidator) ValidateLogin(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("email is required")
	}

	if password == "" {
		return errors.New("password is required")
	}

	return nil
}
