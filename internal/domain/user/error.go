package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEmail     = errors.New("email already registered")

	// ErrPasswordTooLong - bcrypt не принимает пароли длиннее 72 байт
	ErrPasswordTooLong = bcrypt.ErrPasswordTooLong
)
