package user

import (
	"context"
)

type Repository interface {
	// Create возвращает ErrDuplicateEmail, если email уже занят
	Create(ctx context.Context, username, email, passwordHash string) (int, error)
	// FindByEmail возвращает nil, nil если пользователь не найден
	FindByEmail(ctx context.Context, email string) (*User, error)
}
