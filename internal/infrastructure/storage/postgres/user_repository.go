package postgres

import (
	"context"
	"errors"
	"fmt"

	"bookshelf/internal/domain/user"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"
)

func NewUserRepository(storage *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{
		storage: storage,
		log:     log.With("component", "user_repository"),
	}
}

type UserRepository struct {
	storage *Storage
	log     *slog.Logger
}

func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string) (int, error) {
	const query = `INSERT INTO users (username, email, password) VALUES ($1, $2, $3) RETURNING id`

	ctx, cancel := r.storage.withTimeout(ctx)
	defer cancel()

	var userID int
	err := r.storage.db.QueryRow(ctx, query, username, email, passwordHash).Scan(&userID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, user.ErrDuplicateEmail
		}
		r.log.Error("failed to create user", "error", err)
		return 0, fmt.Errorf("create user: %w", err)
	}

	return userID, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	const query = `SELECT id, username, email, password, created_at FROM users WHERE email = $1`

	ctx, cancel := r.storage.withTimeout(ctx)
	defer cancel()

	var u user.User
	err := r.storage.db.QueryRow(ctx, query, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("failed to find user", "error", err)
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return &u, nil
}
