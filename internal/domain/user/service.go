package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// HashCost - стоимость bcrypt (10)
const HashCost = bcrypt.DefaultCost

type Servicer interface {
	Register(ctx context.Context, username, email, password string) (int, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	VerifyPassword(password, hash string) bool
	Authenticate(ctx context.Context, email, password string) (*User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

func (s *Service) Register(ctx context.Context, username, email, password string) (int, error) {
	if err := s.validator.ValidateRegister(username, email, password); err != nil {
		s.log.Debug("validation failed", "email", email, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.repo.Create(ctx, username, email, string(hash))
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", id)
	return id, nil
}

// FindByEmail возвращает nil без ошибки, если пользователя нет
func (s *Service) FindByEmail(ctx context.Context, email string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (s *Service) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	if err := s.validator.ValidateLogin(email, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}

	if !s.VerifyPassword(password, u.Password) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}
