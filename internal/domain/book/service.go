package book

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Book, error)
	Create(ctx context.Context, title, author string, coverID *int) (Book, error)
	Get(ctx context.Context, id int) (Book, error)
	Update(ctx context.Context, id int, title, author string) error
	Delete(ctx context.Context, id int) error
}

// Service defines the business logic for saved books
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService creates a new book service
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "book_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list books", "error", err)
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (s *Service) Create(ctx context.Context, title, author string, coverID *int) (Book, error) {
	b, err := s.repo.Create(ctx, title, author, coverID)
	if err != nil {
		s.log.Error("failed to create book", "title", title, "error", err)
		return Book{}, fmt.Errorf("create book: %w", err)
	}

	s.log.Info("book created", "book_id", b.ID)
	return b, nil
}

func (s *Service) Get(ctx context.Context, id int) (Book, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, id int, title, author string) error {
	if err := s.repo.Update(ctx, id, title, author); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to update book", "book_id", id, "error", err)
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete book", "book_id", id, "error", err)
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// ParseID разбирает id из пути. Допустимы только положительные целые.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ParseCoverID разбирает необязательный cover_id из формы. Пустая строка дает nil.
func ParseCoverID(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("cover id %q: %w", raw, err)
	}
	return &id, nil
}
