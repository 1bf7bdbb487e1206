package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshelf/internal/app/server/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

// uniqueViolation - SQLSTATE нарушения уникального индекса
const uniqueViolation = "23505"

// Querier - общий интерфейс pgxpool.Pool и pgxmock
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type Storage struct {
	db           Querier
	queryTimeout time.Duration
	close        func()
	log          *slog.Logger
}

// New открывает пул и проверяет соединение. Миграции применяются отдельно.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, cfg.DB.URI())
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := NewWithQuerier(pool, cfg.DB.QueryTimeout, log)
	s.close = pool.Close
	return s, nil
}

func NewWithQuerier(db Querier, queryTimeout time.Duration, log *slog.Logger) *Storage {
	return &Storage{
		db:           db,
		queryTimeout: queryTimeout,
		close:        func() {},
		log:          log.With("component", "postgres"),
	}
}

func (s *Storage) Close() error {
	s.close()
	return nil
}

// Ping используется health-check'ом
func (s *Storage) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.db.Ping(ctx)
}

func (s *Storage) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
