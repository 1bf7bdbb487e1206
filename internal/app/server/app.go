package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"bookshelf/internal/app/server/api"
	"bookshelf/internal/app/server/config"
	"bookshelf/internal/domain/book"
	"bookshelf/internal/domain/session"
	"bookshelf/internal/domain/user"
	"bookshelf/internal/infrastructure/migration"
	"bookshelf/internal/infrastructure/openlibrary"
	"bookshelf/internal/infrastructure/storage/postgres"

	"golang.org/x/exp/slog"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// App - собранный сервер каталога
type App struct {
	server  *http.Server
	storage *postgres.Storage
	users   user.Servicer
	log     *slog.Logger
}

// New применяет миграции, открывает пул и собирает сервисы и маршруты
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	if err := migration.NewMigration(cfg.DB.URI(), nil, log).Up(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	storage, err := postgres.New(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	sessions, err := session.NewService(cfg.Session.Secret, cfg.Session.TTL, log)
	if err != nil {
		_ = storage.Close()
		return nil, fmt.Errorf("session service: %w", err)
	}

	users := user.NewService(postgres.NewUserRepository(storage, log), user.NewPresenceValidator(), log)
	books := book.NewService(postgres.NewBookRepository(storage, log), log)
	searcher := openlibrary.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout, log)

	mux, err := api.New(api.Deps{
		DB:             storage,
		Users:          users,
		Sessions:       sessions,
		Books:          books,
		Catalog:        searcher,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		CookieSecure:   cfg.Server.CookieSecure,
	}, log)
	if err != nil {
		_ = storage.Close()
		return nil, err
	}

	return &App{
		server: &http.Server{
			Addr:              cfg.Server.RunAddress,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		storage: storage,
		users:   users,
		log:     log,
	}, nil
}

// Users нужен CLI для заведения пользователей без HTTP
func (a *App) Users() user.Servicer {
	return a.users
}

// Run блокируется до отмены ctx или ошибки сервера
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		a.log.Info("bookshelf server started", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		a.log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		a.log.Info("server stopped")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Close() error {
	if a.storage == nil {
		return nil
	}
	return a.storage.Close()
}
