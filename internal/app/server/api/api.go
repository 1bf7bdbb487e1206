// HTML интерфейс каталога:
//GET  /                  # Список книг (публичный)
//GET|POST /register      # Регистрация
//GET|POST /login         # Логин, выдает cookie token
//GET  /logout            # Удаляет cookie
//GET|POST /search        # Поиск в Open Library
//POST /add               # Сохранить книгу (auth)
//GET|POST /edit/{id}     # Изменить книгу (auth)
//POST /delete/{id}       # Удалить книгу (auth)
//
// JSON API:
//GET  /api/v1/health
//POST /api/v1/auth/register
//POST /api/v1/auth/login
//GET  /api/v1/books, /api/v1/books/{id}
//POST /api/v1/books              (auth)
//PUT|DELETE /api/v1/books/{id}   (auth)
//GET  /api/v1/search?q=

package api

import (
	"fmt"
	"net/http"
	"strings"

	bookAPI "bookshelf/internal/app/server/api/http/book"
	healthAPI "bookshelf/internal/app/server/api/http/health"
	"bookshelf/internal/app/server/api/http/middleware"
	"bookshelf/internal/app/server/api/http/middleware/auth"
	"bookshelf/internal/app/server/api/http/middleware/logger"
	searchAPI "bookshelf/internal/app/server/api/http/search"
	userAPI "bookshelf/internal/app/server/api/http/user"
	"bookshelf/internal/app/server/web"
	"bookshelf/internal/domain/book"
	"bookshelf/internal/domain/catalog"
	"bookshelf/internal/domain/session"
	"bookshelf/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/exp/slog"
)

const apiPrefix = "/api/"

type Deps struct {
	DB             healthAPI.Pinger
	Users          user.Servicer
	Sessions       session.Servicer
	Books          book.Servicer
	Catalog        catalog.Searcher
	AllowedOrigins []string
	CookieSecure   bool
}

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Book   *bookAPI.Handler
	Search *searchAPI.Handler
	Web    *web.Handler
}

// New создает *chi.Mux с HTML страницами и JSON операциями huma
func New(deps Deps, log *slog.Logger) (*chi.Mux, error) {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)
	if len(deps.AllowedOrigins) > 0 {
		mux.Use(apiCORS(deps.AllowedOrigins))
	}

	config := huma.DefaultConfig("Bookshelf API", "1.0.0")
	config.OpenAPIPath = "/api/v1/openapi"
	config.DocsPath = "/api/v1/docs"
	config.SchemasPath = "/api/v1/schemas"
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}

	API := humachi.New(mux, config)

	h, err := handlers(deps, log)
	if err != nil {
		return nil, err
	}
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Book.SetupRoutes(API)
	h.Search.SetupRoutes(API)

	// huma операции логируются своим middleware, HTML группа - chi обработчиком
	loggerMW := logger.New(log)
	mux.Group(func(r chi.Router) {
		r.Use(loggerMW.Handler)
		h.Web.SetupRoutes(r)
	})

	return mux, nil
}

func handlers(deps Deps, log *slog.Logger) (*Handlers, error) {
	authMW := auth.New(deps.Sessions, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	healthHandler := healthAPI.NewHandler(deps.DB, log,
		middlewares.Add(loggerMW.Middleware()).GetAllAndClear())

	userHandler := userAPI.NewHandler(deps.Users, deps.Sessions, log,
		middlewares.Add(loggerMW.Middleware()).GetAllAndClear())

	public := middlewares.Add(loggerMW.Middleware()).GetAllAndClear()
	protected := middlewares.Add(loggerMW.Middleware(), authMW.Middleware()).GetAllAndClear()
	bookHandler := bookAPI.NewHandler(deps.Books, log, public, protected)

	searchHandler := searchAPI.NewHandler(deps.Catalog, log,
		middlewares.Add(loggerMW.Middleware()).GetAllAndClear())

	webHandler, err := web.NewHandler(web.Deps{
		Users:        deps.Users,
		Sessions:     deps.Sessions,
		Books:        deps.Books,
		Catalog:      deps.Catalog,
		CookieSecure: deps.CookieSecure,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("web handler: %w", err)
	}

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Book:   bookHandler,
		Search: searchHandler,
		Web:    webHandler,
	}, nil
}

// apiCORS включает CORS только для /api/, HTML формы остаются same-origin
func apiCORS(origins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	return func(next http.Handler) http.Handler {
		withCORS := c.Handler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, apiPrefix) {
				withCORS.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
