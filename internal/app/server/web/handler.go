package web

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"bookshelf/internal/domain/book"
	"bookshelf/internal/domain/catalog"
	"bookshelf/internal/domain/session"
	"bookshelf/internal/domain/user"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

const (
	msgInternal          = "Internal server error"
	msgInvalidBookID     = "Invalid book ID"
	msgInvalidCoverID    = "Invalid cover ID"
	msgBookNotFound      = "Book not found"
	msgUserNotFound      = "User not found"
	msgInvalidCreds      = "Invalid credentials"
	msgDuplicateEmail    = "Email is already registered"
	msgSearchUnavailable = "Search is unavailable right now, try again later"
)

// Handler - HTML интерфейс каталога
type Handler struct {
	users        user.Servicer
	sessions     session.Servicer
	books        book.Servicer
	catalog      catalog.Searcher
	tmpl         map[string]*template.Template
	cookieSecure bool
	log          *slog.Logger
}

type Deps struct {
	Users        user.Servicer
	Sessions     session.Servicer
	Books        book.Servicer
	Catalog      catalog.Searcher
	CookieSecure bool
}

func NewHandler(deps Deps, log *slog.Logger) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{
		users:        deps.Users,
		sessions:     deps.Sessions,
		books:        deps.Books,
		catalog:      deps.Catalog,
		tmpl:         tmpl,
		cookieSecure: deps.CookieSecure,
		log:          log.With("component", "web"),
	}, nil
}

// SetupRoutes регистрирует HTML маршруты. CurrentUser работает на всех, RequireLogin только на изменяющих.
func (h *Handler) SetupRoutes(r chi.Router) {
	r.Handle("/static/*", staticHandler())

	r.Group(func(r chi.Router) {
		r.Use(CurrentUser(h.sessions))

		r.Get("/", h.index)
		r.Get("/register", h.registerForm)
		r.Post("/register", h.register)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
		r.Get("/search", h.searchForm)
		r.Post("/search", h.search)

		r.Group(func(r chi.Router) {
			r.Use(RequireLogin(h.sessions))

			r.Post("/add", h.add)
			r.Get("/edit/{id}", h.editForm)
			r.Post("/edit/{id}", h.edit)
			r.Post("/delete/{id}", h.delete)
		})
	})
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.List(r.Context())
	if err != nil {
		h.fail(w, "list books", err)
		return
	}
	h.render(w, r, http.StatusOK, "index.html", pageData{Books: books})
}

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register.html", pageData{})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form := registerForm{
		Username: strings.TrimSpace(r.PostForm.Get("username")),
		Email:    strings.TrimSpace(r.PostForm.Get("email")),
	}

	_, err := h.users.Register(r.Context(), form.Username, form.Email, r.PostForm.Get("password"))
	switch {
	case err == nil:
		http.Redirect(w, r, LoginURL(msgRegistered), http.StatusFound)
	case errors.Is(err, user.ErrDuplicateEmail):
		h.render(w, r, http.StatusConflict, "register.html", pageData{Message: msgDuplicateEmail, Form: form})
	case errors.Is(err, user.ErrInvalidInput):
		h.render(w, r, http.StatusBadRequest, "register.html", pageData{Message: "All fields are required", Form: form})
	case errors.Is(err, user.ErrPasswordTooLong):
		h.render(w, r, http.StatusBadRequest, "register.html", pageData{Message: "Password must be at most 72 bytes", Form: form})
	default:
		h.fail(w, "register", err)
	}
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login.html", pageData{Message: r.URL.Query().Get("message")})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.users.Authenticate(r.Context(), strings.TrimSpace(r.PostForm.Get("email")), r.PostForm.Get("password"))
	switch {
	case errors.Is(err, user.ErrNotFound):
		http.Error(w, msgUserNotFound, http.StatusUnauthorized)
		return
	case errors.Is(err, user.ErrInvalidCredentials):
		http.Error(w, msgInvalidCreds, http.StatusUnauthorized)
		return
	case err != nil:
		h.fail(w, "login", err)
		return
	}

	token, err := h.sessions.Issue(u.ID, u.Username)
	if err != nil {
		h.fail(w, "issue token", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

// logout только стирает cookie, выданный токен остается валидным до exp
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, LoginURL(msgLoggedOut), http.StatusFound)
}

func (h *Handler) searchForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "search.html", pageData{})
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	query := strings.TrimSpace(r.PostForm.Get("query"))
	if query == "" {
		h.render(w, r, http.StatusOK, "search.html", pageData{})
		return
	}

	results, err := h.catalog.Search(r.Context(), query)
	if err != nil {
		h.log.Error("catalog search failed", "query", query, "error", err)
		h.render(w, r, http.StatusBadGateway, "search.html", pageData{Query: query, Message: msgSearchUnavailable})
		return
	}

	h.render(w, r, http.StatusOK, "search.html", pageData{Query: query, Results: results, Searched: true})
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	coverID, err := book.ParseCoverID(strings.TrimSpace(r.PostForm.Get("cover_id")))
	if err != nil {
		http.Error(w, msgInvalidCoverID, http.StatusBadRequest)
		return
	}

	if _, err := h.books.Create(r.Context(), r.PostForm.Get("title"), r.PostForm.Get("author"), coverID); err != nil {
		h.fail(w, "add book", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) editForm(w http.ResponseWriter, r *http.Request) {
	id, err := book.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, msgInvalidBookID, http.StatusBadRequest)
		return
	}

	b, err := h.books.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			http.Error(w, msgBookNotFound, http.StatusNotFound)
			return
		}
		h.fail(w, "get book", err)
		return
	}

	h.render(w, r, http.StatusOK, "edit.html", pageData{Book: b})
}

func (h *Handler) edit(w http.ResponseWriter, r *http.Request) {
	id, err := book.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, msgInvalidBookID, http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = h.books.Update(r.Context(), id, r.PostForm.Get("title"), r.PostForm.Get("author"))
	if err != nil && !errors.Is(err, book.ErrNotFound) {
		h.fail(w, "update book", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := book.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, msgInvalidBookID, http.StatusBadRequest)
		return
	}

	if err := h.books.Delete(r.Context(), id); err != nil {
		h.fail(w, "delete book", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	h.log.Error(op+" failed", "error", err)
	http.Error(w, msgInternal, http.StatusInternalServerError)
}
