package web

import (
	"net/http"
	"net/url"

	"bookshelf/internal/domain/session"
)

const (
	// CookieName - имя cookie с токеном сессии
	CookieName = "token"

	msgMustLogin      = "You must login first"
	msgSessionExpired = "Session expired, login again"
	msgLoggedOut      = "Logged out"
	msgRegistered     = "Registration successful, please login"
)

// LoginURL возвращает /login?message=...
func LoginURL(message string) string {
	u := url.URL{Path: "/login"}
	if message != "" {
		u.RawQuery = url.Values{"message": {message}}.Encode()
	}
	return u.String()
}

// TokenFromRequest достает токен из cookie
func TokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// CurrentUser выполняется на каждом запросе: при валидном токене кладет claims
// в контекст, иначе запрос продолжается анонимно.
func CurrentUser(v session.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := session.Resolve(v, TokenFromRequest(r))
			if res.Kind == session.Authenticated {
				r = r.WithContext(session.WithClaims(r.Context(), res.Claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireLogin пропускает только авторизованные запросы, остальные редиректит на /login
func RequireLogin(v session.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := session.Resolve(v, TokenFromRequest(r))
			switch res.Kind {
			case session.Authenticated:
				next.ServeHTTP(w, r.WithContext(session.WithClaims(r.Context(), res.Claims)))
			case session.Rejected:
				http.Redirect(w, r, LoginURL(msgSessionExpired), http.StatusFound)
			default:
				http.Redirect(w, r, LoginURL(msgMustLogin), http.StatusFound)
			}
		})
	}
}
