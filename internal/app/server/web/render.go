package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"bookshelf/internal/domain/book"
	"bookshelf/internal/domain/catalog"
	"bookshelf/internal/domain/session"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var pages = []string{"index.html", "search.html", "edit.html", "login.html", "register.html"}

type registerForm struct {
	Username string
	Email    string
}

// pageData - общий набор данных для всех страниц
type pageData struct {
	User     *session.Claims
	Message  string
	Books    []book.Book
	Book     book.Book
	Results  []catalog.Result
	Query    string
	Searched bool
	Form     registerForm
}

func parseTemplates() (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"coverURL": catalog.CoverURL,
		"deref": func(v *int) int {
			if v == nil {
				return 0
			}
			return *v
		},
	}

	out := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New(page).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		out[page] = t
	}
	return out, nil
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// render пишет страницу целиком или 500, если шаблон упал
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	t, ok := h.tmpl[page]
	if !ok {
		h.log.Error("unknown template", "page", page)
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}

	if data.User == nil {
		data.User, _ = session.FromContext(r.Context())
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.log.Error("render template", "page", page, "error", err)
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
