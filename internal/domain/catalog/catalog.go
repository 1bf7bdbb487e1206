package catalog

import (
	"context"
	"fmt"
)

const (
	// MaxResults - сколько результатов поиска отдается пользователю
	MaxResults    = 10
	UnknownAuthor = "Unknown"

	coverBaseURL = "https://covers.openlibrary.org/b/id"
)

// Result - нормализованный результат поиска во внешнем каталоге
type Result struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	CoverID *int   `json:"cover_id"`
}

type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// CoverURL строит ссылку на обложку, size одно из S, M, L
func CoverURL(coverID int, size string) string {
	return fmt.Sprintf("%s/%d-%s.jpg", coverBaseURL, coverID, size)
}
