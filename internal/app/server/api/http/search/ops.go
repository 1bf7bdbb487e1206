package search

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) searchOp() huma.Operation {
	return huma.Operation{
		OperationID: "catalog-search",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Поиск книг в Open Library",
		Description: "Не более 10 результатов, без сохранения",
		Tags:        []string{"search"},
		Middlewares: h.middleware,
	}
}
