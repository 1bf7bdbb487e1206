package book

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "books-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/books",
		Summary:     "Список сохраненных книг",
		Description: "Книги упорядочены по id по возрастанию",
		Tags:        []string{"books"},
		Middlewares: h.public,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "books-find",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}",
		Summary:     "Получить книгу",
		Tags:        []string{"books"},
		Middlewares: h.public,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "books-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/books",
		Summary:       "Добавить книгу",
		Tags:          []string{"books"},
		DefaultStatus: http.StatusCreated,
		Security:      bearer,
		Middlewares:   h.protected,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "books-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/books/{id}",
		Summary:     "Изменить название и автора",
		Tags:        []string{"books"},
		Security:    bearer,
		Middlewares: h.protected,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "books-delete",
		Method:        http.MethodDelete,
		Path:          "/api/v1/books/{id}",
		Summary:       "Удалить книгу",
		Description:   "Удаление несуществующей книги не является ошибкой",
		Tags:          []string{"books"},
		DefaultStatus: http.StatusNoContent,
		Security:      bearer,
		Middlewares:   h.protected,
	}
}
