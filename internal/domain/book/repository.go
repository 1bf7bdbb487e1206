package book

import (
	"context"
)

type Repository interface {
	// List возвращает книги по возрастанию id
	List(ctx context.Context) ([]Book, error)
	Create(ctx context.Context, title, author string, coverID *int) (Book, error)
	Get(ctx context.Context, id int) (Book, error)
	// Update возвращает ErrNotFound, если строка не найдена. cover_id не меняется.
	Update(ctx context.Context, id int, title, author string) error
	// Delete не возвращает ошибку для отсутствующего id
	Delete(ctx context.Context, id int) error
}
