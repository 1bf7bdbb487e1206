package postgres

import (
	"context"
	"errors"
	"fmt"

	"bookshelf/internal/domain/book"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"
)

type BookRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewBookRepository(storage *Storage, log *slog.Logger) *BookRepository {
	return &BookRepository{
		storage: storage,
		log:     log.With("component", "book_repository"),
	}
}

func (r *BookRepository) List(ctx context.Context) ([]book.Book, error) {
	const query = `SELECT id, title, author, cover_id FROM books ORDER BY id ASC`

	ctx, cancel := r.storage.withTimeout(ctx)
	defer cancel()

	rows, err := r.storage.db.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list books", "error", err)
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}

	return books, nil
}

func (r *BookRepository) Create(ctx context.Context, title, author string, coverID *int) (book.Book, error) {
	const query = `
		INSERT INTO books (title, author, cover_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, author, cover_id`

	ctx, cancel := r.storage.withTimeout(ctx)
	defer cancel()

	b, err := scanBook(r.storage.db.QueryRow(ctx, query, title, author, coverID))
	if err != nil {
		r.log.Error("failed to create book", "title", title, "error", err)
		return book.Book{}, fmt.Errorf("create book: %w", err)
	}

	return b, nil
}

func (r *BookRepository) Get(ctx context.Context, id int) (book.Book, error) {
	const query = `SELECT id, title, author, cover_id FROM books WHERE id = $1`

	ctx, cancel := r.storage.withTimeout(ctx)
	defer cancel()

	b, err := scanBook(r.storage.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return book.Book{}, book.ErrNotFound
		}
		r.log.Error("failed to get book", "book_id", id, "error", err)
		return book.Book{}, fmt.Errorf("get book: %w", err)
	}

	return b, nil
}

// Update меняет только title и author
func (r *BookRepository) Update(ctx context.Context, id int, title, author string) error {
	const query = `UPDATE books SET title = $1, author = $2 WHERE id = $3`

	ctx, cancel := r.storage.withTimeout(ctx)
	defer cancel()

	tag, err := r.storage.db.Exec(ctx, query, title, author, id)
	if err != nil {
		r.log.Error("failed to update book", "book_id", id, "error", err)
		return fmt.Errorf("update book: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return book.ErrNotFound
	}

	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM books WHERE id = $1`

	ctx, cancel := r.storage.withTimeout(ctx)
	defer cancel()

	if _, err := r.storage.db.Exec(ctx, query, id); err != nil {
		r.log.Error("failed to delete book", "book_id", id, "error", err)
		return fmt.Errorf("delete book: %w", err)
	}

	return nil
}

func scanBook(row pgx.Row) (book.Book, error) {
	var b book.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.CoverID)
	return b, err
}
