package book

import (
	"context"
	"errors"

	"bookshelf/internal/app/server/api/http/middleware/auth"
	"bookshelf/internal/domain/book"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service   book.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

// NewHandler: public применяется к чтению, protected к изменяющим операциям
func NewHandler(service book.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	books, err := h.service.List(ctx)
	if err != nil {
		return nil, h.internal("list", err)
	}
	if books == nil {
		books = []book.Book{}
	}
	return &listOutput{Body: books}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*bookOutput, error) {
	b, err := h.service.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			return nil, huma.Error404NotFound("Book not found")
		}
		return nil, h.internal("get", err)
	}
	return &bookOutput{Body: b}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*bookOutput, error) {
	if input.Body.CoverID != nil && *input.Body.CoverID <= 0 {
		return nil, huma.Error422UnprocessableEntity("cover_id must be positive")
	}

	b, err := h.service.Create(ctx, input.Body.Title, input.Body.Author, input.Body.CoverID)
	if err != nil {
		return nil, h.internal("create", err)
	}

	userID, _ := auth.GetUserID(ctx)
	h.log.Info("book added via api", "book_id", b.ID, "user_id", userID)
	return &bookOutput{Body: b}, nil
}

// update в отличие от HTML формы возвращает 404 для несуществующей книги
func (h *Handler) update(ctx context.Context, input *updateInput) (*bookOutput, error) {
	err := h.service.Update(ctx, input.ID, input.Body.Title, input.Body.Author)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			return nil, huma.Error404NotFound("Book not found")
		}
		return nil, h.internal("update", err)
	}

	b, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, h.internal("get after update", err)
	}
	return &bookOutput{Body: b}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, h.internal("delete", err)
	}

	userID, _ := auth.GetUserID(ctx)
	h.log.Info("book deleted via api", "book_id", input.ID, "user_id", userID)
	return nil, nil
}

func (h *Handler) internal(op string, err error) error {
	h.log.Error("book "+op+" failed", "error", err)
	return huma.Error500InternalServerError("Internal server error")
}
