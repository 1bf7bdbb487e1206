package search

import (
	"context"
	"strings"

	"bookshelf/internal/domain/catalog"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	catalog    catalog.Searcher
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(searcher catalog.Searcher, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		catalog:    searcher,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.searchOp(), h.search)
}

func (h *Handler) search(ctx context.Context, input *Input) (*Output, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, huma.Error422UnprocessableEntity("query must not be blank")
	}

	found, err := h.catalog.Search(ctx, query)
	if err != nil {
		h.log.Error("catalog search failed", "query", query, "error", err)
		return nil, huma.Error502BadGateway("catalog search is unavailable")
	}

	out := &Output{Body: make([]Result, 0, len(found))}
	for _, r := range found {
		res := Result{Title: r.Title, Author: r.Author, CoverID: r.CoverID}
		if r.CoverID != nil {
			res.CoverURL = catalog.CoverURL(*r.CoverID, "M")
		}
		out.Body = append(out.Body, res)
	}
	return out, nil
}
