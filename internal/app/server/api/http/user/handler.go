package user

import (
	"context"
	"errors"

	"bookshelf/internal/domain/session"
	"bookshelf/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    user.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	userID, err := h.service.Register(ctx, input.Body.Username, input.Body.Email, input.Body.Password)
	switch {
	case errors.Is(err, user.ErrDuplicateEmail):
		return nil, huma.Error409Conflict("email is already registered")
	case errors.Is(err, user.ErrInvalidInput), errors.Is(err, user.ErrPasswordTooLong):
		return nil, huma.Error422UnprocessableEntity(err.Error())
	case err != nil:
		h.log.Error("register failed", "error", err)
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &registerOutput{
		Body: RegisterResponse{ID: userID, Status: "Ok"},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	switch {
	case errors.Is(err, user.ErrNotFound):
		return nil, huma.Error401Unauthorized("User not found")
	case errors.Is(err, user.ErrInvalidCredentials):
		return nil, huma.Error401Unauthorized("Invalid credentials")
	case err != nil:
		h.log.Error("authenticate failed", "error", err)
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	token, err := h.session.Issue(u.ID, u.Username)
	if err != nil {
		h.log.Error("issue token failed", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &loginOutput{
		Body: LoginResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresIn: int(h.session.TTL().Seconds()),
		},
	}, nil
}
