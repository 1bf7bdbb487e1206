package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"bookshelf/internal/app/server/web"
	"bookshelf/internal/domain/session"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Auth struct {
	verifier session.Verifier
	log      *slog.Logger
}

func New(verifier session.Verifier, log *slog.Logger) *Auth {
	return &Auth{
		verifier: verifier,
		log:      log.With("component", "auth_middleware"),
	}
}

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		res := session.Resolve(a.verifier, tokenFrom(ctx))

		switch res.Kind {
		case session.Authenticated:
			next(huma.WithContext(ctx, session.WithClaims(ctx.Context(), res.Claims)))
			return
		case session.Rejected:
			a.log.Debug("token rejected", "path", ctx.URL().Path, "reason", res.Reason)
		default:
			a.log.Debug("no token", "path", ctx.URL().Path)
		}

		ctx.SetHeader("Content-Type", "application/json")
		ctx.SetHeader("WWW-Authenticate", "Bearer")
		ctx.SetStatus(http.StatusUnauthorized)
		if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
			"error": "Unauthorized",
		}); err != nil {
			a.log.Error("json encode", "error", err)
		}
	}
}

// tokenFrom берет Bearer из заголовка, иначе cookie браузерной сессии
func tokenFrom(ctx huma.Context) string {
	if h := ctx.Header("Authorization"); len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	if c, err := huma.ReadCookie(ctx, web.CookieName); err == nil {
		return c.Value
	}
	return ""
}

func GetUserID(ctx context.Context) (int, bool) {
	claims, ok := session.FromContext(ctx)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
