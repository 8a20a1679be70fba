package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// HeaderAPIKey - заголовок с ключом доступа, как у api.restful-api.dev
const HeaderAPIKey = "x-api-key"

type Auth struct {
	apiKey string
	log    *slog.Logger
}

// New создаёт проверку ключа; пустой apiKey отключает проверку
func New(apiKey string, log *slog.Logger) *Auth {
	return &Auth{
		apiKey: apiKey,
		log:    log.With("component", "auth_middleware"),
	}
}

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if a.apiKey == "" {
			next(ctx)
			return
		}

		key := ctx.Header(HeaderAPIKey)
		if key == "" {
			a.reject(ctx, "Missing API key.")
			return
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(a.apiKey)) != 1 {
			a.reject(ctx, "Invalid API key.")
			return
		}

		next(ctx)
	}
}

func (a *Auth) reject(ctx huma.Context, msg string) {
	a.log.Warn("request rejected",
		"method", ctx.Method(),
		"path", ctx.URL().Path,
		"reason", msg,
	)

	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")
	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{"error": msg}); err != nil {
		a.log.Error("failed to write response", "error", err)
	}
}
