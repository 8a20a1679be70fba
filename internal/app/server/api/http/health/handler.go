package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Pinger проверяет доступность хранилища объектов
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	storage    Pinger
	backend    string
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(storage Pinger, backend string, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		storage:    storage,
		backend:    backend,
		log:        log.With("component", "health_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	if err := h.storage.Ping(ctx); err != nil {
		h.log.Error("storage is unavailable", "backend", h.backend, "error", err)
		return nil, huma.Error503ServiceUnavailable("storage is unavailable")
	}

	return &Output{
		Body: Response{
			Status:  "OK",
			Storage: h.backend,
		},
	}, nil
}
