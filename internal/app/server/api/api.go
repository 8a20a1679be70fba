// Хранилище объектов, совместимое с коллекцией /objects api.restful-api.dev.

// GET    /objects               # Все объекты
// GET    /objects?id=a&id=b     # Только перечисленные
// GET    /objects/{id}          # Один объект
// POST   /objects               # Создать
// PUT    /objects/{id}          # Заменить
// PATCH  /objects/{id}          # Частично обновить
// DELETE /objects/{id}          # Удалить
// GET    /api/v1/health         # Проверка состояния

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	healthAPI "taskkeeper/internal/app/server/api/http/health"
	"taskkeeper/internal/app/server/api/http/middleware"
	"taskkeeper/internal/app/server/api/http/middleware/auth"
	"taskkeeper/internal/app/server/api/http/middleware/logger"
	objectsAPI "taskkeeper/internal/app/server/api/http/objects"
	"taskkeeper/internal/domain/objectstore"
)

// Storage - хранилище объектов с проверкой доступности
type Storage interface {
	objectstore.Repository
	healthAPI.Pinger
}

type Handlers struct {
	Health  *healthAPI.Handler
	Objects *objectsAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register.
// Непустой apiKey закрывает /objects заголовком x-api-key.
func New(storage Storage, backend, apiKey string, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig("Taskkeeper Object Store", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(storage, backend, apiKey, log)
	h.Health.SetupRoutes(API)
	h.Objects.SetupRoutes(API)

	return mux
}

func handlers(storage Storage, backend, apiKey string, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	authMW := auth.New(apiKey, log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(storage, backend, log, middlewares.GetAllAndClear())

	objectService := objectstore.NewService(storage, log)
	middlewares.Add(loggerMW.Middleware())
	middlewares.Add(authMW.Middleware())
	objectsHandler := objectsAPI.NewHandler(objectService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Objects: objectsHandler,
	}
}
