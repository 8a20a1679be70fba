package types

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"taskkeeper/internal/app/client"
)

type ctxKey string

// ClientAppKey - ключ, под которым *client.App лежит в контексте команды
const ClientAppKey ctxKey = "app"

var ErrNoApp = errors.New("приложение не инициализировано")

// App достаёт приложение из контекста команды
func App(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}

// Timeout ограничивает сетевые вызовы команды настроенным таймаутом
func Timeout(cmd *cobra.Command, app *client.App) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), app.Config().Timeout())
}
