package logger

import (
	"io"
	"os"

	"golang.org/x/exp/slog"

	"taskkeeper/internal/app/server/config"
)

// New создаёт логгер для окружения env с выводом в stdout
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter создаёт логгер для окружения env с выводом в w
func NewWithWriter(env string, w io.Writer) *slog.Logger {
	return NewWithLevel(env, "info", w)
}

// NewWithLevel - как NewWithWriter, но уровень prod-логгера берётся из level
func NewWithLevel(env, level string, w io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlogWriter(w)
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case config.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

// ParseLevel разбирает LOG_LEVEL; неизвестное значение - info
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

func setupPrettySlog() *slog.Logger {
	return setupPrettySlogWriter(os.Stdout)
}

func setupPrettySlogWriter(w io.Writer) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	return slog.New(opts.NewPrettyHandler(w))
}
