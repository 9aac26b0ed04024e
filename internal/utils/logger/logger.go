package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"artregistry/internal/app/server/config"
)

// New builds the process logger for the given environment: pretty text at
// debug level for local runs, JSON debug for dev, JSON info for prod.
func New(env string) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return setupPrettySlog()
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
}

func setupPrettySlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
