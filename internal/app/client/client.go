package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"artregistry/internal/app/client/config"
	"artregistry/internal/domain/art"
)

// App ties the HTTP client and the local cache together for the CLI.
type App struct {
	cfg   *config.Config
	log   *slog.Logger
	api   *httpClient
	cache *SQLiteStorage
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	cache, err := NewSQLiteStorage(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("open local cache: %w", err)
	}

	api := newHTTPClient(cfg, log)

	token, err := cache.LoadToken()
	if err != nil {
		return nil, fmt.Errorf("load saved token: %w", err)
	}
	if token != "" {
		api.SetToken(token)
	}

	return &App{
		cfg:   cfg,
		log:   log,
		api:   api,
		cache: cache,
	}, nil
}

func (a *App) Close() error {
	return a.cache.Close()
}

func (a *App) Register(ctx context.Context, login, password string) error {
	return a.api.Register(ctx, login, password)
}

// Login authenticates and persists the token for later invocations.
func (a *App) Login(ctx context.Context, login, password string) error {
	token, err := a.api.Login(ctx, login, password)
	if err != nil {
		return err
	}

	a.api.SetToken(token)
	if err := a.cache.SaveToken(token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	return nil
}

func (a *App) CreateArt(ctx context.Context, title string, size int64, description string, tags []string) (int64, error) {
	id, err := a.api.CreateArt(ctx, title, size, description, tags)
	if err != nil {
		return 0, err
	}

	// Refresh the cache with the stored representation.
	if piece, err := a.api.GetArt(ctx, id); err == nil {
		if err := a.cache.SavePiece(piece); err != nil {
			a.log.Debug("failed to cache piece", "art_id", id, "error", err)
		}
	}

	return id, nil
}

// GetArt fetches the piece from the server, falling back to the local cache
// when the server is unreachable.
func (a *App) GetArt(ctx context.Context, id int64) (*art.Piece, error) {
	piece, err := a.api.GetArt(ctx, id)
	if err != nil {
		if cached, cacheErr := a.cache.GetPiece(id); cacheErr == nil {
			a.log.Debug("serving piece from cache", "art_id", id, "fetch_error", err)
			return cached, nil
		}
		return nil, err
	}

	if err := a.cache.SavePiece(piece); err != nil {
		a.log.Debug("failed to cache piece", "art_id", id, "error", err)
	}

	return piece, nil
}

func (a *App) ListArts(ctx context.Context) ([]art.Piece, error) {
	pieces, err := a.api.ListArts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range pieces {
		if err := a.cache.SavePiece(&pieces[i]); err != nil {
			a.log.Debug("failed to cache piece", "art_id", pieces[i].ID, "error", err)
		}
	}

	return pieces, nil
}

func (a *App) UpdateArt(ctx context.Context, id int64, title string, size int64, description string, tags []string) error {
	if err := a.api.UpdateArt(ctx, id, title, size, description, tags); err != nil {
		return err
	}

	if piece, err := a.api.GetArt(ctx, id); err == nil {
		if err := a.cache.SavePiece(piece); err != nil {
			a.log.Debug("failed to cache piece", "art_id", id, "error", err)
		}
	}

	return nil
}

func (a *App) TransferArt(ctx context.Context, id int64, newOwner string) error {
	if err := a.api.TransferArt(ctx, id, newOwner); err != nil {
		return err
	}

	if piece, err := a.api.GetArt(ctx, id); err == nil {
		if err := a.cache.SavePiece(piece); err != nil {
			a.log.Debug("failed to cache piece", "art_id", id, "error", err)
		}
	}

	return nil
}

func (a *App) DeleteArt(ctx context.Context, id int64) error {
	if err := a.api.DeleteArt(ctx, id); err != nil {
		return err
	}

	if err := a.cache.DeletePiece(id); err != nil {
		a.log.Debug("failed to evict cached piece", "art_id", id, "error", err)
	}

	return nil
}

func (a *App) HasAccess(ctx context.Context, id int64, principal string) (bool, error) {
	return a.api.HasAccess(ctx, id, principal)
}

func (a *App) HealthCheck(ctx context.Context) error {
	return a.api.HealthCheck(ctx)
}
