package client

import (
	"context"
	"errors"
)

type contextKey string

const appKey contextKey = "app"

var ErrNoApp = errors.New("client app not initialized")

// IntoContext stores the app for command handlers further down the tree.
func IntoContext(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey, app)
}

// FromContext returns the app placed in the context by the root command.
func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(appKey).(*App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}
