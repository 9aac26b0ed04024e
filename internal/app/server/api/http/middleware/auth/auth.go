package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"artregistry/internal/domain/session"
)

// Auth resolves the bearer token to the caller identity. The registry core
// trusts this identity; verifying it is this layer's job.
type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const callerKey contextKey = "caller"

// Middleware validates the Authorization header and stores the caller login
// in the request context.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")

		if !strings.HasPrefix(header, "Bearer ") {
			a.reject(ctx, "missing bearer token")
			return
		}

		caller, err := a.session.Validate(ctx.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			a.log.Debug("token validation failed", "error", err)
			a.reject(ctx, "invalid token")
			return
		}

		next(huma.WithContext(ctx, WithCaller(ctx.Context(), caller)))
	}
}

func (a *Auth) reject(ctx huma.Context, reason string) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")

	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	}); err != nil {
		a.log.Error("failed to write unauthorized response", "reason", reason, "error", err)
	}
}

// WithCaller stores the authenticated caller identity in the context.
func WithCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// GetCaller returns the authenticated caller identity, if any.
func GetCaller(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(callerKey).(string)
	return caller, ok && caller != ""
}
