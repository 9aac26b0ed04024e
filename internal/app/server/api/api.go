// Art registry HTTP surface.
//
// POST /user/register                      # register an identity (public)
// POST /user/login                         # obtain a bearer token (public)
// POST /api/arts                           # register an art piece (auth)
// GET  /api/arts                           # list own pieces (auth)
// GET  /api/arts/{id}                      # read a piece (auth)
// PUT  /api/arts/{id}                      # update a piece, owner only (auth)
// POST /api/arts/{id}/transfer             # transfer ownership, owner only (auth)
// DELETE /api/arts/{id}                    # delete a piece, owner only (auth)
// GET  /api/arts/{id}/access/{principal}   # recorded access flag (auth)
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	artAPI "artregistry/internal/app/server/api/http/art"
	healthAPI "artregistry/internal/app/server/api/http/health"
	identityAPI "artregistry/internal/app/server/api/http/identity"
	"artregistry/internal/app/server/api/http/middleware"
	"artregistry/internal/app/server/api/http/middleware/auth"
	"artregistry/internal/app/server/api/http/middleware/logger"
	"artregistry/internal/domain/access"
	"artregistry/internal/domain/art"
	"artregistry/internal/domain/identity"
	"artregistry/internal/domain/session"
	"artregistry/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Health   *healthAPI.Handler
	Identity *identityAPI.Handler
	Art      *artAPI.Handler
}

// New builds a *chi.Mux with all operations registered through huma.
func New(storage *postgres.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Art Registry API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(storage, log)
	h.Health.SetupRoutes(API)
	h.Identity.SetupRoutes(API)
	h.Art.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, log *slog.Logger) *Handlers {
	sessionRepo := postgres.NewSessionRepository(storage.Pool(), log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	identityRepo := postgres.NewIdentityRepository(storage.Pool(), log)
	identityService := identity.NewService(identityRepo, identity.NewCredentialValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	identityHandler := identityAPI.NewHandler(identityService, sessionService, log, middlewares.GetAllAndClear())

	accessRepo := postgres.NewAccessRepository(storage.Pool(), log)
	accessService := access.NewService(accessRepo, log)
	artRepo := postgres.NewArtRepository(storage.Pool(), log)
	artService := art.NewService(artRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	artHandler := artAPI.NewHandler(artService, accessService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Identity: identityHandler,
		Art:      artHandler,
	}
}
