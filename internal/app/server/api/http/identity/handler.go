package identity

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"artregistry/internal/domain/identity"
	"artregistry/internal/domain/session"
)

type Handler struct {
	service    identity.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service identity.Servicer, session session.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	id, err := h.service.Register(ctx, input.Body.Login, input.Body.Password)
	if err != nil {
		if errors.Is(err, identity.ErrLoginTaken) {
			return nil, huma.Error409Conflict(err.Error())
		}
		if errors.Is(err, identity.ErrInvalidInput) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error500InternalServerError("internal error")
	}

	return &registerOutput{
		Body: RegisterResponse{ID: id, Status: "Ok"},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	ident, err := h.service.Authenticate(ctx, input.Body.Login, input.Body.Password)
	if err != nil {
		return nil, huma.Error401Unauthorized("Invalid credentials")
	}

	token, err := h.session.Create(ctx, ident.Login)
	if err != nil {
		return nil, huma.Error500InternalServerError("create session")
	}

	return &loginOutput{
		Body: LoginResponse{Token: token, Status: "Ok"},
	}, nil
}
