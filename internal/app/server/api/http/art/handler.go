package art

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"artregistry/internal/app/server/api/http/middleware/auth"
	"artregistry/internal/domain/access"
	"artregistry/internal/domain/art"
)

type Handler struct {
	service    art.Servicer
	access     access.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service art.Servicer, accessSvc access.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		access:     accessSvc,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.transferOp(), h.transfer)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.accessOp(), h.hasAccess)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	caller, ok := auth.GetCaller(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	id, err := h.service.Create(ctx, caller, input.Body.Title, input.Body.Size, input.Body.Description, input.Body.Tags)
	if err != nil {
		return nil, mapError(err)
	}

	return &createOutput{
		Body: response{ID: id, Status: "Ok"},
	}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	caller, ok := auth.GetCaller(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	pieces, err := h.service.List(ctx, caller)
	if err != nil {
		return nil, mapError(err)
	}

	return &listOutput{
		Body: listResponse{Pieces: pieces, Total: len(pieces)},
	}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	piece, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &getOutput{
		Body: getResponse{Status: "Ok", Piece: piece},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*createOutput, error) {
	caller, ok := auth.GetCaller(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	err := h.service.Update(ctx, caller, input.ID, input.Body.Title, input.Body.Size, input.Body.Description, input.Body.Tags)
	if err != nil {
		return nil, mapError(err)
	}

	return &createOutput{
		Body: response{ID: input.ID, Status: "Ok"},
	}, nil
}

func (h *Handler) transfer(ctx context.Context, input *transferInput) (*createOutput, error) {
	caller, ok := auth.GetCaller(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Transfer(ctx, caller, input.ID, input.Body.NewOwner); err != nil {
		return nil, mapError(err)
	}

	return &createOutput{
		Body: response{ID: input.ID, Status: "Ok"},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*createOutput, error) {
	caller, ok := auth.GetCaller(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, caller, input.ID); err != nil {
		return nil, mapError(err)
	}

	return &createOutput{
		Body: response{Status: "Ok"},
	}, nil
}

func (h *Handler) hasAccess(ctx context.Context, input *accessInput) (*accessOutput, error) {
	granted, err := h.access.HasAccess(ctx, input.ID, input.Principal)
	if err != nil {
		return nil, mapError(err)
	}

	return &accessOutput{
		Body: accessResponse{ArtID: input.ID, Principal: input.Principal, Granted: granted},
	}, nil
}

// mapError translates domain errors into HTTP statuses.
func mapError(err error) error {
	switch {
	case errors.Is(err, art.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, art.ErrUnauthorized):
		return huma.Error403Forbidden(err.Error())
	case errors.Is(err, art.ErrInvalidTitle), errors.Is(err, art.ErrInvalidSize):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
