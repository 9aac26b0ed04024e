package identity

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID: "identity-register",
		Method:      http.MethodPost,
		Path:        "/user/register",
		Summary:     "Register an identity",
		Tags:        []string{"identities"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "identity-login",
		Method:      http.MethodPost,
		Path:        "/user/login",
		Summary:     "Authenticate and obtain a bearer token",
		Tags:        []string{"identities"},
		Middlewares: h.middleware,
	}
}
