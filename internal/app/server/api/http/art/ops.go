package art

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "arts-create",
		Method:      http.MethodPost,
		Path:        "/api/arts",
		Summary:     "Register an art piece",
		Description: "Registers a new art piece under the caller and returns its ID.",
		Tags:        []string{"arts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "arts-list",
		Method:      http.MethodGet,
		Path:        "/api/arts",
		Summary:     "List the caller's art pieces",
		Tags:        []string{"arts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "arts-get",
		Method:      http.MethodGet,
		Path:        "/api/arts/{id}",
		Summary:     "Get an art piece",
		Tags:        []string{"arts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "arts-update",
		Method:      http.MethodPut,
		Path:        "/api/arts/{id}",
		Summary:     "Update an art piece",
		Description: "Replaces title, size, description and tags. Owner only.",
		Tags:        []string{"arts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) transferOp() huma.Operation {
	return huma.Operation{
		OperationID: "arts-transfer",
		Method:      http.MethodPost,
		Path:        "/api/arts/{id}/transfer",
		Summary:     "Transfer ownership",
		Tags:        []string{"arts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "arts-delete",
		Method:      http.MethodDelete,
		Path:        "/api/arts/{id}",
		Summary:     "Delete an art piece",
		Tags:        []string{"arts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) accessOp() huma.Operation {
	return huma.Operation{
		OperationID: "arts-access",
		Method:      http.MethodGet,
		Path:        "/api/arts/{id}/access/{principal}",
		Summary:     "Check a recorded access flag",
		Tags:        []string{"arts", "access"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
