package art

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("art piece not found")
	ErrInvalidTitle = errors.New("invalid art metadata")
	ErrInvalidSize  = errors.New("invalid art size")
	ErrUnauthorized = errors.New("caller is not the owner")

	// Reserved kinds. Declared for API compatibility with the registry's
	// error taxonomy; no current operation raises them.
	ErrDuplicateArt       = errors.New("art piece already registered")
	ErrInvalidRecipient   = errors.New("invalid transfer recipient")
	ErrOwnerOnlyAction    = errors.New("action restricted to registry owner")
	ErrNoAccessPermission = errors.New("no access permission")
)
