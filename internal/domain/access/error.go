package access

import (
	"errors"
)

var ErrEntryNotFound = errors.New("access entry not found")
