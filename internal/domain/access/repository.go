package access

import (
	"context"
)

// Repository reads access entries keyed by (art ID, principal). Entries are
// written by the art store as part of each piece's atomic creation; Get
// returns ErrEntryNotFound when no entry was ever recorded for the pair.
type Repository interface {
	Get(ctx context.Context, artID int64, principal string) (Entry, error)
}
