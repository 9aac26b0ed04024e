package art

import (
	"context"
)

// Repository is the persistence contract for art pieces. Create assigns the
// next ID, the creation timestamp and the owner's default access entry in one
// atomic step, so a failed call never consumes an ID and never leaves a piece
// without its entry. The writes are conditional on the expected owner: Update
// applies only while the stored owner still matches piece.Owner, UpdateOwner
// and Delete only while it matches owner; a mismatch on an existing piece is
// ErrUnauthorized, an absent piece is ErrNotFound.
type Repository interface {
	Get(ctx context.Context, id int64) (*Piece, error)
	Create(ctx context.Context, piece *Piece) (int64, error)
	Update(ctx context.Context, piece *Piece) error
	UpdateOwner(ctx context.Context, id int64, owner, newOwner string) error
	Delete(ctx context.Context, id int64, owner string) error
	ListByOwner(ctx context.Context, owner string) ([]Piece, error)
}
