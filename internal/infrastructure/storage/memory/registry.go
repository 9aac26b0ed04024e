// Package memory holds an in-process registry store. It backs the domain
// tests and embedded deployments; the Postgres repositories provide the same
// contracts for the server.
package memory

import (
	"context"
	"sync"
	"time"

	"artregistry/internal/domain/access"
	"artregistry/internal/domain/art"
)

type accessKey struct {
	artID     int64
	principal string
}

// Registry owns the piece map, the access map and the monotonic ID counter.
// All mutation goes through the repository methods under one mutex, so every
// operation observes and produces a consistent state: a create advances the
// counter, stores the piece and records the owner's default access entry in
// one step, and deleted IDs are never handed out again.
type Registry struct {
	mu      sync.Mutex
	pieces  map[int64]art.Piece
	entries map[accessKey]access.Entry
	lastID  int64
	now     func() time.Time
}

type Option func(*Registry)

// WithClock replaces the creation-time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		pieces:  make(map[int64]art.Piece),
		entries: make(map[accessKey]access.Entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Arts returns the art.Repository view of the registry.
func (r *Registry) Arts() art.Repository { return (*artRepository)(r) }

// Access returns the access.Repository view of the registry.
func (r *Registry) Access() access.Repository { return (*accessRepository)(r) }

type artRepository Registry

func (r *artRepository) Get(_ context.Context, id int64) (*art.Piece, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	piece, ok := r.pieces[id]
	if !ok {
		return nil, art.ErrNotFound
	}

	copied := clonePiece(piece)
	return &copied, nil
}

func (r *artRepository) Create(_ context.Context, piece *art.Piece) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	piece.ID = r.lastID
	piece.CreatedAt = r.now()
	r.pieces[piece.ID] = clonePiece(*piece)

	// The owner's default access entry lands under the same lock acquisition,
	// so no observer ever sees a piece without its entry.
	r.entries[accessKey{piece.ID, piece.Owner}] = access.Entry{
		ArtID:     piece.ID,
		Principal: piece.Owner,
		Granted:   true,
	}

	return piece.ID, nil
}

func (r *artRepository) Update(_ context.Context, piece *art.Piece) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.pieces[piece.ID]
	if !ok {
		return art.ErrNotFound
	}
	if current.Owner != piece.Owner {
		return art.ErrUnauthorized
	}

	current.Title = piece.Title
	current.Size = piece.Size
	current.Description = piece.Description
	current.Tags = append([]string(nil), piece.Tags...)
	r.pieces[piece.ID] = current

	return nil
}

func (r *artRepository) UpdateOwner(_ context.Context, id int64, owner, newOwner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.pieces[id]
	if !ok {
		return art.ErrNotFound
	}
	if current.Owner != owner {
		return art.ErrUnauthorized
	}

	current.Owner = newOwner
	r.pieces[id] = current

	return nil
}

func (r *artRepository) Delete(_ context.Context, id int64, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.pieces[id]
	if !ok {
		return art.ErrNotFound
	}
	if current.Owner != owner {
		return art.ErrUnauthorized
	}

	// The slot becomes absent; lastID keeps the ID from ever being reused.
	delete(r.pieces, id)

	return nil
}

func (r *artRepository) ListByOwner(_ context.Context, owner string) ([]art.Piece, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var pieces []art.Piece
	for _, piece := range r.pieces {
		if piece.Owner == owner {
			pieces = append(pieces, clonePiece(piece))
		}
	}

	return pieces, nil
}

type accessRepository Registry

func (r *accessRepository) Get(_ context.Context, artID int64, principal string) (access.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[accessKey{artID, principal}]
	if !ok {
		return access.Entry{}, access.ErrEntryNotFound
	}

	return entry, nil
}

// clonePiece copies the tags slice so callers never share backing arrays with
// the stored state.
func clonePiece(piece art.Piece) art.Piece {
	piece.Tags = append([]string(nil), piece.Tags...)
	return piece
}
