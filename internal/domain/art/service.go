package art

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

// Servicer defines the registry operations. Every mutating operation takes
// the caller identity as an explicit argument; the caller is authenticated by
// the surrounding transport and treated as trusted input here.
type Servicer interface {
	Create(ctx context.Context, caller, title string, size int64, description string, tags []string) (int64, error)
	Get(ctx context.Context, id int64) (*Piece, error)
	Update(ctx context.Context, caller string, id int64, title string, size int64, description string, tags []string) error
	Transfer(ctx context.Context, caller string, id int64, newOwner string) error
	Delete(ctx context.Context, caller string, id int64) error
	List(ctx context.Context, owner string) ([]Piece, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "art_service"),
	}
}

// Create validates all fields and registers the piece under the caller. The
// repository assigns the ID and records the caller's default access entry in
// the same atomic step, and validation happens strictly before the insert, so
// a failed call leaves no piece, no entry and no consumed ID behind.
func (s *Service) Create(ctx context.Context, caller, title string, size int64, description string, tags []string) (int64, error) {
	if err := ValidateFields(title, size, description, tags); err != nil {
		s.log.Debug("create rejected", "caller", caller, "error", err)
		return 0, err
	}

	piece := &Piece{
		Title:       title,
		Owner:       caller,
		Size:        size,
		Description: description,
		Tags:        tags,
	}

	id, err := s.repo.Create(ctx, piece)
	if err != nil {
		s.log.Error("failed to create art piece", "caller", caller, "error", err)
		return 0, fmt.Errorf("create art piece: %w", err)
	}

	s.log.Info("art piece registered", "art_id", id, "owner", caller)
	return id, nil
}

// Get returns the piece by ID. Reads are not gated by access control.
func (s *Service) Get(ctx context.Context, id int64) (*Piece, error) {
	piece, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get art piece", "art_id", id, "error", err)
		return nil, fmt.Errorf("get art piece: %w", err)
	}
	return piece, nil
}

// Update replaces title, size, description and tags in place. ID, owner and
// creation time are untouched. Existence is checked before ownership, and
// ownership before field validation.
func (s *Service) Update(ctx context.Context, caller string, id int64, title string, size int64, description string, tags []string) error {
	current, err := s.ownedPiece(ctx, caller, id)
	if err != nil {
		return err
	}

	if err := ValidateFields(title, size, description, tags); err != nil {
		s.log.Debug("update rejected", "art_id", id, "caller", caller, "error", err)
		return err
	}

	updated := &Piece{
		ID:          id,
		Title:       title,
		Owner:       current.Owner,
		Size:        size,
		CreatedAt:   current.CreatedAt,
		Description: description,
		Tags:        tags,
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		s.log.Error("failed to update art piece", "art_id", id, "error", err)
		return fmt.Errorf("update art piece: %w", err)
	}

	s.log.Info("art piece updated", "art_id", id, "owner", caller)
	return nil
}

// Transfer reassigns ownership. The recipient is not validated and gains no
// access entry; only the owner field changes.
func (s *Service) Transfer(ctx context.Context, caller string, id int64, newOwner string) error {
	if _, err := s.ownedPiece(ctx, caller, id); err != nil {
		return err
	}

	if err := s.repo.UpdateOwner(ctx, id, caller, newOwner); err != nil {
		s.log.Error("failed to transfer art piece", "art_id", id, "error", err)
		return fmt.Errorf("transfer art piece: %w", err)
	}

	s.log.Info("art piece transferred", "art_id", id, "from", caller, "to", newOwner)
	return nil
}

// Delete removes the piece. The ID is never reassigned. Access entries for
// the piece are left in place, matching the registry's accepted gap.
func (s *Service) Delete(ctx context.Context, caller string, id int64) error {
	if _, err := s.ownedPiece(ctx, caller, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, caller); err != nil {
		s.log.Error("failed to delete art piece", "art_id", id, "error", err)
		return fmt.Errorf("delete art piece: %w", err)
	}

	s.log.Info("art piece deleted", "art_id", id, "owner", caller)
	return nil
}

// List returns all pieces currently owned by the given identity.
func (s *Service) List(ctx context.Context, owner string) ([]Piece, error) {
	pieces, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		s.log.Error("failed to list art pieces", "owner", owner, "error", err)
		return nil, fmt.Errorf("list art pieces: %w", err)
	}
	return pieces, nil
}

// ownedPiece loads the piece and enforces the existence-then-ownership order:
// a missing piece is always ErrNotFound regardless of the caller, an existing
// piece owned by someone else is always ErrUnauthorized regardless of the
// remaining arguments. The check alone does not pin ownership for the
// subsequent write; the repository's owner-conditional writes re-derive the
// same errors if the piece changed hands in between.
func (s *Service) ownedPiece(ctx context.Context, caller string, id int64) (*Piece, error) {
	piece, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get art piece: %w", err)
	}

	if piece.Owner != caller {
		return nil, ErrUnauthorized
	}

	return piece, nil
}
