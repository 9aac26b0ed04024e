package access

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

// Servicer is the access controller contract. The default entry for a new
// piece is written by the art store inside the creation's atomic step; there
// is no public mutating operation, and no registry operation is currently
// gated on HasAccess.
type Servicer interface {
	HasAccess(ctx context.Context, artID int64, principal string) (bool, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "access_service"),
	}
}

// HasAccess returns the recorded flag, or false when no entry exists.
func (s *Service) HasAccess(ctx context.Context, artID int64, principal string) (bool, error) {
	entry, err := s.repo.Get(ctx, artID, principal)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return false, nil
		}
		s.log.Error("failed to get access entry", "art_id", artID, "principal", principal, "error", err)
		return false, fmt.Errorf("get access entry: %w", err)
	}
	return entry.Granted, nil
}
