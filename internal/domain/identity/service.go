package identity

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, login, password string) (int, error)
	Authenticate(ctx context.Context, login, password string) (Identity, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "identity_service"),
	}
}

func (s *Service) Register(ctx context.Context, login, password string) (int, error) {
	if err := s.validator.ValidateRegister(login, password); err != nil {
		s.log.Debug("registration rejected", "login", login, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.repo.Create(ctx, login, string(hash))
	if err != nil {
		if errors.Is(err, ErrLoginTaken) {
			return 0, ErrLoginTaken
		}
		s.log.Error("failed to create identity", "login", login, "error", err)
		return 0, fmt.Errorf("create identity: %w", err)
	}

	s.log.Info("identity registered", "login", login, "id", id)
	return id, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (Identity, error) {
	if err := s.validator.ValidateLogin(login); err != nil {
		return Identity{}, ErrInvalidAuth
	}

	ident, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		return Identity{}, ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte(password)); err != nil {
		return Identity{}, ErrInvalidAuth
	}

	return ident, nil
}
