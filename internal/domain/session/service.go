package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

const tokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

// Servicer issues bearer tokens and resolves them back to the caller login.
// Only the SHA-256 of a token is stored.
type Servicer interface {
	Create(ctx context.Context, login string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "session_service"),
	}
}

func (s *Service) Create(ctx context.Context, login string) (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	token := base64.URLEncoding.EncodeToString(tokenBytes)
	tokenHash := sha256.Sum256([]byte(token))

	expiresAt := time.Now().Add(tokenTTL)
	if err := s.repo.Create(ctx, login, hex.EncodeToString(tokenHash[:]), expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

func (s *Service) Validate(ctx context.Context, token string) (string, error) {
	tokenHash := sha256.Sum256([]byte(token))

	login, err := s.repo.Validate(ctx, hex.EncodeToString(tokenHash[:]))
	if err != nil {
		return "", ErrInvalidToken
	}

	return login, nil
}
