package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"artregistry/internal/domain/session"
)

type SessionRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSessionRepository(pool *pgxpool.Pool, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		pool: pool,
		log:  log.With("component", "session_repository"),
	}
}

func (r *SessionRepository) Create(ctx context.Context, login, tokenHash string, expiresAt time.Time) error {
	const query = `
		INSERT INTO sessions (login, token_hash, expires_at)
		VALUES ($1, $2, $3)`

	_, err := r.pool.Exec(ctx, query, login, tokenHash, expiresAt)
	if err != nil {
		r.log.Error("failed to create session", "login", login, "error", err)
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

func (r *SessionRepository) Validate(ctx context.Context, tokenHash string) (string, error) {
	const query = `
		SELECT login
		FROM sessions
		WHERE token_hash = $1 AND expires_at > NOW()`

	var login string
	err := r.pool.QueryRow(ctx, query, tokenHash).Scan(&login)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", session.ErrInvalidToken
		}
		r.log.Error("failed to validate session", "error", err)
		return "", fmt.Errorf("validate session: %w", err)
	}

	return login, nil
}
