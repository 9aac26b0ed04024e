package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"artregistry/internal/domain/identity"
)

const uniqueViolation = "23505"

type IdentityRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewIdentityRepository(pool *pgxpool.Pool, log *slog.Logger) *IdentityRepository {
	return &IdentityRepository{
		pool: pool,
		log:  log.With("component", "identity_repository"),
	}
}

func (r *IdentityRepository) Create(ctx context.Context, login, passwordHash string) (int, error) {
	const query = `
		INSERT INTO identities (login, password_hash)
		VALUES ($1, $2)
		RETURNING id`

	var id int
	err := r.pool.QueryRow(ctx, query, login, passwordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, identity.ErrLoginTaken
		}
		r.log.Error("failed to create identity", "login", login, "error", err)
		return 0, fmt.Errorf("create identity: %w", err)
	}

	return id, nil
}

func (r *IdentityRepository) FindByLogin(ctx context.Context, login string) (identity.Identity, error) {
	const query = `
		SELECT id, login, password_hash, created_at
		FROM identities
		WHERE login = $1`

	var ident identity.Identity
	err := r.pool.QueryRow(ctx, query, login).
		Scan(&ident.ID, &ident.Login, &ident.PasswordHash, &ident.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return identity.Identity{}, identity.ErrNotFound
		}
		r.log.Error("failed to find identity", "login", login, "error", err)
		return identity.Identity{}, fmt.Errorf("find identity: %w", err)
	}

	return ident, nil
}
