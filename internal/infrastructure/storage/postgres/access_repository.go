package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"artregistry/internal/domain/access"
)

type AccessRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAccessRepository(pool *pgxpool.Pool, log *slog.Logger) *AccessRepository {
	return &AccessRepository{
		pool: pool,
		log:  log.With("component", "access_repository"),
	}
}

// Get reads the recorded flag; the rows themselves are written by the art
// repository inside each piece's creation transaction.
func (r *AccessRepository) Get(ctx context.Context, artID int64, principal string) (access.Entry, error) {
	const query = `
		SELECT art_id, principal, granted
		FROM art_access
		WHERE art_id = $1 AND principal = $2`

	var entry access.Entry
	err := r.pool.QueryRow(ctx, query, artID, principal).
		Scan(&entry.ArtID, &entry.Principal, &entry.Granted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return access.Entry{}, access.ErrEntryNotFound
		}
		r.log.Error("failed to get access entry",
			"art_id", artID, "principal", principal, "error", err)
		return access.Entry{}, fmt.Errorf("get access entry: %w", err)
	}

	return entry, nil
}
