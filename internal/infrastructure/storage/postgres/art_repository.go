package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"artregistry/internal/domain/art"
)

type ArtRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewArtRepository(pool *pgxpool.Pool, log *slog.Logger) *ArtRepository {
	return &ArtRepository{
		pool: pool,
		log:  log.With("component", "art_repository"),
	}
}

func (r *ArtRepository) Get(ctx context.Context, id int64) (*art.Piece, error) {
	const query = `
		SELECT id, title, owner, size, created_at, description, tags
		FROM arts
		WHERE id = $1`

	piece, err := r.scanPiece(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, art.ErrNotFound
		}
		r.log.Error("failed to get art piece", "art_id", id, "error", err)
		return nil, fmt.Errorf("get art piece: %w", err)
	}

	return piece, nil
}

// Create allocates the next ID from the single-row counter, inserts the piece
// and records the owner's default access entry, all in the same transaction.
// A rollback undoes every part, so the ID sequence stays gapless and a failed
// create leaves no piece and no entry behind.
func (r *ArtRepository) Create(ctx context.Context, piece *art.Piece) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin create: %w", err)
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, `UPDATE art_counter SET last_id = last_id + 1 RETURNING last_id`).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("advance counter: %w", err)
	}

	const query = `
		INSERT INTO arts (id, title, owner, size, description, tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err = tx.QueryRow(ctx, query,
		id, piece.Title, piece.Owner, piece.Size, piece.Description, piece.Tags,
	).Scan(&piece.CreatedAt)
	if err != nil {
		r.log.Error("failed to create art piece", "owner", piece.Owner, "error", err)
		return 0, fmt.Errorf("create art piece: %w", err)
	}

	const grant = `
		INSERT INTO art_access (art_id, principal, granted)
		VALUES ($1, $2, TRUE)`

	if _, err := tx.Exec(ctx, grant, id, piece.Owner); err != nil {
		r.log.Error("failed to record default access entry", "art_id", id, "principal", piece.Owner, "error", err)
		return 0, fmt.Errorf("record default access entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit create: %w", err)
	}

	piece.ID = id
	return id, nil
}

// Update applies only while the stored owner still matches piece.Owner, so a
// transfer landing between the service's ownership check and this statement
// cannot be overwritten.
func (r *ArtRepository) Update(ctx context.Context, piece *art.Piece) error {
	const query = `
		UPDATE arts
		SET title = $1, size = $2, description = $3, tags = $4
		WHERE id = $5 AND owner = $6`

	result, err := r.pool.Exec(ctx, query,
		piece.Title, piece.Size, piece.Description, piece.Tags, piece.ID, piece.Owner)
	if err != nil {
		r.log.Error("failed to update art piece", "art_id", piece.ID, "error", err)
		return fmt.Errorf("update art piece: %w", err)
	}

	if result.RowsAffected() == 0 {
		return r.missingOrUnowned(ctx, piece.ID)
	}

	return nil
}

func (r *ArtRepository) UpdateOwner(ctx context.Context, id int64, owner, newOwner string) error {
	const query = `UPDATE arts SET owner = $1 WHERE id = $2 AND owner = $3`

	result, err := r.pool.Exec(ctx, query, newOwner, id, owner)
	if err != nil {
		r.log.Error("failed to update owner", "art_id", id, "error", err)
		return fmt.Errorf("update owner: %w", err)
	}

	if result.RowsAffected() == 0 {
		return r.missingOrUnowned(ctx, id)
	}

	return nil
}

func (r *ArtRepository) Delete(ctx context.Context, id int64, owner string) error {
	const query = `DELETE FROM arts WHERE id = $1 AND owner = $2`

	result, err := r.pool.Exec(ctx, query, id, owner)
	if err != nil {
		r.log.Error("failed to delete art piece", "art_id", id, "error", err)
		return fmt.Errorf("delete art piece: %w", err)
	}

	if result.RowsAffected() == 0 {
		return r.missingOrUnowned(ctx, id)
	}

	return nil
}

// missingOrUnowned distinguishes the two reasons an owner-conditional write
// touched zero rows: the piece is gone (NotFound) or it exists under another
// owner (Unauthorized).
func (r *ArtRepository) missingOrUnowned(ctx context.Context, id int64) error {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM arts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check art piece existence: %w", err)
	}
	if exists {
		return art.ErrUnauthorized
	}
	return art.ErrNotFound
}

func (r *ArtRepository) ListByOwner(ctx context.Context, owner string) ([]art.Piece, error) {
	const query = `
		SELECT id, title, owner, size, created_at, description, tags
		FROM arts
		WHERE owner = $1
		ORDER BY id`

	rows, err := r.pool.Query(ctx, query, owner)
	if err != nil {
		r.log.Error("failed to list art pieces", "owner", owner, "error", err)
		return nil, fmt.Errorf("list art pieces: %w", err)
	}
	defer rows.Close()

	var pieces []art.Piece
	for rows.Next() {
		piece, err := r.scanPiece(rows)
		if err != nil {
			return nil, fmt.Errorf("scan art piece: %w", err)
		}
		pieces = append(pieces, *piece)
	}

	return pieces, rows.Err()
}

func (r *ArtRepository) scanPiece(row pgx.Row) (*art.Piece, error) {
	var piece art.Piece
	err := row.Scan(
		&piece.ID, &piece.Title, &piece.Owner, &piece.Size,
		&piece.CreatedAt, &piece.Description, &piece.Tags,
	)
	if err != nil {
		return nil, err
	}
	return &piece, nil
}
