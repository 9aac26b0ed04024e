package client

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"artregistry/internal/domain/art"
)

// SQLiteStorage keeps a local cache of pieces fetched from the server and
// the saved session token.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache tables: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS pieces (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			owner TEXT NOT NULL,
			size INTEGER NOT NULL,
			created_at DATETIME NOT NULL,
			description TEXT NOT NULL,
			tags TEXT NOT NULL,
			fetched_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			token TEXT NOT NULL,
			saved_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_pieces_owner ON pieces(owner);
	`)

	return err
}

func (s *SQLiteStorage) SavePiece(piece *art.Piece) error {
	tags, err := json.Marshal(piece.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO pieces (id, title, owner, size, created_at, description, tags, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title, owner = excluded.owner, size = excluded.size,
			created_at = excluded.created_at, description = excluded.description,
			tags = excluded.tags, fetched_at = excluded.fetched_at
	`, piece.ID, piece.Title, piece.Owner, piece.Size, piece.CreatedAt,
		piece.Description, string(tags), time.Now())
	if err != nil {
		return fmt.Errorf("save piece: %w", err)
	}

	return nil
}

func (s *SQLiteStorage) GetPiece(id int64) (*art.Piece, error) {
	var piece art.Piece
	var tags string

	err := s.db.QueryRow(`
		SELECT id, title, owner, size, created_at, description, tags
		FROM pieces WHERE id = ?
	`, id).Scan(&piece.ID, &piece.Title, &piece.Owner, &piece.Size,
		&piece.CreatedAt, &piece.Description, &tags)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, art.ErrNotFound
		}
		return nil, fmt.Errorf("get cached piece: %w", err)
	}

	if err := json.Unmarshal([]byte(tags), &piece.Tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}

	return &piece, nil
}

func (s *SQLiteStorage) DeletePiece(id int64) error {
	_, err := s.db.Exec(`DELETE FROM pieces WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete cached piece: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) SaveToken(token string) error {
	_, err := s.db.Exec(`
		INSERT INTO session (id, token, saved_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at
	`, token, time.Now())
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) LoadToken() (string, error) {
	var token string
	err := s.db.QueryRow(`SELECT token FROM session WHERE id = 1`).Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("load token: %w", err)
	}
	return token, nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
