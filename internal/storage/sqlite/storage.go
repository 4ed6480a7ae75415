// Package sqlite stores save slots in a single SQLite table. Each row holds
// the codec line of the game and the time it was saved.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mcoot/foxhound-go/internal/codec"
	"github.com/mcoot/foxhound-go/internal/model"
	"github.com/mcoot/foxhound-go/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS saves (
	name     TEXT PRIMARY KEY,
	state    TEXT NOT NULL,
	saved_at TEXT NOT NULL
);`

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// New opens (and creates if missing) the database at path and applies the schema
func New(path string) (*Storage, error) {
	// Ensure directory exists for ./data/foxhound.db, etc.
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, save *model.SavedGame) error {
	if err := model.ValidateSaveName(save.Name); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO saves (name, state, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET state = excluded.state, saved_at = excluded.saved_at`,
		save.Name, codec.Encode(save.State), save.SavedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("saving %q: %w", save.Name, err)
	}
	return nil
}

func (s *Storage) GetGame(ctx context.Context, name string) (*model.SavedGame, error) {
	var state, savedAt string
	err := s.db.QueryRowContext(ctx, `SELECT state, saved_at FROM saves WHERE name = ?`, name).Scan(&state, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrSaveNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeRow(name, state, savedAt)
}

func (s *Storage) DeleteGame(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.ErrSaveNotFound
	}
	return nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.SavedGame, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, state, saved_at FROM saves ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	saves := []*model.SavedGame{}
	for rows.Next() {
		var name, state, savedAt string
		if err := rows.Scan(&name, &state, &savedAt); err != nil {
			return nil, err
		}
		save, err := decodeRow(name, state, savedAt)
		if err != nil {
			return nil, err
		}
		saves = append(saves, save)
	}
	return saves, rows.Err()
}

func decodeRow(name, state, savedAt string) (*model.SavedGame, error) {
	decoded, err := codec.Decode(state)
	if err != nil {
		return nil, fmt.Errorf("slot %q: %w", name, err)
	}
	at, err := time.Parse(time.RFC3339Nano, savedAt)
	if err != nil {
		return nil, fmt.Errorf("slot %q: bad saved_at: %w", name, err)
	}
	return &model.SavedGame{Name: name, State: decoded, SavedAt: at}, nil
}
