package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when no save exists under the requested name.
var ErrNotFound = errors.New("character not found")

// SaveInfo summarizes one named save.
type SaveInfo struct {
	Name      string
	UpdatedAt time.Time
}

// SaveCharacter upserts the session document under name.
func (s *Store) SaveCharacter(ctx context.Context, name string, document []byte) error {
	if name == "" {
		return fmt.Errorf("save name is required")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO characters (name, document, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		name, string(document), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save character %q: %w", name, err)
	}
	return nil
}

// LoadCharacter returns the session document saved under name.
func (s *Store) LoadCharacter(ctx context.Context, name string) ([]byte, error) {
	var document string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM characters WHERE name = ?`, name,
	).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load character %q: %w", name, err)
	}
	return []byte(document), nil
}

// ListCharacters returns all saves, most recently updated first.
func (s *Store) ListCharacters(ctx context.Context) ([]SaveInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, updated_at FROM characters ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	defer rows.Close()

	var saves []SaveInfo
	for rows.Next() {
		var info SaveInfo
		var updated int64
		if err := rows.Scan(&info.Name, &updated); err != nil {
			return nil, fmt.Errorf("scan character row: %w", err)
		}
		info.UpdatedAt = time.UnixMilli(updated).UTC()
		saves = append(saves, info)
	}
	return saves, rows.Err()
}

// DeleteCharacter removes a save and its history.
func (s *Store) DeleteCharacter(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM characters WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete character %q: %w", name, err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM history WHERE character = ?`, name); err != nil {
		return fmt.Errorf("delete history for %q: %w", name, err)
	}
	return nil
}

// Reset wipes every save and history row.
func (s *Store) Reset(ctx context.Context) error {
	for _, table := range []string{"characters", "history"} {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("reset %s: %w", table, err)
		}
	}
	return nil
}
