package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Actions recorded in the history log.
const (
	ActionBuy    = "buy"
	ActionRemove = "remove"
	ActionEvent  = "event"
)

// HistoryEntry is one append-only record of a build change.
type HistoryEntry struct {
	ID        string
	Character string
	Action    string
	Path      string
	Skill     string
	Cost      int
	CreatedAt time.Time
}

// AppendHistory records a build change. Entries are never updated or
// reordered.
func (s *Store) AppendHistory(ctx context.Context, e HistoryEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (id, character, action, path, skill, cost, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Character, e.Action, e.Path, e.Skill, e.Cost, e.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// History returns up to limit entries for a character, newest first.
// limit <= 0 returns everything.
func (s *Store) History(ctx context.Context, characterName string, limit int) ([]HistoryEntry, error) {
	query := `SELECT id, character, action, path, skill, cost, created_at
	          FROM history WHERE character = ? ORDER BY created_at DESC, id`
	args := []any{characterName}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var created int64
		if err := rows.Scan(&e.ID, &e.Character, &e.Action, &e.Path, &e.Skill, &e.Cost, &created); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.CreatedAt = time.UnixMilli(created).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
