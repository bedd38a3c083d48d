package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// KeyedValue returns the integer stored under key, or 0 if none is.
func (s *Store) KeyedValue(key string) (int, error) {
	var v int
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return v, nil
}

// RaiseKeyedValue stores v under key unless a larger value is already
// stored, and returns the value now in the table.
func (s *Store) RaiseKeyedValue(key string, v int) (int, error) {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   value = MAX(value, excluded.value),
		   updated_at = CURRENT_TIMESTAMP`,
		key, v,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return s.KeyedValue(key)
}

// HighScoreSlot is a single kv entry holding a best score.
type HighScoreSlot struct {
	store *Store
	key   string
}

// HighScoreSlot returns the high score kept under key.
func (s *Store) HighScoreSlot(key string) *HighScoreSlot {
	return &HighScoreSlot{store: s, key: key}
}

// LoadHighScore returns the stored high score.
func (h *HighScoreSlot) LoadHighScore() (int, error) {
	return h.store.KeyedValue(h.key)
}

// SaveHighScore raises the stored high score to score. A lower value never
// replaces a higher one.
func (h *HighScoreSlot) SaveHighScore(score int) error {
	_, err := h.store.RaiseKeyedValue(h.key, score)
	return err
}
