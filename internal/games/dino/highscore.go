package dino

import "sync"

// HighScoreStore persists the single best score.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// MemoryHighScore is a process-local HighScoreStore, used when no database
// is available. It is safe for concurrent use.
type MemoryHighScore struct {
	mu    sync.Mutex
	value int
}

// LoadHighScore returns the stored value.
func (m *MemoryHighScore) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, nil
}

// SaveHighScore stores score if it beats the current value.
func (m *MemoryHighScore) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.value {
		m.value = score
	}
	return nil
}
