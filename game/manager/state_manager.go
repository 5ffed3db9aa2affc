package manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// GameStats is the on-disk format: a single best-score integer.
type GameStats struct {
	HighScore int `json:"highScore"`
}

// StateManager persists the all-time high score across sessions and keeps
// the in-memory score history of the current run.
type StateManager struct {
	path         string
	highScore    int
	scoreHistory []int
}

func NewStateManager(dataDir string) (*StateManager, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	sm := &StateManager{
		path:         filepath.Join(dataDir, "gamestats.json"),
		scoreHistory: make([]int, 0),
	}

	if err := sm.load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return sm, nil
}

func (sm *StateManager) load() error {
	data, err := os.ReadFile(sm.path)
	if err != nil {
		return err
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return fmt.Errorf("decode %s: %w", sm.path, err)
	}

	sm.highScore = stats.HighScore
	return nil
}

func (sm *StateManager) save() error {
	data, err := json.MarshalIndent(GameStats{HighScore: sm.highScore}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(sm.path, data, 0644)
}

// RecordScore folds a finished session's score into the history and
// persists the high score when the session set a new one. Reports whether
// the score is a new record.
func (sm *StateManager) RecordScore(score int) (bool, error) {
	sm.scoreHistory = append(sm.scoreHistory, score)
	if score <= sm.highScore {
		return false, nil
	}
	sm.highScore = score
	return true, sm.save()
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

func (sm *StateManager) ScoreHistory() []int {
	return sm.scoreHistory
}
