package manager

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRecordScorePersistsHighScore(t *testing.T) {
	dir := t.TempDir()

	sm, err := NewStateManager(dir)
	if err != nil {
		t.Fatalf("NewStateManager: %v", err)
	}
	if sm.HighScore() != 0 {
		t.Fatalf("fresh store high score = %d, want 0", sm.HighScore())
	}

	record, err := sm.RecordScore(5)
	if err != nil {
		t.Fatalf("RecordScore: %v", err)
	}
	if !record {
		t.Error("first positive score should be a record")
	}

	// A lower score keeps the stored best.
	record, err = sm.RecordScore(3)
	if err != nil {
		t.Fatalf("RecordScore: %v", err)
	}
	if record {
		t.Error("lower score should not be a record")
	}
	if sm.HighScore() != 5 {
		t.Errorf("high score = %d, want 5", sm.HighScore())
	}

	// A fresh manager on the same dir sees the persisted value.
	reloaded, err := NewStateManager(dir)
	if err != nil {
		t.Fatalf("NewStateManager (reload): %v", err)
	}
	if reloaded.HighScore() != 5 {
		t.Errorf("reloaded high score = %d, want 5", reloaded.HighScore())
	}
}

func TestScoreHistoryIsSessionLocal(t *testing.T) {
	dir := t.TempDir()

	sm, err := NewStateManager(dir)
	if err != nil {
		t.Fatalf("NewStateManager: %v", err)
	}
	for _, s := range []int{2, 0, 4} {
		if _, err := sm.RecordScore(s); err != nil {
			t.Fatalf("RecordScore(%d): %v", s, err)
		}
	}
	if got := len(sm.ScoreHistory()); got != 3 {
		t.Errorf("history length = %d, want 3", got)
	}

	// Only the best score survives a restart.
	reloaded, err := NewStateManager(dir)
	if err != nil {
		t.Fatalf("NewStateManager (reload): %v", err)
	}
	if got := len(reloaded.ScoreHistory()); got != 0 {
		t.Errorf("reloaded history length = %d, want 0", got)
	}
}

func TestNewStateManagerRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "gamestats.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewStateManager(dir); err == nil {
		t.Error("expected an error for a corrupt stats file")
	}
}
