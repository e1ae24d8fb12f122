package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProgressDefaults(t *testing.T) {
	t.Setenv("HAUNT_CONFIG_DIR", t.TempDir())
	p := LoadProgress()
	if p.Level != 1 || p.Score != 0 || p.TutorialCompleted {
		t.Fatalf("unexpected defaults: %+v", p)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	t.Setenv("HAUNT_CONFIG_DIR", t.TempDir())
	want := Progress{Level: 3, Score: 1250, TutorialCompleted: true}
	if err := SaveProgress(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := LoadProgress(); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoadProgressCorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HAUNT_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, progressFN), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := LoadProgress()
	if p.Level != 1 {
		t.Fatalf("corrupt file should fall back to defaults, got %+v", p)
	}
}

func TestSaveProgressRejectsBadLevel(t *testing.T) {
	t.Setenv("HAUNT_CONFIG_DIR", t.TempDir())
	if err := SaveProgress(Progress{Level: 0}); err == nil {
		t.Fatal("expected error for level 0")
	}
}

func TestHighScoresKeepTopFiveSorted(t *testing.T) {
	t.Setenv("HAUNT_CONFIG_DIR", t.TempDir())
	scores := []int{100, 900, 300, 700, 500, 200, 800}
	for _, s := range scores {
		if err := SaveHighScore("p", s); err != nil {
			t.Fatalf("save %d: %v", s, err)
		}
	}
	list := LoadHighScores()
	if len(list) != maxHighScores {
		t.Fatalf("len = %d, want %d", len(list), maxHighScores)
	}
	want := []int{900, 800, 700, 500, 300}
	for i, hs := range list {
		if hs.Score != want[i] {
			t.Fatalf("list[%d] = %d, want %d", i, hs.Score, want[i])
		}
	}
}

func TestSaveHighScoreRejectsNegative(t *testing.T) {
	t.Setenv("HAUNT_CONFIG_DIR", t.TempDir())
	if err := SaveHighScore("p", -5); err == nil {
		t.Fatal("expected error for negative score")
	}
}

func TestLoadHighScoresEmpty(t *testing.T) {
	t.Setenv("HAUNT_CONFIG_DIR", t.TempDir())
	if list := LoadHighScores(); len(list) != 0 {
		t.Fatalf("expected empty leaderboard, got %v", list)
	}
}
