package game

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
)

const (
	configDirName = "halloweenhaunt"
	progressFN    = "progress.json"
	highScoresFN  = "highscores.json"

	maxHighScores = 5
)

// Progress is the resumable game state written after each level.
type Progress struct {
	Level             int  `json:"level"`
	Score             int  `json:"score"`
	TutorialCompleted bool `json:"tutorial_completed"`
}

// HighScore is one leaderboard entry.
type HighScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// configBaseDir determines the base directory to store save data.
// If HAUNT_CONFIG_DIR is set, it is used as-is. Otherwise, use
// UserConfigDir()/halloweenhaunt.
func configBaseDir() (string, error) {
	if env := os.Getenv("HAUNT_CONFIG_DIR"); env != "" {
		if err := os.MkdirAll(env, 0o755); err != nil {
			return "", err
		}
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, configDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// LoadProgress reads the saved progress. Missing or unreadable files yield
// a fresh game at level 1.
func LoadProgress() Progress {
	def := Progress{Level: 1}
	dir, err := configBaseDir()
	if err != nil {
		return def
	}
	data, err := os.ReadFile(filepath.Join(dir, progressFN))
	if err != nil {
		return def
	}
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return def
	}
	if p.Level < 1 {
		p.Level = 1
	}
	return p
}

// SaveProgress writes the progress file atomically.
func SaveProgress(p Progress) error {
	if p.Level < 1 {
		return errors.New("level must be positive")
	}
	dir, err := configBaseDir()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(filepath.Join(dir, progressFN), data)
}

// LoadHighScores returns the leaderboard sorted by score descending.
func LoadHighScores() []HighScore {
	dir, err := configBaseDir()
	if err != nil {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(dir, highScoresFN))
	if err != nil {
		return nil
	}
	var list []HighScore
	if err := json.Unmarshal(data, &list); err != nil {
		return nil
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Score > list[j].Score })
	return list
}

// SaveHighScore inserts a new entry and keeps only the top entries.
func SaveHighScore(name string, score int) error {
	if score < 0 {
		return errors.New("score must be non-negative")
	}
	dir, err := configBaseDir()
	if err != nil {
		return err
	}
	list := append(LoadHighScores(), HighScore{Name: name, Score: score})
	sort.SliceStable(list, func(i, j int) bool { return list[i].Score > list[j].Score })
	if len(list) > maxHighScores {
		list = list[:maxHighScores]
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(filepath.Join(dir, highScoresFN), data)
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
