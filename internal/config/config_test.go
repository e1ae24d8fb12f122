package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HAUNT_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "haunt.yaml")
	body := "candies_per_level: 20\nmusic_volume: 0.5\ndebug: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HAUNT_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CandiesPerLevel != 20 {
		t.Fatalf("CandiesPerLevel = %d, want 20", cfg.CandiesPerLevel)
	}
	if cfg.MusicVolume != 0.5 {
		t.Fatalf("MusicVolume = %v, want 0.5", cfg.MusicVolume)
	}
	if !cfg.Debug {
		t.Fatal("Debug should be true")
	}
	// Untouched fields keep their defaults.
	if cfg.TotalLevels != Default().TotalLevels {
		t.Fatalf("TotalLevels = %d, want default", cfg.TotalLevels)
	}
}

func TestLoadClampsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "haunt.yaml")
	body := "candies_per_level: -3\nmusic_volume: 9.0\nsfx_volume: -1.0\nwindow_scale: 0\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HAUNT_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CandiesPerLevel != 1 || cfg.WindowScale != 1 {
		t.Fatalf("clamped cfg = %+v", cfg)
	}
	if cfg.MusicVolume != 1 || cfg.SFXVolume != 0 {
		t.Fatalf("volumes = %v, %v", cfg.MusicVolume, cfg.SFXVolume)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "haunt.yaml")
	if err := os.WriteFile(path, []byte("candies_per_level: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HAUNT_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("malformed yaml should error")
	}
}
