package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spaghettifunk/terravox/engine/core"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terravox.toml")
	content := `
name = "Test App"
log_level = "warn"
workers = 8
queue_size = 64
chunk_radius = 2
seed = 99
frames = 10

[camera]
fov_degrees = 60.0
aspect_ratio = 1.0
near_clip = 0.5
far_clip = 200.0
position = [1.0, 2.0, 3.0]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Name != "Test App" || cfg.Workers != 8 || cfg.QueueSize != 64 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.ChunkRadius != 2 || cfg.Seed != 99 || cfg.Frames != 10 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Camera.FovDegrees != 60 || cfg.Camera.Position != [3]float32{1, 2, 3} {
		t.Errorf("unexpected camera config: %+v", cfg.Camera)
	}
	if cfg.CoreLogLevel() != core.WarnLevel {
		t.Errorf("log level = %v, want warn", cfg.CoreLogLevel())
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terravox.toml")
	if err := os.WriteFile(path, []byte(`workers = 2`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	defaults := DefaultConfig()
	if cfg.Workers != 2 {
		t.Errorf("workers = %d, want 2", cfg.Workers)
	}
	if cfg.Name != defaults.Name || cfg.Camera != defaults.Camera {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadInvalidToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(path, []byte(`workers = [`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for invalid toml")
	}
}

func TestWatcherReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terravox.toml")
	if err := os.WriteFile(path, []byte(`workers = 1`), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *ApplicationConfig, 4)
	w, err := NewWatcher(path, func(cfg *ApplicationConfig) {
		reloaded <- cfg
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`workers = 7`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Workers != 7 {
			t.Errorf("reloaded workers = %d, want 7", cfg.Workers)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatcherDoubleClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terravox.toml")
	if err := os.WriteFile(path, []byte(``), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err == nil {
		t.Error("second close should error")
	}
}
