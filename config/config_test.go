package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func loadFromString(t *testing.T, content string) (*Config, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bench.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return Load(path)
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := loadFromString(t, `
trials: 25
output_dir: results
seed: 42
self_check_size: 4096
log_level: debug
`)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Trials != 25 {
		t.Errorf("trials: got %d", cfg.Trials)
	}
	if cfg.OutputDir != "results" {
		t.Errorf("output_dir: got %q", cfg.OutputDir)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed: got %d", cfg.Seed)
	}
	if cfg.SelfCheckSize != 4096 {
		t.Errorf("self_check_size: got %d", cfg.SelfCheckSize)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("level: got %v", cfg.Level())
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadFromString(t, "trials: 3\n")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Trials != 3 {
		t.Errorf("trials: got %d, want 3", cfg.Trials)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("default output_dir: got %q, want %q", cfg.OutputDir, DefaultOutputDir)
	}
	if cfg.SelfCheckSize != DefaultSelfCheckSize {
		t.Errorf("default self_check_size: got %d", cfg.SelfCheckSize)
	}
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("default level: got %v", cfg.Level())
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero trials", "trials: 0\n"},
		{"too many trials", "trials: 20000\n"},
		{"empty output dir", "output_dir: \"\"\n"},
		{"bad log level", "log_level: loud\n"},
		{"negative self check", "self_check_size: -1\n"},
		{"malformed yaml", "trials: [1, 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadFromString(t, tt.content); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate_Defaults(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}
