package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.SavePath != "npcs.txt" || cfg.AuditLogPath != "log.txt" {
		t.Errorf("unexpected default paths: %+v", cfg)
	}
	if cfg.Seed == 0 {
		t.Error("default seed must be random, not zero")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must be valid: %v", err)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "arena.yaml", `
seed: 42
save_path: data/npcs.txt
default_distance: 12.5
feed:
  enabled: true
  address: ":9090"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 42 || cfg.SavePath != "data/npcs.txt" || cfg.DefaultDistance != 12.5 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if !cfg.Feed.Enabled || cfg.Feed.Address != ":9090" {
		t.Errorf("unexpected feed config %+v", cfg.Feed)
	}
	// Не заданное в файле остаётся по умолчанию
	if cfg.AuditLogPath != "log.txt" {
		t.Errorf("expected default audit log path, got %q", cfg.AuditLogPath)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "seed: [unclosed"},
		{"negative distance", "default_distance: -3"},
		{"empty save path", "save_path: \"  \""},
		{"feed without address", "feed:\n  enabled: true\n  address: \"\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "c.yaml", tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "ARENA_SEED=7\nARENA_AUDIT_LOG=audit.txt\n")

	// godotenv не перезаписывает уже заданные переменные - очищаем их на время теста
	t.Setenv("ARENA_SEED", "")
	t.Setenv("ARENA_AUDIT_LOG", "")
	os.Unsetenv("ARENA_SEED")
	os.Unsetenv("ARENA_AUDIT_LOG")
	t.Setenv("ARENA_FEED_ADDR", ":7777")

	cfg := NewConfig()
	if err := LoadEnv(&cfg, envFile); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if cfg.Seed != 7 || cfg.AuditLogPath != "audit.txt" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if !cfg.Feed.Enabled || cfg.Feed.Address != ":7777" {
		t.Errorf("feed override not applied: %+v", cfg.Feed)
	}
}

func TestLoadEnv_MissingFileIsNotAnError(t *testing.T) {
	cfg := NewConfig()
	if err := LoadEnv(&cfg, filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing .env must be ignored, got %v", err)
	}
}
