package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wrenware/repovis/internal/config"
)

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	content := `
[github]
token = "ghp_testtoken"
username = "alice"

[listing]
per_page = 50
max_pages = 3
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GitHub.Token != "ghp_testtoken" {
		t.Errorf("expected token 'ghp_testtoken', got '%s'", cfg.GitHub.Token)
	}
	if cfg.GitHub.Username != "alice" {
		t.Errorf("expected username 'alice', got '%s'", cfg.GitHub.Username)
	}
	if cfg.PerPageOrDefault() != 50 {
		t.Errorf("expected per_page 50, got %d", cfg.PerPageOrDefault())
	}
	if cfg.MaxPagesOrDefault() != 3 {
		t.Errorf("expected max_pages 3, got %d", cfg.MaxPagesOrDefault())
	}
}

func TestLoad_EnvVarsTakePrecedence(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	content := `
[github]
token = "ghp_fromfile"
username = "fromfile"
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PAT_TOKEN", "ghp_frompat")
	t.Setenv("GITHUB_TOKEN", "ghp_fromenv")
	t.Setenv("GITHUB_USER", "fromenv")

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GitHub.Token != "ghp_frompat" {
		t.Errorf("expected PAT_TOKEN to win, got '%s'", cfg.GitHub.Token)
	}
	if cfg.GitHub.Username != "fromenv" {
		t.Errorf("expected username 'fromenv', got '%s'", cfg.GitHub.Username)
	}
}

func TestLoad_GithubTokenUsedWhenPatTokenUnset(t *testing.T) {
	t.Setenv("PAT_TOKEN", "")
	t.Setenv("GITHUB_TOKEN", "ghp_fallback")

	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GitHub.Token != "ghp_fallback" {
		t.Errorf("expected GITHUB_TOKEN fallback, got '%s'", cfg.GitHub.Token)
	}
}

func TestLoad_MissingFileReturnsEmptyConfig(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GitHub.Token != "" {
		t.Errorf("expected empty token, got '%s'", cfg.GitHub.Token)
	}
	if cfg.PerPageOrDefault() != 100 {
		t.Errorf("expected default per_page 100, got %d", cfg.PerPageOrDefault())
	}
	if cfg.MaxPagesOrDefault() != 2 {
		t.Errorf("expected default max_pages 2, got %d", cfg.MaxPagesOrDefault())
	}
}
