package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Database.Path != "data/board.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	start, err := cfg.ProjectStart()
	if err != nil {
		t.Fatalf("ProjectStart returned error: %v", err)
	}
	if start.Year() != 2025 || start.Month() != 9 || start.Day() != 1 {
		t.Fatalf("unexpected default start: %v", start)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.toml")
	data := []byte("[server]\naddr = \":9090\"\n\n[project]\nstart_date = \"2026-01-05\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("file value not applied: %+v", cfg.Server)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Database.Path != "data/board.db" {
		t.Fatalf("default lost: %+v", cfg.Database)
	}
	if cfg.Project.StartDate != "2026-01-05" {
		t.Fatalf("start date not applied: %+v", cfg.Project)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BOARD_ADDR", ":7070")
	t.Setenv("BOARD_JWT_SECRET", "env-secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Addr != ":7070" || cfg.Auth.JWTSecret != "env-secret" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadMissingFileIsSkipped(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestProjectStartInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Project.StartDate = "September 1st"
	if _, err := cfg.ProjectStart(); err == nil {
		t.Fatalf("expected parse error")
	}
}
