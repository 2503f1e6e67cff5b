package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds everything the server reads at startup. Values come from
// defaults, then an optional TOML file, then environment overrides.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Auth     AuthConfig     `toml:"auth"`
	Project  ProjectConfig  `toml:"project"`
}

type ServerConfig struct {
	Addr       string `toml:"addr"`        // listen address, e.g. ":8080"
	CORSOrigin string `toml:"cors_origin"` // allowed origin; "*" for any
}

type DatabaseConfig struct {
	Path string `toml:"path"` // sqlite file path
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

type ProjectConfig struct {
	StartDate string `toml:"start_date"` // YYYY-MM-DD, anchors the timeline
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":8080", CORSOrigin: "*"},
		Database: DatabaseConfig{Path: "data/board.db"},
		Auth:     AuthConfig{JWTSecret: "board-dev-secret"},
		Project:  ProjectConfig{StartDate: "2025-09-01"},
	}
}

// Load reads the config file at path (skipped when missing or path is
// empty), then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Server.Addr = envOr("BOARD_ADDR", cfg.Server.Addr)
	cfg.Server.CORSOrigin = envOr("BOARD_CORS_ORIGIN", cfg.Server.CORSOrigin)
	cfg.Database.Path = envOr("BOARD_DB_PATH", cfg.Database.Path)
	cfg.Auth.JWTSecret = envOr("BOARD_JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Project.StartDate = envOr("BOARD_START_DATE", cfg.Project.StartDate)
	return cfg, nil
}

// ProjectStart parses the configured start date.
func (c *Config) ProjectStart() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.Project.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse project start date %q: %w", c.Project.StartDate, err)
	}
	return t, nil
}

// envOr returns the environment variable value for key, or fallback if empty.
func envOr(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
