// Package daemon manages the fightclub daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all daemon configuration.
type Config struct {
	Source  SourceConfig  `toml:"source"`
	API     APIConfig     `toml:"api"`
	Display DisplayConfig `toml:"display"`
	Logging LoggingConfig `toml:"logging"`
}

// SourceConfig points at the data repo and controls refresh cadence.
type SourceConfig struct {
	// BaseURL is the raw-content root of the daily-progress repo.
	BaseURL string `toml:"base_url"`
	// Egos are the alter-ego documents to fetch, in display order.
	Egos []string `toml:"egos"`
	// RefreshIntervalSec is the seconds between snapshot refreshes.
	RefreshIntervalSec int `toml:"refresh_interval_sec"`
	// FetchTimeoutSec bounds a single document fetch.
	FetchTimeoutSec int `toml:"fetch_timeout_sec"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host        string   `toml:"host"`
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
	Metrics     bool     `toml:"metrics"`
}

// DisplayConfig controls projection sizing.
type DisplayConfig struct {
	// MissionCap limits each mission category in the projection.
	MissionCap int `toml:"mission_cap"`
	// HistoryLimit caps the event feed.
	HistoryLimit int `toml:"history_limit"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			BaseURL:            "https://raw.githubusercontent.com/wannabemrrobot/daily-progress/main",
			Egos:               []string{"tyler", "mr-robot", "kei"},
			RefreshIntervalSec: 300,
			FetchTimeoutSec:    15,
		},
		API: APIConfig{
			Host:        "127.0.0.1",
			Port:        4656,
			CORSOrigins: []string{"*"},
			Metrics:     true,
		},
		Display: DisplayConfig{
			MissionCap:   5,
			HistoryLimit: 20,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(fightclubHome(), "fightclub.log"),
		},
	}
}

// LoadConfig reads config from ~/.fightclub/config.toml, falling back to
// defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(fightclubHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil // No config file yet — use defaults
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes the config to ~/.fightclub/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(fightclubHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// fightclubHome returns the fightclub data directory.
func fightclubHome() string {
	if env := os.Getenv("FIGHTCLUB_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".fightclub")
}

// Home is exported for use by other packages.
func Home() string {
	return fightclubHome()
}
