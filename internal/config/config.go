// Package config reads engine settings from the environment.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds all environment-driven settings.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Root is the directory relative paths are resolved against.
	Root string `env:"WORDLE_ROOT" envDefault:"."`

	// WordsPath is the canonical dictionary. Empty selects the embedded copy.
	WordsPath    string `env:"WORDS_PATH"`
	SnapshotPath string `env:"WORDS_SAVED_PATH" envDefault:"words_saved.json"`
	// SnapshotDSN, when set, keeps the snapshot in SQLite instead of SnapshotPath.
	SnapshotDSN string `env:"WORDS_SNAPSHOT_DSN"`

	WordLength int    `env:"WORD_LENGTH" envDefault:"5"`
	Evaluator  string `env:"EVALUATOR" envDefault:"standard"`
	DailySalt  string `env:"DAILY_SALT"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if c.WordLength <= 0 {
		return Config{}, fmt.Errorf("WORD_LENGTH must be positive, got %d", c.WordLength)
	}
	return c, nil
}

// Resolve joins a relative path onto Root. Absolute and empty paths are
// returned unchanged.
func (c Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Root, path)
}
