package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// ModelConfig holds the parameters used to build and sample a model.
type ModelConfig struct {
	WindowLength int     `json:"window_length"`
	Seed         *uint64 `json:"seed"` // nil means non-reproducible output
	InitialText  string  `json:"initial_text"`
	TargetLength int     `json:"target_length"`
}

// CorpusConfig holds settings for the corpus database.
type CorpusConfig struct {
	DatabasePath string `json:"database_path"`
}

// Config is the top-level configuration struct that aggregates all other configs.
type Config struct {
	LogLevel string        `json:"log_level"`
	Model    *ModelConfig  `json:"model_config"`
	Corpus   *CorpusConfig `json:"corpus_config"`
}

// DefaultModelConfig creates a model configuration with default values.
func DefaultModelConfig() *ModelConfig {
	return &ModelConfig{
		WindowLength: 4,
		Seed:         nil,
		InitialText:  "",
		TargetLength: 500,
	}
}

// DefaultCorpusConfig creates a corpus configuration with default values.
func DefaultCorpusConfig() *CorpusConfig {
	return &CorpusConfig{
		DatabasePath: "./data/charkov_corpus.db?_journal_mode=WAL&_busy_timeout=5000",
	}
}

// DefaultConfig returns the full default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Model:    DefaultModelConfig(),
		Corpus:   DefaultCorpusConfig(),
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Warn instead of failing, the defaults are still usable.
				fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Sections set to null in the file fall back to defaults.
	if config.Model == nil {
		config.Model = DefaultModelConfig()
	}
	if config.Corpus == nil {
		config.Corpus = DefaultCorpusConfig()
	}

	return config, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Model.WindowLength <= 0 {
		return errors.New("window_length must be positive")
	}
	if c.Model.TargetLength < 0 {
		return errors.New("target_length must not be negative")
	}
	if c.Corpus.DatabasePath == "" {
		return errors.New("database_path must not be empty")
	}
	return nil
}

// parseLogLevel maps a config log level to a slog.Level, defaulting to info.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
