// Package config provides configuration for the chess AI and its tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=warnings, 1=info, 2=debug

	// Per-concern settings
	AI    *AIConfig
	Match *MatchConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// Logger is handed to every controller and search engine.
	Logger zerolog.Logger
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		AI:         NewAIConfig(),
		Match:      NewMatchConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Logger:     zerolog.Nop(),
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.AI == nil || c.Match == nil {
		return fmt.Errorf("missing configuration section: %w", errors.ErrInvalidConfig)
	}
	if err := c.AI.Validate(); err != nil {
		return err
	}
	return c.Match.Validate()
}

// LogLevel maps the verbosity to a zerolog level.
func (c *Config) LogLevel() zerolog.Level {
	switch {
	case c.Verbosity <= 0:
		return zerolog.WarnLevel
	case c.Verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
