package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// MatchConfig holds settings for self-play matches.
type MatchConfig struct {
	// Workers is the number of games played in parallel.
	Workers int

	// Games is the number of games to play.
	Games int

	// MaxPlies stops an unfinished game after this many plies; 0 means no limit.
	MaxPlies int

	// White and Black are the tiers of the two players. Colours
	// alternate between games when Alternate is set.
	White     string
	Black     string
	Alternate bool

	// StartFEN is the starting position; empty means the initial position.
	StartFEN string
}

// NewMatchConfig creates a MatchConfig with default values.
func NewMatchConfig() *MatchConfig {
	return &MatchConfig{
		Workers:   runtime.NumCPU(),
		Games:     10,
		MaxPlies:  300,
		White:     "hard",
		Black:     "medium",
		Alternate: true,
	}
}

// Validate checks that the match configuration is usable.
func (m *MatchConfig) Validate() error {
	if m.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", m.Workers, errors.ErrInvalidConfig)
	}
	if m.Games < 0 {
		return fmt.Errorf("games (%d) must not be negative: %w", m.Games, errors.ErrInvalidConfig)
	}
	if m.MaxPlies < 0 {
		return fmt.Errorf("max plies (%d) must not be negative: %w", m.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
