package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/lgbarn/chess-ai-go/internal/errors"
)

// DefaultBatchSize is the number of search nodes between yields.
const DefaultBatchSize = 256

// AIConfig holds settings for one AI opponent.
type AIConfig struct {
	// Tier is the difficulty name: easy, medium, hard, nightmare or impossible.
	Tier string

	// Seed makes random choices reproducible when Seeded is set.
	Seed   uint64
	Seeded bool

	// DelayScale multiplies the artificial thinking delay; 0 disables it.
	DelayScale float64

	// BatchSize is the number of nodes searched between yields; 0 never yields.
	BatchSize int

	// OpeningBook and Tablebase allow the top tier its lookup tables.
	OpeningBook bool
	Tablebase   bool
}

// NewAIConfig creates an AIConfig with default values.
func NewAIConfig() *AIConfig {
	return &AIConfig{
		Tier:        "medium",
		DelayScale:  1,
		BatchSize:   DefaultBatchSize,
		OpeningBook: true,
		Tablebase:   true,
	}
}

// Validate checks that the AI configuration is usable. The tier name is
// resolved by the difficulty package.
func (a *AIConfig) Validate() error {
	if strings.TrimSpace(a.Tier) == "" {
		return fmt.Errorf("empty difficulty tier: %w", errors.ErrInvalidConfig)
	}
	if a.DelayScale < 0 || math.IsNaN(a.DelayScale) || math.IsInf(a.DelayScale, 0) {
		return fmt.Errorf("delay scale %v must be a non-negative number: %w", a.DelayScale, errors.ErrInvalidConfig)
	}
	if a.BatchSize < 0 {
		return fmt.Errorf("batch size %d must not be negative: %w", a.BatchSize, errors.ErrInvalidConfig)
	}
	return nil
}
