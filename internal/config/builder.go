package config

import (
	"io"

	"github.com/rs/zerolog"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// BuildValidated returns the built Config or the first validation error.
func (b *ConfigBuilder) BuildValidated() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithTier sets the difficulty tier name.
func (b *ConfigBuilder) WithTier(name string) *ConfigBuilder {
	b.cfg.AI.Tier = name
	return b
}

// WithSeed makes random choices reproducible.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.AI.Seed = seed
	b.cfg.AI.Seeded = true
	return b
}

// WithDelayScale scales the artificial thinking delay; 0 disables it.
func (b *ConfigBuilder) WithDelayScale(scale float64) *ConfigBuilder {
	b.cfg.AI.DelayScale = scale
	return b
}

// WithBatchSize sets the number of nodes searched between yields.
func (b *ConfigBuilder) WithBatchSize(n int) *ConfigBuilder {
	b.cfg.AI.BatchSize = n
	return b
}

// WithOpeningBook enables or disables the opening book.
func (b *ConfigBuilder) WithOpeningBook(enabled bool) *ConfigBuilder {
	b.cfg.AI.OpeningBook = enabled
	return b
}

// WithTablebase enables or disables the endgame table.
func (b *ConfigBuilder) WithTablebase(enabled bool) *ConfigBuilder {
	b.cfg.AI.Tablebase = enabled
	return b
}

// WithLogger sets the logger.
func (b *ConfigBuilder) WithLogger(l zerolog.Logger) *ConfigBuilder {
	b.cfg.Logger = l
	return b
}

// WithWorkers sets the number of parallel match games.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Match.Workers = n
	return b
}

// WithGames sets the number of match games.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.Match.Games = n
	return b
}

// WithMaxPlies sets the ply limit of a match game.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Match.MaxPlies = n
	return b
}

// WithPlayers sets the tiers of the two match players.
func (b *ConfigBuilder) WithPlayers(white, black string) *ConfigBuilder {
	b.cfg.Match.White = white
	b.cfg.Match.Black = black
	return b
}

// WithStartFEN sets the starting position of match games.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Match.StartFEN = fen
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
