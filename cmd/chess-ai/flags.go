// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chess-ai-go/internal/config"
)

var (
	// Mode selection
	mode = flag.String("m", "bestmove", "Mode: bestmove, play, match, perft")

	// Position options
	fenFlag   = flag.String("fen", "", "Start position in FEN (default: initial position)")
	movesFlag = flag.String("moves", "", "Moves in long algebraic notation to play from the start position (e.g. 'e2e4 e7e5')")

	// AI options
	tier       = flag.String("tier", "medium", "AI tier: easy, medium, hard, nightmare, impossible")
	seed       = flag.Int64("seed", -1, "Random seed (-1 = unseeded)")
	delayScale = flag.Float64("delay", 1, "Thinking delay multiplier (0 = no delay)")
	batchSize  = flag.Int("batch", config.DefaultBatchSize, "Search nodes between yields (0 = never yield)")
	noBook     = flag.Bool("nobook", false, "Disable the opening book")
	noTB       = flag.Bool("notb", false, "Disable the endgame tablebase")

	// Self-play options
	white       = flag.String("white", "hard", "Tier playing White in play and match modes")
	black       = flag.String("black", "medium", "Tier playing Black in play and match modes")
	games       = flag.Int("games", 10, "Number of match games")
	workers     = flag.Int("workers", 0, "Number of match workers (0 = one per CPU)")
	maxPlies    = flag.Int("maxplies", 300, "Stop a self-play game after N plies (0 = no limit)")
	noAlternate = flag.Bool("noalternate", false, "Keep the same colours in every match game")

	// Perft options
	depth  = flag.Int("depth", 4, "Perft depth")
	divide = flag.Bool("divide", false, "Print the perft count below each root move")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	appendLog  = flag.String("L", "", "Append diagnostics to log file")
	verbosity  = flag.Int("v", 1, "Log verbosity: 0=warnings, 1=info, 2=debug")
	quiet      = flag.Bool("s", false, "Silent mode (warnings only)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyAIFlags(cfg)
	applyMatchFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyAIFlags configures the AI player.
func applyAIFlags(cfg *config.Config) {
	cfg.AI.Tier = *tier
	if *seed >= 0 {
		cfg.AI.Seed = uint64(*seed)
		cfg.AI.Seeded = true
	}
	cfg.AI.DelayScale = *delayScale
	cfg.AI.BatchSize = *batchSize
	cfg.AI.OpeningBook = !*noBook
	cfg.AI.Tablebase = !*noTB
}

// applyMatchFlags configures self-play.
func applyMatchFlags(cfg *config.Config) {
	cfg.Match.White = *white
	cfg.Match.Black = *black
	cfg.Match.Games = *games
	if *workers > 0 {
		cfg.Match.Workers = *workers
	}
	cfg.Match.MaxPlies = *maxPlies
	cfg.Match.Alternate = !*noAlternate
}

// splitMoves splits a move list on spaces and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
