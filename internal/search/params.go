// Package search picks moves for the AI: the Easy and Medium selection
// policies and a minimax search with alpha-beta pruning, move ordering,
// a transposition cache, quiescence, null-move pruning, iterative
// deepening, and opening book and endgame table lookups.
package search

import (
	"fmt"

	"github.com/lgbarn/chess-ai-go/internal/eval"
)

// Strategy selects how an Engine chooses its move.
type Strategy int

const (
	// RandomCapture prefers captures and central squares with jitter.
	RandomCapture Strategy = iota
	// ReplyCheck ranks moves by evaluation minus the best reply capture.
	ReplyCheck
	// AlphaBeta runs a minimax search.
	AlphaBeta
)

// String returns the string representation of a strategy.
func (s Strategy) String() string {
	switch s {
	case RandomCapture:
		return "random-capture"
	case ReplyCheck:
		return "reply-check"
	case AlphaBeta:
		return "alpha-beta"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// DefaultMateScore is the base score of a forced mate for the weakest
// searching tier. Stronger tiers raise it to their checkmate bonus.
const DefaultMateScore = 10000

// DefaultBatchSize is the number of nodes searched between yields.
const DefaultBatchSize = 256

// Params is the complete description of how strong an Engine plays.
type Params struct {
	Strategy Strategy

	// Search depth in plies. With IterativeDeepening this is the
	// deepest iteration.
	Depth int

	// Base score of a mate; the remaining depth is added so that faster
	// mates score higher. Static evaluations are clamped strictly inside
	// ±MateScore.
	MateScore int

	Weights eval.Weights

	UseOrdering bool

	UseCache   bool
	CacheLimit int // entries; the cache is cleared when it grows past this

	UseQuiescence   bool
	QuiescenceDepth int

	UseNullMove       bool
	NullMoveReduction int
	NullMoveMinMoves  int // minimum legal moves before a null move is tried

	IterativeDeepening bool

	UseOpeningBook  bool
	UseTablebase    bool
	TablebasePieces int // total piece count at or below which the tablebase is probed

	// Nodes searched between calls to the engine's yield hook. Zero or
	// negative disables yielding.
	BatchSize int
}

// Validate reports whether the parameters describe a usable search.
func (p Params) Validate() error {
	switch p.Strategy {
	case RandomCapture, ReplyCheck:
		return nil
	case AlphaBeta:
	default:
		return fmt.Errorf("unknown strategy %v", p.Strategy)
	}
	if p.Depth < 1 {
		return fmt.Errorf("depth must be at least 1, got %d", p.Depth)
	}
	if p.MateScore <= 0 {
		return fmt.Errorf("mate score must be positive, got %d", p.MateScore)
	}
	if p.UseCache && p.CacheLimit < 1 {
		return fmt.Errorf("cache limit must be at least 1, got %d", p.CacheLimit)
	}
	if p.UseQuiescence && p.QuiescenceDepth < 1 {
		return fmt.Errorf("quiescence depth must be at least 1, got %d", p.QuiescenceDepth)
	}
	if p.UseNullMove && p.NullMoveReduction < 1 {
		return fmt.Errorf("null move reduction must be at least 1, got %d", p.NullMoveReduction)
	}
	return nil
}
